package ast

import "fmt"

// ExprVisitor computes a result of type X for each expression variant.
type ExprVisitor[X any] interface {
	VisitEmptyExpr(*EmptyExpr) X
	VisitValueExpr(*ValueExpr) X
	VisitNameExpr(*NameExpr) X
	VisitTypeExpr(*TypeExpr) X
	VisitTemplateExpr(*TemplateExpr) X
	VisitPrefixExpr(*PrefixExpr) X
	VisitPostfixExpr(*PostfixExpr) X
	VisitBinaryExpr(*BinaryExpr) X
	VisitReferenceExpr(*ReferenceExpr) X
	VisitAssignExpr(*AssignExpr) X
	VisitGetIndexExpr(*GetIndexExpr) X
	VisitSetIndexExpr(*SetIndexExpr) X
	VisitGetMemberExpr(*GetMemberExpr) X
	VisitSetMemberExpr(*SetMemberExpr) X
	VisitInvokeExpr(*InvokeExpr) X
	VisitVarargExpr(*VarargExpr) X
	VisitSpreadExpr(*SpreadExpr) X
	VisitListLiteralExpr(*ListLiteralExpr) X
	VisitListLoopExpr(*ListLoopExpr) X
	VisitListForExpr(*ListForExpr) X
	VisitLambdaExpr(*LambdaExpr) X
	VisitIfExpr(*IfExpr) X
	VisitMatchExpr(*MatchExpr) X
	VisitBlockExpr(*BlockExpr) X
	VisitStatementExpr(*StatementExpr) X
}

// StmtVisitor computes a result of type X for each statement variant.
type StmtVisitor[X any] interface {
	VisitEmptyStmt(*EmptyStmt) X
	VisitDeclareStmt(*DeclareStmt) X
	VisitBlockStmt(*BlockStmt) X
	VisitIfStmt(*IfStmt) X
	VisitMatchStmt(*MatchStmt) X
	VisitWhileStmt(*WhileStmt) X
	VisitUntilStmt(*UntilStmt) X
	VisitLoopStmt(*LoopStmt) X
	VisitForStmt(*ForStmt) X
	VisitDefStmt(*DefStmt) X
	VisitFunStmt(*FunStmt) X
	VisitStructStmt(*StructStmt) X
	VisitEnumStmt(*EnumStmt) X
	VisitBreakStmt(*BreakStmt) X
	VisitContinueStmt(*ContinueStmt) X
	VisitReturnStmt(*ReturnStmt) X
	VisitExpressionStmt(*ExpressionStmt) X
}

// AcceptExpr dispatches e to the matching method of v.
func AcceptExpr[X any](v ExprVisitor[X], e Expr) X {
	switch e := e.(type) {
	case *EmptyExpr:
		return v.VisitEmptyExpr(e)
	case *ValueExpr:
		return v.VisitValueExpr(e)
	case *NameExpr:
		return v.VisitNameExpr(e)
	case *TypeExpr:
		return v.VisitTypeExpr(e)
	case *TemplateExpr:
		return v.VisitTemplateExpr(e)
	case *PrefixExpr:
		return v.VisitPrefixExpr(e)
	case *PostfixExpr:
		return v.VisitPostfixExpr(e)
	case *BinaryExpr:
		return v.VisitBinaryExpr(e)
	case *ReferenceExpr:
		return v.VisitReferenceExpr(e)
	case *AssignExpr:
		return v.VisitAssignExpr(e)
	case *GetIndexExpr:
		return v.VisitGetIndexExpr(e)
	case *SetIndexExpr:
		return v.VisitSetIndexExpr(e)
	case *GetMemberExpr:
		return v.VisitGetMemberExpr(e)
	case *SetMemberExpr:
		return v.VisitSetMemberExpr(e)
	case *InvokeExpr:
		return v.VisitInvokeExpr(e)
	case *VarargExpr:
		return v.VisitVarargExpr(e)
	case *SpreadExpr:
		return v.VisitSpreadExpr(e)
	case *ListLiteralExpr:
		return v.VisitListLiteralExpr(e)
	case *ListLoopExpr:
		return v.VisitListLoopExpr(e)
	case *ListForExpr:
		return v.VisitListForExpr(e)
	case *LambdaExpr:
		return v.VisitLambdaExpr(e)
	case *IfExpr:
		return v.VisitIfExpr(e)
	case *MatchExpr:
		return v.VisitMatchExpr(e)
	case *BlockExpr:
		return v.VisitBlockExpr(e)
	case *StatementExpr:
		return v.VisitStatementExpr(e)
	default:
		panic(fmt.Sprintf("ast: unhandled expression %T", e))
	}
}

// AcceptStmt dispatches s to the matching method of v.
func AcceptStmt[X any](v StmtVisitor[X], s Stmt) X {
	switch s := s.(type) {
	case *EmptyStmt:
		return v.VisitEmptyStmt(s)
	case *DeclareStmt:
		return v.VisitDeclareStmt(s)
	case *BlockStmt:
		return v.VisitBlockStmt(s)
	case *IfStmt:
		return v.VisitIfStmt(s)
	case *MatchStmt:
		return v.VisitMatchStmt(s)
	case *WhileStmt:
		return v.VisitWhileStmt(s)
	case *UntilStmt:
		return v.VisitUntilStmt(s)
	case *LoopStmt:
		return v.VisitLoopStmt(s)
	case *ForStmt:
		return v.VisitForStmt(s)
	case *DefStmt:
		return v.VisitDefStmt(s)
	case *FunStmt:
		return v.VisitFunStmt(s)
	case *StructStmt:
		return v.VisitStructStmt(s)
	case *EnumStmt:
		return v.VisitEnumStmt(s)
	case *BreakStmt:
		return v.VisitBreakStmt(s)
	case *ContinueStmt:
		return v.VisitContinueStmt(s)
	case *ReturnStmt:
		return v.VisitReturnStmt(s)
	case *ExpressionStmt:
		return v.VisitExpressionStmt(s)
	default:
		panic(fmt.Sprintf("ast: unhandled statement %T", s))
	}
}
