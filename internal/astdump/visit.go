package astdump

import "github.com/hyper-lang/hyper/internal/ast"

func (d *dumper) VisitEmptyExpr(e *ast.EmptyExpr) Tree {
	return d.node("Empty", e.Span())
}

func (d *dumper) VisitValueExpr(e *ast.ValueExpr) Tree {
	t := d.node("Value", e.Span())
	t["type"], t["value"] = valueType(e.Value)
	return t
}

func (d *dumper) VisitNameExpr(e *ast.NameExpr) Tree {
	t := d.node("Name", e.Span())
	t["name"] = e.Value
	return t
}

func (d *dumper) VisitTypeExpr(e *ast.TypeExpr) Tree {
	t := d.node("Type", e.Span())
	t["type"] = e.Type.String()
	return t
}

func (d *dumper) VisitTemplateExpr(e *ast.TemplateExpr) Tree {
	t := d.node("Template", e.Span())
	t["parts"] = d.exprs(e.Parts)
	return t
}

func (d *dumper) VisitPrefixExpr(e *ast.PrefixExpr) Tree {
	t := d.node("Prefix", e.Span())
	t["op"] = e.Op.String()
	t["operand"] = d.expr(e.Operand)
	return t
}

func (d *dumper) VisitPostfixExpr(e *ast.PostfixExpr) Tree {
	t := d.node("Postfix", e.Span())
	t["op"] = e.Op.String()
	t["operand"] = d.expr(e.Operand)
	return t
}

func (d *dumper) VisitBinaryExpr(e *ast.BinaryExpr) Tree {
	t := d.node("Binary", e.Span())
	t["op"] = e.Op.String()
	t["left"] = d.expr(e.Left)
	t["right"] = d.expr(e.Right)
	return t
}

func (d *dumper) VisitReferenceExpr(e *ast.ReferenceExpr) Tree {
	return d.node("Reference", e.Span())
}

func (d *dumper) VisitAssignExpr(e *ast.AssignExpr) Tree {
	t := d.node("Assign", e.Span())
	t["target"] = d.expr(e.Target)
	t["value"] = d.expr(e.Value)
	return t
}

func (d *dumper) VisitGetIndexExpr(e *ast.GetIndexExpr) Tree {
	t := d.node("GetIndex", e.Span())
	t["target"] = d.expr(e.Target)
	t["index"] = d.expr(e.Index)
	return t
}

func (d *dumper) VisitSetIndexExpr(e *ast.SetIndexExpr) Tree {
	t := d.node("SetIndex", e.Span())
	t["target"] = d.expr(e.Target)
	t["index"] = d.expr(e.Index)
	t["value"] = d.expr(e.Value)
	return t
}

func (d *dumper) VisitGetMemberExpr(e *ast.GetMemberExpr) Tree {
	t := d.node("GetMember", e.Span())
	t["target"] = d.expr(e.Target)
	t["member"] = e.Member.Value
	flag(t, "scoped", e.Scoped)
	return t
}

func (d *dumper) VisitSetMemberExpr(e *ast.SetMemberExpr) Tree {
	t := d.node("SetMember", e.Span())
	t["target"] = d.expr(e.Target)
	t["member"] = e.Member.Value
	t["value"] = d.expr(e.Value)
	return t
}

func (d *dumper) VisitInvokeExpr(e *ast.InvokeExpr) Tree {
	t := d.node("Invoke", e.Span())
	t["target"] = d.expr(e.Target)

	args := make([]any, 0, len(e.Args))
	for _, arg := range e.Args {
		a := Tree{"value": d.expr(arg.Value)}
		flag(a, "spread", arg.Spread)
		label(a, "name", arg.Name)
		args = append(args, a)
	}
	t["args"] = args

	return t
}

func (d *dumper) VisitVarargExpr(e *ast.VarargExpr) Tree {
	return d.node("Vararg", e.Span())
}

func (d *dumper) VisitSpreadExpr(e *ast.SpreadExpr) Tree {
	t := d.node("Spread", e.Span())
	t["expr"] = d.expr(e.Expr)
	return t
}

func (d *dumper) VisitListLiteralExpr(e *ast.ListLiteralExpr) Tree {
	t := d.node("ListLiteral", e.Span())
	t["elements"] = d.exprs(e.Elements)
	return t
}

func (d *dumper) VisitListLoopExpr(e *ast.ListLoopExpr) Tree {
	t := d.node("ListLoop", e.Span())
	t["element"] = d.expr(e.Element)
	t["count"] = d.expr(e.Count)
	return t
}

func (d *dumper) VisitListForExpr(e *ast.ListForExpr) Tree {
	t := d.node("ListFor", e.Span())
	t["element"] = d.expr(e.Element)
	flag(t, "destructured", e.Destructured)

	bindings := make([]any, 0, len(e.Bindings))
	for _, b := range e.Bindings {
		bindings = append(bindings, b.Value)
	}
	t["bindings"] = bindings

	t["iterable"] = d.expr(e.Iterable)
	d.optional(t, "filter", e.Filter)
	return t
}

func (d *dumper) VisitLambdaExpr(e *ast.LambdaExpr) Tree {
	t := d.node("Lambda", e.Span())
	t["fun"] = d.stmt(e.Fun)
	return t
}

func (d *dumper) VisitIfExpr(e *ast.IfExpr) Tree {
	t := d.node("If", e.Span())
	t["cond"] = d.expr(e.Cond)
	t["then"] = d.expr(e.Then)
	d.optional(t, "else", e.Else)
	return t
}

func (d *dumper) VisitMatchExpr(e *ast.MatchExpr) Tree {
	t := d.node("Match", e.Span())
	t["subject"] = d.expr(e.Subject)
	return t
}

func (d *dumper) VisitBlockExpr(e *ast.BlockExpr) Tree {
	t := d.node("Block", e.Span())
	t["exprs"] = d.exprs(e.Exprs)
	return t
}

func (d *dumper) VisitStatementExpr(e *ast.StatementExpr) Tree {
	t := d.node("Statement", e.Span())
	t["stmt"] = d.stmt(e.Stmt)
	return t
}

func (d *dumper) VisitEmptyStmt(s *ast.EmptyStmt) Tree {
	return d.node("Empty", s.Span())
}

func (d *dumper) VisitDeclareStmt(s *ast.DeclareStmt) Tree {
	t := d.node("Declare", s.Span())
	flag(t, "constant", s.Constant)
	flag(t, "mutable", s.Mutable)
	t["name"] = s.Name.Value
	t["type"] = s.Type.Type.String()
	d.optional(t, "init", s.Init)
	return t
}

func (d *dumper) VisitBlockStmt(s *ast.BlockStmt) Tree {
	t := d.node("Block", s.Span())
	t["stmts"] = d.stmts(s.Stmts)
	return t
}

func (d *dumper) VisitIfStmt(s *ast.IfStmt) Tree {
	t := d.node("If", s.Span())
	t["cond"] = d.expr(s.Cond)
	t["then"] = d.stmt(s.Then)
	if _, empty := s.Else.(*ast.EmptyStmt); !empty {
		t["else"] = d.stmt(s.Else)
	}
	return t
}

func (d *dumper) VisitMatchStmt(s *ast.MatchStmt) Tree {
	t := d.node("Match", s.Span())
	t["subject"] = d.expr(s.Subject)
	return t
}

func (d *dumper) VisitWhileStmt(s *ast.WhileStmt) Tree {
	t := d.node("While", s.Span())
	t["cond"] = d.expr(s.Cond)
	t["body"] = d.stmt(s.Body)
	return t
}

func (d *dumper) VisitUntilStmt(s *ast.UntilStmt) Tree {
	t := d.node("Until", s.Span())
	t["cond"] = d.expr(s.Cond)
	t["body"] = d.stmt(s.Body)
	return t
}

func (d *dumper) VisitLoopStmt(s *ast.LoopStmt) Tree {
	t := d.node("Loop", s.Span())
	t["body"] = d.stmt(s.Body)
	return t
}

func (d *dumper) VisitForStmt(s *ast.ForStmt) Tree {
	t := d.node("For", s.Span())
	t["name"] = s.Name.Value
	t["iterable"] = d.expr(s.Iterable)
	t["body"] = d.stmt(s.Body)
	return t
}

func (d *dumper) VisitDefStmt(s *ast.DefStmt) Tree {
	t := d.node("Def", s.Span())
	if s.ForTrait {
		t["trait"] = s.Trait.Value
	}
	t["target"] = s.Target.Value

	funs := make([]any, 0, len(s.Funs))
	for _, fun := range s.Funs {
		funs = append(funs, d.stmt(fun))
	}
	t["funs"] = funs

	return t
}

func (d *dumper) VisitFunStmt(s *ast.FunStmt) Tree {
	t := d.node("Fun", s.Span())
	label(t, "name", s.Name)
	flag(t, "self", s.HasSelf)
	t["params"] = d.params(s.Params)
	t["returns"] = s.Return.Type.String()
	t["body"] = d.stmt(s.Body)
	return t
}

func (d *dumper) VisitStructStmt(s *ast.StructStmt) Tree {
	t := d.node("Struct", s.Span())
	t["name"] = s.Name.Value
	t["fields"] = d.params(s.Fields)
	return t
}

func (d *dumper) VisitEnumStmt(s *ast.EnumStmt) Tree {
	t := d.node("Enum", s.Span())
	t["name"] = s.Name.Value

	variants := make([]any, 0, len(s.Variants))
	for _, v := range s.Variants {
		variant := Tree{"name": v.VariantName().Value}
		if typed, ok := v.(*ast.TypedVariant); ok {
			types := make([]any, 0, len(typed.Types))
			for _, typ := range typed.Types {
				types = append(types, typ.Type.String())
			}
			variant["types"] = types
		}
		variants = append(variants, variant)
	}
	t["variants"] = variants

	return t
}

func (d *dumper) VisitBreakStmt(s *ast.BreakStmt) Tree {
	t := d.node("Break", s.Span())
	label(t, "label", s.Label)
	d.optional(t, "value", s.Value)
	return t
}

func (d *dumper) VisitContinueStmt(s *ast.ContinueStmt) Tree {
	t := d.node("Continue", s.Span())
	label(t, "label", s.Label)
	return t
}

func (d *dumper) VisitReturnStmt(s *ast.ReturnStmt) Tree {
	t := d.node("Return", s.Span())
	d.optional(t, "value", s.Value)
	return t
}

func (d *dumper) VisitExpressionStmt(s *ast.ExpressionStmt) Tree {
	t := d.node("Expression", s.Span())
	t["expr"] = d.expr(s.Expr)
	return t
}
