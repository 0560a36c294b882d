package ast

import "github.com/hyper-lang/hyper/internal/source"

// EmptyExpr stands in for an omitted expression, such as a missing
// initializer or else branch.
type EmptyExpr struct {
	span source.Location
}

// NewEmptyExpr constructs an empty expression node.
func NewEmptyExpr(span source.Location) *EmptyExpr {
	return &EmptyExpr{span: span}
}

// Span returns the expression span.
func (e *EmptyExpr) Span() source.Location { return e.span }

func (*EmptyExpr) exprNode() {}

// ValueExpr is a literal. Value holds the decoded payload of the literal
// token (see lexer.Value).
type ValueExpr struct {
	Value any
	span  source.Location
}

// NewValueExpr constructs a literal node.
func NewValueExpr(value any, span source.Location) *ValueExpr {
	return &ValueExpr{Value: value, span: span}
}

// Span returns the expression span.
func (e *ValueExpr) Span() source.Location { return e.span }

func (*ValueExpr) exprNode() {}

// NameExpr is a reference to a named entity.
type NameExpr struct {
	Value string
	span  source.Location
}

// NewNameExpr constructs a name node.
func NewNameExpr(value string, span source.Location) *NameExpr {
	return &NameExpr{Value: value, span: span}
}

// Span returns the expression span.
func (e *NameExpr) Span() source.Location { return e.span }

func (*NameExpr) exprNode() {}

// TypeExpr wraps a type annotation so it can appear where expressions are
// expected, such as the right operand of 'as'.
type TypeExpr struct {
	Type DataType
	span source.Location
}

// NewTypeExpr constructs a type node.
func NewTypeExpr(typ DataType, span source.Location) *TypeExpr {
	return &TypeExpr{Type: typ, span: span}
}

// Span returns the expression span.
func (e *TypeExpr) Span() source.Location { return e.span }

func (*TypeExpr) exprNode() {}

// TemplateExpr is an interpolated string. Parts alternate between literal
// text (string ValueExpr nodes) and embedded expressions.
type TemplateExpr struct {
	Parts []Expr
	span  source.Location
}

// NewTemplateExpr constructs a template node.
func NewTemplateExpr(parts []Expr, span source.Location) *TemplateExpr {
	return &TemplateExpr{Parts: parts, span: span}
}

// Span returns the expression span.
func (e *TemplateExpr) Span() source.Location { return e.span }

func (*TemplateExpr) exprNode() {}

// PrefixExpr is a unary operation such as -x or #list.
type PrefixExpr struct {
	Op      PrefixOp
	Operand Expr
	span    source.Location
}

// NewPrefixExpr constructs a prefix operation node.
func NewPrefixExpr(op PrefixOp, operand Expr, span source.Location) *PrefixExpr {
	return &PrefixExpr{Op: op, Operand: operand, span: span}
}

// Span returns the expression span.
func (e *PrefixExpr) Span() source.Location { return e.span }

func (*PrefixExpr) exprNode() {}

// PostfixExpr is x++ or x--.
type PostfixExpr struct {
	Op      PostfixOp
	Operand Expr
	span    source.Location
}

// NewPostfixExpr constructs a postfix operation node.
func NewPostfixExpr(op PostfixOp, operand Expr, span source.Location) *PostfixExpr {
	return &PostfixExpr{Op: op, Operand: operand, span: span}
}

// Span returns the expression span.
func (e *PostfixExpr) Span() source.Location { return e.span }

func (*PostfixExpr) exprNode() {}

// BinaryExpr is an infix operation. For 'as' the right operand is a
// *TypeExpr.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	span  source.Location
}

// NewBinaryExpr constructs a binary operation node.
func NewBinaryExpr(op BinaryOp, left, right Expr, span source.Location) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right, span: span}
}

// Span returns the expression span.
func (e *BinaryExpr) Span() source.Location { return e.span }

func (*BinaryExpr) exprNode() {}

// ReferenceExpr is reserved for address-of values produced by later stages.
// The parser expresses &x as a PrefixExpr with the Reference operator.
type ReferenceExpr struct {
	span source.Location
}

// NewReferenceExpr constructs a reference placeholder.
func NewReferenceExpr(span source.Location) *ReferenceExpr {
	return &ReferenceExpr{span: span}
}

// Span returns the expression span.
func (e *ReferenceExpr) Span() source.Location { return e.span }

func (*ReferenceExpr) exprNode() {}

// AssignExpr stores Value into a plain name. Compound assignments are
// lowered so that Value is Target OP rhs.
type AssignExpr struct {
	Target *NameExpr
	Value  Expr
	span   source.Location
}

// NewAssignExpr constructs an assignment node.
func NewAssignExpr(target *NameExpr, value Expr, span source.Location) *AssignExpr {
	return &AssignExpr{Target: target, Value: value, span: span}
}

// Span returns the expression span.
func (e *AssignExpr) Span() source.Location { return e.span }

func (*AssignExpr) exprNode() {}

// GetIndexExpr reads Target[Index].
type GetIndexExpr struct {
	Target Expr
	Index  Expr
	span   source.Location
}

// NewGetIndexExpr constructs an index read node.
func NewGetIndexExpr(target, index Expr, span source.Location) *GetIndexExpr {
	return &GetIndexExpr{Target: target, Index: index, span: span}
}

// Span returns the expression span.
func (e *GetIndexExpr) Span() source.Location { return e.span }

func (*GetIndexExpr) exprNode() {}

// SetIndexExpr writes Target[Index] = Value.
type SetIndexExpr struct {
	Target Expr
	Index  Expr
	Value  Expr
	span   source.Location
}

// NewSetIndexExpr constructs an index write node.
func NewSetIndexExpr(target, index, value Expr, span source.Location) *SetIndexExpr {
	return &SetIndexExpr{Target: target, Index: index, Value: value, span: span}
}

// Span returns the expression span.
func (e *SetIndexExpr) Span() source.Location { return e.span }

func (*SetIndexExpr) exprNode() {}

// GetMemberExpr reads Target.Member. Scoped is set for Target::Member.
type GetMemberExpr struct {
	Target Expr
	Member *NameExpr
	Scoped bool
	span   source.Location
}

// NewGetMemberExpr constructs a member read node.
func NewGetMemberExpr(target Expr, member *NameExpr, scoped bool, span source.Location) *GetMemberExpr {
	return &GetMemberExpr{Target: target, Member: member, Scoped: scoped, span: span}
}

// Span returns the expression span.
func (e *GetMemberExpr) Span() source.Location { return e.span }

func (*GetMemberExpr) exprNode() {}

// SetMemberExpr writes Target.Member = Value.
type SetMemberExpr struct {
	Target Expr
	Member *NameExpr
	Value  Expr
	span   source.Location
}

// NewSetMemberExpr constructs a member write node.
func NewSetMemberExpr(target Expr, member *NameExpr, value Expr, span source.Location) *SetMemberExpr {
	return &SetMemberExpr{Target: target, Member: member, Value: value, span: span}
}

// Span returns the expression span.
func (e *SetMemberExpr) Span() source.Location { return e.span }

func (*SetMemberExpr) exprNode() {}

// Argument is one call argument. Name is a NoneName placeholder for
// positional arguments.
type Argument struct {
	Spread bool
	Name   *NameExpr
	Value  Expr
	span   source.Location
}

// NewArgument constructs a call argument.
func NewArgument(spread bool, name *NameExpr, value Expr, span source.Location) *Argument {
	return &Argument{Spread: spread, Name: name, Value: value, span: span}
}

// Span returns the argument span.
func (a *Argument) Span() source.Location { return a.span }

// Named reports whether the argument was passed as name=value.
func (a *Argument) Named() bool { return !a.Name.IsNone() }

// InvokeExpr calls Target with Args.
type InvokeExpr struct {
	Target Expr
	Args   []*Argument
	span   source.Location
}

// NewInvokeExpr constructs a call node.
func NewInvokeExpr(target Expr, args []*Argument, span source.Location) *InvokeExpr {
	return &InvokeExpr{Target: target, Args: args, span: span}
}

// Span returns the expression span.
func (e *InvokeExpr) Span() source.Location { return e.span }

func (*InvokeExpr) exprNode() {}

// VarargExpr is reserved for the packed variadic argument list built by
// later stages.
type VarargExpr struct {
	span source.Location
}

// NewVarargExpr constructs a vararg placeholder.
func NewVarargExpr(span source.Location) *VarargExpr {
	return &VarargExpr{span: span}
}

// Span returns the expression span.
func (e *VarargExpr) Span() source.Location { return e.span }

func (*VarargExpr) exprNode() {}

// SpreadExpr is *Expr inside a list literal.
type SpreadExpr struct {
	Expr Expr
	span source.Location
}

// NewSpreadExpr constructs a spread node.
func NewSpreadExpr(expr Expr, span source.Location) *SpreadExpr {
	return &SpreadExpr{Expr: expr, span: span}
}

// Span returns the expression span.
func (e *SpreadExpr) Span() source.Location { return e.span }

func (*SpreadExpr) exprNode() {}

// ListLiteralExpr is [a, b, *c].
type ListLiteralExpr struct {
	Elements []Expr
	span     source.Location
}

// NewListLiteralExpr constructs a list literal node.
func NewListLiteralExpr(elements []Expr, span source.Location) *ListLiteralExpr {
	return &ListLiteralExpr{Elements: elements, span: span}
}

// Span returns the expression span.
func (e *ListLiteralExpr) Span() source.Location { return e.span }

func (*ListLiteralExpr) exprNode() {}

// ListLoopExpr is [element loop count]: element evaluated count times.
type ListLoopExpr struct {
	Element Expr
	Count   Expr
	span    source.Location
}

// NewListLoopExpr constructs a repeat comprehension node.
func NewListLoopExpr(element, count Expr, span source.Location) *ListLoopExpr {
	return &ListLoopExpr{Element: element, Count: count, span: span}
}

// Span returns the expression span.
func (e *ListLoopExpr) Span() source.Location { return e.span }

func (*ListLoopExpr) exprNode() {}

// ListForExpr is [element for x in iterable if filter], or with a
// parenthesized binding list when Destructured is set. Filter is an
// *EmptyExpr when no 'if' clause was written.
type ListForExpr struct {
	Element      Expr
	Destructured bool
	Bindings     []*NameExpr
	Iterable     Expr
	Filter       Expr
	span         source.Location
}

// NewListForExpr constructs a for comprehension node.
func NewListForExpr(element Expr, destructured bool, bindings []*NameExpr, iterable, filter Expr, span source.Location) *ListForExpr {
	return &ListForExpr{
		Element:      element,
		Destructured: destructured,
		Bindings:     bindings,
		Iterable:     iterable,
		Filter:       filter,
		span:         span,
	}
}

// Span returns the expression span.
func (e *ListForExpr) Span() source.Location { return e.span }

func (*ListForExpr) exprNode() {}

// LambdaExpr is an anonymous function. Fun.Name is a NoneName placeholder.
type LambdaExpr struct {
	Fun  *FunStmt
	span source.Location
}

// NewLambdaExpr constructs a lambda node.
func NewLambdaExpr(fun *FunStmt, span source.Location) *LambdaExpr {
	return &LambdaExpr{Fun: fun, span: span}
}

// Span returns the expression span.
func (e *LambdaExpr) Span() source.Location { return e.span }

func (*LambdaExpr) exprNode() {}

// IfExpr is an if used as a value. Else is an *EmptyExpr, a *BlockExpr or a
// nested *IfExpr.
type IfExpr struct {
	Cond Expr
	Then *BlockExpr
	Else Expr
	span source.Location
}

// NewIfExpr constructs an if expression node.
func NewIfExpr(cond Expr, then *BlockExpr, els Expr, span source.Location) *IfExpr {
	return &IfExpr{Cond: cond, Then: then, Else: els, span: span}
}

// Span returns the expression span.
func (e *IfExpr) Span() source.Location { return e.span }

func (*IfExpr) exprNode() {}

// MatchExpr is a match used as a value. Only the subject is recorded.
type MatchExpr struct {
	Subject Expr
	span    source.Location
}

// NewMatchExpr constructs a match expression node.
func NewMatchExpr(subject Expr, span source.Location) *MatchExpr {
	return &MatchExpr{Subject: subject, span: span}
}

// Span returns the expression span.
func (e *MatchExpr) Span() source.Location { return e.span }

func (*MatchExpr) exprNode() {}

// BlockExpr is a braced sequence of expressions; the last one is the value.
type BlockExpr struct {
	Exprs []Expr
	span  source.Location
}

// NewBlockExpr constructs a block expression node.
func NewBlockExpr(exprs []Expr, span source.Location) *BlockExpr {
	return &BlockExpr{Exprs: exprs, span: span}
}

// Span returns the expression span.
func (e *BlockExpr) Span() source.Location { return e.span }

func (*BlockExpr) exprNode() {}

// StatementExpr lets a statement appear where an expression is expected,
// for example break inside an if expression.
type StatementExpr struct {
	Stmt Stmt
	span source.Location
}

// NewStatementExpr constructs a statement wrapper node.
func NewStatementExpr(stmt Stmt, span source.Location) *StatementExpr {
	return &StatementExpr{Stmt: stmt, span: span}
}

// Span returns the expression span.
func (e *StatementExpr) Span() source.Location { return e.span }

func (*StatementExpr) exprNode() {}
