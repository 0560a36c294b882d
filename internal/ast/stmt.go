package ast

import "github.com/hyper-lang/hyper/internal/source"

// EmptyStmt is an absent statement, such as a missing else branch or the
// body of a bodiless function declaration.
type EmptyStmt struct {
	span source.Location
}

// NewEmptyStmt constructs an empty statement node.
func NewEmptyStmt(span source.Location) *EmptyStmt {
	return &EmptyStmt{span: span}
}

// Span returns the statement span.
func (s *EmptyStmt) Span() source.Location { return s.span }

func (*EmptyStmt) stmtNode() {}

// DeclareStmt is a let or var declaration. Constant is set for let; Mutable
// for the mut modifier. Type is an InferredType annotation when omitted and
// Init is an *EmptyExpr when no initializer was written; never both.
type DeclareStmt struct {
	Constant bool
	Mutable  bool
	Name     *NameExpr
	Type     *TypeExpr
	Init     Expr
	span     source.Location
}

// NewDeclareStmt constructs a declaration node.
func NewDeclareStmt(constant, mutable bool, name *NameExpr, typ *TypeExpr, init Expr, span source.Location) *DeclareStmt {
	return &DeclareStmt{
		Constant: constant,
		Mutable:  mutable,
		Name:     name,
		Type:     typ,
		Init:     init,
		span:     span,
	}
}

// Span returns the statement span.
func (s *DeclareStmt) Span() source.Location { return s.span }

func (*DeclareStmt) stmtNode() {}

// BlockStmt is a braced statement list.
type BlockStmt struct {
	Stmts []Stmt
	span  source.Location
}

// NewBlockStmt constructs a block node.
func NewBlockStmt(stmts []Stmt, span source.Location) *BlockStmt {
	return &BlockStmt{Stmts: stmts, span: span}
}

// Span returns the statement span.
func (s *BlockStmt) Span() source.Location { return s.span }

func (*BlockStmt) stmtNode() {}

// IfStmt is a conditional. Else is an *EmptyStmt, a *BlockStmt or a nested
// *IfStmt for else-if chains.
type IfStmt struct {
	Cond Expr
	Then *BlockStmt
	Else Stmt
	span source.Location
}

// NewIfStmt constructs an if statement node.
func NewIfStmt(cond Expr, then *BlockStmt, els Stmt, span source.Location) *IfStmt {
	return &IfStmt{Cond: cond, Then: then, Else: els, span: span}
}

// Span returns the statement span.
func (s *IfStmt) Span() source.Location { return s.span }

func (*IfStmt) stmtNode() {}

// MatchStmt is a match over Subject. Branch syntax is not accepted yet, so
// Branches is always empty.
type MatchStmt struct {
	Subject  Expr
	Branches []Stmt
	span     source.Location
}

// NewMatchStmt constructs a match statement node.
func NewMatchStmt(subject Expr, branches []Stmt, span source.Location) *MatchStmt {
	return &MatchStmt{Subject: subject, Branches: branches, span: span}
}

// Span returns the statement span.
func (s *MatchStmt) Span() source.Location { return s.span }

func (*MatchStmt) stmtNode() {}

// WhileStmt repeats Body while Cond holds.
type WhileStmt struct {
	Cond Expr
	Body *BlockStmt
	span source.Location
}

// NewWhileStmt constructs a while loop node.
func NewWhileStmt(cond Expr, body *BlockStmt, span source.Location) *WhileStmt {
	return &WhileStmt{Cond: cond, Body: body, span: span}
}

// Span returns the statement span.
func (s *WhileStmt) Span() source.Location { return s.span }

func (*WhileStmt) stmtNode() {}

// UntilStmt repeats Body until Cond holds.
type UntilStmt struct {
	Cond Expr
	Body *BlockStmt
	span source.Location
}

// NewUntilStmt constructs an until loop node.
func NewUntilStmt(cond Expr, body *BlockStmt, span source.Location) *UntilStmt {
	return &UntilStmt{Cond: cond, Body: body, span: span}
}

// Span returns the statement span.
func (s *UntilStmt) Span() source.Location { return s.span }

func (*UntilStmt) stmtNode() {}

// LoopStmt repeats Body until a break.
type LoopStmt struct {
	Body *BlockStmt
	span source.Location
}

// NewLoopStmt constructs an unconditional loop node.
func NewLoopStmt(body *BlockStmt, span source.Location) *LoopStmt {
	return &LoopStmt{Body: body, span: span}
}

// Span returns the statement span.
func (s *LoopStmt) Span() source.Location { return s.span }

func (*LoopStmt) stmtNode() {}

// ForStmt binds Name to each element of Iterable.
type ForStmt struct {
	Name     *NameExpr
	Iterable Expr
	Body     *BlockStmt
	span     source.Location
}

// NewForStmt constructs a for loop node.
func NewForStmt(name *NameExpr, iterable Expr, body *BlockStmt, span source.Location) *ForStmt {
	return &ForStmt{Name: name, Iterable: iterable, Body: body, span: span}
}

// Span returns the statement span.
func (s *ForStmt) Span() source.Location { return s.span }

func (*ForStmt) stmtNode() {}

// DefStmt attaches functions to Target. With 'def Trait for Target' the
// block implements Trait and ForTrait is set; otherwise Trait is a
// NoneName placeholder.
type DefStmt struct {
	ForTrait bool
	Trait    *NameExpr
	Target   *NameExpr
	Funs     []*FunStmt
	span     source.Location
}

// NewDefStmt constructs a def block node.
func NewDefStmt(forTrait bool, trait, target *NameExpr, funs []*FunStmt, span source.Location) *DefStmt {
	return &DefStmt{
		ForTrait: forTrait,
		Trait:    trait,
		Target:   target,
		Funs:     funs,
		span:     span,
	}
}

// Span returns the statement span.
func (s *DefStmt) Span() source.Location { return s.span }

func (*DefStmt) stmtNode() {}

// Param is a name with a type annotation. It is used for function
// parameters and struct fields.
type Param struct {
	Name *NameExpr
	Type *TypeExpr
	span source.Location
}

// NewParam constructs a parameter or field node.
func NewParam(name *NameExpr, typ *TypeExpr, span source.Location) *Param {
	return &Param{Name: name, Type: typ, span: span}
}

// Span returns the parameter span.
func (p *Param) Span() source.Location { return p.span }

// FunStmt is a function declaration. Body is an *EmptyStmt for a
// declaration ending in ';', a *ReturnStmt for an '->' expression body, or
// a *BlockStmt.
type FunStmt struct {
	Name    *NameExpr
	HasSelf bool
	Params  []*Param
	Return  *TypeExpr
	Body    Stmt
	span    source.Location
}

// NewFunStmt constructs a function declaration node.
func NewFunStmt(name *NameExpr, hasSelf bool, params []*Param, ret *TypeExpr, body Stmt, span source.Location) *FunStmt {
	return &FunStmt{
		Name:    name,
		HasSelf: hasSelf,
		Params:  params,
		Return:  ret,
		Body:    body,
		span:    span,
	}
}

// Span returns the statement span.
func (s *FunStmt) Span() source.Location { return s.span }

func (*FunStmt) stmtNode() {}

// StructStmt declares a record type.
type StructStmt struct {
	Name   *NameExpr
	Fields []*Param
	span   source.Location
}

// NewStructStmt constructs a struct declaration node.
func NewStructStmt(name *NameExpr, fields []*Param, span source.Location) *StructStmt {
	return &StructStmt{Name: name, Fields: fields, span: span}
}

// Span returns the statement span.
func (s *StructStmt) Span() source.Location { return s.span }

func (*StructStmt) stmtNode() {}

// Variant is one case of an enum: a *SingleVariant or a *TypedVariant.
type Variant interface {
	Node
	VariantName() *NameExpr
}

// SingleVariant is a bare enum case.
type SingleVariant struct {
	Name *NameExpr
	span source.Location
}

// NewSingleVariant constructs a bare enum case.
func NewSingleVariant(name *NameExpr, span source.Location) *SingleVariant {
	return &SingleVariant{Name: name, span: span}
}

// Span returns the variant span.
func (v *SingleVariant) Span() source.Location { return v.span }

// VariantName returns the case name.
func (v *SingleVariant) VariantName() *NameExpr { return v.Name }

// TypedVariant is an enum case carrying values, written Name(T, U).
type TypedVariant struct {
	Name  *NameExpr
	Types []*TypeExpr
	span  source.Location
}

// NewTypedVariant constructs an enum case with payload types.
func NewTypedVariant(name *NameExpr, types []*TypeExpr, span source.Location) *TypedVariant {
	return &TypedVariant{Name: name, Types: types, span: span}
}

// Span returns the variant span.
func (v *TypedVariant) Span() source.Location { return v.span }

// VariantName returns the case name.
func (v *TypedVariant) VariantName() *NameExpr { return v.Name }

// EnumStmt declares a sum type.
type EnumStmt struct {
	Name     *NameExpr
	Variants []Variant
	span     source.Location
}

// NewEnumStmt constructs an enum declaration node.
func NewEnumStmt(name *NameExpr, variants []Variant, span source.Location) *EnumStmt {
	return &EnumStmt{Name: name, Variants: variants, span: span}
}

// Span returns the statement span.
func (s *EnumStmt) Span() source.Location { return s.span }

func (*EnumStmt) stmtNode() {}

// BreakStmt leaves a loop. Label is a NoneName placeholder and Value an
// *EmptyExpr when omitted.
type BreakStmt struct {
	Label *NameExpr
	Value Expr
	span  source.Location
}

// NewBreakStmt constructs a break node.
func NewBreakStmt(label *NameExpr, value Expr, span source.Location) *BreakStmt {
	return &BreakStmt{Label: label, Value: value, span: span}
}

// Span returns the statement span.
func (s *BreakStmt) Span() source.Location { return s.span }

func (*BreakStmt) stmtNode() {}

// ContinueStmt skips to the next iteration of a loop.
type ContinueStmt struct {
	Label *NameExpr
	span  source.Location
}

// NewContinueStmt constructs a continue node.
func NewContinueStmt(label *NameExpr, span source.Location) *ContinueStmt {
	return &ContinueStmt{Label: label, span: span}
}

// Span returns the statement span.
func (s *ContinueStmt) Span() source.Location { return s.span }

func (*ContinueStmt) stmtNode() {}

// ReturnStmt leaves the enclosing function. Value is an *EmptyExpr when
// omitted.
type ReturnStmt struct {
	Value Expr
	span  source.Location
}

// NewReturnStmt constructs a return node.
func NewReturnStmt(value Expr, span source.Location) *ReturnStmt {
	return &ReturnStmt{Value: value, span: span}
}

// Span returns the statement span.
func (s *ReturnStmt) Span() source.Location { return s.span }

func (*ReturnStmt) stmtNode() {}

// ExpressionStmt evaluates Expr for its effect.
type ExpressionStmt struct {
	Expr Expr
	span source.Location
}

// NewExpressionStmt constructs an expression statement node.
func NewExpressionStmt(expr Expr, span source.Location) *ExpressionStmt {
	return &ExpressionStmt{Expr: expr, span: span}
}

// Span returns the statement span.
func (s *ExpressionStmt) Span() source.Location { return s.span }

func (*ExpressionStmt) stmtNode() {}
