// Package ast defines the syntax tree produced by the parser.
//
// Expressions, statements and data types are closed families: every node
// type lives in this package and external passes traverse them with Walk or
// the generic visitors in visitor.go.
package ast

import (
	"iter"

	"github.com/hyper-lang/hyper/internal/source"
)

// Node represents any AST node with an associated source span.
type Node interface {
	Span() source.Location
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Program is a parsed source unit: its top-level statements in order.
type Program struct {
	Stmts []Stmt
	span  source.Location
}

// NewProgram constructs a program node.
func NewProgram(stmts []Stmt, span source.Location) *Program {
	return &Program{Stmts: stmts, span: span}
}

// Span returns the span covering the entire program.
func (p *Program) Span() source.Location { return p.span }

// Len returns the number of top-level statements.
func (p *Program) Len() int { return len(p.Stmts) }

// All yields the top-level statements in source order.
func (p *Program) All() iter.Seq[Stmt] {
	return func(yield func(Stmt) bool) {
		for _, stmt := range p.Stmts {
			if !yield(stmt) {
				return
			}
		}
	}
}

// NoneName returns the placeholder name used where a name is optional and
// absent, such as the trait of a plain def block or the name of a lambda.
// Each call returns a fresh node.
func NoneName() *NameExpr {
	return &NameExpr{}
}

// NoneType returns the placeholder type annotation for an omitted type.
// Each call returns a fresh node.
func NoneType() *TypeExpr {
	return &TypeExpr{Type: InferredType{}}
}

// IsNone reports whether n is a NoneName placeholder.
func (n *NameExpr) IsNone() bool {
	return n.Value == "" && n.span.IsNone()
}
