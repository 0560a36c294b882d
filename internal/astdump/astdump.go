// Package astdump converts token streams and syntax trees into plain maps
// and slices that serialise cleanly as YAML or JSON.
package astdump

import (
	"github.com/hyper-lang/hyper/internal/ast"
	"github.com/hyper-lang/hyper/internal/lexer"
	"github.com/hyper-lang/hyper/internal/source"
)

// Tree is one dumped node. The "kind" key names the variant; absent
// optional children and false flags are left out.
type Tree = map[string]any

// Options controls what a dump includes.
type Options struct {
	// Locations adds an "at" key with row:column to every node.
	Locations bool
}

// Program dumps every top-level statement of prog.
func Program(prog *ast.Program, opts Options) []any {
	d := &dumper{opts: opts}
	out := make([]any, 0, prog.Len())
	for stmt := range prog.All() {
		out = append(out, d.stmt(stmt))
	}
	return out
}

// Expr dumps a single expression.
func Expr(e ast.Expr, opts Options) Tree {
	d := &dumper{opts: opts}
	return d.expr(e)
}

// Tokens dumps a token stream, one entry per token.
func Tokens(tokens []lexer.Token, opts Options) []any {
	out := make([]any, 0, len(tokens))
	for _, tok := range tokens {
		t := Tree{"kind": tokenKind(tok.Type), "text": tok.Type.String()}
		if v, ok := tok.Type.(lexer.Value); ok {
			t["type"], t["value"] = valueType(v.Value)
		}
		if opts.Locations {
			t["at"] = tok.Location.String()
		}
		out = append(out, t)
	}
	return out
}

func tokenKind(typ lexer.TokenType) string {
	switch typ.(type) {
	case lexer.Keyword:
		return "Keyword"
	case lexer.Primitive:
		return "Primitive"
	case lexer.Symbol:
		return "Symbol"
	case lexer.Value:
		return "Value"
	case lexer.Identifier:
		return "Identifier"
	case lexer.LeftTemplate:
		return "LeftTemplate"
	case lexer.MiddleTemplate:
		return "MiddleTemplate"
	case lexer.RightTemplate:
		return "RightTemplate"
	default:
		return "Unknown"
	}
}

// valueType names the literal's type the way the language spells it and
// returns a serialisable form of the value.
func valueType(v any) (string, any) {
	switch v := v.(type) {
	case bool:
		return "bool", v
	case uint8:
		return "u8", v
	case uint16:
		return "u16", v
	case uint32:
		return "u32", v
	case uint64:
		return "u64", v
	case int8:
		return "i8", v
	case int16:
		return "i16", v
	case int32:
		return "i32", v
	case int64:
		return "i64", v
	case int:
		return "int", v
	case float32:
		return "f32", v
	case float64:
		return "f64", v
	case lexer.Character:
		return "char", string(rune(v))
	case string:
		return "str", v
	default:
		return "unknown", nil
	}
}

type dumper struct {
	opts Options
}

func (d *dumper) node(kind string, loc source.Location) Tree {
	t := Tree{"kind": kind}
	if d.opts.Locations && !loc.IsNone() {
		t["at"] = loc.String()
	}
	return t
}

func (d *dumper) expr(e ast.Expr) Tree {
	return ast.AcceptExpr[Tree](d, e)
}

func (d *dumper) stmt(s ast.Stmt) Tree {
	return ast.AcceptStmt[Tree](d, s)
}

func (d *dumper) exprs(list []ast.Expr) []any {
	out := make([]any, 0, len(list))
	for _, e := range list {
		out = append(out, d.expr(e))
	}
	return out
}

func (d *dumper) stmts(list []ast.Stmt) []any {
	out := make([]any, 0, len(list))
	for _, s := range list {
		out = append(out, d.stmt(s))
	}
	return out
}

// optional stores e under key unless it is an *ast.EmptyExpr.
func (d *dumper) optional(t Tree, key string, e ast.Expr) {
	if _, empty := e.(*ast.EmptyExpr); !empty {
		t[key] = d.expr(e)
	}
}

func flag(t Tree, key string, set bool) {
	if set {
		t[key] = true
	}
}

func label(t Tree, key string, name *ast.NameExpr) {
	if !name.IsNone() {
		t[key] = name.Value
	}
}

func (d *dumper) params(list []*ast.Param) []any {
	out := make([]any, 0, len(list))
	for _, p := range list {
		out = append(out, Tree{"name": p.Name.Value, "type": p.Type.Type.String()})
	}
	return out
}
