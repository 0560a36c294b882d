// Package parser builds Hyper syntax trees from the lexer's token stream.
package parser

import (
	"errors"

	"github.com/hyper-lang/hyper/internal/ast"
	"github.com/hyper-lang/hyper/internal/diag"
	"github.com/hyper-lang/hyper/internal/lexer"
	"github.com/hyper-lang/hyper/internal/source"
)

// Parser is a recursive descent parser with one token of lookahead.
// Invariants:
//   - Lookahead: tok always holds the next unconsumed token. It is only
//     replaced by step, which is the single place the lexer is queried.
//   - Errors: the first lexical or syntax error aborts the parse. It is
//     raised with fail (a bailout panic) and recovered in Parse, so no
//     partial tree ever escapes.
//   - Spans: every node spans from the location of its first token up to
//     the lookahead at the moment the node is completed (see spanFrom).
type Parser struct {
	lx  *lexer.Lexer
	tok lexer.Token
}

// bailout carries a parse-aborting error up to Parse.
type bailout struct {
	err *diag.Error
}

// New returns a parser over the given source unit.
func New(src source.Source) *Parser {
	return &Parser{lx: lexer.New(src)}
}

// Parse parses a source unit in one call.
func Parse(src source.Source) (*ast.Program, error) {
	return New(src).Parse()
}

// Parse reads the whole token stream and returns the program. On error the
// returned program is nil and the error is a *diag.Error.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			prog, err = nil, b.err
		}
	}()

	p.step()
	start := p.here()

	var stmts []ast.Stmt
	for !p.match(lexer.EndOfFile) {
		stmts = append(stmts, p.parseStmt())
	}

	return ast.NewProgram(stmts, start.Join(p.here())), nil
}

// step advances the lookahead by one token.
func (p *Parser) step() {
	tok, err := p.lx.Next()
	if err != nil {
		var de *diag.Error
		if errors.As(err, &de) {
			panic(bailout{de})
		}
		panic(err)
	}
	p.tok = tok
}

func (p *Parser) peek() lexer.Token {
	return p.tok
}

func (p *Parser) here() source.Location {
	return p.tok.Location
}

// spanFrom closes a node that started at start against the lookahead.
func (p *Parser) spanFrom(start source.Location) source.Location {
	return start.Until(p.here())
}

func (p *Parser) match(typ lexer.TokenType) bool {
	return p.tok.Type == typ
}

func (p *Parser) matchAny(types ...lexer.TokenType) bool {
	for _, typ := range types {
		if p.tok.Type == typ {
			return true
		}
	}
	return false
}

func (p *Parser) skip(typ lexer.TokenType) bool {
	if p.match(typ) {
		p.step()
		return true
	}
	return false
}

func (p *Parser) skipAny(types ...lexer.TokenType) bool {
	if p.matchAny(types...) {
		p.step()
		return true
	}
	return false
}

// mustSkip consumes a token of the given type or aborts the parse.
func (p *Parser) mustSkip(typ lexer.TokenType) lexer.Token {
	tok := p.peek()
	if !p.skip(typ) {
		p.fail(diag.CodeParserUnexpectedToken, tok.Location, "Expected '%s', found '%s'!", typ, tok.Type)
	}
	return tok
}

// fail aborts the parse with a parser-stage error.
func (p *Parser) fail(code diag.Code, loc source.Location, format string, args ...any) {
	panic(bailout{diag.ForParser(code, loc, format, args...)})
}

// parseName consumes an identifier.
func (p *Parser) parseName() *ast.NameExpr {
	tok := p.peek()
	id, ok := tok.Type.(lexer.Identifier)
	if !ok {
		p.fail(diag.CodeParserUnexpectedToken, tok.Location, "Expected an identifier, found '%s'!", tok.Type)
	}
	p.step()
	return ast.NewNameExpr(id.Name, tok.Location)
}

// atExprEnd reports whether the lookahead closes the surrounding construct,
// so that an optional trailing expression is absent.
func (p *Parser) atExprEnd() bool {
	return p.matchAny(
		lexer.Semicolon,
		lexer.RightBrace,
		lexer.RightParen,
		lexer.RightSquare,
		lexer.Comma,
		lexer.EndOfFile,
	)
}
