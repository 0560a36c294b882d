package parser

import (
	"github.com/hyper-lang/hyper/internal/ast"
	"github.com/hyper-lang/hyper/internal/diag"
	"github.com/hyper-lang/hyper/internal/lexer"
	"github.com/hyper-lang/hyper/internal/source"
)

// parseStmt dispatches on the leading keyword. Anything else is an
// expression statement.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.peek().Type {
	case lexer.Let, lexer.Var:
		return p.parseDeclare()
	case lexer.If:
		return p.parseIf()
	case lexer.Match:
		return p.parseMatch()
	case lexer.Loop:
		return p.parseLoop()
	case lexer.While:
		return p.parseWhile()
	case lexer.Until:
		return p.parseUntil()
	case lexer.For:
		return p.parseFor()
	case lexer.Def:
		return p.parseDef()
	case lexer.Fun:
		return p.parseFun()
	case lexer.Struct:
		return p.parseStruct()
	case lexer.Enum:
		return p.parseEnum()
	case lexer.Break:
		return p.parseBreak(true)
	case lexer.Continue:
		return p.parseContinue(true)
	case lexer.Return:
		return p.parseReturn()
	case lexer.LeftBrace:
		return p.parseBlock()
	default:
		return p.parseExpressionStmt()
	}
}

// parseBlock parses '{' stmt* '}'.
func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.here()
	p.mustSkip(lexer.LeftBrace)

	var stmts []ast.Stmt
	for !p.skip(lexer.RightBrace) {
		if p.match(lexer.EndOfFile) {
			p.mustSkip(lexer.RightBrace)
		}
		stmts = append(stmts, p.parseStmt())
	}

	return ast.NewBlockStmt(stmts, p.spanFrom(start))
}

// parseDeclare parses let/var [mut] name [: type] [= expr] ';'.
func (p *Parser) parseDeclare() *ast.DeclareStmt {
	start := p.here()

	constant := p.match(lexer.Let)
	if !p.skipAny(lexer.Let, lexer.Var) {
		p.mustSkip(lexer.Var)
	}

	mutable := p.skip(lexer.Mut)
	name := p.parseName()

	typ := ast.NoneType()
	typed := p.skip(lexer.Colon)
	if typed {
		typ = p.parseType(annotationType)
	}

	var init ast.Expr = ast.NewEmptyExpr(source.None)
	assigned := p.skip(lexer.EqualSign)
	if !typed && !assigned {
		p.fail(diag.CodeParserMissingInit, p.here(), "Declaration of '%s' needs a type or an initial value!", name.Value)
	}
	if assigned {
		init = p.parseExpr()
	}

	p.mustSkip(lexer.Semicolon)

	return ast.NewDeclareStmt(constant, mutable, name, typ, init, p.spanFrom(start))
}

func (p *Parser) parseIf() *ast.IfStmt {
	start := p.here()
	p.mustSkip(lexer.If)

	cond := p.parseExpr()
	then := p.parseBlock()

	var els ast.Stmt = ast.NewEmptyStmt(source.None)
	if p.skip(lexer.Else) {
		if p.match(lexer.If) {
			els = p.parseIf()
		} else {
			els = p.parseBlock()
		}
	}

	return ast.NewIfStmt(cond, then, els, p.spanFrom(start))
}

// parseMatch parses the subject and an empty body. Branch syntax is not
// defined yet.
func (p *Parser) parseMatch() *ast.MatchStmt {
	start := p.here()
	p.mustSkip(lexer.Match)

	subject := p.parseExpr()
	p.parseMatchBody()

	return ast.NewMatchStmt(subject, nil, p.spanFrom(start))
}

func (p *Parser) parseMatchBody() {
	p.mustSkip(lexer.LeftBrace)
	if !p.match(lexer.RightBrace) {
		p.fail(diag.CodeParserUnsupported, p.here(), "Match branches are not supported!")
	}
	p.mustSkip(lexer.RightBrace)
}

func (p *Parser) parseLoop() *ast.LoopStmt {
	start := p.here()
	p.mustSkip(lexer.Loop)

	body := p.parseBlock()

	return ast.NewLoopStmt(body, p.spanFrom(start))
}

func (p *Parser) parseWhile() *ast.WhileStmt {
	start := p.here()
	p.mustSkip(lexer.While)

	cond := p.parseExpr()
	body := p.parseBlock()

	return ast.NewWhileStmt(cond, body, p.spanFrom(start))
}

func (p *Parser) parseUntil() *ast.UntilStmt {
	start := p.here()
	p.mustSkip(lexer.Until)

	cond := p.parseExpr()
	body := p.parseBlock()

	return ast.NewUntilStmt(cond, body, p.spanFrom(start))
}

// parseFor parses 'for name : iterable { ... }'.
func (p *Parser) parseFor() *ast.ForStmt {
	start := p.here()
	p.mustSkip(lexer.For)

	name := p.parseName()
	p.mustSkip(lexer.Colon)
	iterable := p.parseExpr()
	body := p.parseBlock()

	return ast.NewForStmt(name, iterable, body, p.spanFrom(start))
}

// parseDef parses 'def Target { fun... }' or 'def Trait for Target { ... }'.
func (p *Parser) parseDef() *ast.DefStmt {
	start := p.here()
	p.mustSkip(lexer.Def)

	trait := ast.NoneName()
	target := p.parseName()

	forTrait := p.skip(lexer.For)
	if forTrait {
		trait = target
		target = p.parseName()
	}

	p.mustSkip(lexer.LeftBrace)

	var funs []*ast.FunStmt
	for !p.skip(lexer.RightBrace) {
		funs = append(funs, p.parseFun())
	}

	return ast.NewDefStmt(forTrait, trait, target, funs, p.spanFrom(start))
}

// parseFun parses a named function:
//
//	fun name([self,] a: T, ...) [: R] (';' | '-> expr ;' | block)
func (p *Parser) parseFun() *ast.FunStmt {
	start := p.here()
	p.mustSkip(lexer.Fun)

	name := p.parseName()

	p.mustSkip(lexer.LeftParen)
	hasSelf := p.skip(lexer.Self)
	if hasSelf && !p.match(lexer.RightParen) {
		p.mustSkip(lexer.Comma)
	}
	params := p.parseParams(lexer.RightParen, true)

	ret := ast.NewTypeExpr(ast.Void, source.None)
	if p.skip(lexer.Colon) {
		ret = p.parseType(annotationType)
	}

	var body ast.Stmt
	switch bodyStart := p.here(); {
	case p.skip(lexer.Semicolon):
		body = ast.NewEmptyStmt(bodyStart)
	case p.skip(lexer.Arrow):
		value := p.parseExpr()
		body = ast.NewReturnStmt(value, p.spanFrom(value.Span()))
		p.mustSkip(lexer.Semicolon)
	case p.match(lexer.LeftBrace):
		body = p.parseBlock()
	default:
		p.fail(diag.CodeParserMissingBody, bodyStart, "Function '%s' is missing a body!", name.Value)
	}

	return ast.NewFunStmt(name, hasSelf, params, ret, body, p.spanFrom(start))
}

// parseParams parses 'name: T' entries separated by commas up to and
// including closer. A trailing comma is allowed. When typed is false the
// annotation may be omitted.
func (p *Parser) parseParams(closer lexer.TokenType, typed bool) []*ast.Param {
	var params []*ast.Param
	for !p.match(closer) {
		start := p.here()
		name := p.parseName()

		typ := ast.NoneType()
		if typed {
			p.mustSkip(lexer.Colon)
			typ = p.parseType(paramType)
		} else if p.skip(lexer.Colon) {
			typ = p.parseType(paramType)
		}

		params = append(params, ast.NewParam(name, typ, p.spanFrom(start)))

		if !p.skip(lexer.Comma) {
			break
		}
	}
	p.mustSkip(closer)

	return params
}

// parseStruct parses 'struct Name { field: T, ... }'.
func (p *Parser) parseStruct() *ast.StructStmt {
	start := p.here()
	p.mustSkip(lexer.Struct)

	name := p.parseName()

	p.mustSkip(lexer.LeftBrace)
	fields := p.parseParams(lexer.RightBrace, true)

	return ast.NewStructStmt(name, fields, p.spanFrom(start))
}

// parseEnum parses 'enum Name { A, B(T, U), ... }'.
func (p *Parser) parseEnum() *ast.EnumStmt {
	start := p.here()
	p.mustSkip(lexer.Enum)

	name := p.parseName()

	p.mustSkip(lexer.LeftBrace)

	var variants []ast.Variant
	for !p.match(lexer.RightBrace) {
		variantStart := p.here()
		variantName := p.parseName()

		if p.skip(lexer.LeftParen) {
			var types []*ast.TypeExpr
			for {
				types = append(types, p.parseType(annotationType))
				if !p.skip(lexer.Comma) {
					break
				}
			}
			p.mustSkip(lexer.RightParen)

			variants = append(variants, ast.NewTypedVariant(variantName, types, p.spanFrom(variantStart)))
		} else {
			variants = append(variants, ast.NewSingleVariant(variantName, variantName.Span()))
		}

		if !p.skip(lexer.Comma) {
			break
		}
	}
	p.mustSkip(lexer.RightBrace)

	return ast.NewEnumStmt(name, variants, p.spanFrom(start))
}

// parseLabel parses an optional ':label'.
func (p *Parser) parseLabel() *ast.NameExpr {
	if p.skip(lexer.Colon) {
		return p.parseName()
	}
	return ast.NoneName()
}

// parseBreak parses 'break [:label] [value]'. As a statement it ends in
// ';'; lifted into an expression the terminator belongs to the enclosing
// statement.
func (p *Parser) parseBreak(terminated bool) *ast.BreakStmt {
	start := p.here()
	p.mustSkip(lexer.Break)

	label := p.parseLabel()

	var value ast.Expr = ast.NewEmptyExpr(source.None)
	if !p.atExprEnd() {
		value = p.parseExpr()
	}

	if terminated {
		p.mustSkip(lexer.Semicolon)
	}

	return ast.NewBreakStmt(label, value, p.spanFrom(start))
}

func (p *Parser) parseContinue(terminated bool) *ast.ContinueStmt {
	start := p.here()
	p.mustSkip(lexer.Continue)

	label := p.parseLabel()

	if terminated {
		p.mustSkip(lexer.Semicolon)
	}

	return ast.NewContinueStmt(label, p.spanFrom(start))
}

func (p *Parser) parseReturn() *ast.ReturnStmt {
	start := p.here()
	p.mustSkip(lexer.Return)

	var value ast.Expr = ast.NewEmptyExpr(source.None)
	if !p.atExprEnd() {
		value = p.parseExpr()
	}

	p.mustSkip(lexer.Semicolon)

	return ast.NewReturnStmt(value, p.spanFrom(start))
}

func (p *Parser) parseExpressionStmt() *ast.ExpressionStmt {
	start := p.here()

	expr := p.parseExpr()
	p.mustSkip(lexer.Semicolon)

	return ast.NewExpressionStmt(expr, p.spanFrom(start))
}
