package parser

import (
	"github.com/hyper-lang/hyper/internal/ast"
	"github.com/hyper-lang/hyper/internal/diag"
	"github.com/hyper-lang/hyper/internal/lexer"
	"github.com/hyper-lang/hyper/internal/source"
)

// parseTerminal parses the innermost expression forms.
func (p *Parser) parseTerminal() ast.Expr {
	tok := p.peek()

	switch t := tok.Type.(type) {
	case lexer.Value:
		p.step()
		return ast.NewValueExpr(t.Value, tok.Location)

	case lexer.Identifier:
		return p.parseName()

	case lexer.LeftTemplate:
		return p.parseTemplate()

	case lexer.Keyword:
		switch t {
		case lexer.Self:
			p.step()
			return ast.NewNameExpr(t.String(), tok.Location)
		case lexer.If:
			return p.parseIfExpr()
		case lexer.Match:
			return p.parseMatchExpr()
		case lexer.Break:
			stmt := p.parseBreak(false)
			return ast.NewStatementExpr(stmt, stmt.Span())
		case lexer.Continue:
			stmt := p.parseContinue(false)
			return ast.NewStatementExpr(stmt, stmt.Span())
		}

	case lexer.Symbol:
		switch t {
		case lexer.LeftParen:
			return p.parseNested()
		case lexer.LeftSquare:
			return p.parseList()
		case lexer.Pipe, lexer.DoublePipe:
			return p.parseLambda()
		}
	}

	p.fail(diag.CodeParserUnexpectedToken, tok.Location, "Expected an expression, found '%s'!", tok.Type)
	return nil
}

// parseTemplate parses LeftTemplate expr (MiddleTemplate expr)* RightTemplate.
// Literal fragments become string values so Parts alternates text and
// embedded expressions, starting and ending with text.
func (p *Parser) parseTemplate() *ast.TemplateExpr {
	start := p.here()

	left := p.peek().Type.(lexer.LeftTemplate)
	parts := []ast.Expr{ast.NewValueExpr(left.Text, start)}
	p.step()

	for {
		parts = append(parts, p.parseExpr())

		tok := p.peek()
		switch t := tok.Type.(type) {
		case lexer.MiddleTemplate:
			parts = append(parts, ast.NewValueExpr(t.Text, tok.Location))
			p.step()
		case lexer.RightTemplate:
			parts = append(parts, ast.NewValueExpr(t.Text, tok.Location))
			p.step()
			return ast.NewTemplateExpr(parts, p.spanFrom(start))
		default:
			p.fail(diag.CodeParserUnexpectedToken, tok.Location, "Expected the rest of the string template, found '%s'!", tok.Type)
		}
	}
}

// parseNested parses a parenthesized expression. No node is kept for the
// parentheses themselves.
func (p *Parser) parseNested() ast.Expr {
	p.mustSkip(lexer.LeftParen)
	expr := p.parseExpr()
	p.mustSkip(lexer.RightParen)
	return expr
}

// parseList parses a list literal or a comprehension:
//
//	[a, *b]
//	[element loop count]
//	[element for x in iterable if filter]
//	[element for (k, v) in iterable]
func (p *Parser) parseList() ast.Expr {
	start := p.here()
	p.mustSkip(lexer.LeftSquare)

	var elements []ast.Expr
	for !p.match(lexer.RightSquare) {
		elemStart := p.here()
		spread := p.skip(lexer.Star)

		element := p.parseExpr()
		if spread {
			element = ast.NewSpreadExpr(element, p.spanFrom(elemStart))
		}
		elements = append(elements, element)

		if p.matchAny(lexer.Loop, lexer.For) {
			return p.parseComprehension(start, elements)
		}

		if !p.skip(lexer.Comma) {
			break
		}
	}
	p.mustSkip(lexer.RightSquare)

	return ast.NewListLiteralExpr(elements, p.spanFrom(start))
}

func (p *Parser) parseComprehension(start source.Location, elements []ast.Expr) ast.Expr {
	if len(elements) != 1 {
		p.fail(diag.CodeParserUnexpectedToken, p.here(), "A list comprehension takes exactly one element!")
	}

	element := elements[0]
	if _, spread := element.(*ast.SpreadExpr); spread {
		p.fail(diag.CodeParserUnexpectedToken, element.Span(), "A list comprehension element cannot be spread!")
	}

	if p.skip(lexer.Loop) {
		count := p.parseExpr()
		p.mustSkip(lexer.RightSquare)

		return ast.NewListLoopExpr(element, count, p.spanFrom(start))
	}

	p.mustSkip(lexer.For)

	var bindings []*ast.NameExpr
	destructured := p.skip(lexer.LeftParen)
	if destructured {
		for {
			bindings = append(bindings, p.parseName())
			if !p.skip(lexer.Comma) {
				break
			}
		}
		p.mustSkip(lexer.RightParen)
	} else {
		bindings = append(bindings, p.parseName())
	}

	p.mustSkip(lexer.In)
	iterable := p.parseExpr()

	var filter ast.Expr = ast.NewEmptyExpr(source.None)
	if p.skip(lexer.If) {
		filter = p.parseExpr()
	}

	p.mustSkip(lexer.RightSquare)

	return ast.NewListForExpr(element, destructured, bindings, iterable, filter, p.spanFrom(start))
}

// parseLambda parses '|params| [: R] (-> expr | block)'. '||' declares no
// parameters. Parameter annotations are optional and the return type is
// inferred when omitted.
func (p *Parser) parseLambda() *ast.LambdaExpr {
	start := p.here()

	var params []*ast.Param
	if !p.skip(lexer.DoublePipe) {
		p.mustSkip(lexer.Pipe)
		params = p.parseParams(lexer.Pipe, false)
	}

	ret := ast.NoneType()
	if p.skip(lexer.Colon) {
		ret = p.parseType(annotationType)
	}

	var body ast.Stmt
	switch {
	case p.skip(lexer.Arrow):
		value := p.parseExpr()
		body = ast.NewReturnStmt(value, p.spanFrom(value.Span()))
	case p.match(lexer.LeftBrace):
		body = p.parseBlock()
	default:
		p.fail(diag.CodeParserMissingBody, p.here(), "Lambda is missing a body!")
	}

	span := p.spanFrom(start)
	fun := ast.NewFunStmt(ast.NoneName(), false, params, ret, body, span)

	return ast.NewLambdaExpr(fun, span)
}

// parseIfExpr parses an if whose branches are expression blocks.
func (p *Parser) parseIfExpr() *ast.IfExpr {
	start := p.here()
	p.mustSkip(lexer.If)

	cond := p.parseExpr()
	then := p.parseExprBlock()

	var els ast.Expr = ast.NewEmptyExpr(source.None)
	if p.skip(lexer.Else) {
		if p.match(lexer.If) {
			els = p.parseIfExpr()
		} else {
			els = p.parseExprBlock()
		}
	}

	return ast.NewIfExpr(cond, then, els, p.spanFrom(start))
}

func (p *Parser) parseMatchExpr() *ast.MatchExpr {
	start := p.here()
	p.mustSkip(lexer.Match)

	subject := p.parseExpr()
	p.parseMatchBody()

	return ast.NewMatchExpr(subject, p.spanFrom(start))
}

// blockStatementStarts are the keywords that begin a full statement inside
// an expression block.
var blockStatementStarts = []lexer.TokenType{
	lexer.Let,
	lexer.Var,
	lexer.While,
	lexer.Until,
	lexer.Loop,
	lexer.For,
	lexer.Break,
	lexer.Continue,
	lexer.Return,
}

// parseExprBlock parses '{' (statement | expr [';'])* '}'.
func (p *Parser) parseExprBlock() *ast.BlockExpr {
	start := p.here()
	p.mustSkip(lexer.LeftBrace)

	var exprs []ast.Expr
	for !p.skip(lexer.RightBrace) {
		if p.matchAny(blockStatementStarts...) {
			stmtStart := p.here()
			stmt := p.parseStmt()
			exprs = append(exprs, ast.NewStatementExpr(stmt, p.spanFrom(stmtStart)))
			continue
		}

		exprs = append(exprs, p.parseExpr())
		p.skip(lexer.Semicolon)
	}

	return ast.NewBlockExpr(exprs, p.spanFrom(start))
}
