package parser

import (
	"fmt"

	"github.com/hyper-lang/hyper/internal/ast"
	"github.com/hyper-lang/hyper/internal/diag"
	"github.com/hyper-lang/hyper/internal/lexer"
	"github.com/hyper-lang/hyper/internal/source"
)

// Binding powers of the infix tiers, loosest first. Assignment sits below
// all of them and is handled by parseExpr; prefix and postfix operators bind
// tighter than precedenceCast.
const (
	precedenceLowest = iota
	precedenceOr
	precedenceAnd
	precedenceBitOr
	precedenceBitXor
	precedenceBitAnd
	precedenceEquality
	precedenceComparison
	precedenceMembership
	precedenceInfixCall
	precedenceRange
	precedenceShift
	precedenceSum
	precedenceProduct
	precedenceCast
)

type binaryInfo struct {
	precedence int
	op         ast.BinaryOp
}

var binaryOps = map[lexer.TokenType]binaryInfo{
	lexer.DoublePipe:       {precedenceOr, ast.Or},
	lexer.DoubleAmpersand:  {precedenceAnd, ast.And},
	lexer.Pipe:             {precedenceBitOr, ast.BitOr},
	lexer.Caret:            {precedenceBitXor, ast.BitXor},
	lexer.Ampersand:        {precedenceBitAnd, ast.BitAnd},
	lexer.DoubleEqual:      {precedenceEquality, ast.Equal},
	lexer.ExclamationEqual: {precedenceEquality, ast.NotEqual},
	lexer.LessSign:         {precedenceComparison, ast.Less},
	lexer.LessEqualSign:    {precedenceComparison, ast.LessEqual},
	lexer.GreaterSign:      {precedenceComparison, ast.Greater},
	lexer.GreaterEqualSign: {precedenceComparison, ast.GreaterEqual},
	lexer.In:               {precedenceMembership, ast.In},
	lexer.ExclamationIn:    {precedenceMembership, ast.NotIn},
	lexer.Is:               {precedenceMembership, ast.Is},
	lexer.ExclamationIs:    {precedenceMembership, ast.NotIs},
	lexer.DoubleDot:        {precedenceRange, ast.RangeInclusive},
	lexer.TripleDot:        {precedenceRange, ast.RangeExclusive},
	lexer.DoubleLess:       {precedenceShift, ast.ShiftLeft},
	lexer.DoubleGreater:    {precedenceShift, ast.ShiftRight},
	lexer.TripleGreater:    {precedenceShift, ast.UnsignedShiftRight},
	lexer.Plus:             {precedenceSum, ast.Add},
	lexer.Dash:             {precedenceSum, ast.Subtract},
	lexer.Star:             {precedenceProduct, ast.Multiply},
	lexer.Slash:            {precedenceProduct, ast.Divide},
	lexer.Percent:          {precedenceProduct, ast.Modulo},
	lexer.As:               {precedenceCast, ast.As},
}

// compoundOps maps each compound assignment symbol to the operator it
// desugars to. Plain '=' is absent.
var compoundOps = map[lexer.Symbol]ast.BinaryOp{
	lexer.PlusEqual:          ast.Add,
	lexer.DashEqual:          ast.Subtract,
	lexer.StarEqual:          ast.Multiply,
	lexer.SlashEqual:         ast.Divide,
	lexer.PercentEqual:       ast.Modulo,
	lexer.AmpersandEqual:     ast.BitAnd,
	lexer.CaretEqual:         ast.BitXor,
	lexer.PipeEqual:          ast.BitOr,
	lexer.DoubleLessEqual:    ast.ShiftLeft,
	lexer.DoubleGreaterEqual: ast.ShiftRight,
	lexer.TripleGreaterEqual: ast.UnsignedShiftRight,
}

var prefixOps = map[lexer.TokenType]ast.PrefixOp{
	lexer.Dash:        ast.Negate,
	lexer.Exclamation: ast.Not,
	lexer.Tilde:       ast.Invert,
	lexer.Pound:       ast.Size,
	lexer.DoublePlus:  ast.PreInc,
	lexer.DoubleDash:  ast.PreDec,
	lexer.Ampersand:   ast.Reference,
}

// parseExpr parses a full expression, assignment included. Assignment does
// not chain: the right-hand side starts at the logical-or tier.
func (p *Parser) parseExpr() ast.Expr {
	start := p.here()
	target := p.parseBinary(precedenceOr)

	sym, ok := p.peek().Type.(lexer.Symbol)
	if !ok || !isAssignSymbol(sym) {
		return target
	}
	opTok := p.peek()
	p.step()

	value := p.parseBinary(precedenceOr)
	span := p.spanFrom(start)

	// The compound operand is a copy so the target's subtrees keep a
	// single owner.
	if sym != lexer.EqualSign {
		value = ast.NewBinaryExpr(compoundOps[sym], ast.CloneExpr(target), value, span)
	}

	switch t := target.(type) {
	case *ast.NameExpr:
		return ast.NewAssignExpr(t, value, span)
	case *ast.GetIndexExpr:
		return ast.NewSetIndexExpr(t.Target, t.Index, value, span)
	case *ast.GetMemberExpr:
		if !t.Scoped {
			return ast.NewSetMemberExpr(t.Target, t.Member, value, span)
		}
	}

	p.fail(diag.CodeParserInvalidTarget, target.Span(), "Cannot assign to this expression with '%s'!", opTok.Type)
	return nil
}

func isAssignSymbol(sym lexer.Symbol) bool {
	if sym == lexer.EqualSign {
		return true
	}
	_, ok := compoundOps[sym]
	return ok
}

// infixPrecedence returns the binding power of the lookahead as an infix
// operator, or precedenceLowest if it is not one.
func (p *Parser) infixPrecedence() int {
	typ := p.peek().Type
	if _, ok := typ.(lexer.Identifier); ok {
		return precedenceInfixCall
	}
	if info, ok := binaryOps[typ]; ok {
		return info.precedence
	}
	return precedenceLowest
}

// parseBinary is the precedence-climbing loop over the infix tiers. Every
// tier is left-associative.
func (p *Parser) parseBinary(minPrecedence int) ast.Expr {
	start := p.here()
	left := p.parsePrefix()

	for {
		precedence := p.infixPrecedence()
		if precedence == precedenceLowest || precedence < minPrecedence {
			return left
		}

		if precedence == precedenceInfixCall {
			left = p.parseInfixCall(start, left)
			continue
		}

		info := binaryOps[p.peek().Type]
		p.step()

		var right ast.Expr
		switch info.op {
		case ast.As, ast.Is, ast.NotIs:
			right = p.parseType(operandType)
		default:
			right = p.parseBinary(precedence + 1)
		}

		left = ast.NewBinaryExpr(info.op, left, right, p.spanFrom(start))
	}
}

// parseInfixCall turns 'a name b' into a.name(b).
func (p *Parser) parseInfixCall(start source.Location, left ast.Expr) ast.Expr {
	name := p.parseName()
	member := ast.NewGetMemberExpr(left, name, false, p.spanFrom(start))

	argStart := p.here()
	value := p.parseBinary(precedenceRange)
	arg := ast.NewArgument(false, ast.NoneName(), value, p.spanFrom(argStart))

	return ast.NewInvokeExpr(member, []*ast.Argument{arg}, p.spanFrom(start))
}

// parsePrefix parses right-associative unary operators.
func (p *Parser) parsePrefix() ast.Expr {
	start := p.here()

	op, ok := prefixOps[p.peek().Type]
	if !ok {
		return p.parsePostfix()
	}
	p.step()

	operand := p.parsePrefix()

	return ast.NewPrefixExpr(op, operand, p.spanFrom(start))
}

// parsePostfix parses a terminal followed by any number of increments,
// member accesses, index lists and calls.
func (p *Parser) parsePostfix() ast.Expr {
	start := p.here()
	expr := p.parseTerminal()

	for {
		tok := p.peek()
		switch tok.Type {
		case lexer.DoublePlus, lexer.DoubleDash:
			p.step()
			expr = ast.NewPostfixExpr(postfixOp(tok.Type), expr, p.spanFrom(start))

		case lexer.Dot, lexer.DoubleColon:
			p.step()
			member := p.parseName()
			expr = ast.NewGetMemberExpr(expr, member, tok.Type == lexer.DoubleColon, p.spanFrom(start))

		case lexer.LeftSquare:
			p.step()
			var indices []ast.Expr
			for {
				indices = append(indices, p.parseExpr())
				if !p.skip(lexer.Comma) {
					break
				}
			}
			p.mustSkip(lexer.RightSquare)

			span := p.spanFrom(start)
			for _, index := range indices {
				expr = ast.NewGetIndexExpr(expr, index, span)
			}

		case lexer.LeftParen:
			p.step()
			args := p.parseArguments()
			expr = ast.NewInvokeExpr(expr, args, p.spanFrom(start))

		default:
			return expr
		}
	}
}

func postfixOp(typ lexer.TokenType) ast.PostfixOp {
	switch typ {
	case lexer.DoublePlus:
		return ast.PostInc
	case lexer.DoubleDash:
		return ast.PostDec
	default:
		panic(fmt.Sprintf("parser: no postfix operator for %v", typ))
	}
}

// parseArguments parses call arguments after '(' up to and including ')'.
// An argument may be spread with '*' or passed by name with 'name = value'.
func (p *Parser) parseArguments() []*ast.Argument {
	var args []*ast.Argument

	for !p.match(lexer.RightParen) {
		start := p.here()

		spread := p.skip(lexer.Star)
		value := p.parseBinary(precedenceOr)

		name := ast.NoneName()
		if p.skip(lexer.EqualSign) {
			n, ok := value.(*ast.NameExpr)
			if !ok || spread {
				p.fail(diag.CodeParserInvalidArgument, value.Span(), "Argument name must be a plain identifier!")
			}
			name = n
			value = p.parseBinary(precedenceOr)
		}

		args = append(args, ast.NewArgument(spread, name, value, p.spanFrom(start)))

		if !p.skip(lexer.Comma) {
			break
		}
	}
	p.mustSkip(lexer.RightParen)

	return args
}
