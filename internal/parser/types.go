package parser

import (
	"github.com/hyper-lang/hyper/internal/ast"
	"github.com/hyper-lang/hyper/internal/diag"
	"github.com/hyper-lang/hyper/internal/lexer"
)

// typeContext says where a type is written, which decides the suffixes it
// may carry.
type typeContext uint8

const (
	annotationType typeContext = iota // declarations, return types, payloads
	paramType                         // parameters, which may be variadic
	operandType                       // right operand of 'as' and 'is'
)

// parseType parses a type:
//
//	Name | primitive | (T, U -> R)   base type
//	T[] | T[n] | T[n, m]             arrays, outermost dimension first
//	T..                              range over a signed integer or char
//	T*                               variadic, parameters only
//
// Operand types take neither suffix, so 'a as i32 * b' and 'a as i32 .. b'
// keep their binary operators.
func (p *Parser) parseType(ctx typeContext) *ast.TypeExpr {
	start := p.here()

	var typ ast.DataType
	switch t := p.peek().Type.(type) {
	case lexer.Identifier:
		typ = ast.StructType{Name: p.parseName()}
	case lexer.Primitive:
		p.step()
		typ = ast.PrimitiveType{Kind: t}
	default:
		if !p.match(lexer.LeftParen) {
			p.fail(diag.CodeParserInvalidType, start, "'%s' is not a valid base data type!", p.peek().Type)
		}
		typ = p.parseFunType()
	}

	var sizes []ast.Expr
	for p.skip(lexer.LeftSquare) {
		if p.skip(lexer.RightSquare) {
			sizes = append(sizes, p.unsized())
			continue
		}

		for {
			if p.matchAny(lexer.Comma, lexer.RightSquare) {
				sizes = append(sizes, p.unsized())
			} else {
				sizes = append(sizes, p.parseExpr())
			}
			if !p.skip(lexer.Comma) {
				break
			}
		}
		p.mustSkip(lexer.RightSquare)
	}

	for i := len(sizes) - 1; i >= 0; i-- {
		typ = ast.ArrayType{Elem: typ, Size: sizes[i]}
	}

	if ctx != operandType && len(sizes) == 0 && p.match(lexer.DoubleDot) {
		prim, ok := typ.(ast.PrimitiveType)
		if !ok || !(prim.Kind.IsSignedInteger() || prim.Kind == lexer.Char) {
			p.fail(diag.CodeParserInvalidType, p.here(), "Range subtype '%s' is invalid!", typ)
		}
		p.step()
		typ = ast.RangeType{Elem: typ}
	}

	if ctx == paramType && p.skip(lexer.Star) {
		typ = ast.VarargType{Elem: typ}
	}

	return ast.NewTypeExpr(typ, p.spanFrom(start))
}

// parseFunType parses '(' [T, ...] ['->' R] ')'. The return type defaults
// to none.
func (p *Parser) parseFunType() ast.DataType {
	p.mustSkip(lexer.LeftParen)

	var params []ast.DataType
	ret := ast.Void

	if !p.match(lexer.RightParen) {
		if !p.match(lexer.Arrow) {
			for {
				params = append(params, p.parseType(paramType).Type)
				if !p.skip(lexer.Comma) {
					break
				}
			}
		}
		if p.skip(lexer.Arrow) {
			ret = p.parseType(annotationType).Type
		}
	}
	p.mustSkip(lexer.RightParen)

	return ast.FunType{Params: params, Return: ret}
}

// unsized returns the size expression of a dimension written without a
// length.
func (p *Parser) unsized() ast.Expr {
	return ast.NewValueExpr(ast.Unsized, p.here())
}
