package parser

import (
	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/token"
)

// parsePattern parses the pattern forms spec.md §4.2 assigns meaning
// to during scope construction: a bound name, a redefined operator,
// or a (possibly tagged) struct destructuring pattern.
func (p *Parser) parsePattern() ast.Pattern {
	switch {
	case p.curIs(token.LParen) && p.peekIs(token.Operator):
		return p.parseWrappedOperator()
	case p.curIs(token.Ident) && p.peekIs(token.LBrace):
		tag := p.curToken.Text
		p.nextToken()
		return p.parseStructPattern(tag)
	case p.curIs(token.LBrace):
		return p.parseStructPattern("")
	default:
		return p.parseBindPattern()
	}
}

func (p *Parser) parseWrappedOperator() ast.Pattern {
	open := p.curToken
	p.nextToken()
	op := p.curToken
	p.nextToken()
	p.expect(token.RParen)
	wp := &ast.WrappedOperator{Op: op}
	wp.SetSpan(open, op)
	if !p.isCustomOperatorKnown(op.Text) {
		p.precedence[op.Text] = token.ADDITIVE
	}
	return wp
}

func (p *Parser) parseBindPattern() ast.Pattern {
	tok := p.curToken
	p.expect(token.Ident)
	bp := &ast.BindPattern{Name: tok.Text}
	bp.SetSpan(tok, tok)
	return bp
}

// parseStructPattern parses `{ field, field: pat, ...rest }`; tag is
// the optional leading type name already consumed by the caller.
func (p *Parser) parseStructPattern(tag string) ast.Pattern {
	open := p.curToken
	p.expect(token.LBrace)

	sp := &ast.StructPattern{TypeName: tag}
	for !p.curIs(token.RBrace) && !p.curIs(token.EOF) {
		if p.curIs(token.DotDotDot) {
			dots := p.curToken
			p.nextToken()
			var inner ast.Pattern
			if p.curIs(token.Ident) {
				inner = p.parseBindPattern()
			}
			elem := &ast.VariadicStructPatternElement{Inner: inner}
			elem.SetSpan(dots, p.curToken)
			sp.Fields = append(sp.Fields, elem)
		} else {
			nameTok := p.curToken
			p.expect(token.Ident)
			if p.curIs(token.Colon) {
				p.nextToken()
				inner := p.parsePattern()
				f := &ast.BoundStructPatternField{Name: nameTok.Text, Pattern: inner}
				f.SetSpan(nameTok, p.curToken)
				sp.Fields = append(sp.Fields, f)
			} else {
				f := &ast.PunnedStructPatternField{Name: nameTok.Text}
				f.SetSpan(nameTok, nameTok)
				sp.Fields = append(sp.Fields, f)
			}
		}
		if p.curIs(token.Comma) {
			p.nextToken()
		}
	}
	p.expect(token.RBrace)
	sp.SetSpan(open, p.curToken)
	return sp
}
