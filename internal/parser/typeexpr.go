package parser

import (
	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/token"
)

func canStartTypeAtom(k token.Kind) bool {
	return k == token.Ident || k == token.LParen
}

// parseTypeExpr parses a surface type annotation: a nominal name
// (optionally applied to further type atoms, `Maybe Int`), a
// parenthesized type or tuple of types, and an optional trailing
// `-> Result` making the whole thing an arrow. A parenthesized
// parameter list is unpacked into TypeArrow.Params; a lone
// parenthesized type collapses to that type rather than a 1-tuple.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	startTok := p.curToken
	left := p.parseTypeAtomOrTuple()

	if p.curIs(token.Arrow) {
		p.nextToken()
		result := p.parseTypeExpr()
		var params []ast.TypeExpr
		if tup, ok := left.(*ast.TypeTuple); ok {
			params = tup.Elements
		} else {
			params = []ast.TypeExpr{left}
		}
		arrow := &ast.TypeArrow{Params: params, Result: result}
		arrow.SetSpan(startTok, p.curToken)
		return arrow
	}
	return left
}

func (p *Parser) parseTypeAtomOrTuple() ast.TypeExpr {
	if p.curIs(token.LParen) {
		open := p.curToken
		p.nextToken()
		var elems []ast.TypeExpr
		if !p.curIs(token.RParen) {
			elems = append(elems, p.parseTypeExpr())
			for p.curIs(token.Comma) {
				p.nextToken()
				elems = append(elems, p.parseTypeExpr())
			}
		}
		p.expect(token.RParen)
		if len(elems) == 1 {
			return elems[0]
		}
		tup := &ast.TypeTuple{Elements: elems}
		tup.SetSpan(open, p.curToken)
		return tup
	}

	nameTok := p.curToken
	p.expect(token.Ident)
	tn := &ast.TypeName{Name: nameTok.Text}
	for canStartTypeAtom(p.curToken.Kind) {
		tn.Args = append(tn.Args, p.parseTypeAtomOrTuple())
	}
	tn.SetSpan(nameTok, p.curToken)
	return tn
}
