package parser

import (
	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/token"
)

// parseExpr is the Pratt entry point: a prefix parse produces the left
// operand, juxtaposed atoms are gathered into one application node,
// then the classic precedence-climbing loop handles infix operators.
func (p *Parser) parseExpr(precedence int) ast.Expr {
	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.noPrefixParseFnError()
		return nil
	}

	headTok := p.curToken
	left := prefix()
	left = p.gatherApplication(left, headTok)

	// Every parse*Fn in this package advances curToken past whatever
	// it just consumed, so curToken here already IS the token the outer
	// call left off on: the potential operator, not its lookahead.
	for !p.curIsExprTerminator() && precedence < p.curPrecedence() {
		infix := p.infixParseFns[p.curToken.Kind]
		if infix == nil {
			break
		}
		left = infix(left)
	}

	return left
}

// curIsExprTerminator reports whether the current token can never
// continue the expression just parsed, so the infix loop must stop
// rather than look up a nonexistent table entry.
func (p *Parser) curIsExprTerminator() bool {
	switch p.curToken.Kind {
	case token.LineFoldEnd, token.BlockEnd, token.BlockStart, token.EOF,
		token.Then, token.Comma, token.RParen, token.RBracket, token.RBrace:
		return true
	default:
		return false
	}
}

func (p *Parser) noPrefixParseFnError() {
	p.errorf("unexpected token in expression: %s", p.curToken.Kind)
}

// canStartAtom reports whether tok can open a fresh primary expression,
// used to decide whether application continues gathering arguments.
func canStartAtom(k token.Kind) bool {
	switch k {
	case token.Ident, token.Int, token.String, token.True, token.False, token.LParen:
		return true
	default:
		return false
	}
}

// gatherApplication consumes zero or more juxtaposed atoms as
// arguments to head (`f a b c`). Application binds tighter than every
// infix operator, so this runs before the infix loop ever begins, not
// inside it. A capitalized reference head with at least one argument
// builds a NamedTupleExpression (data constructor application);
// anything else builds a CallExpression.
func (p *Parser) gatherApplication(head ast.Expr, headTok token.Token) ast.Expr {
	var args []ast.Expr
	for canStartAtom(p.curToken.Kind) {
		args = append(args, p.parsePrimaryAtom())
	}
	if len(args) == 0 {
		return head
	}
	if ref, ok := head.(*ast.ReferenceExpression); ok && isConstructorName(ref.Name) {
		nt := &ast.NamedTupleExpression{Constructor: ref, Args: args}
		nt.SetSpan(headTok, p.curToken)
		return nt
	}
	call := &ast.CallExpression{Func: head, Args: args}
	call.SetSpan(headTok, p.curToken)
	return call
}

func isConstructorName(name string) bool {
	r := []rune(name)
	return len(r) > 0 && r[0] >= 'A' && r[0] <= 'Z'
}

// parsePrimaryAtom parses exactly one atom with no trailing
// application, used for each argument position in gatherApplication.
func (p *Parser) parsePrimaryAtom() ast.Expr {
	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.noPrefixParseFnError()
		p.nextToken()
		return nil
	}
	return prefix()
}

func (p *Parser) parseIdentifier() ast.Expr {
	tok := p.curToken
	p.nextToken()
	e := &ast.ReferenceExpression{Name: tok.Text}
	e.SetSpan(tok, tok)
	return e
}

func (p *Parser) parseIntegerLiteral() ast.Expr {
	tok := p.curToken
	p.nextToken()
	e := &ast.ConstantExpression{ConstKind: ast.IntegerConstant, Text: tok.Text}
	e.SetSpan(tok, tok)
	return e
}

func (p *Parser) parseStringLiteral() ast.Expr {
	tok := p.curToken
	p.nextToken()
	e := &ast.ConstantExpression{ConstKind: ast.StringConstant, Text: tok.Text}
	e.SetSpan(tok, tok)
	return e
}

// parseBoolLiteral treats True/False as references into the built-in
// environment (spec.md §4.4's built-in env binds them to Bool),
// matching every other named value rather than a dedicated constant
// kind.
func (p *Parser) parseBoolLiteral() ast.Expr {
	tok := p.curToken
	p.nextToken()
	e := &ast.ReferenceExpression{Name: tok.Text}
	e.SetSpan(tok, tok)
	return e
}

func (p *Parser) parseGroupedOrTuple() ast.Expr {
	open := p.curToken
	p.nextToken()
	inner := p.parseExpr(token.LOWEST)
	p.expect(token.RParen)
	e := &ast.NestedExpression{Inner: inner}
	e.SetSpan(open, p.curToken)
	return e
}

func (p *Parser) parseInfixExpression(left ast.Expr) ast.Expr {
	opTok := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpr(precedence)
	e := &ast.InfixExpression{Left: left, Op: opTok.Text, Right: right}
	e.SetSpan(opTok, p.curToken)
	return e
}
