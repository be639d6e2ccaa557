package parser

import (
	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/token"
)

// parseStmtBlock parses an indented statement list: `BlockStart stmt
// (LineFoldEnd stmt)* BlockEnd`. The opening BlockStart must already be
// the current token.
func (p *Parser) parseStmtBlock() []ast.Stmt {
	p.expect(token.BlockStart)
	var stmts []ast.Stmt
	for !p.curIs(token.BlockEnd) && !p.curIs(token.EOF) {
		if s := p.parseStmt(); s != nil {
			stmts = append(stmts, s)
		} else {
			p.nextToken()
		}
		p.consumeLineFoldEnd()
	}
	p.expect(token.BlockEnd)
	return stmts
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.curToken.Kind {
	case token.If:
		return p.parseIfStatement()
	case token.Return:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseIfStatement parses a chain of `if test then <block>`, `elif
// test then <block>`, and a trailing `else <block>`.
func (p *Parser) parseIfStatement() *ast.IfStatement {
	start := p.curToken
	stmt := &ast.IfStatement{}

	for p.curIs(token.If) || p.curIs(token.Elif) {
		p.nextToken() // consume 'if' / 'elif'
		test := p.parseExpr(token.LOWEST)
		p.expect(token.Then)
		body := p.parseStmtBlock()
		stmt.Cases = append(stmt.Cases, ast.IfCase{Test: test, Body: body})
	}

	if p.curIs(token.Else) {
		p.nextToken()
		body := p.parseStmtBlock()
		stmt.Cases = append(stmt.Cases, ast.IfCase{Test: nil, Body: body})
	}

	stmt.SetSpan(start, p.curToken)
	return stmt
}

// parseReturnStatement parses `return [expr]`. A return with no
// expression yields the empty tuple (spec.md §4.4).
func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	start := p.curToken
	p.nextToken() // consume 'return'
	s := &ast.ReturnStatement{}
	if !p.curIs(token.LineFoldEnd) && !p.curIs(token.BlockEnd) && !p.curIs(token.EOF) {
		s.Expr = p.parseExpr(token.LOWEST)
	}
	s.SetSpan(start, p.curToken)
	return s
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	start := p.curToken
	e := p.parseExpr(token.LOWEST)
	s := &ast.ExpressionStatement{Expr: e}
	s.SetSpan(start, p.curToken)
	return s
}
