package parser

import (
	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/token"
)

// parseDecl dispatches on the current token to one of the six
// top-level declaration forms. Returns nil on a token that cannot
// start a declaration, after recording an error; the caller is
// responsible for recovery.
func (p *Parser) parseDecl() ast.Node {
	switch p.curToken.Kind {
	case token.Let:
		return p.parseLetDeclaration()
	case token.Struct:
		return p.parseStructDeclaration()
	case token.Enum:
		return p.parseEnumDeclaration()
	case token.Type:
		return p.parseTypeDeclaration()
	case token.Module:
		return p.parseModuleDeclaration()
	case token.Import:
		return p.parseImportDeclaration()
	default:
		p.errorf("unexpected token at top level: %s", p.curToken.Kind)
		return nil
	}
}

// consumeLineFoldEnd swallows a trailing LineFoldEnd if present; block
// bodies close via BlockEnd and carry no trailing LineFoldEnd of their
// own (see internal/lexer's indentation algorithm).
func (p *Parser) consumeLineFoldEnd() {
	if p.curIs(token.LineFoldEnd) {
		p.nextToken()
	}
}

// parseLetDeclaration parses `let <pattern> <param>* [: Type] = <body>`.
// A backslash expression appearing directly as the body (with no
// explicit params before the `=`) is desugared: its own parameters are
// appended to Params and its body becomes the declaration's body. This
// is the only place lambdas are represented in the tree; a
// free-standing lambda anywhere else is outside this grammar's scope.
func (p *Parser) parseLetDeclaration() *ast.LetDeclaration {
	start := p.curToken
	p.nextToken() // consume 'let'

	d := &ast.LetDeclaration{}
	d.Pattern = p.parsePattern()

	d.Params = append(d.Params, p.parseParamList()...)

	if p.curIs(token.Colon) {
		colonTok := p.curToken
		p.nextToken()
		t := p.parseTypeExpr()
		assert := &ast.TypeAssertClause{Type: t}
		assert.SetSpan(colonTok, p.curToken)
		d.Assert = assert
	}

	p.expect(token.Equals)

	if p.curIs(token.Backslash) {
		p.nextToken()
		d.Params = append(d.Params, p.parseParamList()...)
		p.expect(token.Arrow)
	}

	if p.curIs(token.BlockStart) {
		d.Stmts = p.parseStmtBlock()
	} else {
		d.Expr = p.parseExpr(token.LOWEST)
		p.consumeLineFoldEnd()
	}

	end := p.curToken
	d.SetSpan(start, end)
	return d
}

// parseParamList parses zero or more parameters: a bare name, or a
// parenthesized name with an optional type annotation (`(x: Int)`).
func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param
	for {
		if p.curIs(token.Ident) {
			tok := p.curToken
			p.nextToken()
			param := &ast.Param{Name: tok.Text}
			param.SetSpan(tok, tok)
			params = append(params, param)
			continue
		}
		if p.curIs(token.LParen) && p.peekIs(token.Ident) {
			open := p.curToken
			p.nextToken()
			nameTok := p.curToken
			p.expect(token.Ident)
			param := &ast.Param{Name: nameTok.Text}
			if p.curIs(token.Colon) {
				p.nextToken()
				param.Type = p.parseTypeExpr()
			}
			p.expect(token.RParen)
			param.SetSpan(open, p.curToken)
			params = append(params, param)
			continue
		}
		break
	}
	return params
}

func (p *Parser) isCustomOperatorKnown(op string) bool {
	_, ok := p.precedence[op]
	return ok
}

// parseStructDeclaration parses `struct Name: <indented field list>`.
func (p *Parser) parseStructDeclaration() *ast.StructDeclaration {
	start := p.curToken
	p.nextToken() // consume 'struct'
	name := p.curToken
	p.expect(token.Ident)
	p.expect(token.Colon)

	d := &ast.StructDeclaration{Name: name.Text}
	if p.expect(token.BlockStart) {
		for !p.curIs(token.BlockEnd) && !p.curIs(token.EOF) {
			fieldStart := p.curToken
			fname := p.curToken
			p.expect(token.Ident)
			p.expect(token.Colon)
			ftype := p.parseTypeExpr()
			f := &ast.StructField{Name: fname.Text, Type: ftype}
			f.SetSpan(fieldStart, p.curToken)
			d.Fields = append(d.Fields, f)
			p.consumeLineFoldEnd()
		}
		p.expect(token.BlockEnd)
	}
	d.SetSpan(start, p.curToken)
	return d
}

// parseEnumDeclaration parses `enum Name: <indented member list>`,
// where each member is a bare name (nullary) or `Name(Type, ...)`.
func (p *Parser) parseEnumDeclaration() *ast.EnumDeclaration {
	start := p.curToken
	p.nextToken() // consume 'enum'
	name := p.curToken
	p.expect(token.Ident)
	p.expect(token.Colon)

	d := &ast.EnumDeclaration{Name: name.Text}
	if p.expect(token.BlockStart) {
		for !p.curIs(token.BlockEnd) && !p.curIs(token.EOF) {
			memberStart := p.curToken
			mname := p.curToken
			p.expect(token.Ident)
			m := &ast.EnumMember{Name: mname.Text}
			if p.curIs(token.LParen) {
				p.nextToken()
				for !p.curIs(token.RParen) && !p.curIs(token.EOF) {
					m.Args = append(m.Args, p.parseTypeExpr())
					if p.curIs(token.Comma) {
						p.nextToken()
					}
				}
				p.expect(token.RParen)
			}
			m.SetSpan(memberStart, p.curToken)
			d.Members = append(d.Members, m)
			p.consumeLineFoldEnd()
		}
		p.expect(token.BlockEnd)
	}
	d.SetSpan(start, p.curToken)
	return d
}

// parseTypeDeclaration parses a type alias: `type Name = TypeExpr`.
func (p *Parser) parseTypeDeclaration() *ast.TypeDeclaration {
	start := p.curToken
	p.nextToken() // consume 'type'
	name := p.curToken
	p.expect(token.Ident)
	p.expect(token.Equals)
	t := p.parseTypeExpr()
	d := &ast.TypeDeclaration{Name: name.Text, Type: t}
	d.SetSpan(start, p.curToken)
	p.consumeLineFoldEnd()
	return d
}

// parseModuleDeclaration parses `module Name: <indented declarations>`.
func (p *Parser) parseModuleDeclaration() *ast.ModuleDeclaration {
	start := p.curToken
	p.nextToken() // consume 'module'
	name := p.curToken
	p.expect(token.Ident)
	p.expect(token.Colon)

	d := &ast.ModuleDeclaration{Name: name.Text}
	if p.expect(token.BlockStart) {
		for !p.curIs(token.BlockEnd) && !p.curIs(token.EOF) {
			if child := p.parseDecl(); child != nil {
				d.Body = append(d.Body, child)
			} else {
				p.nextToken()
			}
			p.consumeLineFoldEnd()
		}
		p.expect(token.BlockEnd)
	}
	d.SetSpan(start, p.curToken)
	return d
}

// parseImportDeclaration parses `import dotted.path`.
func (p *Parser) parseImportDeclaration() *ast.ImportDeclaration {
	start := p.curToken
	p.nextToken() // consume 'import'
	path := p.curToken.Text
	p.expect(token.Ident)
	for p.curIs(token.Dot) {
		p.nextToken()
		path += "." + p.curToken.Text
		p.expect(token.Ident)
	}
	d := &ast.ImportDeclaration{Path: path}
	d.SetSpan(start, p.curToken)
	p.consumeLineFoldEnd()
	return d
}
