// Package parser builds an internal/ast tree from an internal/lexer
// token stream using recursive descent for declarations and a Pratt
// parser for expressions, via a curToken/peekToken plus
// prefix/infix-function-table shape.
package parser

import (
	"fmt"

	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/lexer"
	"github.com/lam-lang/checklam/internal/token"
)

// ParseError is a single structured parse failure.
type ParseError struct {
	Message string
	Pos     token.Pos
	Near    token.Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s (near %s)", e.Pos, e.Message, e.Near)
}

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

// Parser consumes a lexer.Lexer's token stream and produces an
// *ast.SourceFile. Errors are accumulated rather than raised, so a
// single Parse call can report more than one problem per spec.md's
// diagnostics-collect-don't-stop approach to the checker.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	errors    []error

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn

	// precedence extends token.BuiltinPrecedence with any
	// `let (op) x y = ...` custom operator declarations seen so far,
	// so later uses of that operator parse at the right binding power.
	precedence map[string]int
}

// New creates a Parser over l and primes the two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []error{},
	}
	p.precedence = make(map[string]int, len(token.BuiltinPrecedence))
	for op, prec := range token.BuiltinPrecedence {
		p.precedence[op] = prec
	}

	p.prefixParseFns = make(map[token.Kind]prefixParseFn)
	p.registerPrefix(token.Ident, p.parseIdentifier)
	p.registerPrefix(token.Int, p.parseIntegerLiteral)
	p.registerPrefix(token.String, p.parseStringLiteral)
	p.registerPrefix(token.True, p.parseBoolLiteral)
	p.registerPrefix(token.False, p.parseBoolLiteral)
	p.registerPrefix(token.LParen, p.parseGroupedOrTuple)

	p.infixParseFns = make(map[token.Kind]infixParseFn)
	p.registerInfix(token.Operator, p.parseInfixExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(k token.Kind, fn prefixParseFn) { p.prefixParseFns[k] = fn }
func (p *Parser) registerInfix(k token.Kind, fn infixParseFn)   { p.infixParseFns[k] = fn }

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []error { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.curToken.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peekToken.Kind == k }

// expect advances past the current token if it matches k, else records
// an error and leaves the cursor in place so the caller can attempt
// recovery.
func (p *Parser) expect(k token.Kind) bool {
	if p.curIs(k) {
		p.nextToken()
		return true
	}
	p.errorf("expected %s, got %s", k, p.curToken.Kind)
	return false
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, &ParseError{
		Message: fmt.Sprintf(format, args...),
		Pos:     p.curToken.Pos,
		Near:    p.curToken,
	})
}

func (p *Parser) precedenceOf(tok token.Token) int {
	if prec, ok := p.precedence[tok.Text]; ok {
		return prec
	}
	return token.LOWEST
}

func (p *Parser) curPrecedence() int { return p.precedenceOf(p.curToken) }

// ParseFile parses a complete source file into an *ast.SourceFile,
// then links every descendant's Parent pointer in one pass.
func ParseFile(input []byte, path string) (*ast.SourceFile, []error) {
	normalized := lexer.Normalize(input)
	p := New(lexer.New(string(normalized), path))
	decls := p.parseTopLevelDecls()
	file := ast.NewSourceFile(path, decls)
	ast.SetParentsIfUnset(file)
	return file, p.Errors()
}

func (p *Parser) parseTopLevelDecls() []ast.Node {
	var decls []ast.Node
	for !p.curIs(token.EOF) {
		if d := p.parseDecl(); d != nil {
			decls = append(decls, d)
		} else {
			// Recovery: skip forward to the next line-fold/block
			// boundary or EOF rather than looping forever on one bad
			// token.
			for !p.curIs(token.EOF) && !p.curIs(token.LineFoldEnd) && !p.curIs(token.BlockEnd) {
				p.nextToken()
			}
			if !p.curIs(token.EOF) {
				p.nextToken()
			}
		}
	}
	return decls
}
