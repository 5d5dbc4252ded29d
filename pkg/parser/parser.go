package parser

import (
	"quill/interpreter-go/pkg/ast"
	"quill/interpreter-go/pkg/errors"
	"quill/interpreter-go/pkg/lexer"
)

// Parser is a recursive-descent parser over the token stream of one source
// text. A Parser may be reused; every ProduceAST call starts fresh.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New returns an idle parser.
func New() *Parser {
	return &Parser{}
}

// ProduceAST tokenizes and parses source with a throwaway parser.
func ProduceAST(source string) (*ast.Program, error) {
	return New().ProduceAST(source)
}

// ProduceAST parses source into a Program. The first tokenize or grammar
// error aborts the parse; no partial tree is returned.
func (p *Parser) ProduceAST(source string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p.tokens = tokens
	p.pos = 0
	defer func() { p.tokens = nil }()

	start := p.at()
	body := make([]ast.Statement, 0)
	for p.notEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	program := ast.NewProgram(body)
	ast.SetSpan(program, ast.Span{Start: start.Pos, End: p.at().Pos})
	return program, nil
}

func (p *Parser) notEOF() bool {
	return p.at().Kind != lexer.EndOfInput
}

// at returns the current token without consuming it.
func (p *Parser) at() lexer.Token {
	return p.tokens[p.pos]
}

// eat consumes the current token. EndOfInput is never consumed.
func (p *Parser) eat() lexer.Token {
	tok := p.tokens[p.pos]
	if tok.Kind != lexer.EndOfInput {
		p.pos++
	}
	return tok
}

// expect consumes a token of the given kind or fails with message.
func (p *Parser) expect(kind lexer.TokenKind, message string) (lexer.Token, error) {
	tok := p.at()
	if tok.Kind != kind {
		return tok, errors.NewParseError(tok.Pos, "%s, found %s", message, describe(tok))
	}
	return p.eat(), nil
}

func (p *Parser) atOperator(ops ...string) bool {
	tok := p.at()
	if tok.Kind != lexer.BinaryOperator {
		return false
	}
	for _, op := range ops {
		if tok.Lexeme == op {
			return true
		}
	}
	return false
}
