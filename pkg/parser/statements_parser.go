package parser

import (
	"quill/interpreter-go/pkg/ast"
	"quill/interpreter-go/pkg/errors"
	"quill/interpreter-go/pkg/lexer"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.at().Kind {
	case lexer.Let, lexer.Const:
		return p.parseVarDeclaration()
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.at().Kind == lexer.Semicolon {
			p.eat()
		}
		return expr, nil
	}
}

// parseVarDeclaration handles
//
//	("let" | "const") Identifier ";"
//	("let" | "const") Identifier "=" expression ";"
//
// End of input stands in for the final semicolon.
func (p *Parser) parseVarDeclaration() (ast.Statement, error) {
	keyword := p.eat()
	isConst := keyword.Kind == lexer.Const
	name, err := p.expect(lexer.Identifier, "expected identifier name following let | const keywords")
	if err != nil {
		return nil, err
	}

	if p.at().Kind != lexer.Equals {
		if isConst {
			return nil, errors.NewParseError(p.at().Pos, "must assign value to constant expression %q", name.Lexeme)
		}
		if err := p.expectTerminator("variable declaration"); err != nil {
			return nil, err
		}
		return annotate(ast.NewVarDeclaration(false, name.Lexeme, nil), keyword.Pos, p), nil
	}

	p.eat()
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectTerminator("variable declaration"); err != nil {
		return nil, err
	}
	return annotate(ast.NewVarDeclaration(isConst, name.Lexeme, value), keyword.Pos, p), nil
}

func (p *Parser) expectTerminator(context string) error {
	switch p.at().Kind {
	case lexer.Semicolon:
		p.eat()
		return nil
	case lexer.EndOfInput:
		return nil
	default:
		_, err := p.expect(lexer.Semicolon, context+" must end with a semicolon")
		return err
	}
}
