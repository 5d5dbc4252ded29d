package parser

import (
	stderrors "errors"
	"strconv"

	"quill/interpreter-go/pkg/ast"
	"quill/interpreter-go/pkg/errors"
	"quill/interpreter-go/pkg/lexer"
)

// parseNumericLiteral reads a digit run as float64 whether or not it has a
// fractional part. Runs too large for float64 become +Inf.
func (p *Parser) parseNumericLiteral() (ast.Expression, error) {
	tok := p.eat()
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil && !stderrors.Is(err, strconv.ErrRange) {
		return nil, errors.NewParseError(tok.Pos, "invalid numeric literal %q", tok.Lexeme)
	}
	return annotate(ast.NewNumericLiteral(value), tok.Pos, p), nil
}

// parseObjectLiteral handles `{ key: value, shorthand, ... }`. Properties are
// separated by commas; the last one may be followed directly by "}".
func (p *Parser) parseObjectLiteral() (ast.Expression, error) {
	open := p.eat()
	properties := make([]*ast.Property, 0)
	for p.notEOF() && p.at().Kind != lexer.CloseBrace {
		keyTok, err := p.expect(lexer.Identifier, "object literal key expected")
		if err != nil {
			return nil, err
		}
		switch p.at().Kind {
		case lexer.Comma:
			p.eat()
			properties = append(properties, annotate(ast.NewProperty(keyTok.Lexeme, nil), keyTok.Pos, p))
			continue
		case lexer.CloseBrace:
			properties = append(properties, annotate(ast.NewProperty(keyTok.Lexeme, nil), keyTok.Pos, p))
			continue
		}
		if _, err := p.expect(lexer.Colon, "missing colon following identifier in object literal"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		properties = append(properties, annotate(ast.NewProperty(keyTok.Lexeme, value), keyTok.Pos, p))
		if p.at().Kind != lexer.CloseBrace {
			if _, err := p.expect(lexer.Comma, "expected comma or closing brace following property"); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(lexer.CloseBrace, "object literal missing closing brace"); err != nil {
		return nil, err
	}
	return annotate(ast.NewObjectLiteral(properties), open.Pos, p), nil
}

// parseListLiteral handles `[a, b, c]`; a trailing comma is tolerated.
func (p *Parser) parseListLiteral() (ast.Expression, error) {
	open := p.eat()
	items := make([]ast.Expression, 0)
	for p.notEOF() && p.at().Kind != lexer.CloseBracket {
		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.at().Kind != lexer.CloseBracket {
			if _, err := p.expect(lexer.Comma, "expected comma or closing bracket following list item"); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(lexer.CloseBracket, "list literal missing closing bracket"); err != nil {
		return nil, err
	}
	return annotate(ast.NewListLiteral(items), open.Pos, p), nil
}
