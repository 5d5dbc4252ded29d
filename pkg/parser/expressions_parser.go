package parser

import (
	"quill/interpreter-go/pkg/ast"
	"quill/interpreter-go/pkg/errors"
	"quill/interpreter-go/pkg/lexer"
)

// Precedence, lowest first:
//
//	assignment     right-associative "="
//	objectOrExpr   object / list literals
//	additive       + -
//	multiplicative * / %
//	callMember     f(...)(...)
//	member         a.b  a[b]
//	primary

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignmentExpr()
}

func (p *Parser) parseAssignmentExpr() (ast.Expression, error) {
	start := p.at().Pos
	left, err := p.parseObjectOrExpr()
	if err != nil {
		return nil, err
	}
	if p.at().Kind != lexer.Equals {
		return left, nil
	}
	p.eat()
	value, err := p.parseAssignmentExpr()
	if err != nil {
		return nil, err
	}
	return annotate(ast.NewAssignmentExpr(left, value), start, p), nil
}

func (p *Parser) parseObjectOrExpr() (ast.Expression, error) {
	switch p.at().Kind {
	case lexer.OpenBrace:
		return p.parseObjectLiteral()
	case lexer.OpenBracket:
		return p.parseListLiteral()
	default:
		return p.parseAdditiveExpr()
	}
}

func (p *Parser) parseAdditiveExpr() (ast.Expression, error) {
	start := p.at().Pos
	left, err := p.parseMultiplicativeExpr()
	if err != nil {
		return nil, err
	}
	for p.atOperator("+", "-") {
		operator := p.eat().Lexeme
		right, err := p.parseMultiplicativeExpr()
		if err != nil {
			return nil, err
		}
		left = annotate(ast.NewBinaryExpr(left, right, operator), start, p)
	}
	return left, nil
}

func (p *Parser) parseMultiplicativeExpr() (ast.Expression, error) {
	start := p.at().Pos
	left, err := p.parseCallMemberExpr()
	if err != nil {
		return nil, err
	}
	for p.atOperator("*", "/", "%") {
		operator := p.eat().Lexeme
		right, err := p.parseCallMemberExpr()
		if err != nil {
			return nil, err
		}
		left = annotate(ast.NewBinaryExpr(left, right, operator), start, p)
	}
	return left, nil
}

func (p *Parser) parseCallMemberExpr() (ast.Expression, error) {
	start := p.at().Pos
	expr, err := p.parseMemberExpr()
	if err != nil {
		return nil, err
	}
	for p.at().Kind == lexer.OpenParen {
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		expr = annotate(ast.NewCallExpr(expr, args), start, p)
	}
	return expr, nil
}

// parseArguments consumes "(" [assignment ("," assignment)*] ")".
func (p *Parser) parseArguments() ([]ast.Expression, error) {
	if _, err := p.expect(lexer.OpenParen, "expected open parenthesis"); err != nil {
		return nil, err
	}
	args := make([]ast.Expression, 0)
	if p.at().Kind != lexer.CloseParen {
		for {
			arg, err := p.parseAssignmentExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.at().Kind != lexer.Comma {
				break
			}
			p.eat()
		}
	}
	if _, err := p.expect(lexer.CloseParen, "missing closing parenthesis inside arguments list"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseMemberExpr() (ast.Expression, error) {
	start := p.at().Pos
	object, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		switch p.at().Kind {
		case lexer.Dot:
			p.eat()
			tok := p.at()
			if tok.Kind != lexer.Identifier {
				return nil, errors.NewParseError(tok.Pos, "dot operator requires an identifier, found %s", describe(tok))
			}
			p.eat()
			property := annotate(ast.NewIdentifier(tok.Lexeme), tok.Pos, p)
			object = annotate(ast.NewMemberExpr(object, property, false), start, p)
		case lexer.OpenBracket:
			p.eat()
			property, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.CloseBracket, "missing closing bracket in computed member access"); err != nil {
				return nil, err
			}
			object = annotate(ast.NewMemberExpr(object, property, true), start, p)
		default:
			return object, nil
		}
	}
}

func (p *Parser) parsePrimaryExpr() (ast.Expression, error) {
	tok := p.at()
	switch tok.Kind {
	case lexer.Identifier:
		p.eat()
		return annotate(ast.NewIdentifier(tok.Lexeme), tok.Pos, p), nil
	case lexer.Number:
		return p.parseNumericLiteral()
	case lexer.String:
		p.eat()
		return annotate(ast.NewStringLiteral(tok.Lexeme), tok.Pos, p), nil
	case lexer.OpenParen:
		p.eat()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.CloseParen, "unexpected token inside parenthesised expression"); err != nil {
			return nil, err
		}
		return value, nil
	default:
		return nil, errors.NewParseError(tok.Pos, "unexpected token found during parsing: %s", describe(tok))
	}
}
