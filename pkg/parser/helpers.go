package parser

import (
	"fmt"
	"unicode/utf8"

	"quill/interpreter-go/pkg/ast"
	"quill/interpreter-go/pkg/lexer"
	"quill/interpreter-go/pkg/source"
)

// tokenEnd is the position just past the token's last rune.
func tokenEnd(tok lexer.Token) source.Position {
	width := utf8.RuneCountInString(tok.Lexeme)
	switch tok.Kind {
	case lexer.EndOfInput:
		width = 0
	case lexer.String:
		width += 2
	}
	return source.Position{Line: tok.Pos.Line, Column: tok.Pos.Column + width}
}

// lastEnd is the end of the most recently consumed token.
func (p *Parser) lastEnd() source.Position {
	if p.pos == 0 {
		return p.at().Pos
	}
	return tokenEnd(p.tokens[p.pos-1])
}

func annotate[T ast.Node](node T, start source.Position, p *Parser) T {
	ast.SetSpan(node, ast.Span{Start: start, End: p.lastEnd()})
	return node
}

func describe(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.EndOfInput:
		return "end of input"
	case lexer.String:
		return fmt.Sprintf("string %q", tok.Lexeme)
	default:
		return fmt.Sprintf("%s %q", tok.Kind, tok.Lexeme)
	}
}
