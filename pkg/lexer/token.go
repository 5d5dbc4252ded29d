package lexer

import (
	"fmt"

	"quill/interpreter-go/pkg/source"
)

// TokenKind classifies a lexeme.
type TokenKind int

const (
	Number TokenKind = iota
	Identifier
	Equals
	OpenParen
	CloseParen
	OpenBrace
	CloseBrace
	OpenBracket
	CloseBracket
	BinaryOperator
	Let
	Const
	Semicolon
	Comma
	Colon
	String
	Dot
	EndOfInput
)

var kindNames = [...]string{
	Number:         "Number",
	Identifier:     "Identifier",
	Equals:         "Equals",
	OpenParen:      "OpenParen",
	CloseParen:     "CloseParen",
	OpenBrace:      "OpenBrace",
	CloseBrace:     "CloseBrace",
	OpenBracket:    "OpenBracket",
	CloseBracket:   "CloseBracket",
	BinaryOperator: "BinaryOperator",
	Let:            "Let",
	Const:          "Const",
	Semicolon:      "Semicolon",
	Comma:          "Comma",
	Colon:          "Colon",
	String:         "String",
	Dot:            "Dot",
	EndOfInput:     "EndOfInput",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one classified lexeme. For String tokens the lexeme is the text
// between the quotes.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Pos    source.Position
}

func (t Token) String() string {
	return fmt.Sprintf("<%s: %s>", t.Kind, t.Lexeme)
}

var keywords = map[string]TokenKind{
	"let":   Let,
	"const": Const,
}

var punctuation = map[rune]TokenKind{
	'(': OpenParen,
	')': CloseParen,
	'{': OpenBrace,
	'}': CloseBrace,
	'[': OpenBracket,
	']': CloseBracket,
	';': Semicolon,
	',': Comma,
	':': Colon,
	'.': Dot,
}
