package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"quill/interpreter-go/pkg/errors"
	"quill/interpreter-go/pkg/source"
)

const (
	operatorChars = "+-*/%"
	quote         = '"'
)

// Lexer walks a source text left to right, one rune at a time.
type Lexer struct {
	input  string
	offset int // byte offset of ch
	ch     rune
	width  int
	line   int
	column int
}

// New prepares a lexer positioned on the first rune of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.advance()
	return l
}

// Tokenize converts source into tokens terminated by a single EndOfInput.
func Tokenize(input string) ([]Token, error) {
	return New(input).Tokens()
}

// Tokens consumes the remaining input.
func (l *Lexer) Tokens() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EndOfInput {
			return tokens, nil
		}
	}
}

func (l *Lexer) atEnd() bool {
	return l.width == 0
}

// advance moves onto the next rune, keeping line/column current.
func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.offset += l.width
	if l.offset >= len(l.input) {
		l.ch, l.width = 0, 0
		l.column++
		return
	}
	l.ch, l.width = utf8.DecodeRuneInString(l.input[l.offset:])
	l.column++
}

func (l *Lexer) pos() source.Position {
	return source.Position{Line: l.line, Column: l.column}
}

// Next returns the next token, or EndOfInput once the input is exhausted.
func (l *Lexer) Next() (Token, error) {
	for !l.atEnd() && isSkippable(l.ch) {
		l.advance()
	}
	start := l.pos()
	if l.atEnd() {
		return Token{Kind: EndOfInput, Lexeme: "EndOfInput", Pos: start}, nil
	}

	ch := l.ch
	if kind, ok := punctuation[ch]; ok {
		l.advance()
		return Token{Kind: kind, Lexeme: string(ch), Pos: start}, nil
	}
	switch {
	case strings.ContainsRune(operatorChars, ch):
		l.advance()
		return Token{Kind: BinaryOperator, Lexeme: string(ch), Pos: start}, nil
	case ch == '=':
		l.advance()
		return Token{Kind: Equals, Lexeme: "=", Pos: start}, nil
	case isDigit(ch):
		return Token{Kind: Number, Lexeme: l.readWhile(isDigit), Pos: start}, nil
	case isIdentStart(ch):
		word := l.readWhile(isIdentPart)
		if kind, ok := keywords[word]; ok {
			return Token{Kind: kind, Lexeme: word, Pos: start}, nil
		}
		return Token{Kind: Identifier, Lexeme: word, Pos: start}, nil
	case ch == quote:
		text, ok := l.readString()
		if !ok {
			return Token{}, errors.NewTokenizeError(start, "unterminated string literal")
		}
		return Token{Kind: String, Lexeme: text, Pos: start}, nil
	default:
		return Token{}, errors.NewTokenizeError(start, "unrecognized character %q in source", ch)
	}
}

func (l *Lexer) readWhile(pred func(rune) bool) string {
	begin := l.offset
	for !l.atEnd() && pred(l.ch) {
		l.advance()
	}
	return l.input[begin:l.offset]
}

// readString consumes a quoted literal and returns its verbatim contents.
func (l *Lexer) readString() (string, bool) {
	l.advance() // opening quote
	begin := l.offset
	for !l.atEnd() && l.ch != quote {
		l.advance()
	}
	if l.atEnd() {
		return "", false
	}
	text := l.input[begin:l.offset]
	l.advance() // closing quote
	return text, true
}

func isSkippable(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
