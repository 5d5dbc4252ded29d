package errors

import (
	"fmt"

	"quill/interpreter-go/pkg/source"
)

// QuillError is implemented by every failure the tokenizer, parser, and
// evaluator produce.
type QuillError interface {
	error
	Kind() string // "Tokenize", "Parse", "VarExists", "Resolution", "Interpret"
	Pos() source.Position
	// Message returns the bare message without kind or position.
	Message() string
}

func render(kind string, pos source.Position, msg string) string {
	if pos.IsValid() {
		return fmt.Sprintf("%sError at %s: %s", kind, pos, msg)
	}
	return fmt.Sprintf("%sError: %s", kind, msg)
}

// TokenizeError reports an unrecognized character or an unterminated string.
type TokenizeError struct {
	source.Position
	Msg string
}

func NewTokenizeError(pos source.Position, format string, args ...any) *TokenizeError {
	return &TokenizeError{Position: pos, Msg: fmt.Sprintf(format, args...)}
}

func (e *TokenizeError) Error() string        { return render(e.Kind(), e.Position, e.Msg) }
func (e *TokenizeError) Kind() string         { return "Tokenize" }
func (e *TokenizeError) Pos() source.Position { return e.Position }
func (e *TokenizeError) Message() string      { return e.Msg }

// ParseError reports a token that does not fit the grammar at its position.
type ParseError struct {
	source.Position
	Msg string
}

func NewParseError(pos source.Position, format string, args ...any) *ParseError {
	return &ParseError{Position: pos, Msg: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string        { return render(e.Kind(), e.Position, e.Msg) }
func (e *ParseError) Kind() string         { return "Parse" }
func (e *ParseError) Pos() source.Position { return e.Position }
func (e *ParseError) Message() string      { return e.Msg }

// VarExistsError reports a redeclaration in one scope or a write to a constant.
type VarExistsError struct {
	source.Position
	Name string
	Msg  string
}

func NewVarExistsError(name string, format string, args ...any) *VarExistsError {
	return &VarExistsError{Name: name, Msg: fmt.Sprintf(format, args...)}
}

func (e *VarExistsError) Error() string        { return render(e.Kind(), e.Position, e.Msg) }
func (e *VarExistsError) Kind() string         { return "VarExists" }
func (e *VarExistsError) Pos() source.Position { return e.Position }
func (e *VarExistsError) Message() string      { return e.Msg }

// ResolutionError reports a name that is not bound anywhere in the scope chain.
type ResolutionError struct {
	source.Position
	Name string
	Msg  string
}

func NewResolutionError(name string, format string, args ...any) *ResolutionError {
	return &ResolutionError{Name: name, Msg: fmt.Sprintf(format, args...)}
}

func (e *ResolutionError) Error() string        { return render(e.Kind(), e.Position, e.Msg) }
func (e *ResolutionError) Kind() string         { return "Resolution" }
func (e *ResolutionError) Pos() source.Position { return e.Position }
func (e *ResolutionError) Message() string      { return e.Msg }

// InterpretError is the evaluator's catch-all: unhandled node types,
// non-callable call targets, bad assignment targets, bad operators.
type InterpretError struct {
	source.Position
	Msg string
}

func NewInterpretError(pos source.Position, format string, args ...any) *InterpretError {
	return &InterpretError{Position: pos, Msg: fmt.Sprintf(format, args...)}
}

func (e *InterpretError) Error() string        { return render(e.Kind(), e.Position, e.Msg) }
func (e *InterpretError) Kind() string         { return "Interpret" }
func (e *InterpretError) Pos() source.Position { return e.Position }
func (e *InterpretError) Message() string      { return e.Msg }

// WithPosition fills in the position of a runtime error raised without one.
// Errors that already carry a position are returned unchanged.
func WithPosition(err error, pos source.Position) error {
	if !pos.IsValid() {
		return err
	}
	switch e := err.(type) {
	case *VarExistsError:
		if !e.Position.IsValid() {
			e.Position = pos
		}
	case *ResolutionError:
		if !e.Position.IsValid() {
			e.Position = pos
		}
	case *InterpretError:
		if !e.Position.IsValid() {
			e.Position = pos
		}
	}
	return err
}
