package source

import "fmt"

// Position is a 1-based line/column location in a source text. The zero value
// means "unknown".
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// IsValid reports whether the position points into a source text.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// File is a script together with the name it is reported under.
type File struct {
	Name    string // display name, e.g. "main.ql" or "<repl>"
	Path    string // absolute path; empty for REPL input
	Content string
}

// NewFile wraps content read from path.
func NewFile(name, path, content string) *File {
	return &File{Name: name, Path: path, Content: content}
}

// NewReplFile wraps a line of interactive input.
func NewReplFile(content string) *File {
	return &File{Name: "<repl>", Content: content}
}
