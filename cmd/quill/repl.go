package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"quill/interpreter-go/pkg/interpreter"
	"quill/interpreter-go/pkg/parser"
	"quill/interpreter-go/pkg/runtime"
	"quill/interpreter-go/pkg/source"
)

const (
	historyFile = ".quill_history"
	replPrompt  = ">>> "
)

// replSession evaluates one line at a time against a long-lived environment.
type replSession struct {
	parser *parser.Parser
	interp *interpreter.Interpreter
	env    *runtime.Environment
	out    io.Writer
	errOut io.Writer
}

func newReplSession(interp *interpreter.Interpreter, out, errOut io.Writer) *replSession {
	return &replSession{
		parser: parser.New(),
		interp: interp,
		env:    interp.GlobalEnvironment(),
		out:    out,
		errOut: errOut,
	}
}

func runRepl(opts options, logger *slog.Logger) int {
	manifest, err := resolveManifest(opts.manifestPath, ".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
		return 1
	}
	interp, err := newSession(manifest, logger, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	session := newReplSession(interp, os.Stdout, os.Stderr)

	fmt.Fprintf(os.Stdout, "%s (type exit or :quit to leave)\n", cliToolVersion)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(os.Stdout)
			return 0
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "read: %v\n", err)
			return 1
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if session.handle(line) {
			return 0
		}
	}
}

// handle processes one input line and reports whether the session should end.
func (s *replSession) handle(line string) (exit bool) {
	code := strings.TrimSpace(line)
	switch {
	case code == "":
		return false
	case code == "exit" || code == ":quit":
		return true
	case strings.HasPrefix(code, ":"):
		s.command(code)
		return false
	}

	file := source.NewReplFile(code)
	program, err := s.parser.ProduceAST(file.Content)
	if err != nil {
		fmt.Fprintf(s.errOut, "%s: %v\n", file.Name, err)
		return false
	}
	result, err := s.interp.Evaluate(program, s.env)
	if err != nil {
		fmt.Fprintf(s.errOut, "%s: %v\n", file.Name, err)
		return false
	}
	fmt.Fprintln(s.out, interpreter.FormatValue(result))
	return false
}

func (s *replSession) command(code string) {
	switch strings.ToLower(code) {
	case ":env":
		for _, name := range s.env.Keys() {
			val, _ := s.env.Lookup(name)
			marker := "let"
			if s.env.IsConstant(name) {
				marker = "const"
			}
			fmt.Fprintf(s.out, "%s %s = %s\n", marker, name, interpreter.FormatValue(val))
		}
	case ":help":
		fmt.Fprintln(s.out, "commands: :env lists bindings, :quit or exit leaves")
	default:
		fmt.Fprintf(s.out, "unknown command %s. Type :help for a list.\n", code)
	}
}
