package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"quill/interpreter-go/pkg/interpreter"
	"quill/interpreter-go/pkg/parser"
	"quill/interpreter-go/pkg/runtime"
	"quill/interpreter-go/pkg/source"
)

// LoadSource reads a script from disk.
func LoadSource(path string) (*source.File, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("source: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	return source.NewFile(filepath.Base(absPath), absPath, string(data)), nil
}

// EvaluateFile parses file and evaluates it against env. Errors from the
// core are returned unwrapped so callers can inspect their kind.
func EvaluateFile(interp *interpreter.Interpreter, env *runtime.Environment, file *source.File) (runtime.Value, error) {
	program, err := parser.ProduceAST(file.Content)
	if err != nil {
		return nil, err
	}
	return interp.Evaluate(program, env)
}

// EvaluatePrelude runs each prelude script, in order, into env.
func EvaluatePrelude(interp *interpreter.Interpreter, env *runtime.Environment, paths []string) error {
	for _, path := range paths {
		file, err := LoadSource(path)
		if err != nil {
			return err
		}
		if _, err := EvaluateFile(interp, env, file); err != nil {
			return fmt.Errorf("prelude %s: %w", file.Name, err)
		}
	}
	return nil
}
