package interpreter

import (
	"bytes"
	stderrors "errors"
	"testing"

	"quill/interpreter-go/pkg/errors"
	"quill/interpreter-go/pkg/parser"
	"quill/interpreter-go/pkg/runtime"
)

// evalSource parses src and evaluates it against env, failing the test on
// parse errors only.
func evalSource(t *testing.T, interp *Interpreter, env *runtime.Environment, src string) (runtime.Value, error) {
	t.Helper()
	program, err := parser.ProduceAST(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return interp.Evaluate(program, env)
}

func mustEval(t *testing.T, src string) runtime.Value {
	t.Helper()
	interp := New(WithOutput(&bytes.Buffer{}))
	val, err := evalSource(t, interp, interp.GlobalEnvironment(), src)
	if err != nil {
		t.Fatalf("evaluate %q: %v", src, err)
	}
	return val
}

func expectNumber(t *testing.T, val runtime.Value, want float64) {
	t.Helper()
	num, ok := val.(runtime.NumberValue)
	if !ok {
		t.Fatalf("expected number %v, got %#v", want, val)
	}
	if num.Val != want {
		t.Fatalf("expected %v, got %v", want, num.Val)
	}
}

func expectInterpretError(t *testing.T, err error) *errors.InterpretError {
	t.Helper()
	var ie *errors.InterpretError
	if !stderrors.As(err, &ie) {
		t.Fatalf("expected InterpretError, got %v", err)
	}
	return ie
}
