package interpreter

import (
	"strings"
	"testing"

	"quill/interpreter-go/pkg/runtime"
)

func TestMemberReadsOnObjects(t *testing.T) {
	expectNumber(t, mustEval(t, "let o = {a: 1, b: {c: 3}}; o.b.c"), 3)
	expectNumber(t, mustEval(t, `let o = {a: 1}; o["a"]`), 1)
	expectNumber(t, mustEval(t, `let key = "a"; let o = {a: 5}; o[key]`), 5)

	if val := mustEval(t, "let o = {a: 1}; o.missing"); val.Kind() != runtime.KindNull {
		t.Fatalf("missing key should be null, got %#v", val)
	}
}

func TestNumericKeysUsePrintedForm(t *testing.T) {
	val := mustEval(t, "let o = {}; o[1] = 10; keys(o)")
	list := val.(*runtime.ListValue)
	if len(list.Elements) != 1 || list.Elements[0].(runtime.StringValue).Val != "1" {
		t.Fatalf("unexpected keys %#v", list.Elements)
	}
}

func TestMemberReadsOnLists(t *testing.T) {
	expectNumber(t, mustEval(t, "let xs = [10, 20, 30]; xs[1]"), 20)
	expectNumber(t, mustEval(t, "let xs = [[1, 2], [3, 4]]; xs[1][0]"), 3)
}

func TestListIndexErrors(t *testing.T) {
	cases := map[string]string{
		"let xs = [1]; xs[1]":     "out of range",
		"let xs = [1]; xs[0 - 1]": "out of range",
		"let xs = [1]; xs[1 / 2]": "must be an integer",
		`let xs = [1]; xs["0"]`:   "must be a number",
		"let xs = [1]; xs.length": "must be a number",
	}
	for src, want := range cases {
		interp := New()
		_, err := evalSource(t, interp, interp.GlobalEnvironment(), src)
		ie := expectInterpretError(t, err)
		if !strings.Contains(ie.Message(), want) {
			t.Fatalf("%s: expected %q in %q", src, want, ie.Message())
		}
	}
}

func TestMemberAccessOnScalarFails(t *testing.T) {
	interp := New()
	_, err := evalSource(t, interp, interp.GlobalEnvironment(), "let n = 1; n.x")
	expectInterpretError(t, err)
}

func TestMemberAssignmentMutatesInPlace(t *testing.T) {
	interp := New()
	env := interp.GlobalEnvironment()
	val, err := evalSource(t, interp, env, "let o = {a: 1}; let alias = o; o.a = 2; o.b = 3; alias")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := val.(*runtime.ObjectValue)
	if keys := obj.Keys(); len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected keys %v", keys)
	}
	a, _ := obj.Get("a")
	expectNumber(t, a, 2)

	val, err = evalSource(t, interp, env, "let xs = [1, 2]; xs[0] = o.a * 10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectNumber(t, val, 20)
	xs, _ := env.Lookup("xs")
	expectNumber(t, xs.(*runtime.ListValue).Elements[0], 20)
}

func TestMemberAssignmentOnConstContainer(t *testing.T) {
	// const protects the binding, not the container.
	expectNumber(t, mustEval(t, "const o = {n: 1}; o.n = 2; o.n"), 2)
}

func TestListAssignmentOutOfRangeFails(t *testing.T) {
	interp := New()
	_, err := evalSource(t, interp, interp.GlobalEnvironment(), "let xs = [1]; xs[3] = 2")
	ie := expectInterpretError(t, err)
	if !strings.Contains(ie.Message(), "out of range") {
		t.Fatalf("unexpected message %q", ie.Message())
	}
}
