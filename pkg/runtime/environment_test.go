package runtime

import (
	stderrors "errors"
	"testing"

	"quill/interpreter-go/pkg/errors"
)

func TestEnvironmentDeclareAndLookup(t *testing.T) {
	env := NewEnvironment(nil)
	if _, err := env.Declare("greeting", StringValue{Val: "hello"}, false); err != nil {
		t.Fatalf("declare failed: %v", err)
	}

	got, err := env.Lookup("greeting")
	if err != nil {
		t.Fatalf("expected to retrieve binding: %v", err)
	}
	if gv, ok := got.(StringValue); !ok || gv.Val != "hello" {
		t.Fatalf("unexpected value returned: %#v", got)
	}
}

func TestEnvironmentDeclareTwiceFails(t *testing.T) {
	env := NewEnvironment(nil)
	if _, err := env.Declare("x", NumberValue{Val: 1}, false); err != nil {
		t.Fatalf("declare failed: %v", err)
	}
	_, err := env.Declare("x", NumberValue{Val: 2}, false)
	var exists *errors.VarExistsError
	if !stderrors.As(err, &exists) {
		t.Fatalf("expected VarExistsError, got %v", err)
	}
	if exists.Name != "x" {
		t.Fatalf("expected error to name x, got %q", exists.Name)
	}
}

func TestEnvironmentChildShadowsParent(t *testing.T) {
	parent := NewEnvironment(nil)
	if _, err := parent.Declare("x", NumberValue{Val: 1}, false); err != nil {
		t.Fatalf("declare failed: %v", err)
	}
	child := parent.Extend()
	if _, err := child.Declare("x", NumberValue{Val: 2}, false); err != nil {
		t.Fatalf("shadowing declare failed: %v", err)
	}

	if _, err := child.Assign("x", NumberValue{Val: 3}); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	got, _ := child.Lookup("x")
	if nv, ok := got.(NumberValue); !ok || nv.Val != 3 {
		t.Fatalf("expected child binding 3, got %#v", got)
	}
	got, _ = parent.Lookup("x")
	if nv, ok := got.(NumberValue); !ok || nv.Val != 1 {
		t.Fatalf("expected parent binding untouched, got %#v", got)
	}
}

func TestEnvironmentAssignRespectsLexicalParent(t *testing.T) {
	env := NewEnvironment(nil)
	if _, err := env.Declare("counter", NumberValue{Val: 1}, false); err != nil {
		t.Fatalf("declare failed: %v", err)
	}

	child := NewEnvironment(env)
	if _, err := child.Assign("counter", NumberValue{Val: 2}); err != nil {
		t.Fatalf("assign into parent failed: %v", err)
	}
	if child.Has("counter") {
		t.Fatalf("assign must not create a binding in the child scope")
	}

	got, err := env.Lookup("counter")
	if err != nil {
		t.Fatalf("parent lookup failed: %v", err)
	}
	if nv, ok := got.(NumberValue); !ok || nv.Val != 2 {
		t.Fatalf("unexpected counter value: %#v", got)
	}
}

func TestEnvironmentAssignConstantFails(t *testing.T) {
	env := NewEnvironment(nil)
	if _, err := env.Declare("pi", NumberValue{Val: 3.14}, true); err != nil {
		t.Fatalf("declare failed: %v", err)
	}
	_, err := env.Extend().Assign("pi", NumberValue{Val: 3})
	var exists *errors.VarExistsError
	if !stderrors.As(err, &exists) {
		t.Fatalf("expected VarExistsError, got %v", err)
	}
	got, _ := env.Lookup("pi")
	if nv := got.(NumberValue); nv.Val != 3.14 {
		t.Fatalf("constant changed to %v", nv.Val)
	}
}

func TestEnvironmentAssignUnknownFails(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Assign("missing", Null)
	var unresolved *errors.ResolutionError
	if !stderrors.As(err, &unresolved) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
	if err.Error() != "ResolutionError: cannot resolve 'missing' as it is undefined" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestEnvironmentLookupUnknownFails(t *testing.T) {
	_, err := NewEnvironment(nil).Extend().Lookup("ghost")
	var unresolved *errors.ResolutionError
	if !stderrors.As(err, &unresolved) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
}

func TestEnvironmentHasIgnoresParents(t *testing.T) {
	parent := NewEnvironment(nil)
	_, _ = parent.Declare("a", Null, false)
	child := NewEnvironment(parent)
	if child.Has("a") {
		t.Fatalf("Has must only inspect the current scope")
	}
	if !parent.Has("a") {
		t.Fatalf("expected parent to have a")
	}
	owner, err := child.Resolve("a")
	if err != nil || owner != parent {
		t.Fatalf("expected a to resolve to parent, got %v (%v)", owner, err)
	}
}

func TestGlobalEnvironmentConstants(t *testing.T) {
	printFn := NativeFunctionValue{Name: "print", Arity: -1, Impl: func(*NativeCallContext, []Value) (Value, error) {
		return Null, nil
	}}
	env := NewGlobalEnvironment(printFn)

	want := []string{"false", "null", "print", "true"}
	keys := env.Keys()
	if len(keys) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, keys)
		}
		if !env.IsConstant(want[i]) {
			t.Fatalf("expected %s to be constant", want[i])
		}
	}

	val, _ := env.Lookup("true")
	if bv, ok := val.(BoolValue); !ok || !bv.Val {
		t.Fatalf("unexpected true binding %#v", val)
	}
	val, _ = env.Lookup("null")
	if val.Kind() != KindNull {
		t.Fatalf("unexpected null binding %#v", val)
	}
	if _, err := env.Assign("true", False); err == nil {
		t.Fatalf("expected assigning to true to fail")
	}
	if env.Extend().Parent() != env {
		t.Fatalf("expected child parent to be the global environment")
	}
}

func TestEnvironmentSnapshotIsCopy(t *testing.T) {
	env := NewEnvironment(nil)
	_, _ = env.Declare("a", NumberValue{Val: 1}, false)
	snap := env.Snapshot()
	snap["b"] = Null
	if env.Has("b") {
		t.Fatalf("snapshot mutation leaked into environment")
	}
}
