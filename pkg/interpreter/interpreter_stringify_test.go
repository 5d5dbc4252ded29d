package interpreter

import (
	"bytes"
	"math"
	"testing"

	"quill/interpreter-go/pkg/runtime"
)

func TestFormatValue(t *testing.T) {
	obj := runtime.NewObject()
	obj.Set("a", runtime.NumberValue{Val: 1})
	obj.Set("b", runtime.StringValue{Val: "x"})
	obj.Set("c", &runtime.ListValue{Elements: []runtime.Value{runtime.True, runtime.Null}})

	cases := []struct {
		val  runtime.Value
		want string
	}{
		{runtime.Null, "null"},
		{runtime.NumberValue{Val: 5}, "5"},
		{runtime.NumberValue{Val: 2.5}, "2.5"},
		{runtime.NumberValue{Val: -0.125}, "-0.125"},
		{runtime.NumberValue{Val: 1e21}, "1e+21"},
		{runtime.NumberValue{Val: math.Inf(-1)}, "-Infinity"},
		{runtime.NumberValue{Val: math.NaN()}, "NaN"},
		{runtime.StringValue{Val: "plain"}, "plain"},
		{runtime.False, "false"},
		{obj, `{ a: 1, b: "x", c: [true, null] }`},
		{runtime.NewObject(), "{}"},
		{&runtime.ListValue{}, "[]"},
		{runtime.NativeFunctionValue{Name: "print"}, "<native fn print>"},
	}
	for _, tc := range cases {
		if got := FormatValue(tc.val); got != tc.want {
			t.Fatalf("FormatValue(%#v) = %q, want %q", tc.val, got, tc.want)
		}
	}
}

func TestFormatValueSelfReferences(t *testing.T) {
	var out bytes.Buffer
	interp := New(WithOutput(&out))
	env := interp.GlobalEnvironment()

	val, err := evalSource(t, interp, env, "let o = {n: 1}; o.self = o; print(o); o")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "{ n: 1, self: [Circular] }\n" {
		t.Fatalf("unexpected print output %q", out.String())
	}
	if got := FormatValue(val); got != "{ n: 1, self: [Circular] }" {
		t.Fatalf("unexpected formatted object %q", got)
	}

	val, err = evalSource(t, interp, env, "let xs = [1, 2]; xs[0] = xs; xs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatValue(val); got != "[[Circular], 2]" {
		t.Fatalf("unexpected formatted list %q", got)
	}

	val, err = evalSource(t, interp, env, "let inner = {k: 1}; let pair = [inner, inner, {o}]; pair")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[{ k: 1 }, { k: 1 }, { o: { n: 1, self: [Circular] } }]"
	if got := FormatValue(val); got != want {
		t.Fatalf("shared children should print in full: got %q, want %q", got, want)
	}
}
