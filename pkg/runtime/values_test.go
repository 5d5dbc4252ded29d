package runtime

import "testing"

func TestObjectValueKeepsInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("b", NumberValue{Val: 1})
	obj.Set("a", NumberValue{Val: 2})
	obj.Set("b", NumberValue{Val: 3})

	keys := obj.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("unexpected key order %v", keys)
	}
	if obj.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", obj.Len())
	}
	val, ok := obj.Get("b")
	if !ok || val.(NumberValue).Val != 3 {
		t.Fatalf("expected overwritten b=3, got %#v", val)
	}
	if obj.Has("c") {
		t.Fatalf("unexpected key c")
	}
	keys[0] = "mutated"
	if obj.Keys()[0] != "b" {
		t.Fatalf("Keys must return a copy")
	}
}

func TestValueKinds(t *testing.T) {
	cases := []struct {
		value Value
		kind  Kind
		name  string
	}{
		{Null, KindNull, "null"},
		{NumberValue{Val: 1}, KindNumber, "number"},
		{StringValue{Val: "s"}, KindString, "string"},
		{Bool(true), KindBool, "boolean"},
		{NewObject(), KindObject, "object"},
		{&ListValue{}, KindList, "list"},
		{NativeFunctionValue{Name: "f"}, KindNativeFunction, "native_function"},
	}
	for _, tc := range cases {
		if tc.value.Kind() != tc.kind {
			t.Fatalf("expected %v, got %v", tc.kind, tc.value.Kind())
		}
		if tc.kind.String() != tc.name {
			t.Fatalf("expected kind name %q, got %q", tc.name, tc.kind.String())
		}
	}
}
