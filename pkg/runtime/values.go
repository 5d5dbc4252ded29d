package runtime

import (
	"fmt"
	"io"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindBool
	KindObject
	KindList
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	case KindNativeFunction:
		return "native_function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

//-----------------------------------------------------------------------------
// Containers
//-----------------------------------------------------------------------------

// ObjectValue is a string-keyed property bag. Keys keep insertion order.
type ObjectValue struct {
	fields map[string]Value
	order  []string
}

func NewObject() *ObjectValue {
	return &ObjectValue{fields: make(map[string]Value)}
}

func (v *ObjectValue) Kind() Kind { return KindObject }

// Get returns the value stored under key.
func (v *ObjectValue) Get(key string) (Value, bool) {
	val, ok := v.fields[key]
	return val, ok
}

// Set inserts or overwrites key. New keys go to the end of the order.
func (v *ObjectValue) Set(key string, val Value) {
	if _, ok := v.fields[key]; !ok {
		v.order = append(v.order, key)
	}
	v.fields[key] = val
}

func (v *ObjectValue) Has(key string) bool {
	_, ok := v.fields[key]
	return ok
}

// Keys returns the keys in insertion order.
func (v *ObjectValue) Keys() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

func (v *ObjectValue) Len() int {
	return len(v.order)
}

type ListValue struct {
	Elements []Value
}

func (v *ListValue) Kind() Kind { return KindList }

//-----------------------------------------------------------------------------
// Native functions
//-----------------------------------------------------------------------------

// NativeCallContext is handed to every native invocation.
type NativeCallContext struct {
	Env *Environment
	Out io.Writer
}

type NativeFunc func(*NativeCallContext, []Value) (Value, error)

// NativeFunctionValue is a host callback exposed to scripts. Arity -1 accepts
// any number of arguments.
type NativeFunctionValue struct {
	Name  string
	Arity int
	Impl  NativeFunc
}

func (v NativeFunctionValue) Kind() Kind { return KindNativeFunction }

//-----------------------------------------------------------------------------
// Utility helpers
//-----------------------------------------------------------------------------

// Truthy constants bound in every global environment.
var (
	Null  Value = NullValue{}
	True  Value = BoolValue{Val: true}
	False Value = BoolValue{Val: false}
)

// Bool maps a Go bool onto the shared boolean values.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}
