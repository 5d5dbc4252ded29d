package interpreter

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"quill/interpreter-go/pkg/errors"
	"quill/interpreter-go/pkg/runtime"
	"quill/interpreter-go/pkg/source"
)

// Natives raise errors without a position; the call site supplies it.
var noPos source.Position

var nativeTable = []runtime.NativeFunctionValue{
	{Name: "print", Arity: -1, Impl: nativePrint},
	{Name: "max", Arity: -1, Impl: nativeExtremum("max", func(a, b float64) bool { return a > b })},
	{Name: "min", Arity: -1, Impl: nativeExtremum("min", func(a, b float64) bool { return a < b })},
	{Name: "len", Arity: 1, Impl: nativeLen},
	{Name: "keys", Arity: 1, Impl: nativeKeys},
	{Name: "time", Arity: 0, Impl: nativeTime},
	{Name: "formatNumber", Arity: -1, Impl: nativeFormatNumber},
}

// NativeNames lists every native function name in registration order.
func NativeNames() []string {
	names := make([]string, 0, len(nativeTable))
	for _, fn := range nativeTable {
		names = append(names, fn.Name)
	}
	return names
}

// IsNative reports whether name is a registered native function.
func IsNative(name string) bool {
	for _, fn := range nativeTable {
		if fn.Name == name {
			return true
		}
	}
	return false
}

func selectNatives(names []string) []runtime.NativeFunctionValue {
	if len(names) == 0 {
		out := make([]runtime.NativeFunctionValue, len(nativeTable))
		copy(out, nativeTable)
		return out
	}
	allowed := make(map[string]struct{}, len(names))
	for _, name := range names {
		allowed[name] = struct{}{}
	}
	out := make([]runtime.NativeFunctionValue, 0, len(names))
	for _, fn := range nativeTable {
		if _, ok := allowed[fn.Name]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func nativePrint(ctx *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, FormatValue(arg))
	}
	if ctx.Out != nil {
		if _, err := fmt.Fprintln(ctx.Out, strings.Join(parts, " ")); err != nil {
			return nil, errors.NewInterpretError(noPos, "print: %v", err)
		}
	}
	return runtime.Null, nil
}

func nativeExtremum(name string, better func(a, b float64) bool) runtime.NativeFunc {
	return func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.Null, nil
		}
		var best float64
		for idx, arg := range args {
			num, ok := arg.(runtime.NumberValue)
			if !ok {
				return nil, errors.NewInterpretError(noPos, "%s expects numbers, argument %d is %s", name, idx+1, arg.Kind())
			}
			if idx == 0 || better(num.Val, best) {
				best = num.Val
			}
		}
		return runtime.NumberValue{Val: best}, nil
	}
}

func nativeLen(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	switch v := args[0].(type) {
	case *runtime.ListValue:
		return runtime.NumberValue{Val: float64(len(v.Elements))}, nil
	case runtime.StringValue:
		return runtime.NumberValue{Val: float64(utf8.RuneCountInString(v.Val))}, nil
	case *runtime.ObjectValue:
		return runtime.NumberValue{Val: float64(v.Len())}, nil
	default:
		return nil, errors.NewInterpretError(noPos, "len is not defined for %s", args[0].Kind())
	}
}

func nativeKeys(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	obj, ok := args[0].(*runtime.ObjectValue)
	if !ok {
		return nil, errors.NewInterpretError(noPos, "keys expects an object, got %s", args[0].Kind())
	}
	keys := obj.Keys()
	elements := make([]runtime.Value, 0, len(keys))
	for _, key := range keys {
		elements = append(elements, runtime.StringValue{Val: key})
	}
	return &runtime.ListValue{Elements: elements}, nil
}

func nativeTime(_ *runtime.NativeCallContext, _ []runtime.Value) (runtime.Value, error) {
	return runtime.NumberValue{Val: float64(time.Now().UnixMilli())}, nil
}

// nativeFormatNumber renders n with locale digit grouping; the locale
// defaults to English.
func nativeFormatNumber(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, errors.NewInterpretError(noPos, "formatNumber expects 1 or 2 arguments, got %d", len(args))
	}
	num, ok := args[0].(runtime.NumberValue)
	if !ok {
		return nil, errors.NewInterpretError(noPos, "formatNumber expects a number, got %s", args[0].Kind())
	}
	locale := "en"
	if len(args) == 2 {
		str, ok := args[1].(runtime.StringValue)
		if !ok {
			return nil, errors.NewInterpretError(noPos, "formatNumber locale must be a string, got %s", args[1].Kind())
		}
		locale = str.Val
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.NewInterpretError(noPos, "formatNumber: unknown locale %q", locale)
	}
	p := message.NewPrinter(tag)
	return runtime.StringValue{Val: p.Sprintf("%v", number.Decimal(num.Val))}, nil
}
