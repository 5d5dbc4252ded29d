package interpreter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"quill/interpreter-go/pkg/runtime"
)

// circularMarker replaces a container that already appears on the path from
// the root being printed.
const circularMarker = "[Circular]"

// FormatValue renders a value the way the CLI and print show it. Strings are
// bare at the top level and quoted inside containers.
func FormatValue(val runtime.Value) string {
	if s, ok := val.(runtime.StringValue); ok {
		return s.Val
	}
	return valueToString(val, make(map[runtime.Value]struct{}))
}

// valueToString tracks the containers currently being printed in active so
// self-referencing objects and lists terminate. Shared but acyclic children
// print in full.
func valueToString(val runtime.Value, active map[runtime.Value]struct{}) string {
	switch val.(type) {
	case *runtime.ListValue, *runtime.ObjectValue:
		if _, seen := active[val]; seen {
			return circularMarker
		}
		active[val] = struct{}{}
		defer delete(active, val)
	}

	switch v := val.(type) {
	case nil:
		return "null"
	case runtime.NullValue:
		return "null"
	case runtime.NumberValue:
		return numberText(v.Val)
	case runtime.StringValue:
		return strconv.Quote(v.Val)
	case runtime.BoolValue:
		if v.Val {
			return "true"
		}
		return "false"
	case *runtime.ListValue:
		parts := make([]string, 0, len(v.Elements))
		for _, el := range v.Elements {
			parts = append(parts, valueToString(el, active))
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
	case *runtime.ObjectValue:
		if v.Len() == 0 {
			return "{}"
		}
		parts := make([]string, 0, v.Len())
		for _, key := range v.Keys() {
			field, _ := v.Get(key)
			parts = append(parts, fmt.Sprintf("%s: %s", key, valueToString(field, active)))
		}
		return fmt.Sprintf("{ %s }", strings.Join(parts, ", "))
	case runtime.NativeFunctionValue:
		return fmt.Sprintf("<native fn %s>", v.Name)
	default:
		return fmt.Sprintf("<%s>", val.Kind())
	}
}

// numberText prints integral values without a fractional part and everything
// else in shortest round-trip form.
func numberText(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'g', -1, 64)
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
