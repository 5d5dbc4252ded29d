package interpreter

import (
	"math"

	"quill/interpreter-go/pkg/ast"
	"quill/interpreter-go/pkg/errors"
	"quill/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateMemberAccess(expr *ast.MemberExpr, env *runtime.Environment) (runtime.Value, error) {
	container, err := i.evaluate(expr.Object, env)
	if err != nil {
		return nil, err
	}
	key, err := i.memberKey(expr, env)
	if err != nil {
		return nil, err
	}
	switch v := container.(type) {
	case *runtime.ObjectValue:
		name, err := objectKey(expr, key)
		if err != nil {
			return nil, err
		}
		if val, ok := v.Get(name); ok {
			return val, nil
		}
		return runtime.Null, nil
	case *runtime.ListValue:
		idx, err := listIndex(expr, key, len(v.Elements))
		if err != nil {
			return nil, err
		}
		return v.Elements[idx], nil
	default:
		return nil, errors.NewInterpretError(expr.Span().Start, "cannot access member of %s", container.Kind())
	}
}

func (i *Interpreter) assignMember(target *ast.MemberExpr, valueExpr ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	container, err := i.evaluate(target.Object, env)
	if err != nil {
		return nil, err
	}
	key, err := i.memberKey(target, env)
	if err != nil {
		return nil, err
	}
	value, err := i.evaluate(valueExpr, env)
	if err != nil {
		return nil, err
	}
	switch v := container.(type) {
	case *runtime.ObjectValue:
		name, err := objectKey(target, key)
		if err != nil {
			return nil, err
		}
		v.Set(name, value)
		return value, nil
	case *runtime.ListValue:
		idx, err := listIndex(target, key, len(v.Elements))
		if err != nil {
			return nil, err
		}
		v.Elements[idx] = value
		return value, nil
	default:
		return nil, errors.NewInterpretError(target.Span().Start, "cannot assign member of %s", container.Kind())
	}
}

// memberKey returns the literal property name for obj.key and the evaluated
// key for obj[expr].
func (i *Interpreter) memberKey(expr *ast.MemberExpr, env *runtime.Environment) (runtime.Value, error) {
	if expr.Computed {
		return i.evaluate(expr.Property, env)
	}
	ident, ok := expr.Property.(*ast.Identifier)
	if !ok {
		return nil, errors.NewInterpretError(expr.Property.Span().Start, "member name must be an identifier, found %s", expr.Property.NodeType())
	}
	return runtime.StringValue{Val: ident.Symbol}, nil
}

func objectKey(expr *ast.MemberExpr, key runtime.Value) (string, error) {
	switch k := key.(type) {
	case runtime.StringValue:
		return k.Val, nil
	case runtime.NumberValue:
		return numberText(k.Val), nil
	default:
		return "", errors.NewInterpretError(expr.Span().Start, "object key must be a string or number, found %s", key.Kind())
	}
}

func listIndex(expr *ast.MemberExpr, key runtime.Value, length int) (int, error) {
	num, ok := key.(runtime.NumberValue)
	if !ok {
		return 0, errors.NewInterpretError(expr.Span().Start, "list index must be a number, found %s", key.Kind())
	}
	if num.Val != math.Trunc(num.Val) {
		return 0, errors.NewInterpretError(expr.Span().Start, "list index must be an integer, found %s", numberText(num.Val))
	}
	if num.Val < 0 || num.Val >= float64(length) {
		return 0, errors.NewInterpretError(expr.Span().Start, "list index %s out of range (length %d)", numberText(num.Val), length)
	}
	return int(num.Val), nil
}
