package interpreter

import (
	"math"

	"quill/interpreter-go/pkg/ast"
	"quill/interpreter-go/pkg/errors"
	"quill/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateBinaryExpr(expr *ast.BinaryExpr, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluate(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right, env)
	if err != nil {
		return nil, err
	}
	lhs, lok := left.(runtime.NumberValue)
	rhs, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return runtime.Null, nil
	}
	result, ok := applyNumericOperator(expr.Operator, lhs.Val, rhs.Val)
	if !ok {
		return nil, errors.NewInterpretError(expr.Span().Start, "unsupported binary operator %q", expr.Operator)
	}
	return runtime.NumberValue{Val: result}, nil
}

// Division and modulo by zero yield Inf/NaN rather than an error.
func applyNumericOperator(op string, l, r float64) (float64, bool) {
	switch op {
	case "+":
		return l + r, true
	case "-":
		return l - r, true
	case "*":
		return l * r, true
	case "/":
		return l / r, true
	case "%":
		return math.Mod(l, r), true
	default:
		return 0, false
	}
}

func (i *Interpreter) evaluateAssignment(assign *ast.AssignmentExpr, env *runtime.Environment) (runtime.Value, error) {
	switch target := assign.Assignee.(type) {
	case *ast.Identifier:
		value, err := i.evaluate(assign.Value, env)
		if err != nil {
			return nil, err
		}
		val, err := env.Assign(target.Symbol, value)
		if err != nil {
			return nil, errors.WithPosition(err, target.Span().Start)
		}
		return val, nil
	case *ast.MemberExpr:
		return i.assignMember(target, assign.Value, env)
	default:
		return nil, errors.NewInterpretError(assign.Span().Start, "invalid assignment target %s", assign.Assignee.NodeType())
	}
}

func (i *Interpreter) evaluateObjectLiteral(lit *ast.ObjectLiteral, env *runtime.Environment) (runtime.Value, error) {
	obj := runtime.NewObject()
	for _, prop := range lit.Properties {
		if prop.IsShorthand() {
			val, err := env.Lookup(prop.Key)
			if err != nil {
				return nil, errors.WithPosition(err, prop.Span().Start)
			}
			obj.Set(prop.Key, val)
			continue
		}
		val, err := i.evaluate(prop.Value, env)
		if err != nil {
			return nil, err
		}
		obj.Set(prop.Key, val)
	}
	return obj, nil
}

func (i *Interpreter) evaluateListLiteral(lit *ast.ListLiteral, env *runtime.Environment) (runtime.Value, error) {
	elements := make([]runtime.Value, 0, len(lit.Items))
	for _, item := range lit.Items {
		val, err := i.evaluate(item, env)
		if err != nil {
			return nil, err
		}
		elements = append(elements, val)
	}
	return &runtime.ListValue{Elements: elements}, nil
}

func (i *Interpreter) evaluateCallExpr(call *ast.CallExpr, env *runtime.Environment) (runtime.Value, error) {
	callee, err := i.evaluate(call.Caller, env)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(runtime.NativeFunctionValue)
	if !ok {
		return nil, errors.NewInterpretError(call.Span().Start, "cannot call a value of kind %s", callee.Kind())
	}
	args := make([]runtime.Value, 0, len(call.Args))
	for _, arg := range call.Args {
		val, err := i.evaluate(arg, env)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	if fn.Arity >= 0 && len(args) != fn.Arity {
		return nil, errors.NewInterpretError(call.Span().Start, "%s expects %d arguments, got %d", fn.Name, fn.Arity, len(args))
	}
	result, err := fn.Impl(&runtime.NativeCallContext{Env: env, Out: i.out}, args)
	if err != nil {
		return nil, errors.WithPosition(err, call.Span().Start)
	}
	if result == nil {
		return runtime.Null, nil
	}
	return result, nil
}
