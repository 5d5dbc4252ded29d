package runtime

import (
	"sort"

	"quill/interpreter-go/pkg/errors"
)

// Environment provides lexical scoping for Quill runtime values.
type Environment struct {
	values    map[string]Value
	constants map[string]struct{}
	parent    *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		constants: make(map[string]struct{}),
		parent:    parent,
	}
}

// NewGlobalEnvironment creates a root scope holding the constants true, false
// and null plus each native function under its own name.
func NewGlobalEnvironment(natives ...NativeFunctionValue) *Environment {
	env := NewEnvironment(nil)
	env.mustDeclareConst("true", True)
	env.mustDeclareConst("false", False)
	env.mustDeclareConst("null", Null)
	for _, fn := range natives {
		env.mustDeclareConst(fn.Name, fn)
	}
	return env
}

func (e *Environment) mustDeclareConst(name string, value Value) {
	if _, err := e.Declare(name, value, true); err != nil {
		panic(err)
	}
}

// Parent exposes the lexical parent (nil when global).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Declare binds name in this scope. Redeclaring a name of this scope fails;
// shadowing a parent's binding does not.
func (e *Environment) Declare(name string, value Value, constant bool) (Value, error) {
	if e.Has(name) {
		return nil, errors.NewVarExistsError(name, "cannot declare variable '%s' as it is already defined", name)
	}
	e.values[name] = value
	if constant {
		e.constants[name] = struct{}{}
	}
	return value, nil
}

// Assign updates an existing binding in the first scope where it appears.
func (e *Environment) Assign(name string, value Value) (Value, error) {
	owner, err := e.Resolve(name)
	if err != nil {
		return nil, err
	}
	if owner.IsConstant(name) {
		return nil, errors.NewVarExistsError(name, "cannot reassign constant variable '%s'", name)
	}
	owner.values[name] = value
	return value, nil
}

// Lookup retrieves a binding, searching outward through the scope chain.
func (e *Environment) Lookup(name string) (Value, error) {
	owner, err := e.Resolve(name)
	if err != nil {
		return nil, err
	}
	return owner.values[name], nil
}

// Resolve returns the nearest scope that binds name.
func (e *Environment) Resolve(name string) (*Environment, error) {
	for env := e; env != nil; env = env.parent {
		if env.Has(name) {
			return env, nil
		}
	}
	return nil, errors.NewResolutionError(name, "cannot resolve '%s' as it is undefined", name)
}

// Has reports whether name is bound in this scope, ignoring parents.
func (e *Environment) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// IsConstant reports whether name is a constant binding of this scope.
func (e *Environment) IsConstant(name string) bool {
	_, ok := e.constants[name]
	return ok
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys returns the bindings in sorted order (useful for determinism in tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extend creates a new child scope.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}
