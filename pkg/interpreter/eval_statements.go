package interpreter

import (
	"quill/interpreter-go/pkg/ast"
	"quill/interpreter-go/pkg/errors"
	"quill/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateProgram(program *ast.Program, env *runtime.Environment) (runtime.Value, error) {
	var last runtime.Value = runtime.Null
	for idx, stmt := range program.Body {
		i.logger.Debug("evaluating statement", "index", idx, "kind", string(stmt.NodeType()), "pos", stmt.Span().Start.String())
		val, err := i.evaluate(stmt, env)
		if err != nil {
			return nil, err
		}
		last = val
	}
	return last, nil
}

func (i *Interpreter) evaluateVarDeclaration(decl *ast.VarDeclaration, env *runtime.Environment) (runtime.Value, error) {
	if env.Has(decl.Identifier) {
		err := errors.NewVarExistsError(decl.Identifier, "cannot declare variable '%s' as it is already defined", decl.Identifier)
		return nil, errors.WithPosition(err, decl.Span().Start)
	}
	var value runtime.Value = runtime.Null
	if decl.Value != nil {
		val, err := i.evaluate(decl.Value, env)
		if err != nil {
			return nil, err
		}
		value = val
	}
	val, err := env.Declare(decl.Identifier, value, decl.Constant)
	if err != nil {
		return nil, errors.WithPosition(err, decl.Span().Start)
	}
	return val, nil
}
