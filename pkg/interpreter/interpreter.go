package interpreter

import (
	"io"
	"log/slog"
	"os"

	"quill/interpreter-go/pkg/ast"
	"quill/interpreter-go/pkg/errors"
	"quill/interpreter-go/pkg/runtime"
)

// Interpreter drives evaluation of Quill AST nodes.
type Interpreter struct {
	global    *runtime.Environment
	out       io.Writer
	logger    *slog.Logger
	natives   []string
	stepLimit int
	steps     int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput directs the print native to w (os.Stdout by default).
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithLogger installs a logger for debug tracing of top-level statements.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithStepLimit caps the number of nodes one Evaluate call may visit.
// Zero disables the limit.
func WithStepLimit(n int) Option {
	return func(i *Interpreter) { i.stepLimit = n }
}

// WithNatives restricts the global environment to the named natives.
// Unknown names are ignored.
func WithNatives(names ...string) Option {
	return func(i *Interpreter) { i.natives = names }
}

// New returns an interpreter whose global environment holds the constants
// true, false, null and the native function table.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		out:    os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.global = runtime.NewGlobalEnvironment(selectNatives(i.natives)...)
	return i
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// NewEnvironment returns a fresh global environment populated the same way
// as the interpreter's own.
func (i *Interpreter) NewEnvironment() *runtime.Environment {
	return runtime.NewGlobalEnvironment(selectNatives(i.natives)...)
}

// EvaluateProgram executes a program against the global environment.
func (i *Interpreter) EvaluateProgram(program *ast.Program) (runtime.Value, error) {
	return i.Evaluate(program, i.global)
}

// Evaluate executes node against env and returns its value. Any failure
// aborts the whole call.
func (i *Interpreter) Evaluate(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	i.steps = 0
	return i.evaluate(node, env)
}

func (i *Interpreter) evaluate(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	if node == nil {
		return nil, errors.NewInterpretError(ast.ZeroSpan().Start, "cannot evaluate a missing node")
	}
	if i.stepLimit > 0 {
		i.steps++
		if i.steps > i.stepLimit {
			return nil, errors.NewInterpretError(node.Span().Start, "step limit of %d exceeded", i.stepLimit)
		}
	}

	switch n := node.(type) {
	case *ast.Program:
		return i.evaluateProgram(n, env)
	case *ast.VarDeclaration:
		return i.evaluateVarDeclaration(n, env)
	case *ast.NumericLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.Identifier:
		val, err := env.Lookup(n.Symbol)
		if err != nil {
			return nil, errors.WithPosition(err, n.Span().Start)
		}
		return val, nil
	case *ast.BinaryExpr:
		return i.evaluateBinaryExpr(n, env)
	case *ast.AssignmentExpr:
		return i.evaluateAssignment(n, env)
	case *ast.ObjectLiteral:
		return i.evaluateObjectLiteral(n, env)
	case *ast.ListLiteral:
		return i.evaluateListLiteral(n, env)
	case *ast.MemberExpr:
		return i.evaluateMemberAccess(n, env)
	case *ast.CallExpr:
		return i.evaluateCallExpr(n, env)
	default:
		return nil, errors.NewInterpretError(node.Span().Start, "this AST node has not yet been set up for interpretation: <%s>", node.NodeType())
	}
}
