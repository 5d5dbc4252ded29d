package driver

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/interpreter-go/pkg/errors"
	"quill/interpreter-go/pkg/interpreter"
	"quill/interpreter-go/pkg/runtime"
)

func TestLoadSource(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.ql", "let x = 1;")

	file, err := LoadSource(path)
	require.NoError(t, err)
	assert.Equal(t, "main.ql", file.Name)
	assert.Equal(t, path, file.Path)
	assert.Equal(t, "let x = 1;", file.Content)

	_, err = LoadSource(filepath.Join(dir, "nope.ql"))
	require.Error(t, err)
}

func TestEvaluatePreludeSharesEnvironment(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.ql", "let base = 40;")
	extra := writeFile(t, dir, "extra.ql", "const answer = base + 2;")
	main := writeFile(t, dir, "main.ql", "answer")

	interp := interpreter.New()
	env := interp.GlobalEnvironment()
	require.NoError(t, EvaluatePrelude(interp, env, []string{base, extra}))

	file, err := LoadSource(main)
	require.NoError(t, err)
	val, err := EvaluateFile(interp, env, file)
	require.NoError(t, err)
	assert.Equal(t, runtime.NumberValue{Val: 42}, val)
	assert.True(t, env.IsConstant("answer"))
}

func TestEvaluatePreludeKeepsErrorKind(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.ql", "let s = \"open")

	interp := interpreter.New()
	err := EvaluatePrelude(interp, interp.GlobalEnvironment(), []string{bad})
	var te *errors.TokenizeError
	require.True(t, stderrors.As(err, &te), "got %v", err)
	assert.Contains(t, err.Error(), "prelude bad.ql")
}
