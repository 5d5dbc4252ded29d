package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"quill/interpreter-go/pkg/driver"
	"quill/interpreter-go/pkg/interpreter"
	"quill/interpreter-go/pkg/lexer"
	"quill/interpreter-go/pkg/parser"
	"quill/interpreter-go/pkg/runtime"
)

const cliToolVersion = "quill 0.1.0"

const usage = `usage: quill [flags] [command] [file]

commands:
  run [file]     evaluate a script (defaults to the manifest entry)
  <file>         shorthand for run <file>
  repl           start the interactive prompt (default with no arguments)
  ast <file>     print the parsed program as JSON
  tokens <file>  print the token stream
  version        print the version

flags:
`

type options struct {
	manifestPath string
	verbose      bool
	showVersion  bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("quill", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var opts options
	fs.StringVar(&opts.manifestPath, "manifest", "", "path to quill.yml (default: search upward from the script)")
	fs.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&opts.showVersion, "version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.showVersion {
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	}

	logger := newLogger(opts.verbose || os.Getenv("QUILL_DEBUG") != "")
	rest := fs.Args()
	if len(rest) == 0 {
		return runRepl(opts, logger)
	}

	switch rest[0] {
	case "help":
		fs.Usage()
		return 0
	case "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "repl":
		return runRepl(opts, logger)
	case "run":
		return runEntry(opts, logger, rest[1:])
	case "ast":
		return withSingleFile("ast", rest[1:], dumpAST)
	case "tokens":
		return withSingleFile("tokens", rest[1:], dumpTokens)
	default:
		return runEntry(opts, logger, rest)
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func withSingleFile(cmd string, args []string, fn func(path string) int) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "quill %s requires exactly one source file\n", cmd)
		return 2
	}
	return fn(args[0])
}

func runEntry(opts options, logger *slog.Logger, args []string) int {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return 2
	}

	searchDir := "."
	if len(args) == 1 {
		searchDir = filepath.Dir(args[0])
	}
	manifest, err := resolveManifest(opts.manifestPath, searchDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
		return 1
	}

	entry := ""
	switch {
	case len(args) == 1:
		entry = args[0]
	case manifest != nil && manifest.Entry != "":
		entry = manifest.Entry
	default:
		fmt.Fprintln(os.Stderr, "quill run requires a source file or a manifest with an entry")
		return 2
	}

	interp, err := newSession(manifest, logger, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	file, err := driver.LoadSource(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	logger.Debug("running script", "path", file.Path)
	result, err := driver.EvaluateFile(interp, interp.GlobalEnvironment(), file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", file.Name, err)
		return 1
	}
	if result.Kind() != runtime.KindNull {
		fmt.Fprintln(os.Stdout, interpreter.FormatValue(result))
	}
	return 0
}

// resolveManifest loads the explicit manifest if one was given, otherwise
// the nearest quill.yml above dir. A missing manifest is not an error.
func resolveManifest(explicit, dir string) (*driver.Manifest, error) {
	if explicit != "" {
		return driver.LoadManifest(explicit)
	}
	path, ok, err := driver.FindManifest(dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return driver.LoadManifest(path)
}

// newSession builds an interpreter configured by manifest and evaluates its
// prelude into the global environment.
func newSession(manifest *driver.Manifest, logger *slog.Logger, out io.Writer) (*interpreter.Interpreter, error) {
	opts := []interpreter.Option{
		interpreter.WithOutput(out),
		interpreter.WithLogger(logger),
	}
	var prelude []string
	if manifest != nil {
		logger.Debug("using manifest", "path", manifest.Path, "name", manifest.Name)
		opts = append(opts, manifest.InterpreterOptions()...)
		prelude = manifest.Prelude
	}
	interp := interpreter.New(opts...)
	if err := driver.EvaluatePrelude(interp, interp.GlobalEnvironment(), prelude); err != nil {
		return nil, err
	}
	return interp, nil
}

func dumpAST(path string) int {
	file, err := driver.LoadSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	program, err := parser.ProduceAST(file.Content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", file.Name, err)
		return 1
	}
	return writeJSON(os.Stdout, program)
}

func writeJSON(w io.Writer, v any) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 1
	}
	return 0
}

func dumpTokens(path string) int {
	file, err := driver.LoadSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	tokens, err := lexer.Tokenize(file.Content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", file.Name, err)
		return 1
	}
	for _, tok := range tokens {
		fmt.Fprintf(os.Stdout, "%s\t%s\n", tok.Pos, tok)
	}
	return 0
}
