package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"quill/interpreter-go/pkg/interpreter"
)

// ManifestFileName is the project file looked up by FindManifest.
const ManifestFileName = "quill.yml"

// Manifest represents the parsed contents of quill.yml.
type Manifest struct {
	Path    string
	Dir     string
	Name    string
	Entry   string
	Prelude []string
	Natives []string
	Limits  Limits
}

// Limits bounds evaluation of scripts run under a manifest.
type Limits struct {
	Steps int
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	return "manifest validation failed:\n- " + strings.Join(e.Issues, "\n- ")
}

// LoadManifest parses quill.yml from disk, returning a validated manifest
// whose paths are absolute.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

// FindManifest walks from dir towards the filesystem root and returns the
// first quill.yml it sees. ok is false when none exists.
func FindManifest(dir string) (path string, ok bool, err error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", false, fmt.Errorf("manifest: resolve %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(current, ManifestFileName)
		info, statErr := os.Stat(candidate)
		if statErr == nil && !info.IsDir() {
			return candidate, true, nil
		}
		if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("manifest: stat %s: %w", candidate, statErr)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false, nil
		}
		current = parent
	}
}

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_\-]*$`)

func (m *Manifest) validate() error {
	var errs ValidationError
	switch {
	case m.Name == "":
		errs.Issues = append(errs.Issues, "name must be provided")
	case !namePattern.MatchString(m.Name):
		errs.Issues = append(errs.Issues, fmt.Sprintf("name %q must start with a letter or underscore and contain only letters, digits, '_' or '-'", m.Name))
	}
	if m.Entry != "" {
		if issue := checkScript("entry", m.Entry); issue != "" {
			errs.Issues = append(errs.Issues, issue)
		}
	}
	for i, path := range m.Prelude {
		if issue := checkScript(fmt.Sprintf("prelude[%d]", i), path); issue != "" {
			errs.Issues = append(errs.Issues, issue)
		}
	}
	seen := make(map[string]struct{}, len(m.Natives))
	for _, name := range m.Natives {
		if !interpreter.IsNative(name) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("natives: unknown native function %q", name))
		}
		if _, dup := seen[name]; dup {
			errs.Issues = append(errs.Issues, fmt.Sprintf("natives: %q listed twice", name))
		}
		seen[name] = struct{}{}
	}
	if m.Limits.Steps < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("limits.steps must not be negative (got %d)", m.Limits.Steps))
	}

	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func checkScript(field, path string) string {
	info, err := os.Stat(path)
	switch {
	case err != nil && errors.Is(err, os.ErrNotExist):
		return fmt.Sprintf("%s: %s does not exist", field, path)
	case err != nil:
		return fmt.Sprintf("%s: %v", field, err)
	case info.IsDir():
		return fmt.Sprintf("%s: %s is a directory", field, path)
	default:
		return ""
	}
}

// InterpreterOptions translates the manifest's natives and limits into
// interpreter options.
func (m *Manifest) InterpreterOptions() []interpreter.Option {
	var opts []interpreter.Option
	if len(m.Natives) > 0 {
		opts = append(opts, interpreter.WithNatives(m.Natives...))
	}
	if m.Limits.Steps > 0 {
		opts = append(opts, interpreter.WithStepLimit(m.Limits.Steps))
	}
	return opts
}

type manifestFile struct {
	Name    string     `yaml:"name"`
	Entry   string     `yaml:"entry"`
	Prelude stringList `yaml:"prelude"`
	Natives stringList `yaml:"natives"`
	Limits  limitsYAML `yaml:"limits"`
}

type limitsYAML struct {
	Steps int `yaml:"steps"`
}

type stringList []string

func (mf manifestFile) toManifest(path string) *Manifest {
	dir := filepath.Dir(path)
	result := &Manifest{
		Path:    path,
		Dir:     dir,
		Name:    strings.TrimSpace(mf.Name),
		Natives: mf.Natives.trimmed(),
		Limits:  Limits{Steps: mf.Limits.Steps},
	}
	if entry := strings.TrimSpace(mf.Entry); entry != "" {
		result.Entry = resolvePath(dir, entry)
	}
	for _, item := range mf.Prelude.trimmed() {
		result.Prelude = append(result.Prelude, resolvePath(dir, item))
	}
	return result
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}

// trimmed drops blank entries and surrounding whitespace.
func (l stringList) trimmed() []string {
	var out []string
	for _, item := range l {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// UnmarshalYAML accepts either a single string or a sequence of strings.
func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = stringList{value.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return fmt.Errorf("manifest: line %d: %w", value.Line, err)
		}
		*l = items
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	default:
		return fmt.Errorf("manifest: line %d: expected a string or a list of strings, found %s", value.Line, value.ShortTag())
	}
}
