package transpiler

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Languages maps py2many target flags to display names.
var Languages = map[string]string{
	"cpp":    "C++",
	"rust":   "Rust",
	"go":     "Go",
	"kotlin": "Kotlin",
	"dart":   "Dart",
	"julia":  "Julia",
	"nim":    "Nim",
	"vlang":  "V",
	"mojo":   "Mojo",
	"dlang":  "D",
	"zig":    "Zig",
}

var extensions = map[string]string{
	"cpp":    ".cpp",
	"rust":   ".rs",
	"go":     ".go",
	"kotlin": ".kt",
	"dart":   ".dart",
	"julia":  ".jl",
	"nim":    ".nim",
	"vlang":  ".v",
	"mojo":   ".mojo",
	"dlang":  ".d",
	"zig":    ".zig",
}

// Targets returns the supported target flags in stable order.
func Targets() []string {
	targets := make([]string, 0, len(Languages))
	for target := range Languages {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	return targets
}

// DocumentNotFound reports that the transpiler exited without producing
// the expected output file.
type DocumentNotFound struct {
	Path string
}

func (e *DocumentNotFound) Error() string {
	return fmt.Sprintf("transpiler produced no output at %s", e.Path)
}

const DefaultTimeout = 60 * time.Second

// Transpiler wraps the external py2many binary. It is a collaborator, not
// part of the verification core: every call is a bounded subprocess run
// over per-request temp files.
type Transpiler struct {
	Command []string
	Timeout time.Duration
}

func New() *Transpiler {
	return &Transpiler{
		Command: []string{"uvx", "py2many"},
		Timeout: DefaultTimeout,
	}
}

// Transpile translates source to the target language and returns a
// combined report of the transpiler's output and the generated code.
func (t *Transpiler) Transpile(ctx context.Context, source, target string, useLLM bool) (string, error) {
	if _, ok := Languages[target]; !ok {
		return "", errors.Errorf("unsupported target language %q, supported: %s",
			target, strings.Join(Targets(), ", "))
	}

	srcPath, err := writeSource(source)
	if err != nil {
		return "", err
	}
	defer t.cleanup(srcPath)

	args := []string{"--" + target}
	if useLLM {
		args = append(args, "--llm")
	}
	stdout, stderr, err := t.run(ctx, append(args, srcPath))
	if err != nil {
		return "", err
	}

	outPath := strings.TrimSuffix(srcPath, ".py") + extensions[target]
	code, _ := os.ReadFile(outPath)

	var parts []string
	if stdout != "" {
		parts = append(parts, "=== stdout ===\n"+stdout)
	}
	if stderr != "" {
		parts = append(parts, "=== stderr ===\n"+stderr)
	}
	if len(code) > 0 {
		parts = append(parts, fmt.Sprintf("=== generated %s code ===\n%s", Languages[target], code))
	}
	if len(parts) == 0 {
		return "no output generated", nil
	}
	return strings.Join(parts, "\n\n"), nil
}

// ExportSMT runs the transpiler's symbolic export and returns the path of
// the produced SMT-LIB document. The caller releases the artifacts through
// the returned cleanup, which is safe on every exit path.
func (t *Transpiler) ExportSMT(ctx context.Context, source string) (string, func(), error) {
	srcPath, err := writeSource(source)
	if err != nil {
		return "", func() {}, err
	}
	smtPath := strings.TrimSuffix(srcPath, ".py") + ".smt"
	cleanup := func() { t.cleanup(srcPath) }

	if _, stderr, err := t.run(ctx, []string{"--smt", srcPath}); err != nil {
		cleanup()
		return "", func() {}, errors.Wrapf(err, "symbolic export: %s", stderr)
	}
	if _, err := os.Stat(smtPath); err != nil {
		cleanup()
		return "", func() {}, &DocumentNotFound{Path: smtPath}
	}
	return smtPath, cleanup, nil
}

func (t *Transpiler) run(ctx context.Context, args []string) (string, string, error) {
	timeout := t.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	full := append(append([]string{}, t.Command[1:]...), args...)
	cmd := exec.CommandContext(runCtx, t.Command[0], full...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debugf("running %s %s", t.Command[0], strings.Join(full, " "))
	err := cmd.Run()
	if runCtx.Err() == context.DeadlineExceeded {
		return "", "", errors.Errorf("transpiler timed out after %s", timeout)
	}
	if err != nil {
		return "", "", errors.Wrapf(err, "transpiler: %s", strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), stderr.String(), nil
}

func writeSource(source string) (string, error) {
	f, err := os.CreateTemp("", "pyverify-*.py")
	if err != nil {
		return "", errors.Wrap(err, "create source file")
	}
	if _, err := f.WriteString(source); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", errors.Wrap(err, "write source file")
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", errors.Wrap(err, "close source file")
	}
	return f.Name(), nil
}

// cleanup removes the source file and any generated siblings. Failures are
// logged and ignored; they never fail the request.
func (t *Transpiler) cleanup(srcPath string) {
	base := strings.TrimSuffix(srcPath, ".py")
	paths := []string{srcPath, base + ".smt"}
	for _, ext := range extensions {
		paths = append(paths, base+ext)
	}
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Warnf("cleanup of %s failed: %v", path, err)
		}
	}
}
