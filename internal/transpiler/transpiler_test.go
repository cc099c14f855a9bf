package transpiler

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTranspiler(t *testing.T, script string) *Transpiler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "py2many.sh")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755)
	assert.NoError(t, err)
	return &Transpiler{Command: []string{path}}
}

func TestLanguagesTable(t *testing.T) {
	assert.Len(t, Languages, 11)
	for target := range Languages {
		_, ok := extensions[target]
		assert.True(t, ok, target)
	}

	targets := Targets()
	assert.Len(t, targets, len(Languages))
	assert.True(t, sort.StringsAreSorted(targets))
}

func TestTranspileUnsupportedTarget(t *testing.T) {
	tr := stubTranspiler(t, `echo should-not-run`)
	_, err := tr.Transpile(context.Background(), "print(1)", "cobol", false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported target language")
	assert.Contains(t, err.Error(), "rust")
}

func TestTranspileCollectsGeneratedCode(t *testing.T) {
	// $1 is --<target>, $2 the temp source path
	tr := stubTranspiler(t, `echo transpile ok`+"\n"+`printf 'fn main() {}\n' > "${2%.py}.rs"`)
	result, err := tr.Transpile(context.Background(), "print(1)", "rust", false)
	assert.NoError(t, err)
	assert.Contains(t, result, "=== stdout ===")
	assert.Contains(t, result, "transpile ok")
	assert.Contains(t, result, "=== generated Rust code ===")
	assert.Contains(t, result, "fn main() {}")
}

func TestTranspilePassesLLMFlag(t *testing.T) {
	tr := stubTranspiler(t, `echo "args: $@"`)
	result, err := tr.Transpile(context.Background(), "print(1)", "go", true)
	assert.NoError(t, err)
	assert.Contains(t, result, "--go --llm")
}

func TestExportSMT(t *testing.T) {
	tr := stubTranspiler(t, `printf '(assert (not (= (f x) (g x))))\n' > "${2%.py}.smt"`)
	path, cleanup, err := tr.ExportSMT(context.Background(), "def f(x): return x")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "(assert (not (= (f x) (g x))))")

	cleanup()
	assert.NoFileExists(t, path)
}

func TestExportSMTDocumentNotFound(t *testing.T) {
	tr := stubTranspiler(t, `exit 0`)
	_, _, err := tr.ExportSMT(context.Background(), "def f(x): return x")
	var notFound *DocumentNotFound
	assert.True(t, errors.As(err, &notFound))
}

func TestExportSMTTranspilerFailure(t *testing.T) {
	tr := stubTranspiler(t, `echo "SyntaxError: invalid syntax" >&2`+"\n"+`exit 1`)
	_, _, err := tr.ExportSMT(context.Background(), "def f(x: return x")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SyntaxError")
}

func TestTranspileCleansArtifacts(t *testing.T) {
	tr := stubTranspiler(t, `printf 'fn main() {}\n' > "${2%.py}.rs"`)
	_, err := tr.Transpile(context.Background(), "print(1)", "rust", false)
	assert.NoError(t, err)

	leftovers, err := filepath.Glob(filepath.Join(os.TempDir(), "pyverify-*.py"))
	assert.NoError(t, err)
	assert.Empty(t, leftovers)
	leftovers, err = filepath.Glob(filepath.Join(os.TempDir(), "pyverify-*.rs"))
	assert.NoError(t, err)
	assert.Empty(t, leftovers)
}
