package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/doxygen2md/internal/testutil"
)

func fixtureDir(t *testing.T) string {
	t.Helper()
	return testutil.ArchiveDir(t, testutil.Fixture("postgres.txtar"))
}

func runOK(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, run(args, &buf))
	return buf.String()
}

func TestConvertDirectory(t *testing.T) {
	out := runOK(t, fixtureDir(t))
	assert.True(t, strings.HasPrefix(out, "# namespace `db::postgres` {#namespacedb_1_1postgres}\n"))
	assert.Contains(t, out, "# class `db::postgres::Connection` {#classdb_1_1postgres_1_1_connection}")
	assert.Contains(t, out, "# struct `db::postgres::Settings`")
	assert.Contains(t, out, "#### `public static int Count() const`")
	assert.Contains(t, out, "```cpp\ncnx.execute(\"SELECT 1\");\n```")
}

func TestOutputFlagWritesFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "docs", "api.md")
	require.NoError(t, run([]string{"-o", target, fixtureDir(t)}, io.Discard))
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# class `db::postgres::Result`")
}

func TestFlags(t *testing.T) {
	out := runOK(t, "--anchors=false", "-l", "c++", fixtureDir(t))
	assert.NotContains(t, out, "{#")
	assert.Contains(t, out, "```c++\n")
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "doxygen2md.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
anchors: false
compound:
  members:
    filter: [private-func, private-attrib]
  compounds:
    filter: [namespace, class]
`), 0o644))

	out := runOK(t, "-c", cfg, fixtureDir(t))
	assert.NotContains(t, out, "{#")
	assert.Contains(t, out, "#### `private void reset()`")
	assert.Contains(t, out, "#### `private mutable void * handle_`")
	assert.NotContains(t, out, "Count()")
	assert.NotContains(t, out, "# struct")

	// Flags set on the command line win over the file.
	out = runOK(t, "-c", cfg, "-a", fixtureDir(t))
	assert.Contains(t, out, "{#classdb_1_1postgres_1_1_connection_1a08}")
}

func TestDefaultConfigFile(t *testing.T) {
	dir := fixtureDir(t)
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(defaultConfigFile, []byte("anchors: false\n"), 0o644))
	out := runOK(t, dir)
	assert.NotContains(t, out, "{#")
}

func TestTemplatesFlag(t *testing.T) {
	tpl := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tpl, "namespace.md"), []byte("NS {{.FullName}}\n"), 0o644))
	out := runOK(t, "-t", tpl, fixtureDir(t))
	assert.True(t, strings.HasPrefix(out, "NS db::postgres\n"))
	assert.Contains(t, out, "# class `db::postgres::Connection`")
}

func TestErrors(t *testing.T) {
	err := run([]string{filepath.Join(t.TempDir(), "missing")}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading index")

	err = run([]string{"a", "b"}, io.Discard)
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("compound:\n  members:\n    filter: [public-types]\n"), 0o644))
	err = run([]string{"-c", bad, fixtureDir(t)}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "public-types")
}

func TestNoArgumentsWithoutDoxyfilePrintsHelp(t *testing.T) {
	chdir(t, t.TempDir())
	out := runOK(t)
	assert.Contains(t, out, "doxygen2md [flags] [doxygen-xml-directory]")
}

func TestNoArgumentsRunsDoxyfile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in for doxygen")
	}
	xml := fixtureDir(t)
	bin := t.TempDir()
	script := `#!/bin/sh
out=$(sed -n 's/^OUTPUT_DIRECTORY = "\(.*\)"$/\1/p')
mkdir -p "$out/xml" && cp -R '` + xml + `/.' "$out/xml/"
`
	require.NoError(t, os.WriteFile(filepath.Join(bin, "doxygen"), []byte(script), 0o755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("Doxyfile", []byte("INPUT = include\n"), 0o644))

	out := runOK(t)
	assert.Contains(t, out, "# class `db::postgres::Connection`")
}

func TestHelpFlag(t *testing.T) {
	out := runOK(t, "--help")
	assert.Contains(t, out, "doxygen2md [flags] [doxygen-xml-directory]")
	assert.Contains(t, out, "--templates")
	assert.Contains(t, out, "completion  Generate shell completion scripts")
}

func TestCompletionCommand(t *testing.T) {
	out := runOK(t, "completion", "bash")
	assert.Contains(t, out, "__start_doxygen2md")
}

func TestGenDocsCommand(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, run([]string{"gen-docs", tmp}, io.Discard))
	assert.FileExists(t, filepath.Join(tmp, "doxygen2md.md"))
	assert.FileExists(t, filepath.Join(tmp, "doxygen2md_completion.md"))
}

func TestFlagCompletion(t *testing.T) {
	out := runOK(t, "__complete", "--language", "")
	assert.Equal(t, []string{"cpp", "c++", "c", ":4"}, strings.Fields(out)[:4])

	out = runOK(t, "__complete", "")
	assert.Contains(t, out, ":16")
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
