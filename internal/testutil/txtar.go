// Package testutil loads txtar fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// ArchiveFS parses the txtar archive at path into an in-memory file system.
func ArchiveFS(t testing.TB, path string) fstest.MapFS {
	t.Helper()
	ar, err := txtar.ParseFile(path)
	require.NoError(t, err)
	fsys := fstest.MapFS{}
	for _, f := range ar.Files {
		fsys[f.Name] = &fstest.MapFile{Data: f.Data, Mode: 0o644}
	}
	return fsys
}

// ArchiveDir extracts the txtar archive at path into a fresh temp directory
// and returns the directory.
func ArchiveDir(t testing.TB, path string) string {
	t.Helper()
	ar, err := txtar.ParseFile(path)
	require.NoError(t, err)
	dir := t.TempDir()
	for _, f := range ar.Files {
		target := filepath.Join(dir, filepath.FromSlash(f.Name))
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
		require.NoError(t, os.WriteFile(target, f.Data, 0o644))
	}
	return dir
}

// ArchiveText parses txtar content held in a string.
func ArchiveText(src string) fstest.MapFS {
	ar := txtar.Parse([]byte(src))
	fsys := fstest.MapFS{}
	for _, f := range ar.Files {
		fsys[f.Name] = &fstest.MapFile{Data: f.Data, Mode: 0o644}
	}
	return fsys
}
