package testutil

import (
	"path/filepath"
	"runtime"
)

// Fixture returns the absolute path of a file under this package's testdata.
func Fixture(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata", name)
}
