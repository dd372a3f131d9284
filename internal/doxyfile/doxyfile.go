// Package doxyfile runs Doxygen on a Doxyfile to produce the XML input.
package doxyfile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"
)

// Name is the Doxyfile looked up in the working directory.
const Name = "Doxyfile"

// Command is the doxygen executable.
var Command = "doxygen"

// Config returns doxyfile with settings appended that send XML output to
// outDir. Later assignments win in a Doxyfile, so the project's own output
// settings are overridden.
func Config(doxyfile []byte, outDir string) []byte {
	var buf bytes.Buffer
	buf.Write(doxyfile)
	if len(doxyfile) > 0 && doxyfile[len(doxyfile)-1] != '\n' {
		buf.WriteByte('\n')
	}
	fmt.Fprintf(&buf, "OUTPUT_DIRECTORY = %q\n", outDir)
	buf.WriteString("GENERATE_XML = YES\n")
	buf.WriteString("XML_OUTPUT = xml\n")
	return buf.Bytes()
}

// Run feeds the Doxyfile at path to doxygen and returns the generated XML
// directory. cleanup removes everything Run created and is safe to call when
// err is set.
func Run(ctx context.Context, path string) (xmlDir string, cleanup func(), err error) {
	cleanup = func() {}
	doxyfile, err := os.ReadFile(path)
	if err != nil {
		return "", cleanup, errors.Errorf("reading %s: %w", path, err)
	}

	tmp, err := os.MkdirTemp("", "doxygen2md-")
	if err != nil {
		return "", cleanup, errors.WithStack(err)
	}
	cleanup = func() {
		if err := os.RemoveAll(tmp); err != nil {
			slogctx.Warn(ctx, "removing temporary directory", "dir", tmp, "error", err)
		}
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, Command, "-")
	cmd.Dir = filepath.Dir(path)
	cmd.Stdin = bytes.NewReader(Config(doxyfile, tmp))
	cmd.Stderr = &stderr

	slogctx.Info(ctx, "running doxygen", "doxyfile", path, "output", tmp)
	if err := cmd.Run(); err != nil {
		cleanup()
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", func() {}, errors.Errorf("running %s: %w", Command, err)
		}
		return "", func() {}, errors.Errorf("running %s: %w: %s", Command, err, msg)
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		slogctx.Debug(ctx, "doxygen output", "stderr", msg)
	}
	return filepath.Join(tmp, "xml"), cleanup, nil
}
