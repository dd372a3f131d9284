package main

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"

	"github.com/agentflare-ai/doxygen2md/internal/config"
	"github.com/agentflare-ai/doxygen2md/internal/doctree"
	"github.com/agentflare-ai/doxygen2md/internal/doxyfile"
	"github.com/agentflare-ai/doxygen2md/internal/doxygen"
	"github.com/agentflare-ai/doxygen2md/internal/logging"
	"github.com/agentflare-ai/doxygen2md/internal/render"
)

// Version is reported by --version.
var Version = "dev"

// defaultConfigFile is read from the working directory when --config is not
// given.
const defaultConfigFile = ".doxygen2md.yaml"

type options struct {
	verbose    bool
	anchors    bool
	configPath string
	templates  string
	outputPath string
	language   string
}

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout, os.Stderr)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, cmd *cobra.Command, positionals []string) error {
	ctx = logging.WithLogger(ctx, app.stderr, app.opts.verbose)

	cfg, err := app.config(cmd)
	if err != nil {
		return err
	}

	var dir string
	if len(positionals) == 1 {
		dir = positionals[0]
	} else {
		if _, err := os.Stat(doxyfile.Name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slogctx.Debug(ctx, "no Doxyfile in the working directory")
				return cmd.Help()
			}
			return errors.WithStack(err)
		}
		xmlDir, cleanup, err := doxyfile.Run(ctx, doxyfile.Name)
		defer cleanup()
		if err != nil {
			return err
		}
		dir = xmlDir
	}

	md, err := convert(ctx, doxygen.OpenDir(dir), cfg)
	if err != nil {
		return err
	}
	return writeOutput(cfg.Output, app.stdout, md)
}

// config loads the configuration file, if any, and applies the flags that
// were set explicitly on top of it.
func (app *cliApp) config(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	path := app.opts.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("anchors") {
		cfg.Anchors = app.opts.anchors
	}
	if flags.Changed("language") {
		cfg.Language = app.opts.language
	}
	if flags.Changed("templates") {
		cfg.Templates = app.opts.templates
	}
	if flags.Changed("output") {
		cfg.Output = app.opts.outputPath
	}
	return cfg, nil
}

// convert builds the tree from src and renders every page. Nothing is returned
// unless all pages rendered.
func convert(ctx context.Context, src doctree.Source, cfg *config.Config) ([]byte, error) {
	emitter, err := render.New(render.Options{Anchors: cfg.Anchors, Templates: cfg.Templates})
	if err != nil {
		return nil, err
	}
	tree, err := doctree.Build(ctx, src, doctree.Options{
		Language:       cfg.Language,
		MemberSections: cfg.Compound.Members.Filter,
		CompoundKinds:  cfg.Compound.Compounds.Filter,
	})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := emitter.Emit(ctx, &buf, tree); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return errors.WithStack(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(path, data, 0o644))
}
