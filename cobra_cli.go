package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
	"gitlab.com/tozd/go/errors"
)

const rootLongDesc = `
doxygen2md converts the XML output of Doxygen into a single Markdown document.

Pass the Doxygen XML directory (the one holding index.xml) as the only argument.
Without an argument, a Doxyfile in the working directory is run through doxygen
with XML output enabled and the result is converted.

Namespaces, classes and structs each get a page. Which member sections and
compound kinds are kept, and in what order, comes from a YAML configuration file
(--config, or .doxygen2md.yaml in the working directory).
`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout, stderr: stderr}
	cmd := &cobra.Command{
		Use:           "doxygen2md [flags] [doxygen-xml-directory]",
		Short:         "Convert Doxygen XML to Markdown",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "log progress to stderr")
	flags.BoolVarP(&app.opts.anchors, "anchors", "a", true, "add {#refid} anchors to headings")
	flags.StringVarP(&app.opts.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&app.opts.templates, "templates", "t", "", "directory of *.md templates replacing the built-in ones")
	flags.StringVarP(&app.opts.outputPath, "output", "o", "", "write output Markdown to file instead of stdout")
	flags.StringVarP(&app.opts.language, "language", "l", "cpp", "language of fenced code blocks")

	// The positional argument is a directory; -c and -t complete to YAML files
	// and directories.
	cmd.ValidArgsFunction = func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveFilterDirs
	}
	_ = cmd.MarkFlagFilename("config", "yaml", "yml")
	_ = cmd.MarkFlagDirname("templates")
	_ = cmd.MarkFlagFilename("output", "md")
	_ = cmd.RegisterFlagCompletionFunc("language",
		cobra.FixedCompletions([]string{"cpp", "c++", "c"}, cobra.ShellCompDirectiveNoFileComp))

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx, cmd, args)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for doxygen2md.

Completion suggests directories for the Doxygen XML argument, YAML files for
--config, directories for --templates and the usual fence languages for
--language. Load the script into your shell, for example:

  # bash
  doxygen2md completion bash > /usr/local/etc/bash_completion.d/doxygen2md

  # zsh
  doxygen2md completion zsh > "${fpath[1]}/_doxygen2md"

  # fish
  doxygen2md completion fish | source

  # PowerShell
  doxygen2md completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return errors.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write the flag reference of doxygen2md and its subcommands as Markdown, one
file per command, for example next to the API pages doxygen2md produces:

  doxygen2md gen-docs ./docs/cli
  doxygen2md -o ./docs/api.md ./build/docs/xml
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return errors.New("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return errors.WithStack(err)
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
