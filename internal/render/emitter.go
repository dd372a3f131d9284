// Package render turns a filtered document tree into Markdown pages using
// text/template files.
//
// A set holds one template per page target, named after its file without the
// .md extension: "namespace", "class" and the nested "member". The built-in
// set is embedded; a directory of *.md files may replace any of them.
package render

import (
	"context"
	"embed"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"text/template"

	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"

	"github.com/agentflare-ai/doxygen2md/internal/doctree"
)

//go:embed templates
var builtin embed.FS

// DefaultTemplates is the embedded template directory.
const DefaultTemplates = "templates/cpp"

const (
	TargetNamespace = "namespace"
	TargetClass     = "class"
)

// Options configure an Emitter.
type Options struct {
	// Anchors makes the anchor helper emit {#refid}.
	Anchors bool
	// Templates is a directory whose *.md files replace built-in templates.
	Templates string
}

// Emitter renders compounds with a parsed template set.
type Emitter struct {
	opts Options
	tmpl *template.Template
}

// New parses the built-in templates and any overrides from opts.Templates.
func New(opts Options) (*Emitter, error) {
	e := &Emitter{opts: opts}
	e.tmpl = template.New("doxygen2md").Funcs(e.funcs()).Option("missingkey=error")

	sub, err := fs.Sub(builtin, DefaultTemplates)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := e.parse(sub); err != nil {
		return nil, err
	}
	if opts.Templates != "" {
		if err := e.parse(os.DirFS(opts.Templates)); err != nil {
			return nil, errors.Errorf("templates %s: %w", opts.Templates, err)
		}
	}
	return e, nil
}

func (e *Emitter) parse(fsys fs.FS) error {
	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return errors.WithStack(err)
	}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return errors.Errorf("reading %s: %w", name, err)
		}
		if _, err := e.tmpl.New(strings.TrimSuffix(path.Base(name), ".md")).Parse(string(data)); err != nil {
			return errors.Errorf("parsing %s: %w", name, err)
		}
	}
	return nil
}

// Target returns the template used for c, or "" when c produces no page.
// A namespace whose only remaining child is another namespace is skipped so
// nested namespaces do not each get an empty page.
func Target(c *doctree.Compound) string {
	switch c.Kind {
	case "namespace":
		if len(c.FilteredChildren) == 1 && c.FilteredChildren[0].Kind == "namespace" {
			return ""
		}
		return TargetNamespace
	case "class", "struct":
		return TargetClass
	default:
		return ""
	}
}

// Page writes the page for c to w. It reports false when c has no page.
func (e *Emitter) Page(w io.Writer, c *doctree.Compound) (bool, error) {
	target := Target(c)
	if target == "" {
		return false, nil
	}
	t := e.tmpl.Lookup(target)
	if t == nil {
		return false, errors.Errorf("no %q template", target)
	}
	if err := t.Execute(w, c); err != nil {
		return false, errors.Errorf("%s: rendering %s page: %w", c.FullName, target, err)
	}
	return true, nil
}

// Emit writes the pages of every compound in tree traversal order.
func (e *Emitter) Emit(ctx context.Context, w io.Writer, tree *doctree.Tree) error {
	pages := 0
	for _, c := range tree.Compounds() {
		ok, err := e.Page(w, c)
		if err != nil {
			return err
		}
		if !ok {
			slogctx.Debug(ctx, "no page", "name", c.FullName, "kind", c.Kind)
			continue
		}
		pages++
	}
	slogctx.Info(ctx, "rendered pages", "pages", pages)
	return nil
}
