package render

import (
	"strings"
	"text/template"
)

var (
	cellEscaper  = strings.NewReplacer("|", `\|`, "\n", "<br/>")
	titleEscaper = strings.NewReplacer("\n", "<br/>")
)

func (e *Emitter) funcs() template.FuncMap {
	return template.FuncMap{
		"cell":    cell,
		"title":   title,
		"summary": summary,
		"anchor":  e.anchor,
	}
}

// cell escapes text for a table cell.
func cell(s string) string {
	return cellEscaper.Replace(s)
}

// title keeps a multi-line prototype on one heading line.
func title(s string) string {
	return titleEscaper.Replace(s)
}

// summary returns the first sentence of a description on a single line.
func summary(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if idx := strings.Index(s, ". "); idx >= 0 {
		return strings.TrimSpace(s[:idx+1])
	}
	return s
}

func (e *Emitter) anchor(id string) string {
	if !e.opts.Anchors {
		return ""
	}
	return "{#" + id + "}"
}
