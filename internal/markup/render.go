package markup

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// UnsupportedTagError is returned when a description contains an element the
// renderer has no rule for.
type UnsupportedTagError struct {
	Tag string
}

func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("markup: %s: not supported", e.Tag)
}

func unsupported(tag string) error {
	return errors.WithStack(&UnsupportedTagError{Tag: tag})
}

// LinkResolver maps a reference id to the anchor used for in-document links.
type LinkResolver interface {
	Anchor(refid string) (string, bool)
}

// DefaultLanguage tags fenced code blocks when a Renderer has none.
const DefaultLanguage = "cpp"

// headerSeparator is one column of the row emitted after a table header.
const headerSeparator = "---------"

// Renderer turns description trees into Markdown. The zero value is usable and
// links references straight to their refid.
type Renderer struct {
	Language string
	Links    LinkResolver
}

// Render returns the Markdown form of n.
func (r Renderer) Render(n Node) (string, error) {
	return r.render(n)
}

// RenderTrimmed renders n and strips surrounding whitespace.
func (r Renderer) RenderTrimmed(n Node) (string, error) {
	s, err := r.render(n)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func (r Renderer) render(n Node) (string, error) {
	switch n.Kind() {
	case KindText:
		return n.Text, nil
	case KindSpace:
		return " ", nil
	case KindLineBreak:
		return "  \n", nil
	case KindUnsupported:
		return "", unsupported(n.Tag)
	case KindTableRow:
		return r.row(n)
	case KindInlineCode:
		return r.code(n)
	case KindTable:
		rows, err := r.elements(n)
		if err != nil {
			return "", err
		}
		return "\n" + rows + "\n", nil
	}

	var open string
	if n.Kind() == KindAdmonition {
		switch n.Attr("kind") {
		case "attention":
			open = "> "
		case "return":
			open = "\n#### Returns\n"
		default:
			return "", unsupported(fmt.Sprintf("%s[%s]", n.Tag, n.Attr("kind")))
		}
	}

	inner, err := r.children(n)
	if err != nil {
		return "", err
	}

	switch n.Kind() {
	case KindEmphasis:
		return "*" + inner + "*", nil
	case KindBold:
		return "**" + inner + "**", nil
	case KindParameterName:
		return "`" + inner + "` ", nil
	case KindParameterList:
		return "\n#### Parameters\n" + inner + "\n\n", nil
	case KindParameterItem:
		return "* " + inner + "\n", nil
	case KindCodeBlock:
		return "\n```" + r.language() + "\n" + inner + "```\n", nil
	case KindCodeLine:
		return inner + "\n", nil
	case KindList:
		return "\n\n" + inner + "\n", nil
	case KindListItem:
		return "* " + inner + "\n", nil
	case KindAdmonition:
		return open + inner, nil
	case KindTableCell:
		return " " + escapeCell(strings.TrimSpace(inner)) + " |", nil
	case KindExternalLink:
		return Link(inner, n.Attr("url")), nil
	case KindReference:
		return Link("`"+inner+"`", "#"+r.anchor(n.Attr("refid"))), nil
	case KindParagraph:
		return inner + "\n\n", nil
	default:
		return inner, nil
	}
}

func (r Renderer) children(n Node) (string, error) {
	var sb strings.Builder
	for _, c := range n.Children {
		s, err := r.render(c)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// code renders a code span. A reference inside it closes the span before the
// link and the text after it opens a new one.
func (r Renderer) code(n Node) (string, error) {
	var w inlineWriter
	for _, c := range n.Children {
		if c.Kind() == KindReference {
			label, err := r.children(c)
			if err != nil {
				return "", err
			}
			w.link(label, "#"+r.anchor(c.Attr("refid")))
			continue
		}
		s, err := r.render(c)
		if err != nil {
			return "", err
		}
		w.text(s)
	}
	return w.String(), nil
}

// Segments flattens a type or name fragment into text and link segments for
// Inline. References become links; everything else renders as text.
func (r Renderer) Segments(n Node) ([]Segment, error) {
	var segs []Segment
	if err := r.segments(n, &segs); err != nil {
		return nil, err
	}
	return segs, nil
}

func (r Renderer) segments(n Node, out *[]Segment) error {
	switch n.Kind() {
	case KindReference:
		label, err := r.children(n)
		if err != nil {
			return err
		}
		*out = append(*out, LinkSegment(label, "#"+r.anchor(n.Attr("refid"))))
		return nil
	case KindContainer:
		for _, c := range n.Children {
			if err := r.segments(c, out); err != nil {
				return err
			}
		}
		return nil
	}
	s, err := r.render(n)
	if err != nil {
		return err
	}
	*out = append(*out, TextSegment(s))
	return nil
}

// elements renders the element children of n, skipping whitespace between
// them.
func (r Renderer) elements(n Node) (string, error) {
	var sb strings.Builder
	for _, c := range n.Children {
		if c.IsText && strings.TrimSpace(c.Text) == "" {
			continue
		}
		s, err := r.render(c)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// row renders a table row. Whitespace between cells is ignored, and a header
// row is followed by a separator with one column per cell.
func (r Renderer) row(n Node) (string, error) {
	var sb strings.Builder
	sb.WriteString("\n|")
	cells := 0
	header := false
	for _, c := range n.Children {
		if c.IsText && strings.TrimSpace(c.Text) == "" {
			continue
		}
		if cells == 0 {
			header = c.Attr("thead") == "yes"
		}
		s, err := r.render(c)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
		cells++
	}
	if header {
		sb.WriteString("\n|")
		sb.WriteString(strings.Repeat(headerSeparator+"|", cells))
	}
	return sb.String(), nil
}

func (r Renderer) language() string {
	if r.Language == "" {
		return DefaultLanguage
	}
	return r.Language
}

func (r Renderer) anchor(refid string) string {
	if r.Links != nil {
		if a, ok := r.Links.Anchor(refid); ok {
			return a
		}
	}
	return refid
}

// Link formats a Markdown link.
func Link(label, href string) string {
	return "[" + label + "](" + href + ")"
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", "<br/>")

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}
