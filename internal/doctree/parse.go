package doctree

import (
	"context"
	"regexp"
	"strings"

	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"

	"github.com/agentflare-ai/doxygen2md/internal/doxygen"
	"github.com/agentflare-ai/doxygen2md/internal/markup"
)

// memberSections are the sectiondef kinds whose members get filled in. Other
// sections (namespace functions, typedefs, enums, ...) are skipped.
var memberSections = map[string]bool{
	"friend":           true,
	"public-attrib":    true,
	"public-func":      true,
	"protected-attrib": true,
	"protected-func":   true,
	"private-attrib":   true,
	"private-func":     true,
}

var (
	noexceptSuffix = regexp.MustCompile(`noexcept$`)
	deleteSuffix   = regexp.MustCompile(`=\s*delete$`)
	defaultSuffix  = regexp.MustCompile(`=\s*default`)
)

type parser struct {
	index    *Index
	renderer markup.Renderer
}

func (p *parser) compound(ctx context.Context, c *Compound, def *doxygen.CompoundDef) error {
	slogctx.Debug(ctx, "processing compound", "name", c.FullName, "kind", def.Kind)

	if def.ID != "" {
		c.RefID = def.ID
	}
	if def.Kind != "" {
		c.Kind = def.Kind
	}
	c.Visibility = def.Prot
	c.Language = def.Language
	if def.Name != "" {
		c.FullName = def.Name
	}

	var err error
	if c.Brief, err = p.renderer.RenderTrimmed(def.Brief.Node); err != nil {
		return errors.Errorf("%s: brief description: %w", c.FullName, err)
	}
	if c.Detailed, err = p.renderer.RenderTrimmed(def.Detailed.Node); err != nil {
		return errors.Errorf("%s: detailed description: %w", c.FullName, err)
	}

	for _, b := range def.Bases {
		c.Bases = append(c.Bases, Base{Visibility: b.Prot, Name: strings.TrimSpace(b.Name)})
	}

	for _, section := range def.Sections {
		if !memberSections[section.Kind] {
			continue
		}
		for i := range section.Members {
			md := &section.Members[i]
			m, ok := p.index.Member(md.ID)
			if !ok {
				return errors.WithStack(&DanglingReferenceError{ID: md.ID, Compound: c.FullName})
			}
			if err := p.member(ctx, m, section.Kind, md); err != nil {
				return errors.Errorf("%s%s%s: %w", c.FullName, Separator, md.Name, err)
			}
		}
	}

	segs := []markup.Segment{markup.TextSegment(c.Kind + " "), markup.LinkSegment(c.Name, "#"+c.RefID)}
	c.Proto = markup.Inline(segs...)
	c.Signature = markup.PlainText(segs...)
	return nil
}

func (p *parser) member(ctx context.Context, m *Member, section string, md *doxygen.MemberDef) error {
	slogctx.Debug(ctx, "processing member", "name", m.Name, "section", section)

	m.Section = section
	m.Visibility = md.Prot
	if md.Kind != "" {
		m.Kind = md.Kind
	}

	var err error
	if m.Brief, err = p.renderer.RenderTrimmed(md.Brief.Node); err != nil {
		return errors.Errorf("brief description: %w", err)
	}
	if m.Detailed, err = p.renderer.RenderTrimmed(md.Detailed.Node); err != nil {
		return errors.Errorf("detailed description: %w", err)
	}

	var b proto
	switch md.Kind {
	case "function":
		err = p.functionProto(&b, md)
	case "variable":
		err = p.variableProto(&b, md)
	default:
		b.text(md.Name)
	}
	if err != nil {
		return err
	}

	m.Proto = markup.Inline(b.segs...)
	m.Signature = markup.PlainText(b.segs...)
	return nil
}

// proto collects the words of a prototype as inline segments.
type proto struct {
	segs []markup.Segment
	// line is set once the current line has a word.
	line bool
}

// word appends segs as one space-separated word.
func (b *proto) word(segs ...markup.Segment) {
	if len(segs) == 0 {
		return
	}
	if b.line {
		b.segs = append(b.segs, markup.TextSegment(" "))
	}
	b.segs = append(b.segs, segs...)
	b.line = true
}

func (b *proto) text(s string) {
	b.word(markup.TextSegment(s))
}

func (b *proto) lineBreak() {
	b.segs = append(b.segs, markup.BreakSegment())
	b.line = false
}

// functionProto assembles visibility, template clause, specifiers, return
// type, name, parameters and trailing qualifiers. The template clause sits on
// its own line.
func (p *parser) functionProto(b *proto, md *doxygen.MemberDef) error {
	b.text(md.Prot)

	if md.TemplateParams != nil {
		params, err := p.params(md.TemplateParams.Params)
		if err != nil {
			return err
		}
		b.word(wrap("template<", params, ">")...)
		b.lineBreak()
	}

	if doxygen.Flag(md.Inline) {
		b.text("inline")
	}
	if doxygen.Flag(md.Static) {
		b.text("static")
	}
	if md.Virt == "virtual" || md.Virt == "pure-virtual" {
		b.text("virtual")
	}
	typ, err := p.inline(md.Type.Node)
	if err != nil {
		return errors.Errorf("type: %w", err)
	}
	b.word(typ...)
	if doxygen.Flag(md.Explicit) {
		b.text("explicit")
	}

	params, err := p.params(md.Params)
	if err != nil {
		return err
	}
	b.word(wrap(md.Name+"(", params, ")")...)

	if doxygen.Flag(md.Const) {
		b.text("const")
	}
	args := strings.TrimSpace(md.ArgsString)
	if noexceptSuffix.MatchString(args) {
		b.text("noexcept")
	}
	if deleteSuffix.MatchString(args) {
		b.text("= delete")
	}
	if defaultSuffix.MatchString(args) {
		b.text("= default")
	}
	if md.Virt == "pure-virtual" {
		b.text("= 0")
	}
	return nil
}

func (p *parser) variableProto(b *proto, md *doxygen.MemberDef) error {
	b.text(md.Prot)
	if doxygen.Flag(md.Static) {
		b.text("static")
	}
	if doxygen.Flag(md.Mutable) {
		b.text("mutable")
	}
	typ, err := p.inline(md.Type.Node)
	if err != nil {
		return errors.Errorf("type: %w", err)
	}
	b.word(typ...)
	b.text(md.Name)
	return nil
}

// params renders a parameter list as "type name, type name".
func (p *parser) params(params []doxygen.Param) ([]markup.Segment, error) {
	var segs []markup.Segment
	for i, param := range params {
		typ, err := p.inline(param.Type.Node)
		if err != nil {
			return nil, errors.Errorf("parameter %s: %w", param.Name(), err)
		}
		if i > 0 {
			segs = append(segs, markup.TextSegment(", "))
		}
		segs = append(segs, typ...)
		if name := param.Name(); name != "" {
			segs = append(segs, markup.TextSegment(" "+name))
		}
	}
	return segs, nil
}

func wrap(open string, segs []markup.Segment, end string) []markup.Segment {
	out := make([]markup.Segment, 0, len(segs)+2)
	out = append(out, markup.TextSegment(open))
	out = append(out, segs...)
	return append(out, markup.TextSegment(end))
}

// inline flattens a type fragment into segments on one line.
func (p *parser) inline(n markup.Node) ([]markup.Segment, error) {
	segs, err := p.renderer.Segments(n)
	if err != nil {
		return nil, err
	}
	return markup.Compact(segs), nil
}
