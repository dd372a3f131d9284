package markup

import (
	"strings"
)

// SegmentKind tells Inline how to place a segment.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentLink
	SegmentBreak
)

// Segment is one piece of a single-line run: free text, an in-document link
// or a Markdown line break.
type Segment struct {
	Kind SegmentKind
	Text string
	Href string
}

func TextSegment(s string) Segment {
	return Segment{Kind: SegmentText, Text: s}
}

func LinkSegment(label, href string) Segment {
	return Segment{Kind: SegmentLink, Text: label, Href: href}
}

func BreakSegment() Segment {
	return Segment{Kind: SegmentBreak}
}

// inlineState tracks whether a code span is currently open.
type inlineState int

const (
	statePlain inlineState = iota
	stateCodeOpen
)

type inlineWriter struct {
	sb    strings.Builder
	state inlineState
}

func (w *inlineWriter) text(s string) {
	if s == "" {
		return
	}
	if w.state == statePlain {
		w.sb.WriteByte('`')
		w.state = stateCodeOpen
	}
	w.sb.WriteString(s)
}

func (w *inlineWriter) close() {
	if w.state == stateCodeOpen {
		w.sb.WriteByte('`')
		w.state = statePlain
	}
}

func (w *inlineWriter) lineBreak() {
	w.close()
	w.sb.WriteString("  \n")
}

func (w *inlineWriter) link(label, href string) {
	w.close()
	if !strings.HasPrefix(label, "`") {
		label = "`" + label + "`"
	}
	w.sb.WriteString(Link(label, href))
}

func (w *inlineWriter) String() string {
	w.close()
	return w.sb.String()
}

// Inline merges segs into a single line where free text is set as inline
// code. Links and line breaks end the current code span; the next text
// segment opens a new one.
func Inline(segs ...Segment) string {
	var w inlineWriter
	for _, s := range segs {
		switch s.Kind {
		case SegmentLink:
			w.link(s.Text, s.Href)
		case SegmentBreak:
			w.lineBreak()
		default:
			w.text(s.Text)
		}
	}
	return w.String()
}

// PlainText returns the text a reader sees for segs, with whitespace folded.
func PlainText(segs ...Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		if s.Kind == SegmentBreak {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(strings.Trim(s.Text, "`"))
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// Compact merges adjacent text, folds whitespace runs into one space and trims
// the ends of the run. Empty text segments are dropped.
func Compact(segs []Segment) []Segment {
	var out []Segment
	for _, s := range segs {
		if s.Kind == SegmentText && len(out) > 0 && out[len(out)-1].Kind == SegmentText {
			out[len(out)-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	kept := out[:0]
	for i, s := range out {
		if s.Kind == SegmentText {
			s.Text = foldSpace(s.Text)
			if i == 0 {
				s.Text = strings.TrimLeft(s.Text, " ")
			}
			if i == len(out)-1 {
				s.Text = strings.TrimRight(s.Text, " ")
			}
			if s.Text == "" {
				continue
			}
		}
		kept = append(kept, s)
	}
	return kept
}

func foldSpace(s string) string {
	var sb strings.Builder
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			space = true
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.WriteRune(r)
	}
	if space {
		sb.WriteByte(' ')
	}
	return sb.String()
}
