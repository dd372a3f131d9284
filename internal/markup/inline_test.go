package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInline(t *testing.T) {
	tests := []struct {
		name string
		segs []Segment
		want string
	}{
		{"text run", []Segment{TextSegment("public "), TextSegment("static "), TextSegment("int Count() const")}, "`public static int Count() const`"},
		{"link closes span", []Segment{TextSegment("class "), LinkSegment("Row", "#classrow")}, "`class `[`Row`](#classrow)"},
		{"text after link reopens", []Segment{TextSegment("public "), LinkSegment("Connection", "#classconn"), TextSegment(" & close()")}, "`public `[`Connection`](#classconn)` & close()`"},
		{"quoted label kept", []Segment{LinkSegment("`Row`", "#classrow")}, "[`Row`](#classrow)"},
		{"line break", []Segment{TextSegment("public template<typename T>"), BreakSegment(), TextSegment("T get()")}, "`public template<typename T>`  \n`T get()`"},
		{"subscript operator", []Segment{TextSegment("public T & operator[](size_t) const")}, "`public T & operator[](size_t) const`"},
		{"subscript operator link", []Segment{LinkSegment("operator[]", "#op")}, "[`operator[]`](#op)"},
		{"brackets around link", []Segment{TextSegment("std::array<"), LinkSegment("Row", "#classrow"), TextSegment(", 4>[2]")}, "`std::array<`[`Row`](#classrow)`, 4>[2]`"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Inline(tt.segs...))
		})
	}
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "public static int Count() const", PlainText(TextSegment("public static int Count() const")))
	assert.Equal(t, "public Connection & close()", PlainText(TextSegment("public "), LinkSegment("Connection", "#classconn"), TextSegment(" & close()")))
	assert.Equal(t, "public template<typename T> T get()", PlainText(TextSegment("public template<typename T>"), BreakSegment(), TextSegment("T get()")))
	assert.Equal(t, "T & operator[](size_t) const", PlainText(TextSegment("T &  operator[](size_t)\n const")))
}

func TestCompact(t *testing.T) {
	got := Compact([]Segment{
		TextSegment("\n  const "),
		TextSegment(""),
		LinkSegment("Row", "#classrow"),
		TextSegment(" \t&"),
		TextSegment("  "),
	})
	assert.Equal(t, []Segment{TextSegment("const "), LinkSegment("Row", "#classrow"), TextSegment(" &")}, got)

	assert.Empty(t, Compact([]Segment{TextSegment("  ")}))
	assert.Empty(t, Compact(nil))
}
