// Package markup renders Doxygen description markup to Markdown.
//
// A description is a tree of [Node] values. Each element node maps to one
// [Kind] of a closed vocabulary; anything outside that vocabulary renders as an
// [*UnsupportedTagError] rather than being dropped.
package markup

// Kind identifies one supported markup element.
type Kind int

const (
	KindUnsupported Kind = iota
	KindText
	KindContainer
	KindEmphasis
	KindBold
	KindInlineCode
	KindParameterList
	KindParameterItem
	KindParameterName
	KindCodeBlock
	KindCodeLine
	KindHighlight
	KindList
	KindListItem
	KindSpace
	KindLineBreak
	KindAdmonition
	KindTable
	KindTableRow
	KindTableCell
	KindExternalLink
	KindReference
	KindParagraph
)

var kindNames = map[Kind]string{
	KindUnsupported:   "unsupported",
	KindText:          "text",
	KindContainer:     "container",
	KindEmphasis:      "emphasis",
	KindBold:          "bold",
	KindInlineCode:    "inline-code",
	KindParameterList: "parameter-list",
	KindParameterItem: "parameter-item",
	KindParameterName: "parameter-name",
	KindCodeBlock:     "code-block",
	KindCodeLine:      "code-line",
	KindHighlight:     "highlight",
	KindList:          "list",
	KindListItem:      "list-item",
	KindSpace:         "space",
	KindLineBreak:     "line-break",
	KindAdmonition:    "admonition",
	KindTable:         "table",
	KindTableRow:      "table-row",
	KindTableCell:     "table-cell",
	KindExternalLink:  "external-link",
	KindReference:     "reference",
	KindParagraph:     "paragraph",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unsupported"
}

// tagKinds maps Doxygen element names onto the vocabulary.
var tagKinds = map[string]Kind{
	"":                     KindContainer,
	"parameterdescription": KindContainer,
	"parameternamelist":    KindContainer,
	"emphasis":             KindEmphasis,
	"bold":                 KindBold,
	"computeroutput":       KindInlineCode,
	"parameterlist":        KindParameterList,
	"parameteritem":        KindParameterItem,
	"parametername":        KindParameterName,
	"programlisting":       KindCodeBlock,
	"codeline":             KindCodeLine,
	"highlight":            KindHighlight,
	"itemizedlist":         KindList,
	"listitem":             KindListItem,
	"sp":                   KindSpace,
	"linebreak":            KindLineBreak,
	"simplesect":           KindAdmonition,
	"table":                KindTable,
	"row":                  KindTableRow,
	"entry":                KindTableCell,
	"ulink":                KindExternalLink,
	"ref":                  KindReference,
	"para":                 KindParagraph,
}

// kinds returns every supported kind in declaration order.
func kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := KindText; k <= KindParagraph; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// tags returns the element names that map to k.
func tags(k Kind) []string {
	var tags []string
	for tag, kind := range tagKinds {
		if kind == k && tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Node is one element of a description tree. A node with IsText set is a leaf
// holding character data; every other node is an element whose Tag is the
// Doxygen element name (empty for the root container of a description).
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []Node
	Text     string
	IsText   bool
}

// TextNode returns a character-data leaf.
func TextNode(text string) Node {
	return Node{Text: text, IsText: true}
}

// Element returns an element node with the given children.
func Element(tag string, attrs map[string]string, children ...Node) Node {
	return Node{Tag: tag, Attrs: attrs, Children: children}
}

// Container wraps children in an untagged root node.
func Container(children ...Node) Node {
	return Node{Children: children}
}

// Kind reports which vocabulary entry the node belongs to.
func (n Node) Kind() Kind {
	if n.IsText {
		return KindText
	}
	if k, ok := tagKinds[n.Tag]; ok {
		return k
	}
	return KindUnsupported
}

// Attr returns the named attribute or "".
func (n Node) Attr(name string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}
