package doxygen

import (
	"encoding/xml"

	"gitlab.com/tozd/go/errors"

	"github.com/agentflare-ai/doxygen2md/internal/markup"
)

// Markup is a mixed-content element decoded into a markup tree. The element
// itself becomes an untagged container so descriptions, types and names all
// render the same way.
type Markup struct {
	markup.Node
}

func (m *Markup) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	children, err := decodeChildren(d)
	if err != nil {
		return errors.Errorf("decoding <%s>: %w", start.Name.Local, err)
	}
	m.Node = markup.Container(children...)
	return nil
}

// decodeChildren consumes tokens up to and including the end of the current
// element.
func decodeChildren(d *xml.Decoder) ([]markup.Node, error) {
	var nodes []markup.Node
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			nodes = append(nodes, markup.TextNode(string(t)))
		case xml.StartElement:
			children, err := decodeChildren(d)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, markup.Element(t.Name.Local, attrMap(t.Attr), children...))
		case xml.EndElement:
			return nodes, nil
		}
	}
}

func attrMap(attrs []xml.Attr) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name.Local] = a.Value
	}
	return m
}
