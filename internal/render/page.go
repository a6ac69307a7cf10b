package render

import (
	"github.com/ziadkadry99/prepsite/internal/catalog"
	"github.com/ziadkadry99/prepsite/internal/nav"
)

// Document is the composed page: header, navigation, one section per
// topic and the footer. Tagline and Footer are markdown.
type Document struct {
	Title    string
	Tagline  string
	Links    []nav.Link
	Sections []Block
	Footer   string
}

// Section renders a topic under the anchor id. A nil topic yields an
// empty section so anchors that navigation points at still exist.
func (r *Renderer) Section(id string, t *catalog.Topic) Block {
	b := Block{ID: id, Class: "section"}
	if t == nil {
		return b
	}
	if t.Title != "" {
		b.Children = append(b.Children, Heading{Level: 2, Text: t.Title})
	}
	for _, e := range t.Entries {
		if n := r.Entry(e); n != nil {
			b.Children = append(b.Children, n)
		}
	}
	return b
}

// Page composes the whole document in catalog order.
func (r *Renderer) Page(c *catalog.Catalog, links []nav.Link) *Document {
	doc := &Document{Links: links}
	if c == nil {
		return doc
	}
	doc.Title = c.Title
	doc.Tagline = c.Tagline
	doc.Footer = c.Footer
	for _, t := range c.Topics {
		if t == nil {
			continue
		}
		doc.Sections = append(doc.Sections, r.Section(t.Key, t))
	}
	return doc
}
