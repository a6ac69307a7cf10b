// Package render turns catalog content into a backend-neutral output tree.
// The HTML site and the terminal browser both consume the same tree.
package render

// Node is one element of the output tree. The set of node types is closed.
type Node interface {
	node()
}

// Block groups children. ID, when set, is an in-page anchor.
type Block struct {
	ID       string
	Class    string
	Children []Node
}

// Heading is a title at the given level (2 for sections, 3 for entries).
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a run of prose.
type Paragraph struct {
	Class string
	Text  string
}

// Text is plain inline text, used for list items.
type Text struct {
	Text string
}

// Strong is emphasized inline text, used for labels.
type Strong struct {
	Text string
}

// Labeled is a bold label followed by text on one line.
type Labeled struct {
	Label string
	Text  string
}

// CellStyle decides how a table cell is presented.
type CellStyle int

const (
	CellPlain CellStyle = iota
	CellVerbatim
	CellCode
)

// Cell is one table cell.
type Cell struct {
	Style CellStyle
	Text  string
}

// Table is a comparison table. Every row has len(Headers) cells.
type Table struct {
	Headers []string
	Rows    [][]Cell
}

// CodeBlock is literal source shown verbatim under a label.
type CodeBlock struct {
	Label    string
	Language string
	Code     string
}

// List is an ordered or unordered list.
type List struct {
	Ordered bool
	Items   []Node
}

// Callout is a highlighted tip.
type Callout struct {
	Text string
}

func (Block) node()     {}
func (Heading) node()   {}
func (Paragraph) node() {}
func (Text) node()      {}
func (Strong) node()    {}
func (Labeled) node()   {}
func (Table) node()     {}
func (CodeBlock) node() {}
func (List) node()      {}
func (Callout) node()   {}

// Walk visits n and its descendants depth-first.
func Walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)
	switch v := n.(type) {
	case Block:
		for _, c := range v.Children {
			Walk(c, fn)
		}
	case List:
		for _, c := range v.Items {
			Walk(c, fn)
		}
	}
}
