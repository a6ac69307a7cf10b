package render

import (
	"strings"

	"github.com/ziadkadry99/prepsite/internal/catalog"
)

// DefaultLanguage is the highlighting language for catalog code.
const DefaultLanguage = "javascript"

// Headings and labels shared by every backend.
const (
	ExtraInfoHeading  = "📌 Additional Details"
	PhasesHeading     = "Phases of React Lifecycle"
	ClassHeading      = "Class Component Lifecycle Methods"
	FunctionalHeading = "Functional Component Lifecycle Equivalents"
	DeprecatedHeading = "⚠️ Deprecated Lifecycle Methods"

	ExampleLabel        = "Example:"
	ProcessLabel        = "Process:"
	ImplementationLabel = "Implementation:"
)

// Layout is the per-kind view of an entry. Each catalog kind has exactly
// one variant; PlainLayout is the catch-all.
type Layout interface {
	layout()
}

// ComparisonTableLayout is a description, a table and the lifecycle extra info.
type ComparisonTableLayout struct {
	Description string
	Table       *catalog.Table
	Extra       *catalog.ExtraInfo
}

// TextWithCodeLayout is prose with an example and an optional tip.
type TextWithCodeLayout struct {
	Description string
	Code        string
	Tip         string
	Extra       *catalog.ExtraInfo
}

// TextWithListLayout is prose followed by ordered steps.
type TextWithListLayout struct {
	Description string
	List        []string
	Extra       *catalog.ExtraInfo
}

// ListOnlyLayout is a bare bullet list.
type ListOnlyLayout struct {
	List  []string
	Extra *catalog.ExtraInfo
}

// CodeOnlyLayout is an implementation listing with no prose.
type CodeOnlyLayout struct {
	Code  string
	Extra *catalog.ExtraInfo
}

// PlainLayout covers untyped and unknown entries.
type PlainLayout struct {
	Description string
	Extra       *catalog.ExtraInfo
}

func (ComparisonTableLayout) layout() {}
func (TextWithCodeLayout) layout()    {}
func (TextWithListLayout) layout()    {}
func (ListOnlyLayout) layout()        {}
func (CodeOnlyLayout) layout()        {}
func (PlainLayout) layout()           {}

// LayoutOf selects the layout for an entry from its kind.
func LayoutOf(e *catalog.Entry) Layout {
	switch e.Kind {
	case catalog.KindComparisonTable:
		return ComparisonTableLayout{Description: e.Description, Table: e.Table, Extra: e.Extra}
	case catalog.KindTextWithCode:
		return TextWithCodeLayout{Description: e.Description, Code: e.Code, Tip: e.Tip, Extra: e.Extra}
	case catalog.KindTextWithList:
		return TextWithListLayout{Description: e.Description, List: e.List, Extra: e.Extra}
	case catalog.KindListOnly:
		return ListOnlyLayout{List: e.List, Extra: e.Extra}
	case catalog.KindCodeOnly:
		return CodeOnlyLayout{Code: e.Code, Extra: e.Extra}
	default:
		return PlainLayout{Description: e.Description, Extra: e.Extra}
	}
}

// Renderer maps entries to output trees. The zero value is ready to use.
type Renderer struct {
	// Language tags code blocks for highlighting. Empty means DefaultLanguage.
	Language string
}

func (r *Renderer) language() string {
	if r == nil || r.Language == "" {
		return DefaultLanguage
	}
	return r.Language
}

// Entry renders one entry. It never fails: missing fields drop the part
// of the output that depends on them.
func (r *Renderer) Entry(e *catalog.Entry) Node {
	if e == nil {
		return nil
	}
	children := []Node{Heading{Level: 3, Text: e.Title}}
	children = append(children, r.body(LayoutOf(e))...)
	return Block{Class: "question", Children: children}
}

func (r *Renderer) body(l Layout) []Node {
	var out []Node
	switch v := l.(type) {
	case ComparisonTableLayout:
		var inner []Node
		if v.Description != "" {
			inner = append(inner, Paragraph{Class: "table-description", Text: v.Description})
		}
		if v.Table != nil {
			inner = append(inner, ComparisonTable(v.Table))
		}
		if v.Extra != nil {
			inner = append(inner, SpecializedExtra(v.Extra))
		}
		out = append(out, Block{Class: "comparison-table-container", Children: inner})

	case TextWithCodeLayout:
		out = appendDescription(out, v.Description)
		if v.Code != "" {
			out = append(out, CodeBlock{Label: ExampleLabel, Language: r.language(), Code: v.Code})
		}
		if v.Tip != "" {
			out = append(out, Callout{Text: v.Tip})
		}
		out = appendGeneric(out, v.Extra)

	case TextWithListLayout:
		out = appendDescription(out, v.Description)
		if len(v.List) > 0 {
			out = append(out, Block{Class: "example", Children: []Node{
				Heading{Level: 4, Text: ProcessLabel},
				textList(v.List, true),
			}})
		}
		out = appendGeneric(out, v.Extra)

	case ListOnlyLayout:
		if len(v.List) > 0 {
			out = append(out, textList(v.List, false))
		}
		out = appendGeneric(out, v.Extra)

	case CodeOnlyLayout:
		if v.Code != "" {
			out = append(out, CodeBlock{Label: ImplementationLabel, Language: r.language(), Code: v.Code})
		}
		out = appendGeneric(out, v.Extra)

	case PlainLayout:
		out = appendDescription(out, v.Description)
		out = appendGeneric(out, v.Extra)
	}
	return out
}

func appendDescription(out []Node, desc string) []Node {
	if desc == "" {
		return out
	}
	return append(out, Paragraph{Text: desc})
}

func appendGeneric(out []Node, x *catalog.ExtraInfo) []Node {
	if x == nil {
		return out
	}
	return append(out, GenericExtra(x))
}

// FormatCell picks the presentation of a table cell: text with a check or
// cross glyph is shown as is, text starting with "{" or "JSON" is shown as
// code, anything else is plain.
func FormatCell(s string) Cell {
	switch {
	case strings.Contains(s, "✅") || strings.Contains(s, "❌"):
		return Cell{Style: CellVerbatim, Text: s}
	case strings.HasPrefix(s, "{") || strings.HasPrefix(s, "JSON"):
		return Cell{Style: CellCode, Text: s}
	default:
		return Cell{Style: CellPlain, Text: s}
	}
}

// ComparisonTable formats a catalog table. Rows are padded or cut to the
// header width so every body row has one cell per column. A table without
// headers renders empty rows; Check reports the cut cells.
func ComparisonTable(t *catalog.Table) Table {
	width := len(t.Headers)

	out := Table{Headers: t.Headers, Rows: make([][]Cell, 0, len(t.Rows))}
	for _, row := range t.Rows {
		cells := make([]Cell, width)
		for i := range cells {
			if i < len(row) {
				cells[i] = FormatCell(row[i])
			}
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}

func textList(items []string, ordered bool) List {
	l := List{Ordered: ordered, Items: make([]Node, len(items))}
	for i, it := range items {
		l.Items[i] = Text{Text: it}
	}
	return l
}

// Fence wraps code in a markdown fenced block whose fence is longer than
// any backtick run in the code, so the block cannot be closed early.
func Fence(lang, code string) string {
	code = strings.TrimSuffix(code, "\n")
	fence := strings.Repeat("`", max(3, longestRun(code, '`')+1))
	return fence + lang + "\n" + code + "\n" + fence + "\n"
}

func longestRun(s string, c byte) int {
	best, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			cur++
			best = max(best, cur)
		} else {
			cur = 0
		}
	}
	return best
}
