package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ziadkadry99/prepsite/internal/render"
)

// DefaultStyle is the glamour style for code and the footer.
const DefaultStyle = "dark"

const minWidth = 20

// TextRenderer renders output trees as styled terminal text at a fixed
// width.
type TextRenderer struct {
	width int
	md    *glamour.TermRenderer
}

// NewTextRenderer creates a renderer for the given width and glamour
// style name.
func NewTextRenderer(width int, style string) (*TextRenderer, error) {
	width = max(width, minWidth)
	if style == "" {
		style = DefaultStyle
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width-6),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &TextRenderer{width: width, md: md}, nil
}

// Width is the rendering width.
func (r *TextRenderer) Width() int { return r.width }

// Page is a rendered document and the line each section starts on.
type Page struct {
	Content string
	Anchors map[string]int
}

// Document renders every section followed by the footer.
func (r *TextRenderer) Document(doc *render.Document) Page {
	var b strings.Builder
	lines := 0
	anchors := make(map[string]int, len(doc.Sections))

	for _, s := range doc.Sections {
		if s.ID != "" {
			anchors[s.ID] = lines
		}
		out := r.Node(s)
		b.WriteString(out)
		lines += strings.Count(out, "\n")
	}
	if footer := r.Markdown(doc.Footer); footer != "" {
		b.WriteString(footer)
	}
	return Page{Content: b.String(), Anchors: anchors}
}

// Node renders a single node.
func (r *TextRenderer) Node(n render.Node) string {
	var b strings.Builder
	r.write(&b, n)
	return b.String()
}

// Markdown renders prose with glamour. Blank input renders as nothing.
func (r *TextRenderer) Markdown(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	out, err := r.md.Render(src)
	if err != nil {
		return BodyStyle.Width(r.textWidth()).Render(src) + "\n"
	}
	return out
}

func (r *TextRenderer) textWidth() int {
	return r.width - 4
}

func (r *TextRenderer) write(b *strings.Builder, n render.Node) {
	switch v := n.(type) {
	case render.Block:
		if v.Class == "question" {
			var inner strings.Builder
			for _, c := range v.Children {
				r.write(&inner, c)
			}
			b.WriteString(EntryStyle.Width(r.width - 1).Render(strings.TrimRight(inner.String(), "\n")))
			b.WriteString("\n\n")
			return
		}
		for _, c := range v.Children {
			r.write(b, c)
		}

	case render.Heading:
		switch v.Level {
		case 2:
			b.WriteString(SectionStyle.Render(v.Text) + "\n\n")
		case 3:
			b.WriteString(EntryTitleStyle.Render(v.Text) + "\n")
		default:
			b.WriteString(SubheadingStyle.Render(v.Text) + "\n")
		}

	case render.Paragraph:
		style := BodyStyle
		if v.Class == "table-description" {
			style = DescriptionStyle
		}
		b.WriteString(style.Width(r.textWidth()).Render(v.Text) + "\n")

	case render.Text:
		b.WriteString(v.Text)

	case render.Strong:
		b.WriteString(StrongStyle.Render(v.Text) + "\n")

	case render.Labeled:
		b.WriteString(StrongStyle.Render(v.Label+":") + " " + v.Text)

	case render.List:
		for i, it := range v.Items {
			marker := "• "
			if v.Ordered {
				marker = strconv.Itoa(i+1) + ". "
			}
			marker = "  " + BulletStyle.Render(marker)
			item := BodyStyle.Width(r.textWidth() - lipgloss.Width(marker)).Render(r.Node(it))
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, marker, item) + "\n")
		}

	case render.Table:
		b.WriteString(r.table(v) + "\n")

	case render.CodeBlock:
		b.WriteString(SubheadingStyle.Render(v.Label) + "\n")
		b.WriteString(r.code(v.Language, v.Code))

	case render.Callout:
		b.WriteString(TipStyle.Width(r.textWidth()).Render("💡 "+v.Text) + "\n")
	}
}

func (r *TextRenderer) table(t render.Table) string {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = c.Text
		}
		rows[i] = cells
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		Headers(t.Headers...).
		Rows(rows...).
		Width(r.textWidth()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			if row >= 0 && row < len(t.Rows) && col < len(t.Rows[row]) && t.Rows[row][col].Style == render.CellCode {
				return CodeCellStyle
			}
			return TableCellStyle
		}).
		String()
}

func (r *TextRenderer) code(lang, code string) string {
	out, err := r.md.Render(render.Fence(lang, code))
	if err != nil {
		return PlainCodeStyle.Render(code) + "\n"
	}
	return out
}
