package site

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/ziadkadry99/prepsite/internal/render"
)

// DefaultStyle is the chroma style used for code blocks.
const DefaultStyle = "github"

// HTMLRenderer serializes render trees to HTML. All text is escaped; code
// goes through goldmark so it is highlighted but never interpreted.
type HTMLRenderer struct {
	prose goldmark.Markdown
	code  goldmark.Markdown
}

// NewHTMLRenderer returns a renderer highlighting code with the given
// chroma style. An empty style means DefaultStyle.
func NewHTMLRenderer(style string) *HTMLRenderer {
	if style == "" {
		style = DefaultStyle
	}
	return &HTMLRenderer{
		prose: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		code: goldmark.New(
			goldmark.WithExtensions(
				highlighting.NewHighlighting(
					highlighting.WithStyle(style),
				),
			),
		),
	}
}

// Render returns the HTML for n.
func (h *HTMLRenderer) Render(n render.Node) template.HTML {
	var b strings.Builder
	h.write(&b, n)
	return template.HTML(b.String())
}

// Markdown converts prose such as the tagline or footer. Raw HTML in the
// source is not passed through.
func (h *HTMLRenderer) Markdown(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := h.prose.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + esc(src) + "</p>")
	}
	return template.HTML(buf.String())
}

func (h *HTMLRenderer) write(b *strings.Builder, n render.Node) {
	switch v := n.(type) {
	case render.Block:
		tag := "div"
		if v.Class == "section" {
			tag = "section"
		}
		b.WriteString("<" + tag)
		if v.ID != "" {
			b.WriteString(` id="` + esc(v.ID) + `"`)
		}
		if v.Class != "" {
			b.WriteString(` class="` + esc(v.Class) + `"`)
		}
		b.WriteString(">")
		for _, c := range v.Children {
			h.write(b, c)
		}
		b.WriteString("</" + tag + ">\n")

	case render.Heading:
		level := min(max(v.Level, 1), 6)
		tag := "h" + strconv.Itoa(level)
		b.WriteString("<" + tag + ">" + esc(v.Text) + "</" + tag + ">\n")

	case render.Paragraph:
		if v.Class != "" {
			b.WriteString(`<p class="` + esc(v.Class) + `">`)
		} else {
			b.WriteString("<p>")
		}
		b.WriteString(esc(v.Text) + "</p>\n")

	case render.Text:
		b.WriteString(esc(v.Text))

	case render.Strong:
		b.WriteString("<strong>" + esc(v.Text) + "</strong>")

	case render.Labeled:
		b.WriteString("<strong>" + esc(v.Label) + ":</strong> " + esc(v.Text))

	case render.Table:
		h.writeTable(b, v)

	case render.CodeBlock:
		b.WriteString(`<div class="example"><h4>` + esc(v.Label) + "</h4>")
		b.WriteString(`<div class="code-block">`)
		b.WriteString(h.highlight(v.Language, v.Code))
		b.WriteString("</div></div>\n")

	case render.List:
		tag := "ul"
		if v.Ordered {
			tag = "ol"
		}
		b.WriteString("<" + tag + ">")
		for _, it := range v.Items {
			b.WriteString("<li>")
			h.write(b, it)
			b.WriteString("</li>")
		}
		b.WriteString("</" + tag + ">\n")

	case render.Callout:
		b.WriteString(`<div class="tip">` + esc(v.Text) + "</div>\n")
	}
}

func (h *HTMLRenderer) writeTable(b *strings.Builder, t render.Table) {
	b.WriteString(`<div class="comparison-table"><table>`)
	if len(t.Headers) > 0 {
		b.WriteString("<thead><tr>")
		for _, hd := range t.Headers {
			b.WriteString("<th>" + esc(hd) + "</th>")
		}
		b.WriteString("</tr></thead>")
	}
	b.WriteString("<tbody>")
	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, c := range row {
			b.WriteString("<td>")
			if c.Style == render.CellCode {
				b.WriteString("<code>" + esc(c.Text) + "</code>")
			} else {
				b.WriteString(esc(c.Text))
			}
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></div>\n")
}

// highlight renders code through goldmark so chroma can color it. The
// code is fenced with render.Fence and is never parsed as markdown.
func (h *HTMLRenderer) highlight(lang, code string) string {
	var buf bytes.Buffer
	if err := h.code.Convert([]byte(render.Fence(lang, code)), &buf); err != nil {
		return "<pre><code>" + esc(code) + "</code></pre>"
	}
	return buf.String()
}

func esc(s string) string {
	return template.HTMLEscapeString(s)
}
