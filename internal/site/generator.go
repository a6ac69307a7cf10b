package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/prepsite/internal/catalog"
	"github.com/ziadkadry99/prepsite/internal/nav"
	"github.com/ziadkadry99/prepsite/internal/progress"
	"github.com/ziadkadry99/prepsite/internal/render"
)

// Files written by Generate.
const (
	IndexFile   = "index.html"
	StyleFile   = "style.css"
	ScriptFile  = "script.js"
	CatalogFile = "catalog.json"
)

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// SiteGenerator builds the static study page from a catalog.
type SiteGenerator struct {
	Catalog   *catalog.Catalog
	OutputDir string
	// Links defaults to nav.Default filtered against the catalog.
	Links []nav.Link
	// Title and Tagline override the catalog header when set.
	Title   string
	Tagline string
	// Style is the chroma style for code blocks.
	Style    string
	Language string
	// BuildID is embedded in the page. With LiveReload the page reloads
	// when the server announces a different id.
	BuildID    string
	LiveReload bool
	Reporter   progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator with default links and style.
func NewSiteGenerator(c *catalog.Catalog, outputDir string) *SiteGenerator {
	return &SiteGenerator{
		Catalog:   c,
		OutputDir: outputDir,
		Links:     nav.ForCatalog(c, nav.Default),
		Style:     DefaultStyle,
	}
}

// Result summarizes a build.
type Result struct {
	Topics  int
	Entries int
	BuildID string
}

// pageData holds the data passed to the page template.
type pageData struct {
	Title      string
	Tagline    template.HTML
	Links      []nav.Link
	Sections   []template.HTML
	Footer     template.HTML
	BuildID    string
	LiveReload bool
}

// Generate writes the page, its assets and the catalog export.
func (g *SiteGenerator) Generate() (Result, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return Result{}, err
	}

	if err := os.WriteFile(filepath.Join(g.OutputDir, StyleFile), []byte(cssContent), 0o644); err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, ScriptFile), []byte(jsContent), 0o644); err != nil {
		return Result{}, err
	}

	page, err := g.render(g.reporter())
	if err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, IndexFile), page, 0o644); err != nil {
		return Result{}, err
	}

	export, err := catalog.Export(g.Catalog)
	if err != nil {
		return Result{}, fmt.Errorf("exporting catalog: %w", err)
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, CatalogFile), export, 0o644); err != nil {
		return Result{}, err
	}

	return Result{
		Topics:  len(g.Catalog.Keys()),
		Entries: g.Catalog.EntryCount(),
		BuildID: g.BuildID,
	}, nil
}

// RenderPage returns index.html without writing anything.
func (g *SiteGenerator) RenderPage() ([]byte, error) {
	return g.render(progress.Discard{})
}

func (g *SiteGenerator) render(rep progress.Reporter) ([]byte, error) {
	r := &render.Renderer{Language: g.Language}
	h := NewHTMLRenderer(g.Style)

	links := g.Links
	if links == nil {
		links = nav.ForCatalog(g.Catalog, nav.Default)
	}
	doc := r.Page(g.Catalog, links)

	data := pageData{
		Title:      doc.Title,
		Tagline:    h.Markdown(doc.Tagline),
		Links:      doc.Links,
		Footer:     h.Markdown(doc.Footer),
		BuildID:    g.BuildID,
		LiveReload: g.LiveReload,
	}
	if g.Title != "" {
		data.Title = g.Title
	}
	if g.Tagline != "" {
		data.Tagline = h.Markdown(g.Tagline)
	}

	rep.Start(len(doc.Sections))
	for i, s := range doc.Sections {
		data.Sections = append(data.Sections, h.Render(s))
		rep.Update(i+1, "Rendering "+s.ID)
	}
	rep.Finish()

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *SiteGenerator) reporter() progress.Reporter {
	if g.Reporter == nil {
		return progress.Discard{}
	}
	return g.Reporter
}
