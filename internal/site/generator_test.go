package site

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/ziadkadry99/prepsite/internal/catalog"
	"github.com/ziadkadry99/prepsite/internal/nav"
)

type recordingReporter struct {
	total    int
	messages []string
	finished bool
}

func (r *recordingReporter) Start(total int)          { r.total = total }
func (r *recordingReporter) Update(_ int, msg string) { r.messages = append(r.messages, msg) }
func (r *recordingReporter) Finish()                  { r.finished = true }

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	return c
}

func TestGenerate(t *testing.T) {
	c := defaultCatalog(t)
	out := t.TempDir()
	rep := &recordingReporter{}

	g := NewSiteGenerator(c, out)
	g.Reporter = rep
	res, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Topics != 6 || res.Entries != c.EntryCount() {
		t.Errorf("result = %+v, want 6 topics and %d entries", res, c.EntryCount())
	}

	for _, name := range []string{IndexFile, StyleFile, ScriptFile, CatalogFile} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	page, err := os.ReadFile(filepath.Join(out, IndexFile))
	if err != nil {
		t.Fatal(err)
	}
	s := string(page)
	for _, l := range nav.Default {
		if !strings.Contains(s, `id="`+l.Target+`"`) {
			t.Errorf("section %q missing", l.Target)
		}
		if !strings.Contains(s, `<a href="#`+l.Target+`"`) {
			t.Errorf("nav link to %q missing", l.Target)
		}
	}
	if !strings.Contains(s, "<title>🚀 Interview Questions</title>") {
		t.Error("page title missing")
	}
	if strings.Contains(s, "data-livereload") {
		t.Error("static builds should not enable live reload")
	}
	if n := strings.Count(s, `class="question"`); n != c.EntryCount() {
		t.Errorf("questions on page = %d, want %d", n, c.EntryCount())
	}

	if rep.total != 6 || len(rep.messages) != 6 || !rep.finished {
		t.Errorf("reporter saw total=%d updates=%d finished=%v", rep.total, len(rep.messages), rep.finished)
	}

	data, err := os.ReadFile(filepath.Join(out, CatalogFile))
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Error("catalog.json is not valid JSON")
	}
}

func TestGenerateScriptGuardsProgressAndNav(t *testing.T) {
	out := t.TempDir()
	if _, err := NewSiteGenerator(defaultCatalog(t), out).Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(out, ScriptFile))
	if err != nil {
		t.Fatal(err)
	}
	script := string(data)
	for _, want := range []string{
		"!(scrollable > 0)",
		"return p > 100 ? 100 : p;",
		"e.preventDefault();",
		`scrollIntoView({ behavior: "smooth", block: "start" })`,
	} {
		if !strings.Contains(script, want) {
			t.Errorf("%s missing %q", ScriptFile, want)
		}
	}
}

func TestRenderPageDeterministic(t *testing.T) {
	g := NewSiteGenerator(defaultCatalog(t), "")
	a, err := g.RenderPage()
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	b, err := g.RenderPage()
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("rendering the same catalog twice gave different pages")
	}
}

func TestRenderPageLiveReload(t *testing.T) {
	g := NewSiteGenerator(&catalog.Catalog{Title: "T"}, "")
	g.BuildID = "build-1"
	g.LiveReload = true
	g.Title = "Override"

	page, err := g.RenderPage()
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	s := string(page)
	for _, want := range []string{`data-build="build-1"`, `data-livereload="/livereload"`, "<h1>Override</h1>"} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestGenerateEmptyCatalog(t *testing.T) {
	out := t.TempDir()
	res, err := NewSiteGenerator(&catalog.Catalog{}, out).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Topics != 0 || res.Entries != 0 {
		t.Errorf("result = %+v, want zero", res)
	}
	page, err := os.ReadFile(filepath.Join(out, IndexFile))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(page), "<section") {
		t.Error("empty catalog should render no sections")
	}
}

func TestGenerateBadOutputDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewSiteGenerator(&catalog.Catalog{}, file).Generate(); err == nil {
		t.Error("expected error when the output path is a file")
	}
}
