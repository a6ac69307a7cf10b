package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	wantKeys := []string{"fundamentals", "react", "nextjs", "redux", "systemDesign", "coding"}
	got := c.Keys()
	if len(got) != len(wantKeys) {
		t.Fatalf("keys = %v, want %v", got, wantKeys)
	}
	for i := range wantKeys {
		if got[i] != wantKeys[i] {
			t.Errorf("key[%d] = %q, want %q", i, got[i], wantKeys[i])
		}
	}

	if c.Title != "🚀 Interview Questions" {
		t.Errorf("title = %q", c.Title)
	}
	if !strings.Contains(c.Footer, "Topics Covered") {
		t.Error("footer should be loaded from footer.md")
	}
	if n := c.EntryCount(); n != 137 {
		t.Errorf("entry count = %d, want 137", n)
	}

	react := c.Topic("react")
	if react == nil {
		t.Fatal("react topic missing")
	}
	var lifecycle *Entry
	for _, e := range react.Entries {
		if e.ID == "3.1" {
			lifecycle = e
		}
	}
	if lifecycle == nil {
		t.Fatal("entry 3.1 should keep its literal id")
	}
	if lifecycle.Kind != KindComparisonTable {
		t.Errorf("kind = %v, want comparison-table", lifecycle.Kind)
	}
	if !lifecycle.Extra.Specialized() {
		t.Fatal("lifecycle entry should carry specialized extra info")
	}
	if len(lifecycle.Extra.Phases) != 3 || lifecycle.Extra.Phases[0].Name != "Mounting" {
		t.Errorf("phases = %+v", lifecycle.Extra.Phases)
	}
	lc := lifecycle.Extra.Lifecycle
	if lc == nil || len(lc.ClassComponents) != 4 {
		t.Fatalf("class components = %+v", lc)
	}
	if lc.ClassComponents[3].Phase != "ErrorHandling" || len(lc.ClassComponents[3].Methods) != 2 {
		t.Errorf("error handling group = %+v", lc.ClassComponents[3])
	}
	if !strings.HasPrefix(lc.UseEffect, "Runs after render") {
		t.Errorf("useEffect = %q", lc.UseEffect)
	}
	if len(lc.Deprecated) != 4 {
		t.Errorf("deprecated = %d, want 4", len(lc.Deprecated))
	}
}

func TestDefaultCatalogHasNoWarnings(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if ws := Warnings(Check(c)); len(ws) != 0 {
		for _, w := range ws {
			t.Error(w)
		}
	}
}

func TestExtraInfoKeepsOrder(t *testing.T) {
	src := `key: redux
questions:
  - id: 4
    title: Flow
    type: text-with-code
    description: d
    code: c
    extraInfo:
      View: v
      Action: a
      Reducer:
        - r1
        - r2
      Nested:
        inner: x
        more: [p, q]
`
	topic, err := decodeTopic([]byte(src), "fallback")
	if err != nil {
		t.Fatalf("decodeTopic: %v", err)
	}
	e := topic.Entries[0]
	if e.Extra.Specialized() {
		t.Error("plain fields should not be specialized")
	}
	labels := []string{"View", "Action", "Reducer", "Nested"}
	if len(e.Extra.Fields) != len(labels) {
		t.Fatalf("fields = %d, want %d", len(e.Extra.Fields), len(labels))
	}
	for i, l := range labels {
		if e.Extra.Fields[i].Label != l {
			t.Errorf("field[%d] = %q, want %q", i, e.Extra.Fields[i].Label, l)
		}
	}
	if got := e.Extra.Fields[2].Value; got.Kind != ValueList || len(got.Items) != 2 {
		t.Errorf("Reducer = %+v, want a two item list", got)
	}
	if got := e.Extra.Fields[3].Value.String(); got != "{inner: x, more: [p, q]}" {
		t.Errorf("nested string form = %q", got)
	}
}

func TestDecodeTolerance(t *testing.T) {
	src := `questions:
  - title: No id, no type
  - id: 7
    title: Broken table
    type: comparison-table
  - id: x-1
    title: Unknown
    type: carousel
    description: shown as plain
`
	topic, err := decodeTopic([]byte(src), "misc")
	if err != nil {
		t.Fatalf("decodeTopic: %v", err)
	}
	if topic.Key != "misc" {
		t.Errorf("key = %q, want fallback misc", topic.Key)
	}
	if len(topic.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(topic.Entries))
	}
	if topic.Entries[0].ID != "" || topic.Entries[0].Kind != KindPlain {
		t.Errorf("first entry = %+v", topic.Entries[0])
	}
	if topic.Entries[1].Table != nil {
		t.Error("table should stay nil when content is absent")
	}
	if topic.Entries[2].Kind != KindPlain || topic.Entries[2].RawType != "carousel" {
		t.Errorf("unknown type should map to plain and keep its tag, got %+v", topic.Entries[2])
	}
}

func TestDecodeRejectsScalarExtraInfo(t *testing.T) {
	src := `questions:
  - id: 1
    title: t
    extraInfo: just text
`
	if _, err := decodeTopic([]byte(src), "k"); err == nil {
		t.Fatal("expected an error for scalar extraInfo")
	}
}

func TestLoadWithoutIndex(t *testing.T) {
	fsys := fstest.MapFS{
		"b.yaml":       {Data: []byte("title: B\nquestions: []\n")},
		"a.yaml":       {Data: []byte("key: alpha\ntitle: A\nquestions:\n  - id: 1\n    title: one\n")},
		"notes.txt":    {Data: []byte("ignored")},
		"nested/c.yml": {Data: []byte("title: C\n")},
	}

	c, err := Load(fsys, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	keys := c.Keys()
	if len(keys) != 2 || keys[0] != "alpha" || keys[1] != "b" {
		t.Errorf("keys = %v, want [alpha b]", keys)
	}

	c, err = Load(fsys, "**/*.{yaml,yml}")
	if err != nil {
		t.Fatalf("Load with pattern: %v", err)
	}
	if len(c.Topics) != 3 {
		t.Errorf("topics = %d, want 3", len(c.Topics))
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "*.yaml"); err == nil {
		t.Error("expected error for empty catalog")
	}
	if _, err := Load(fstest.MapFS{"a.yaml": {Data: []byte("x")}}, "[a"); err == nil {
		t.Error("expected error for invalid pattern")
	}
	bad := fstest.MapFS{"a.yaml": {Data: []byte("questions: {nope")}}
	_, err := Load(bad, "*.yaml")
	if err == nil || !strings.Contains(err.Error(), "a.yaml") {
		t.Errorf("decode error should name the file, got %v", err)
	}
	missingFooter := fstest.MapFS{
		"index.yaml": {Data: []byte("footer: gone.md\ntopics: [a.yaml]\n")},
		"a.yaml":     {Data: []byte("title: A\n")},
	}
	if _, err := Load(missingFooter, ""); err == nil {
		t.Error("expected error for missing footer")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "topic.yaml"), []byte("title: T\nquestions: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadDir(dir, "")
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if c.Topic("topic") == nil {
		t.Error("topic key should default to the file name")
	}

	if _, err := LoadDir(filepath.Join(dir, "missing"), ""); err == nil {
		t.Error("expected error for missing dir")
	}
	if _, err := LoadDir(filepath.Join(dir, "topic.yaml"), ""); err == nil {
		t.Error("expected error when path is a file")
	}
}

func TestTopicLookupNilSafe(t *testing.T) {
	var c *Catalog
	if c.Topic("react") != nil {
		t.Error("nil catalog should return nil topic")
	}
	if c.EntryCount() != 0 || c.Keys() != nil {
		t.Error("nil catalog should be empty")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		tag  string
		want Kind
	}{
		{"comparison-table", KindComparisonTable},
		{"text-with-code", KindTextWithCode},
		{"text-with-list", KindTextWithList},
		{"list-only", KindListOnly},
		{"code-only", KindCodeOnly},
		{"", KindPlain},
		{"Comparison-Table", KindPlain},
	}
	for _, tt := range tests {
		if got := KindOf(tt.tag); got != tt.want {
			t.Errorf("KindOf(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestDecodeNullExtraInfoValues(t *testing.T) {
	src := `questions:
  - id: 1
    title: Null lifecycle
    type: comparison-table
    content:
      headers: [A]
      rows: [[a]]
    extraInfo:
      lifecycleMethods: ~
      phases: null
      Note: hi
  - id: 2
    title: Null notes
    extraInfo:
      Note: ~
      Other: null
  - id: 3
    title: Null sub-keys
    type: comparison-table
    extraInfo:
      lifecycleMethods:
        classComponents: ~
        deprecatedMethods: null
        functionalComponents:
          useEffect: runs after render
`
	topic, err := decodeTopic([]byte(src), "nulls")
	if err != nil {
		t.Fatalf("decodeTopic: %v", err)
	}

	first := topic.Entries[0].Extra
	if first.Specialized() {
		t.Error("null lifecycleMethods and phases should not make extra info specialized")
	}
	if first.HasPhases() || first.Lifecycle != nil {
		t.Errorf("null keys should be absent, got phases=%v lifecycle=%+v", first.HasPhases(), first.Lifecycle)
	}
	if len(first.Fields) != 3 || first.Fields[2].Value.String() != "hi" {
		t.Errorf("fields = %+v, want all three kept", first.Fields)
	}

	second := topic.Entries[1].Extra
	for _, f := range second.Fields[:2] {
		if f.Value.Kind != ValueNull {
			t.Errorf("%s kind = %v, want ValueNull", f.Label, f.Value.Kind)
		}
		if got := f.Value.String(); got != "" {
			t.Errorf("%s string = %q, want empty", f.Label, got)
		}
	}

	lc := topic.Entries[2].Extra.Lifecycle
	if lc == nil {
		t.Fatal("lifecycleMethods mapping should be kept")
	}
	if lc.HasClass || lc.Deprecated != nil {
		t.Errorf("null sub-keys should be absent, got %+v", lc)
	}
	if !lc.HasFunctional || lc.UseEffect != "runs after render" {
		t.Errorf("functional = %v %q", lc.HasFunctional, lc.UseEffect)
	}
}
