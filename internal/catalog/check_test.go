package catalog

import (
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	c := &Catalog{Topics: []*Topic{
		{
			Key:   "react",
			Title: "React",
			Entries: []*Entry{
				{ID: "3", Title: "a", Kind: KindPlain, Description: "d"},
				{ID: "3", Title: "b", Kind: KindPlain, Description: "d"},
				{ID: "4", Title: "c", Kind: KindComparisonTable, RawType: TypeComparisonTable},
				{ID: "5", Title: "d", Kind: KindPlain, RawType: "carousel", Description: "d"},
				{ID: "6", Title: "e", Kind: KindComparisonTable, RawType: TypeComparisonTable, Table: &Table{
					Headers: []string{"A", "B"},
					Rows:    [][]string{{"1", "2"}, {"only one"}},
				}},
				nil,
			},
		},
		{Key: "react"},
	}}

	ds := Check(c)
	joined := make([]string, len(ds))
	for i, d := range ds {
		joined[i] = d.String()
	}
	all := strings.Join(joined, "\n")

	for _, want := range []string{
		"id 3 is used more than once",
		"comparison-table entry has no content",
		`unknown type "carousel"`,
		"table row 2 has 1 cells, header has 2",
		"duplicate topic key",
		"topic has no entries",
		"topic has no title",
	} {
		if !strings.Contains(all, want) {
			t.Errorf("missing diagnostic %q in:\n%s", want, all)
		}
	}

	// Duplicate ids are informational; the rest are warnings.
	for _, d := range ds {
		if strings.Contains(d.Message, "more than once") && d.Severity != SeverityInfo {
			t.Errorf("duplicate id should be info, got %s", d.Severity)
		}
	}
	if n := len(Warnings(ds)); n != 4 {
		t.Errorf("warnings = %d, want 4:\n%s", n, all)
	}
}

func TestCheckMissingFieldsPerKind(t *testing.T) {
	tests := []struct {
		entry Entry
		want  []string
	}{
		{Entry{Kind: KindTextWithCode}, []string{"no description", "no code"}},
		{Entry{Kind: KindTextWithList}, []string{"no description", "no list"}},
		{Entry{Kind: KindListOnly}, []string{"no list"}},
		{Entry{Kind: KindCodeOnly}, []string{"no code"}},
		{Entry{Kind: KindPlain}, []string{"no description"}},
		{Entry{Kind: KindCodeOnly, Code: "x"}, nil},
	}
	for _, tt := range tests {
		ds := checkFields("t", 1, &tt.entry)
		if len(ds) != len(tt.want) {
			t.Errorf("%s: got %d diagnostics, want %d: %v", tt.entry.Kind, len(ds), len(tt.want), ds)
			continue
		}
		for i, w := range tt.want {
			if !strings.Contains(ds[i].Message, w) {
				t.Errorf("%s: diagnostic %q should mention %q", tt.entry.Kind, ds[i].Message, w)
			}
		}
	}
}

func TestCheckNil(t *testing.T) {
	if ds := Check(nil); ds != nil {
		t.Errorf("Check(nil) = %v, want nil", ds)
	}
}
