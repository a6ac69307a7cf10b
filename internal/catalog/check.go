package catalog

import (
	"fmt"
)

// Severity ranks a diagnostic.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic is a non-fatal finding about catalog content. Rendering never
// depends on diagnostics; they exist for authors.
type Diagnostic struct {
	Severity Severity
	Topic    string
	Entry    EntryID
	Position int // 1-based position of the entry within its topic, 0 for topic-level findings
	Message  string
}

func (d Diagnostic) String() string {
	if d.Position == 0 {
		return fmt.Sprintf("%s: %s: %s", d.Severity, d.Topic, d.Message)
	}
	return fmt.Sprintf("%s: %s #%d (id %s): %s", d.Severity, d.Topic, d.Position, d.Entry, d.Message)
}

// Check inspects the catalog for duplicate ids, fields a layout expects but
// cannot find, ragged tables and unknown type tags.
func Check(c *Catalog) []Diagnostic {
	if c == nil {
		return nil
	}

	var out []Diagnostic
	seenKeys := make(map[string]bool)

	for _, t := range c.Topics {
		if t == nil {
			continue
		}
		if seenKeys[t.Key] {
			out = append(out, Diagnostic{Severity: SeverityWarning, Topic: t.Key, Message: "duplicate topic key"})
		}
		seenKeys[t.Key] = true

		if t.Title == "" {
			out = append(out, Diagnostic{Severity: SeverityInfo, Topic: t.Key, Message: "topic has no title"})
		}
		if len(t.Entries) == 0 {
			out = append(out, Diagnostic{Severity: SeverityInfo, Topic: t.Key, Message: "topic has no entries"})
		}

		seenIDs := make(map[EntryID]bool)
		for i, e := range t.Entries {
			if e == nil {
				continue
			}
			at := func(sev Severity, format string, args ...any) {
				out = append(out, Diagnostic{
					Severity: sev,
					Topic:    t.Key,
					Entry:    e.ID,
					Position: i + 1,
					Message:  fmt.Sprintf(format, args...),
				})
			}

			if e.ID != "" && seenIDs[e.ID] {
				at(SeverityInfo, "id %s is used more than once", e.ID)
			}
			seenIDs[e.ID] = true

			if e.RawType != "" && !Known(e.RawType) {
				at(SeverityWarning, "unknown type %q, rendered as plain text", e.RawType)
			}
			out = append(out, checkFields(t.Key, i+1, e)...)
		}
	}
	return out
}

// checkFields reports fields implied by the entry kind that are absent.
func checkFields(topic string, pos int, e *Entry) []Diagnostic {
	var missing []string
	switch e.Kind {
	case KindComparisonTable:
		if e.Table == nil {
			missing = append(missing, "content")
		}
	case KindTextWithCode:
		if e.Description == "" {
			missing = append(missing, "description")
		}
		if e.Code == "" {
			missing = append(missing, "code")
		}
	case KindTextWithList:
		if e.Description == "" {
			missing = append(missing, "description")
		}
		if len(e.List) == 0 {
			missing = append(missing, "list")
		}
	case KindListOnly:
		if len(e.List) == 0 {
			missing = append(missing, "list")
		}
	case KindCodeOnly:
		if e.Code == "" {
			missing = append(missing, "code")
		}
	case KindPlain:
		if e.Description == "" {
			missing = append(missing, "description")
		}
	}

	var out []Diagnostic
	for _, m := range missing {
		out = append(out, Diagnostic{
			Severity: SeverityWarning,
			Topic:    topic,
			Entry:    e.ID,
			Position: pos,
			Message:  fmt.Sprintf("%s entry has no %s", e.Kind, m),
		})
	}

	if e.Table != nil {
		for r, row := range e.Table.Rows {
			if len(row) != len(e.Table.Headers) {
				out = append(out, Diagnostic{
					Severity: SeverityWarning,
					Topic:    topic,
					Entry:    e.ID,
					Position: pos,
					Message:  fmt.Sprintf("table row %d has %d cells, header has %d", r+1, len(row), len(e.Table.Headers)),
				})
			}
		}
	}
	return out
}

// Warnings filters diagnostics down to warnings.
func Warnings(ds []Diagnostic) []Diagnostic {
	var out []Diagnostic
	for _, d := range ds {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}
