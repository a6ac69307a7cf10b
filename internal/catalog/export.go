package catalog

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// exportDoc is the JSON form of a whole catalog.
type exportDoc struct {
	Title   string        `json:"title,omitempty"`
	Tagline string        `json:"tagline,omitempty"`
	Topics  []exportTopic `json:"topics"`
}

// exportTopic uses the same field names as topic files, so an exported
// topic can be loaded back as a catalog source.
type exportTopic struct {
	Key       string        `json:"key"`
	Title     string        `json:"title,omitempty"`
	Questions []exportEntry `json:"questions"`
}

type exportEntry struct {
	ID          json.RawMessage `json:"id,omitempty"`
	Title       string          `json:"title"`
	Type        string          `json:"type,omitempty"`
	Description string          `json:"description,omitempty"`
	Content     *exportTable    `json:"content,omitempty"`
	Code        string          `json:"code,omitempty"`
	List        []string        `json:"list,omitempty"`
	Tip         string          `json:"tip,omitempty"`
	ExtraInfo   orderedFields   `json:"extraInfo,omitempty"`
}

type exportTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// orderedFields marshals as a JSON object with keys in source order.
type orderedFields []Field

func (o orderedFields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON writes the value in its source shape.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueList:
		items := v.Items
		if items == nil {
			items = []string{}
		}
		return json.Marshal(items)
	case ValueMap:
		return orderedFields(v.Map).MarshalJSON()
	case ValueNull:
		return []byte("null"), nil
	default:
		return json.Marshal(v.Text)
	}
}

// Export encodes the catalog as indented JSON.
func Export(c *Catalog) ([]byte, error) {
	doc := exportDoc{Topics: []exportTopic{}}
	if c != nil {
		doc.Title = c.Title
		doc.Tagline = c.Tagline
		for _, t := range c.Topics {
			if t != nil {
				doc.Topics = append(doc.Topics, toExport(t))
			}
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportTopic encodes a single topic in topic-file form.
func ExportTopic(t *Topic) ([]byte, error) {
	return json.MarshalIndent(toExport(t), "", "  ")
}

func toExport(t *Topic) exportTopic {
	out := exportTopic{Key: t.Key, Title: t.Title, Questions: make([]exportEntry, 0, len(t.Entries))}
	for _, e := range t.Entries {
		if e == nil {
			continue
		}
		ee := exportEntry{
			ID:          idJSON(e.ID),
			Title:       e.Title,
			Type:        e.RawType,
			Description: e.Description,
			Code:        e.Code,
			List:        e.List,
			Tip:         e.Tip,
		}
		if e.Table != nil {
			ee.Content = &exportTable{Headers: e.Table.Headers, Rows: e.Table.Rows}
		}
		if e.Extra != nil {
			ee.ExtraInfo = orderedFields(e.Extra.Fields)
		}
		out.Questions = append(out.Questions, ee)
	}
	return out
}

// idJSON keeps numeric ids numeric, so "3.1" exports as 3.1.
func idJSON(id EntryID) json.RawMessage {
	if id == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(string(id), 64); err == nil && json.Valid([]byte(id)) {
		return json.RawMessage(id)
	}
	b, _ := json.Marshal(string(id))
	return b
}
