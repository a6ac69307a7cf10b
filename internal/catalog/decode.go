package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// rawTopic mirrors a topic file on disk.
type rawTopic struct {
	Key       string     `yaml:"key"`
	Title     string     `yaml:"title"`
	Questions []rawEntry `yaml:"questions"`
}

// rawEntry mirrors one entry. id and extraInfo are kept as nodes so the
// literal id text and the key order of extraInfo survive decoding.
type rawEntry struct {
	ID          yaml.Node `yaml:"id"`
	Title       string    `yaml:"title"`
	Type        string    `yaml:"type"`
	Description string    `yaml:"description"`
	Content     *rawTable `yaml:"content"`
	Code        string    `yaml:"code"`
	List        []string  `yaml:"list"`
	Tip         string    `yaml:"tip"`
	ExtraInfo   yaml.Node `yaml:"extraInfo"`
}

type rawTable struct {
	Headers []string   `yaml:"headers"`
	Rows    [][]string `yaml:"rows"`
}

// decodeTopic parses one topic file. fallbackKey is used when the file
// does not declare a key.
func decodeTopic(data []byte, fallbackKey string) (*Topic, error) {
	var raw rawTopic
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	t := &Topic{
		Key:     raw.Key,
		Title:   raw.Title,
		Entries: make([]*Entry, 0, len(raw.Questions)),
	}
	if t.Key == "" {
		t.Key = fallbackKey
	}

	for i := range raw.Questions {
		e, err := raw.Questions[i].normalize()
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		t.Entries = append(t.Entries, e)
	}
	return t, nil
}

func (r *rawEntry) normalize() (*Entry, error) {
	e := &Entry{
		ID:          EntryID(scalarText(&r.ID)),
		Title:       r.Title,
		Description: r.Description,
		Tip:         r.Tip,
		Kind:        KindOf(r.Type),
		RawType:     r.Type,
		Code:        r.Code,
		List:        r.List,
	}
	if r.Content != nil {
		e.Table = &Table{Headers: r.Content.Headers, Rows: r.Content.Rows}
	}

	if r.ExtraInfo.Kind != 0 && r.ExtraInfo.Tag != "!!null" {
		v := nodeValue(&r.ExtraInfo)
		if v.Kind != ValueMap {
			return nil, fmt.Errorf("extraInfo must be a mapping, got %s", kindName(r.ExtraInfo.Kind))
		}
		e.Extra = NewExtraInfo(v.Map)
	}
	return e, nil
}

// NewExtraInfo builds the typed views of the lifecycle keys. All fields
// stay available for generic presentation.
func NewExtraInfo(fields []Field) *ExtraInfo {
	x := &ExtraInfo{Fields: fields}

	for _, f := range fields {
		switch f.Label {
		case "phases":
			if !f.Value.Present() {
				continue
			}
			x.hasPhases = true
			for _, p := range f.Value.Map {
				x.Phases = append(x.Phases, Phase{Name: p.Label, Description: p.Value.String()})
			}
		case "lifecycleMethods":
			if f.Value.Present() {
				x.Lifecycle = normalizeLifecycle(f.Value)
			}
		}
	}
	return x
}

func normalizeLifecycle(v Value) *Lifecycle {
	lc := &Lifecycle{}

	if class, ok := v.Lookup("classComponents"); ok {
		lc.HasClass = true
		for _, g := range class.Map {
			methods := g.Value.Items
			if g.Value.Kind != ValueList {
				methods = []string{g.Value.String()}
			}
			lc.ClassComponents = append(lc.ClassComponents, MethodGroup{Phase: g.Label, Methods: methods})
		}
	}
	if fn, ok := v.Lookup("functionalComponents"); ok {
		lc.HasFunctional = true
		if ue, ok := fn.Lookup("useEffect"); ok {
			lc.UseEffect = ue.String()
		}
	}
	if dep, ok := v.Lookup("deprecatedMethods"); ok {
		if dep.Kind == ValueList {
			lc.Deprecated = dep.Items
		} else {
			lc.Deprecated = []string{dep.String()}
		}
	}
	return lc
}

// nodeValue converts a YAML node into a Value, keeping mapping order.
func nodeValue(n *yaml.Node) Value {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) > 0 {
			return nodeValue(n.Content[0])
		}
		return Value{}
	case yaml.AliasNode:
		if n.Alias != nil {
			return nodeValue(n.Alias)
		}
		return Value{}
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			items = append(items, nodeValue(c).String())
		}
		return Value{Kind: ValueList, Items: items}
	case yaml.MappingNode:
		fields := make([]Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			fields = append(fields, Field{
				Label: n.Content[i].Value,
				Value: nodeValue(n.Content[i+1]),
			})
		}
		return Value{Kind: ValueMap, Map: fields}
	default:
		if n.ShortTag() == "!!null" {
			return Value{Kind: ValueNull}
		}
		return Value{Kind: ValueText, Text: n.Value}
	}
}

func scalarText(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	return ""
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "node"
	}
}
