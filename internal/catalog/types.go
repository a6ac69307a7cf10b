package catalog

import (
	"strings"
)

// Kind selects the layout an entry is rendered with.
type Kind int

const (
	// KindPlain is the catch-all for entries without a type or with an
	// unrecognized one.
	KindPlain Kind = iota
	KindComparisonTable
	KindTextWithCode
	KindTextWithList
	KindListOnly
	KindCodeOnly
)

// Type tags as they appear in catalog files.
const (
	TypeComparisonTable = "comparison-table"
	TypeTextWithCode    = "text-with-code"
	TypeTextWithList    = "text-with-list"
	TypeListOnly        = "list-only"
	TypeCodeOnly        = "code-only"
)

var kindByType = map[string]Kind{
	TypeComparisonTable: KindComparisonTable,
	TypeTextWithCode:    KindTextWithCode,
	TypeTextWithList:    KindTextWithList,
	TypeListOnly:        KindListOnly,
	TypeCodeOnly:        KindCodeOnly,
}

// KindOf maps a type tag to its Kind. Unknown tags map to KindPlain.
func KindOf(tag string) Kind {
	if k, ok := kindByType[tag]; ok {
		return k
	}
	return KindPlain
}

// Known reports whether tag is one of the recognized type tags.
func Known(tag string) bool {
	_, ok := kindByType[tag]
	return ok
}

func (k Kind) String() string {
	switch k {
	case KindComparisonTable:
		return TypeComparisonTable
	case KindTextWithCode:
		return TypeTextWithCode
	case KindTextWithList:
		return TypeTextWithList
	case KindListOnly:
		return TypeListOnly
	case KindCodeOnly:
		return TypeCodeOnly
	default:
		return "plain"
	}
}

// Catalog is the full, immutable content set. Topic order is reading order.
type Catalog struct {
	Title   string
	Tagline string
	Footer  string
	Topics  []*Topic
}

// Topic returns the topic with the given key, or nil.
func (c *Catalog) Topic(key string) *Topic {
	if c == nil {
		return nil
	}
	for _, t := range c.Topics {
		if t != nil && t.Key == key {
			return t
		}
	}
	return nil
}

// Keys returns the topic keys in catalog order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.Topics))
	for _, t := range c.Topics {
		if t != nil {
			keys = append(keys, t.Key)
		}
	}
	return keys
}

// EntryCount returns the number of entries across all topics.
func (c *Catalog) EntryCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, t := range c.Topics {
		if t != nil {
			n += len(t.Entries)
		}
	}
	return n
}

// Topic is a named group of entries. Key doubles as the in-page anchor.
type Topic struct {
	Key     string
	Title   string
	Entries []*Entry
}

// EntryID is the literal text of an entry's id. It is a display aid only:
// ids are not unique and must never be used to look entries up.
type EntryID string

// Entry is one question with its explanation.
type Entry struct {
	ID          EntryID
	Title       string
	Description string
	Tip         string

	// Kind is the normalized layout; RawType keeps the tag from the file.
	Kind    Kind
	RawType string

	Table *Table
	Code  string
	List  []string
	Extra *ExtraInfo
}

// Table is the content of a comparison-table entry.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ExtraInfo holds supplementary notes attached to an entry.
//
// Fields keeps every key in source order. Phases and Lifecycle are typed
// views of the two keys the comparison-table layout knows how to present.
type ExtraInfo struct {
	Fields    []Field
	Phases    []Phase
	Lifecycle *Lifecycle

	hasPhases bool
}

// Specialized reports whether the extra info carries lifecycle data.
func (x *ExtraInfo) Specialized() bool {
	return x != nil && (x.hasPhases || x.Lifecycle != nil)
}

// HasPhases reports whether the phases key is present, even if empty.
func (x *ExtraInfo) HasPhases() bool {
	return x != nil && x.hasPhases
}

// Phase is one lifecycle phase and its description.
type Phase struct {
	Name        string
	Description string
}

// Lifecycle is the normalized form of the lifecycleMethods key.
type Lifecycle struct {
	ClassComponents []MethodGroup
	HasClass        bool
	UseEffect       string
	HasFunctional   bool
	Deprecated      []string
}

// MethodGroup lists the class component methods of one phase.
type MethodGroup struct {
	Phase   string
	Methods []string
}

// ValueKind tells which member of Value is set.
type ValueKind int

const (
	ValueText ValueKind = iota
	ValueList
	ValueMap
	// ValueNull is an explicit null such as `~`. Its string form is empty.
	ValueNull
)

// Field is one labeled value of extra info.
type Field struct {
	Label string
	Value Value
}

// Value is a string, a list of strings, or an ordered map.
type Value struct {
	Kind  ValueKind
	Text  string
	Items []string
	Map   []Field
}

// String returns the default string form of the value. Maps and lists
// are written inline and never expanded.
func (v Value) String() string {
	switch v.Kind {
	case ValueList:
		return "[" + strings.Join(v.Items, ", ") + "]"
	case ValueMap:
		parts := make([]string, 0, len(v.Map))
		for _, f := range v.Map {
			parts = append(parts, f.Label+": "+f.Value.String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return v.Text
	}
}

// Lookup returns the nested field with the given label. Null and empty
// text fields count as missing.
func (v Value) Lookup(label string) (Value, bool) {
	if v.Kind != ValueMap {
		return Value{}, false
	}
	for _, f := range v.Map {
		if f.Label == label {
			return f.Value, f.Value.Present()
		}
	}
	return Value{}, false
}

// Present reports whether the value counts as set: not null and not
// empty text. Empty lists and maps are present.
func (v Value) Present() bool {
	switch v.Kind {
	case ValueNull:
		return false
	case ValueText:
		return v.Text != ""
	default:
		return true
	}
}
