package render

import (
	"github.com/ziadkadry99/prepsite/internal/catalog"
)

// GenericExtra renders every extra-info field as a label followed by a
// list (for list values) or a paragraph with the value's string form.
func GenericExtra(x *catalog.ExtraInfo) Block {
	children := []Node{Heading{Level: 3, Text: ExtraInfoHeading}}
	for _, f := range x.Fields {
		children = append(children, genericField(f))
	}
	return Block{Class: "extra-info", Children: children}
}

func genericField(f catalog.Field) Node {
	var body Node
	if f.Value.Kind == catalog.ValueList {
		body = textList(f.Value.Items, false)
	} else {
		body = Paragraph{Text: f.Value.String()}
	}
	return Block{Class: "generic-extra-info", Children: []Node{Strong{Text: f.Label + ":"}, body}}
}

// SpecializedExtra renders the lifecycle breakdown used by comparison
// tables. Extra info without lifecycle keys falls back to GenericExtra.
func SpecializedExtra(x *catalog.ExtraInfo) Block {
	if !x.Specialized() {
		return GenericExtra(x)
	}

	children := []Node{Heading{Level: 3, Text: ExtraInfoHeading}}

	if x.HasPhases() {
		items := make([]Node, len(x.Phases))
		for i, p := range x.Phases {
			items[i] = Labeled{Label: p.Name, Text: p.Description}
		}
		children = append(children, Block{Class: "phase-details", Children: []Node{
			Heading{Level: 4, Text: PhasesHeading},
			List{Items: items},
		}})
	}

	if lc := x.Lifecycle; lc != nil {
		if lc.HasClass {
			groups := []Node{Heading{Level: 4, Text: ClassHeading}}
			for _, g := range lc.ClassComponents {
				groups = append(groups, Block{Children: []Node{
					Strong{Text: g.Phase + ":"},
					textList(g.Methods, false),
				}})
			}
			children = append(children, Block{Class: "method-details", Children: groups})
		}
		if lc.HasFunctional {
			children = append(children, Block{Class: "method-details", Children: []Node{
				Heading{Level: 4, Text: FunctionalHeading},
				Paragraph{Text: lc.UseEffect},
			}})
		}
		if lc.Deprecated != nil {
			children = append(children, Block{Class: "deprecated-methods", Children: []Node{
				Heading{Level: 4, Text: DeprecatedHeading},
				textList(lc.Deprecated, false),
			}})
		}
	}

	return Block{Class: "extra-info", Children: children}
}
