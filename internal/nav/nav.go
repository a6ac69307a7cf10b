// Package nav holds the in-page navigation links and the scroll arithmetic
// behind them.
package nav

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/prepsite/internal/catalog"
)

// Link points at a section anchor.
type Link struct {
	Label  string
	Target string
}

// Href is the in-page fragment for the link.
func (l Link) Href() string {
	return "#" + l.Target
}

// Default is the hand-authored navigation bar.
var Default = []Link{
	{Label: "JavaScript", Target: "fundamentals"},
	{Label: "React.js", Target: "react"},
	{Label: "Next.js", Target: "nextjs"},
	{Label: "Redux & Saga", Target: "redux"},
	{Label: "System Design", Target: "systemDesign"},
	{Label: "Coding Tasks", Target: "coding"},
}

// ForCatalog keeps the links whose targets exist in c and appends a link
// for every topic the hand-authored list does not cover.
func ForCatalog(c *catalog.Catalog, links []Link) []Link {
	keys := c.Keys()
	present := make(map[string]bool, len(keys))
	for _, k := range keys {
		present[k] = true
	}

	out := make([]Link, 0, len(keys))
	covered := make(map[string]bool, len(links))
	for _, l := range links {
		if present[l.Target] && !covered[l.Target] {
			out = append(out, l)
			covered[l.Target] = true
		}
	}
	for _, k := range keys {
		if !covered[k] {
			out = append(out, Link{Label: LabelFor(k), Target: k})
			covered[k] = true
		}
	}
	return out
}

// LabelFor makes a label from a topic key: "systemDesign" becomes
// "System Design", "data-fetching" becomes "Data Fetching".
func LabelFor(key string) string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for i, r := range key {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && i > 0:
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// Resolve returns the scroll offset that puts the target's top edge at the
// top of the viewport. Unknown targets report ok=false and nothing scrolls.
func Resolve(anchors map[string]int, target string) (offset int, ok bool) {
	target = strings.TrimPrefix(target, "#")
	offset, ok = anchors[target]
	return offset, ok
}

// SmoothPath returns the offsets to pass through when scrolling from one
// position to another in at most steps frames. Offsets follow an
// ease-in-out curve, never repeat, and always end at to.
func SmoothPath(from, to, steps int) []int {
	if from == to {
		return nil
	}
	if steps < 1 {
		steps = 1
	}

	path := make([]int, 0, steps)
	last := from
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		eased := (1 - math.Cos(math.Pi*t)) / 2
		pos := from + int(math.Round(eased*float64(to-from)))
		if i == steps {
			pos = to
		}
		if pos == last {
			continue
		}
		path = append(path, pos)
		last = pos
	}
	return path
}
