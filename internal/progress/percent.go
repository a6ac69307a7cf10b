// Package progress computes the reading-progress indicator and reports
// build progress on the terminal.
package progress

import (
	"math"
	"strconv"
)

// Percent is how far the reader has scrolled through the document, in
// [0, 100]. When the document fits in the viewport there is nothing to
// scroll and the result is 0.
func Percent(offset, documentHeight, viewportHeight float64) float64 {
	scrollable := documentHeight - viewportHeight
	if !(scrollable > 0) || math.IsInf(scrollable, 0) {
		return 0
	}
	return clamp(offset / scrollable * 100)
}

// Width formats a percentage as a CSS width such as "50%".
func Width(p float64) string {
	return strconv.FormatFloat(clamp(p), 'f', -1, 64) + "%"
}

func clamp(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
