// Package edit applies a script of text edits to source content in one pass.
package edit

import (
	"fmt"
	"sort"
	"strings"
)

// Edit replaces the byte span [Start, End) of the original text with Text.
// A deletion has empty Text; an insertion has Start == End.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Delete returns an edit removing [start, end).
func Delete(start, end int) Edit {
	return Edit{Start: start, End: end}
}

// Insert returns an edit inserting text at offset.
func Insert(offset int, text string) Edit {
	return Edit{Start: offset, End: offset, Text: text}
}

// Apply produces the edited text in a single linear scan. Edits must not
// overlap; insertions at the same offset keep their given order. Spans
// outside the content are an error rather than being clamped.
func Apply(content string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return content, nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	var builder strings.Builder
	lastPos := 0
	for _, e := range sorted {
		if e.Start < 0 || e.End < e.Start || e.End > len(content) {
			return "", fmt.Errorf("edit span [%d,%d) out of range for %d bytes", e.Start, e.End, len(content))
		}
		if e.Start < lastPos {
			return "", fmt.Errorf("overlapping edit at offset %d", e.Start)
		}
		builder.WriteString(content[lastPos:e.Start])
		builder.WriteString(e.Text)
		lastPos = e.End
	}
	builder.WriteString(content[lastPos:])

	return builder.String(), nil
}
