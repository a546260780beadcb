// Package miner holds the three structural extraction strategies. Each miner
// is a pure function from the raw input string to a list of candidates; the
// pipeline concatenates their outputs, deduplicates, and decorates the
// survivors with type, complexity, category, and function-point value.
package miner

import (
	"strings"

	"github.com/impacta-labs/fieldpoint/constants"
)

// Candidate is a raw field sighting before resolution. Miners fill in only
// what their lens can see; everything else is derived downstream.
type Candidate struct {
	// Name is the display label and the (case-insensitive) dedup key.
	Name string
	// TypeHint is an explicit type signal (HTML type attribute, JSON "type"
	// value). Empty means "resolve from the name".
	TypeHint string
	Required bool
	// Description is a placeholder/context/value snippet.
	Description string
	// Value is raw surrounding text fed to the category classifier.
	Value string
	// Source is the provenance tag recorded on the final field.
	Source string
	// ComplexityKey, when set, replaces Name as input to the complexity
	// heuristic (the JSON miner passes the object key here; labels stay as
	// display names).
	ComplexityKey string
	// ComplexityOverride bypasses the generic complexity rule entirely
	// (select option-count rule).
	ComplexityOverride constants.Complexity
}

// MineAll runs the three miners over the same input and concatenates their
// candidates in miner order: JSON, HTML, free text.
func MineAll(raw string) []Candidate {
	var out []Candidate
	out = append(out, MineJSON(raw)...)
	out = append(out, MineHTML(raw)...)
	out = append(out, MineText(raw)...)
	return out
}

func hasAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// snippet bounds free-form context captured into a description.
func snippet(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > 80 {
		return string(r[:80])
	}
	return s
}
