package fields

import "strings"

// Deduplicate merges a candidate list by case-insensitive name. The first
// occurrence wins and keeps all of its attributes; later duplicates are
// dropped without merging. Output preserves first-seen order, which makes the
// operation idempotent.
func Deduplicate(list []ExtractedField) []ExtractedField {
	seen := make(map[string]struct{}, len(list))
	out := make([]ExtractedField, 0, len(list))
	for _, f := range list {
		key := strings.ToLower(strings.TrimSpace(f.Name))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out
}

// FilterIgnored removes UI noise (menu entries, button labels, pagination,
// boilerplate) from a field list. Applied to OCR/AI-origin output only; the
// structural miners already filter through the indicator and likelihood
// checks.
func FilterIgnored(list []ExtractedField) []ExtractedField {
	out := make([]ExtractedField, 0, len(list))
	for _, f := range list {
		if IsIgnoredTerm(f.Name) {
			continue
		}
		out = append(out, f)
	}
	return out
}
