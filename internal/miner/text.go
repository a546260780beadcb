package miner

import (
	"regexp"
	"strings"

	"github.com/impacta-labs/fieldpoint/constants"
	"github.com/impacta-labs/fieldpoint/internal/fields"
)

var keyValueRe = regexp.MustCompile(`^([^:]{1,50}):\s*(.+)$`)

// MineText scans free text line by line. A line becomes a candidate when it
// carries a field-indicator word or passes the name-likelihood check; a
// "key: value" line additionally yields a candidate for its key. Required
// markers (trailing *, "obrigatório", "required") are detected and stripped
// from the display name.
func MineText(raw string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > 200 {
			continue
		}
		// Structural lines belong to the JSON and HTML miners.
		if strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") ||
			strings.HasPrefix(line, "\"") || strings.HasPrefix(line, "<") {
			continue
		}
		lower := strings.ToLower(line)

		if hasAny(lower, fields.FieldIndicators) || fields.IsLikelyFieldName(line) {
			required, name := fields.HasRequiredMarker(line)
			value := ""
			if i := strings.Index(name, ":"); i >= 0 {
				value = strings.TrimSpace(name[i+1:])
				name = strings.TrimSpace(name[:i])
			}
			if name != "" && !fields.IsIgnoredTerm(name) {
				out = append(out, Candidate{
					Name:        name,
					Required:    required,
					Description: snippet(value),
					Value:       value,
					Source:      constants.SourceText,
				})
			}
		}

		if m := keyValueRe.FindStringSubmatch(line); m != nil {
			required, key := fields.HasRequiredMarker(m[1])
			value := strings.TrimSpace(m[2])
			if key != "" && fields.IsLikelyFieldName(key) && !fields.IsIgnoredTerm(key) {
				out = append(out, Candidate{
					Name:        key,
					Required:    required,
					Description: snippet(value),
					Value:       value,
					Source:      constants.SourceTextKV,
				})
			}
		}
	}
	return out
}
