package miner

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/impacta-labs/fieldpoint/constants"
	"github.com/impacta-labs/fieldpoint/internal/fields"
)

// Keys that never name a field.
var reservedJSONKeys = map[string]struct{}{"id": {}, "key": {}}

// MineJSON walks a JSON document looking for field-shaped sub-objects and
// key/string pairs. Parse failure is an expected path for non-JSON input and
// yields no candidates, never an error. Object keys are visited in sorted
// order so the output is deterministic.
func MineJSON(raw string) []Candidate {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return nil
	}
	var root any
	if err := json.Unmarshal([]byte(trimmed), &root); err != nil {
		return nil
	}
	var out []Candidate
	walkJSON(root, &out)
	return out
}

func walkJSON(node any, out *[]Candidate) {
	switch v := node.(type) {
	case map[string]any:
		for _, key := range sortedKeys(v) {
			visitJSONEntry(key, v[key], out)
		}
	case []any:
		for _, elem := range v {
			if obj, ok := elem.(map[string]any); ok && isFieldShaped(obj) {
				*out = append(*out, fieldDefCandidate("", obj, constants.SourceJSONArray))
			} else {
				walkJSON(elem, out)
			}
		}
	}
}

func visitJSONEntry(key string, value any, out *[]Candidate) {
	if strings.HasPrefix(key, "_") {
		return
	}
	if _, reserved := reservedJSONKeys[strings.ToLower(key)]; reserved {
		return
	}
	switch v := value.(type) {
	case map[string]any:
		if isFieldShaped(v) {
			*out = append(*out, fieldDefCandidate(key, v, constants.SourceJSON))
			return
		}
		walkJSON(v, out)
	case []any:
		for _, elem := range v {
			if obj, ok := elem.(map[string]any); ok && isFieldShaped(obj) {
				*out = append(*out, fieldDefCandidate(key, obj, constants.SourceJSONArray))
			} else {
				walkJSON(elem, out)
			}
		}
	case string:
		if fields.IsLikelyFieldName(key) {
			*out = append(*out, Candidate{
				Name:          fields.Humanize(key),
				Description:   snippet(v),
				Value:         v,
				Source:        constants.SourceJSON,
				ComplexityKey: key,
			})
		}
	}
}

// isFieldShaped reports whether an object describes a field rather than a
// plain nested structure.
func isFieldShaped(obj map[string]any) bool {
	for _, k := range []string{"type", "label", "name"} {
		if _, ok := obj[k]; ok {
			return true
		}
	}
	return false
}

func fieldDefCandidate(key string, obj map[string]any, source string) Candidate {
	name := jsonString(obj, "label")
	if name == "" {
		name = jsonString(obj, "name")
	}
	if name == "" {
		name = fields.Humanize(key)
	}
	desc := jsonString(obj, "description")
	if desc == "" {
		desc = jsonString(obj, "placeholder")
	}
	required, _ := obj["required"].(bool)
	complexityKey := key
	if complexityKey == "" {
		complexityKey = name
	}
	return Candidate{
		Name:          name,
		TypeHint:      jsonString(obj, "type"),
		Required:      required,
		Description:   snippet(desc),
		Value:         desc,
		Source:        source,
		ComplexityKey: complexityKey,
	}
}

func jsonString(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return strings.TrimSpace(s)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
