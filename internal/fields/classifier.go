package fields

import (
	"strings"

	"github.com/impacta-labs/fieldpoint/constants"
)

// ClassifyField decides whether a field is user-entered (entrada),
// system-produced (saida), or neutral. Rules run in a fixed order and the
// first match wins; the ordering is part of the contract. A consequence kept
// for compatibility: a name like "Status de Aprovação Obrigatório" hits the
// output-keyword rule before the required-marker rule and classifies as
// saida.
func ClassifyField(name, value string) constants.FieldCategory {
	nameLower := strings.ToLower(name)
	valueLower := strings.ToLower(value)
	combined := nameLower + " " + valueLower

	// 1. imperative cue anywhere; requirement cue in the value only
	if containsAny(combined, inputActionCues) || containsAny(valueLower, requirementCues) {
		return constants.CategoryInput
	}
	// 2. generic output cue anywhere
	if containsAny(combined, outputCues) {
		return constants.CategoryOutput
	}
	// 3. output-ish keyword in the name (totals, status, ...)
	if containsAny(nameLower, outputNameKeywords) {
		return constants.CategoryOutput
	}
	// 4. imperative phrasing, trailing question mark, required markers
	for _, verb := range imperativeVerbs {
		if strings.HasPrefix(nameLower, verb) {
			return constants.CategoryInput
		}
	}
	if strings.HasSuffix(strings.TrimSpace(name), "?") {
		return constants.CategoryInput
	}
	if containsAny(nameLower, requirementCues) || strings.Contains(name, "*") {
		return constants.CategoryInput
	}
	// 5. common personal/identity names; a bare date counts only when not
	// qualified as an update timestamp
	if containsAny(nameLower, personalFieldNames) {
		return constants.CategoryInput
	}
	if (strings.Contains(nameLower, "data") || strings.Contains(nameLower, "date")) &&
		!containsAny(nameLower, updateQualifiers) {
		return constants.CategoryInput
	}
	// 6. system-generated names
	if nameLower == "id" || containsAny(nameLower, systemFieldNames) {
		return constants.CategoryOutput
	}
	return constants.CategoryNeutral
}

// IdentifyDerivedFields force-reclassifies calculated/aggregated values
// (totals, averages, percentages) to derivado, regardless of what an
// upstream service assigned. The description is annotated so reviewers can
// tell the reclassification was automatic.
func IdentifyDerivedFields(list []ExtractedField) []ExtractedField {
	out := make([]ExtractedField, len(list))
	for i, f := range list {
		combined := strings.ToLower(f.Name + " " + f.Description)
		if containsAny(combined, derivedKeywords) {
			f.Category = constants.CategoryDerived
			note := "reclassificado automaticamente como campo derivado"
			if f.Description == "" {
				f.Description = note
			} else if !strings.Contains(f.Description, note) {
				f.Description += " (" + note + ")"
			}
		}
		out[i] = f
	}
	return out
}
