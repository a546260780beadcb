package fields

import (
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/impacta-labs/fieldpoint/constants"
)

// Position is a bounding box in image coordinates, only meaningful for
// OCR-origin fields.
type Position struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ExtractedField is the unit of work of the whole pipeline: one candidate
// field mined from raw input or returned by an external service, decorated
// with its resolved type, complexity tier, category, and function-point value.
type ExtractedField struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Type        constants.FieldType     `json:"type"`
	Required    bool                    `json:"required"`
	Description string                  `json:"description,omitempty"`
	Complexity  constants.Complexity    `json:"complexity"`
	FPValue     int                     `json:"fpValue"`
	Source      string                  `json:"source"`
	Category    constants.FieldCategory `json:"fieldCategory,omitempty"`
	Confidence  float64                 `json:"confidence,omitempty"`
	Position    *Position               `json:"position,omitempty"`
}

// NewField builds a fully-decorated field. FPValue is always recomputed from
// (type, complexity) here; no caller may set it independently.
func NewField(name string, fieldType constants.FieldType, complexity constants.Complexity, source string) ExtractedField {
	return ExtractedField{
		ID:         uuid.New().String(),
		Name:       name,
		Type:       fieldType,
		Complexity: complexity,
		FPValue:    CalculateFunctionPoints(fieldType, complexity),
		Source:     source,
		Category:   constants.CategoryNeutral,
	}
}

// Humanize turns an identifier-shaped key ("dataNascimento", "nome_cliente")
// into a display name ("Data Nascimento", "Nome Cliente"). Already-readable
// text is only title-cased on its first rune.
func Humanize(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return key
	}
	var b strings.Builder
	runes := []rune(key)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
		case unicode.IsUpper(r) && i > 0 && unicode.IsLower(runes[i-1]):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	words := strings.Fields(b.String())
	for i, w := range words {
		wr := []rune(w)
		wr[0] = unicode.ToUpper(wr[0])
		words[i] = string(wr)
	}
	return strings.Join(words, " ")
}
