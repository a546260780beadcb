package constants

// FieldType is the canonical type for an extracted field.
type FieldType string

// Stable values (these exact strings appear in API payloads and reports).
const (
	TypeText     FieldType = "text"
	TypeNumber   FieldType = "number"
	TypeDate     FieldType = "date"
	TypeSelect   FieldType = "select"
	TypeCheckbox FieldType = "checkbox"
	TypeRadio    FieldType = "radio"
	TypeFile     FieldType = "file"
	TypeEmail    FieldType = "email"
	TypeURL      FieldType = "url"
	TypeTextarea FieldType = "textarea"
)

// HTMLInputTypes maps HTML input type attributes to canonical field types.
// Anything not listed here resolves to TypeText.
var HTMLInputTypes = map[string]FieldType{
	"text":           TypeText,
	"password":       TypeText,
	"tel":            TypeText,
	"search":         TypeText,
	"hidden":         TypeText,
	"email":          TypeEmail,
	"url":            TypeURL,
	"number":         TypeNumber,
	"range":          TypeNumber,
	"date":           TypeDate,
	"datetime-local": TypeDate,
	"time":           TypeDate,
	"month":          TypeDate,
	"week":           TypeDate,
	"checkbox":       TypeCheckbox,
	"radio":          TypeRadio,
	"file":           TypeFile,
	"select":         TypeSelect,
	"textarea":       TypeTextarea,
}

// MapHTMLType resolves an HTML type attribute (or a JSON "type" hint) to a
// canonical field type, defaulting to text for unknown values.
func MapHTMLType(attr string) FieldType {
	if t, ok := HTMLInputTypes[attr]; ok {
		return t
	}
	return TypeText
}
