package fields

import (
	"strings"

	"github.com/impacta-labs/fieldpoint/constants"
)

// typeKeywordGroups resolve a field type from its name when no explicit hint
// is available. Groups are evaluated in order; the first hit wins.
var typeKeywordGroups = []struct {
	fieldType constants.FieldType
	words     []string
}{
	{constants.TypeEmail, []string{"email", "e-mail"}},
	{constants.TypeText, []string{"senha", "password"}},
	{constants.TypeDate, []string{"data", "date", "nascimento", "vencimento", "birth", "prazo", "deadline"}},
	{constants.TypeNumber, []string{
		"numero", "número", "number", "quantidade", "quantity", "qtd",
		"valor", "preco", "preço", "price", "salario", "salário", "salary",
		"amount", "custo", "cost",
	}},
	{constants.TypeTextarea, []string{
		"descricao", "descrição", "description", "observacao", "observação",
		"observacoes", "observações", "comentario", "comentário", "comment",
		"notes", "mensagem", "message",
	}},
	{constants.TypeCheckbox, []string{"aceito", "aceite", "concordo", "termos", "agree", "terms", "accept"}},
	{constants.TypeRadio, []string{"sexo", "genero", "gênero", "gender", "estado civil", "marital"}},
	{constants.TypeSelect, []string{
		"estado", "cidade", "pais", "país", "categoria", "category",
		"tipo", "type", "country", "status", "prioridade", "priority",
	}},
	{constants.TypeFile, []string{
		"arquivo", "anexo", "file", "attachment", "upload",
		"foto", "imagem", "photo", "image", "documento",
	}},
	{constants.TypeURL, []string{"url", "link", "site", "website"}},
}

// DetermineFieldType resolves the canonical type of a field. An explicit hint
// (an HTML type attribute or a JSON "type" value) takes precedence; otherwise
// the name is matched against the ordered keyword groups, defaulting to text.
func DetermineFieldType(hint, name string) constants.FieldType {
	if h := strings.ToLower(strings.TrimSpace(hint)); h != "" {
		return constants.MapHTMLType(h)
	}
	lower := strings.ToLower(name)
	for _, group := range typeKeywordGroups {
		if containsAny(lower, group.words) {
			return group.fieldType
		}
	}
	return constants.TypeText
}

// DetermineComplexity derives the complexity tier. Type-based rules run
// before name-based rules; the order is load-bearing.
func DetermineComplexity(fieldType constants.FieldType, name string) constants.Complexity {
	switch fieldType {
	case constants.TypeFile, constants.TypeTextarea:
		return constants.ComplexityHigh
	case constants.TypeDate, constants.TypeSelect, constants.TypeEmail,
		constants.TypeURL, constants.TypeNumber:
		return constants.ComplexityAverage
	}

	lower := strings.ToLower(name)
	if containsAny(lower, identityDocKeywords) || containsAny(lower, fullQualifiers) {
		return constants.ComplexityHigh
	}
	if len(name) > 20 || strings.Contains(strings.TrimSpace(name), " ") {
		return constants.ComplexityAverage
	}
	return constants.ComplexityLow
}
