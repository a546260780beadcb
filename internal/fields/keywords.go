package fields

import (
	"regexp"
	"strings"
)

// Bilingual (pt/en) vocabularies backing every heuristic in this package and
// in the miners. All tables are immutable and safe for concurrent reads;
// matching is case-insensitive substring unless noted otherwise.

// FieldIndicators mark a free-text line as talking about a form field.
var FieldIndicators = []string{"campo", "field", "input", "label"}

// commonFieldNames feed the name-likelihood predicate.
var commonFieldNames = []string{
	"nome", "name", "email", "e-mail", "telefone", "phone", "celular",
	"endereco", "endereço", "address", "cidade", "city", "data", "date",
	"sexo", "genero", "gênero", "gender", "empresa", "company",
	"salario", "salário", "salary", "senha", "password",
	"codigo", "código", "code", "descricao", "descrição", "description",
	"categoria", "category", "status", "prioridade", "priority",
	"anexo", "attachment", "url",
}

// RequiredMarkers flag a field as mandatory when found in its raw name.
var RequiredMarkers = []string{"*", "obrigatório", "obrigatorio", "required"}

// inputActionCues are imperative verbs that mark user-entered fields.
// Requirement markers are a separate table: in the name they are only
// honored by the later required-marker rule, which keeps "Status ...
// Obrigatório" classifying as output (see ClassifyField).
var inputActionCues = []string{
	"digite", "preencha", "informe", "insira", "selecione", "escolha",
	"enter", "fill", "provide", "type in", "choose",
}

// requirementCues mark mandatory fields when present in a field's value.
var requirementCues = []string{"obrigatório", "obrigatorio", "required", "mandatory"}

// outputCues mark system-produced values. "total" is deliberately absent
// here; totals are caught by outputNameKeywords one rule later.
var outputCues = []string{
	"calculado", "calculated", "retornado", "returned",
	"resultado", "result", "gerado", "generated",
	"processado", "processed", "exibido", "displayed",
}

// outputNameKeywords classify a field as output from its name alone.
var outputNameKeywords = []string{
	"total", "subtotal", "resultado", "result",
	"calculado", "calculated", "gerado", "generated", "status",
}

// imperativeVerbs detect imperative phrasing at the start of a name.
var imperativeVerbs = []string{
	"digite", "preencha", "informe", "insira", "selecione", "escolha",
	"adicione", "enter", "fill", "provide", "select", "choose", "add",
}

// personalFieldNames are common identity fields users type themselves.
var personalFieldNames = []string{
	"nome", "name", "email", "e-mail", "telefone", "phone", "celular",
	"endereco", "endereço", "address", "cpf", "cnpj", "rg",
}

// updateQualifiers disqualify a bare date name from the personal-field rule.
var updateQualifiers = []string{"atualizacao", "atualização", "atualizado", "update"}

// systemFieldNames are values the system generates rather than the user.
var systemFieldNames = []string{
	"codigo", "código", "code", "criado em", "created at",
	"atualizado em", "updated at", "versao", "versão", "version",
	"numero do pedido", "número do pedido", "order number",
}

// derivedKeywords mark calculated/aggregated values for the derived-field
// reclassifier.
var derivedKeywords = []string{
	"total", "subtotal", "media", "média", "average",
	"percentual", "porcentagem", "percentage",
	"liquido", "líquido", "net", "bruto", "gross",
	"desconto", "discount", "imposto", "tax", "taxa",
	"soma", "sum", "contagem", "count", "total geral", "grand total",
}

// identityDocKeywords and fullQualifiers raise name-based complexity to High.
var identityDocKeywords = []string{
	"cpf", "cnpj", "rg", "passaporte", "passport", "senha", "password",
}

var fullQualifiers = []string{"completo", "completa", "complete", "full"}

// ignoredTerms is UI noise (menus, buttons, pagination) stripped from OCR/AI
// output. Matched against the whole normalized name.
var ignoredTerms = map[string]struct{}{
	"menu": {}, "home": {}, "início": {}, "inicio": {},
	"sair": {}, "logout": {}, "login": {}, "entrar": {},
	"ok": {}, "sim": {}, "não": {}, "nao": {}, "yes": {}, "no": {},
	"cancelar": {}, "cancel": {}, "salvar": {}, "save": {},
	"editar": {}, "edit": {}, "excluir": {}, "delete": {},
	"remover": {}, "remove": {}, "imprimir": {}, "print": {},
	"voltar": {}, "back": {}, "próximo": {}, "proximo": {}, "next": {},
	"anterior": {}, "previous": {}, "página": {}, "pagina": {}, "page": {},
	"buscar": {}, "search": {}, "pesquisar": {}, "filtrar": {}, "filter": {},
	"ajuda": {}, "help": {}, "configurações": {}, "configuracoes": {},
	"settings": {}, "fechar": {}, "close": {}, "novo": {}, "new": {},
	"confirmar": {}, "confirm": {}, "enviar": {}, "submit": {},
}

// ignoredPhrases is boilerplate matched as a substring.
var ignoredPhrases = []string{
	"todos os direitos", "all rights reserved", "copyright", "©",
}

var (
	camelCaseRe = regexp.MustCompile(`^[a-z]+(?:[A-Z][a-z0-9]*)+$`)
	snakeCaseRe = regexp.MustCompile(`^[a-z0-9]+(?:_[a-z0-9]+)+$`)
)

// IsLikelyFieldName reports whether a raw text fragment looks like the name
// of a form field. The rule list is ordered; the first hit wins.
func IsLikelyFieldName(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	lower := strings.ToLower(trimmed)

	for _, kw := range commonFieldNames {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	if strings.Contains(lower, "campo de") || strings.Contains(lower, "field for") {
		return true
	}
	if strings.Contains(trimmed, ":") && len(trimmed) < 50 {
		return true
	}
	return camelCaseRe.MatchString(trimmed) || snakeCaseRe.MatchString(trimmed)
}

// IsIgnoredTerm reports whether a field name is UI noise (menu entries,
// button labels, pagination, copyright boilerplate) in either language.
func IsIgnoredTerm(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return true
	}
	if _, ok := ignoredTerms[lower]; ok {
		return true
	}
	for _, phrase := range ignoredPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// HasRequiredMarker reports whether a raw field name carries a mandatory
// marker, and returns the display name with the marker stripped.
func HasRequiredMarker(raw string) (bool, string) {
	name := strings.TrimSpace(raw)
	required := false
	if strings.HasSuffix(name, "*") {
		required = true
		name = strings.TrimSpace(strings.TrimSuffix(name, "*"))
	}
	for _, marker := range []string{"obrigatório", "obrigatorio", "required"} {
		for _, pat := range []string{"(" + marker + ")", marker} {
			lower := strings.ToLower(name)
			if strings.HasSuffix(lower, pat) {
				required = true
				name = strings.TrimSpace(name[:len(name)-len(pat)])
				name = strings.TrimSpace(strings.TrimRight(name, "-:"))
			}
		}
	}
	return required, name
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
