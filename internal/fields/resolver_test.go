package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/impacta-labs/fieldpoint/constants"
)

func TestDetermineFieldTypeFromHint(t *testing.T) {
	tests := []struct {
		hint string
		want constants.FieldType
	}{
		{"password", constants.TypeText},
		{"tel", constants.TypeText},
		{"datetime-local", constants.TypeDate},
		{"range", constants.TypeNumber},
		{"email", constants.TypeEmail},
		{"file", constants.TypeFile},
		{"unknown-widget", constants.TypeText},
	}
	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineFieldType(tt.hint, "whatever"))
		})
	}
}

func TestDetermineFieldTypeFromName(t *testing.T) {
	tests := []struct {
		name string
		want constants.FieldType
	}{
		{"Email do Contato", constants.TypeEmail},
		{"Senha de Acesso", constants.TypeText},
		{"Data de Nascimento", constants.TypeDate},
		{"Valor do Pedido", constants.TypeNumber},
		{"Descrição do Produto", constants.TypeTextarea},
		{"Aceito os Termos", constants.TypeCheckbox},
		{"Sexo", constants.TypeRadio},
		{"Estado", constants.TypeSelect},
		{"Anexo de Comprovante", constants.TypeFile},
		{"Website", constants.TypeURL},
		{"Nome do Cliente", constants.TypeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineFieldType("", tt.name))
		})
	}
}

func TestDetermineFieldTypeGroupOrder(t *testing.T) {
	// "Email" wins over the date group even when both keywords appear.
	assert.Equal(t, constants.TypeEmail, DetermineFieldType("", "Data de Email"))
}

func TestDetermineComplexityTypeRules(t *testing.T) {
	assert.Equal(t, constants.ComplexityHigh, DetermineComplexity(constants.TypeFile, "x"))
	assert.Equal(t, constants.ComplexityHigh, DetermineComplexity(constants.TypeTextarea, "x"))
	for _, ft := range []constants.FieldType{
		constants.TypeDate, constants.TypeSelect, constants.TypeEmail,
		constants.TypeURL, constants.TypeNumber,
	} {
		assert.Equal(t, constants.ComplexityAverage, DetermineComplexity(ft, "x"), string(ft))
	}
}

func TestDetermineComplexityNameRules(t *testing.T) {
	// type-based rules do not apply to text/checkbox/radio
	assert.Equal(t, constants.ComplexityHigh, DetermineComplexity(constants.TypeText, "cpf"))
	assert.Equal(t, constants.ComplexityHigh, DetermineComplexity(constants.TypeText, "senha"))
	assert.Equal(t, constants.ComplexityHigh, DetermineComplexity(constants.TypeText, "Nome Completo"))
	assert.Equal(t, constants.ComplexityAverage, DetermineComplexity(constants.TypeText, "Nome do Cliente"))
	assert.Equal(t, constants.ComplexityAverage, DetermineComplexity(constants.TypeText, "umnomebastantecomprido"))
	assert.Equal(t, constants.ComplexityLow, DetermineComplexity(constants.TypeText, "cliente"))
}
