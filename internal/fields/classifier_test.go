package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/impacta-labs/fieldpoint/constants"
)

func TestClassifyFieldRuleOrder(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  constants.FieldCategory
	}{
		// rule 1: imperative cues, requirement cues in the value
		{"Digite seu nome", "", constants.CategoryInput},
		{"observacao", "preencha este campo", constants.CategoryInput},
		{"observacao", "campo obrigatório", constants.CategoryInput},
		// rule 2: generic output cues
		{"Valor Calculado", "", constants.CategoryOutput},
		{"resumo", "resultado do processamento", constants.CategoryOutput},
		// rule 3: output keywords in the name; fires before the generic
		// personal-name checks
		{"Total de Pedidos", "", constants.CategoryOutput},
		{"Subtotal", "", constants.CategoryOutput},
		// rule 3 also masks a required marker further down the name; kept
		// for compatibility with the original rule order
		{"Status de Aprovação Obrigatório", "", constants.CategoryOutput},
		// rule 4: required markers in the name, question phrasing
		{"Aceita receber novidades?", "", constants.CategoryInput},
		{"Empresa Obrigatório", "", constants.CategoryInput},
		{"Observações *", "", constants.CategoryInput},
		// rule 5: personal fields
		{"Nome do Cliente", "", constants.CategoryInput},
		{"Telefone", "", constants.CategoryInput},
		{"CPF", "", constants.CategoryInput},
		// rule 6: system-generated fields
		{"Criado Em", "", constants.CategoryOutput},
		{"Versão", "", constants.CategoryOutput},
		{"id", "", constants.CategoryOutput},
		// rule 7: fallthrough
		{"Observações Gerais", "", constants.CategoryNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyField(tt.name, tt.value))
		})
	}
}

func TestClassifyFieldBareDateNotUpdate(t *testing.T) {
	assert.Equal(t, constants.CategoryInput, ClassifyField("Data", ""))
	// an update timestamp is not a user-entered date
	assert.NotEqual(t, constants.CategoryInput, ClassifyField("Data de Atualização", ""))
}

func TestIdentifyDerivedFields(t *testing.T) {
	in := []ExtractedField{
		NewField("Valor Total Líquido", constants.TypeNumber, constants.ComplexityAverage, constants.SourceGeminiAI),
		NewField("Nome do Cliente", constants.TypeText, constants.ComplexityAverage, constants.SourceGeminiAI),
	}
	in[0].Category = constants.CategoryNeutral

	out := IdentifyDerivedFields(in)

	assert.Equal(t, constants.CategoryDerived, out[0].Category)
	assert.Contains(t, out[0].Description, "reclassificado automaticamente")
	assert.Equal(t, constants.CategoryNeutral, out[1].Category)
	assert.Empty(t, out[1].Description)

	// input slice must not be mutated
	assert.Equal(t, constants.CategoryNeutral, in[0].Category)
}
