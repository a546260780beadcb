package miner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impacta-labs/fieldpoint/constants"
)

func TestMineJSONFieldDefinition(t *testing.T) {
	out := MineJSON(`{"cliente": {"label": "Nome do Cliente", "type": "text", "required": true}}`)
	require.Len(t, out, 1)

	c := out[0]
	assert.Equal(t, "Nome do Cliente", c.Name)
	assert.Equal(t, "text", c.TypeHint)
	assert.True(t, c.Required)
	assert.Equal(t, "cliente", c.ComplexityKey)
	assert.Equal(t, constants.SourceJSON, c.Source)
}

func TestMineJSONNonJSONInput(t *testing.T) {
	assert.Nil(t, MineJSON("just some text"))
	assert.Nil(t, MineJSON("{broken json"))
}

func TestMineJSONNestedRecursion(t *testing.T) {
	out := MineJSON(`{
		"form": {
			"endereco": {"name": "endereco", "type": "text"},
			"telefone": "11 99999-0000"
		}
	}`)
	require.Len(t, out, 2)
	names := []string{out[0].Name, out[1].Name}
	assert.Contains(t, names, "endereco")
	assert.Contains(t, names, "Telefone")
}

func TestMineJSONArrayOfFields(t *testing.T) {
	out := MineJSON(`{"campos": [
		{"label": "Email", "type": "email"},
		{"label": "Cidade", "type": "select"}
	]}`)
	require.Len(t, out, 2)
	assert.Equal(t, constants.SourceJSONArray, out[0].Source)
	assert.Equal(t, "Email", out[0].Name)
	assert.Equal(t, "Cidade", out[1].Name)
}

func TestMineJSONSkipsReservedKeys(t *testing.T) {
	out := MineJSON(`{
		"_meta": {"label": "interno", "type": "text"},
		"id": "abc-123",
		"key": "xyz",
		"email": "user@example.com"
	}`)
	require.Len(t, out, 1)
	assert.Equal(t, "Email", out[0].Name)
}

func TestMineJSONDescriptionFromPlaceholder(t *testing.T) {
	out := MineJSON(`{"obs": {"label": "Observações", "type": "textarea", "placeholder": "digite aqui"}}`)
	require.Len(t, out, 1)
	assert.Equal(t, "digite aqui", out[0].Description)
	assert.Equal(t, "digite aqui", out[0].Value)
}
