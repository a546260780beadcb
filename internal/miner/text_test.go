package miner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impacta-labs/fieldpoint/constants"
)

func TestMineTextKeyValueLine(t *testing.T) {
	out := MineText("Email: usuario@exemplo.com")
	require.NotEmpty(t, out)

	// The line matches both as an indicator line and as key/value; both
	// candidates carry the same display name.
	for _, c := range out {
		assert.Equal(t, "Email", c.Name)
		assert.Equal(t, "usuario@exemplo.com", c.Value)
	}
	assert.Equal(t, constants.SourceText, out[0].Source)
	assert.Equal(t, constants.SourceTextKV, out[len(out)-1].Source)
}

func TestMineTextRequiredMarkerStripped(t *testing.T) {
	out := MineText("Nome Completo *")
	require.NotEmpty(t, out)
	assert.Equal(t, "Nome Completo", out[0].Name)
	assert.True(t, out[0].Required)
}

func TestMineTextIgnoresNoiseKeys(t *testing.T) {
	out := MineText("Página: 2\nTelefone: 11 98888-0000")
	for _, c := range out {
		assert.NotEqual(t, "Página", c.Name)
	}
	require.NotEmpty(t, out)
	assert.Equal(t, "Telefone", out[len(out)-1].Name)
}

func TestMineTextSkipsLongAndEmptyLines(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	assert.Empty(t, MineText(string(long)))
	assert.Empty(t, MineText("\n\n   \n"))
}

func TestMineTextSkipsStructuralLines(t *testing.T) {
	assert.Empty(t, MineText(`{"cliente": {"label": "Nome do Cliente", "type": "text"}}`))
	assert.Empty(t, MineText(`<input type="email" name="contact" required>`))
}

func TestMineTextPlainProse(t *testing.T) {
	assert.Empty(t, MineText("o relatório foi entregue ontem pela equipe"))
}
