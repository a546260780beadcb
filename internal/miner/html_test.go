package miner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impacta-labs/fieldpoint/constants"
)

func TestMineHTMLInputs(t *testing.T) {
	out := MineHTML(`<form>
		<input type="email" name="contact" required>
		<input name="nickname" placeholder="apelido">
		<input type="submit" value="Enviar">
	</form>`)
	require.Len(t, out, 2)

	assert.Equal(t, "Contact", out[0].Name)
	assert.Equal(t, "email", out[0].TypeHint)
	assert.True(t, out[0].Required)
	assert.Equal(t, constants.SourceHTML, out[0].Source)

	assert.Equal(t, "Nickname", out[1].Name)
	assert.Equal(t, "text", out[1].TypeHint)
	assert.Equal(t, "apelido", out[1].Value)
	assert.False(t, out[1].Required)
}

func TestMineHTMLSelectComplexity(t *testing.T) {
	build := func(n int) string {
		var b strings.Builder
		b.WriteString(`<select name="estado">`)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "<option>%d</option>", i)
		}
		b.WriteString("</select>")
		return b.String()
	}

	tests := []struct {
		options int
		want    constants.Complexity
	}{
		{5, constants.ComplexityLow},
		{6, constants.ComplexityAverage},
		{10, constants.ComplexityAverage},
		{11, constants.ComplexityHigh},
	}
	for _, tc := range tests {
		out := MineHTML(build(tc.options))
		require.Len(t, out, 1, "options=%d", tc.options)
		assert.Equal(t, "select", out[0].TypeHint)
		assert.Equal(t, tc.want, out[0].ComplexityOverride, "options=%d", tc.options)
	}
}

func TestMineHTMLLabelRenamesControl(t *testing.T) {
	out := MineHTML(`
		<label for="cpf_input">CPF *</label>
		<input type="text" id="cpf_input" name="cpf_input">
	`)
	require.Len(t, out, 1)
	assert.Equal(t, "CPF", out[0].Name)
	assert.True(t, out[0].Required)
}

func TestMineHTMLStandaloneLabel(t *testing.T) {
	out := MineHTML(`<label>Data de Nascimento</label>`)
	require.Len(t, out, 1)
	assert.Equal(t, "Data de Nascimento", out[0].Name)
	assert.Equal(t, constants.SourceHTMLLabel, out[0].Source)
}

func TestMineHTMLTextarea(t *testing.T) {
	out := MineHTML(`<textarea name="observacoes" required></textarea>`)
	require.Len(t, out, 1)
	assert.Equal(t, "textarea", out[0].TypeHint)
	assert.True(t, out[0].Required)
}

func TestMineHTMLNoMarkup(t *testing.T) {
	assert.Nil(t, MineHTML("plain text without tags"))
}
