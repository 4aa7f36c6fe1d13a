package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanModelText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"sem cerca", "olá", "olá"},
		{"cerca json", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"cerca simples", "```\ntexto\n```", "texto"},
		{"espaços em volta", "  resposta  ", "resposta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanModelText(tt.raw))
		})
	}
}

func TestExtractJSON(t *testing.T) {
	raw := "Claro! Aqui estão as metas:\n```json\n[{\"titulo\": \"Reserva\"}]\n```\nEspero que ajude."
	got, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, `[{"titulo": "Reserva"}]`, got)

	_, err = ExtractJSON("não há nada estruturado aqui")
	assert.Error(t, err)

	_, err = ExtractJSON("JSON quebrado: [ sem fechamento")
	assert.Error(t, err)
}

func TestSuggestActions(t *testing.T) {
	assert.Contains(t, SuggestActions("quero juntar dinheiro para uma meta"), "criar_meta")
	assert.Contains(t, SuggestActions("como economizar nos gastos do mês?"), "revisar_orcamento")
	assert.Contains(t, SuggestActions("minha fatura do cartão veio alta"), "ver_faturas")
	assert.Empty(t, SuggestActions("bom dia"))

	both := SuggestActions("quero guardar dinheiro e cortar despesas")
	assert.ElementsMatch(t, []string{"criar_meta", "revisar_orcamento"}, both)
}
