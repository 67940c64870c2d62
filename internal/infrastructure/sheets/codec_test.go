package sheets_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexastock/hexastock-api/internal/domain"
	"github.com/hexastock/hexastock-api/internal/infrastructure/sheets"
)

func TestParseEquipamento_CoercaoDeColunasSujas(t *testing.T) {
	// Quantidade não numérica e linha curta: os fallbacks valem 1.
	e := sheets.ParseEquipamento([]string{"5", "Notebook", "SN-1", "", "abc"})

	assert.Equal(t, 5, e.ID)
	assert.Equal(t, "Notebook", e.Nome)
	assert.Equal(t, 1, e.Quantidade, "quantidade não numérica vira 1, não 0")
	assert.Equal(t, 1, e.EstoqueMinimo, "coluna ausente vira 1")
	assert.Empty(t, e.Categoria)
}

func TestParseMovimentacao_ChaveNaoNumericaViraNil(t *testing.T) {
	m := sheets.ParseMovimentacao([]string{"x", "y", "Saída", "2", "Filial", "Bruno", "INC-1", "Ana", "15-03-2025 10:30:00", ""})

	assert.Nil(t, m.ID, "ID não numérico vira nil em vez de descartar a linha")
	assert.Nil(t, m.IDEquipamento)
	assert.Equal(t, "Saída", m.Tipo)
	assert.Equal(t, time.Date(2025, 3, 15, 10, 30, 0, 0, time.Local), m.DataDt)
}

func TestParseMovimentacao_DataInvalidaViraZero(t *testing.T) {
	m := sheets.ParseMovimentacao([]string{"1", "2", "Entrada", "1", "", "", "", "Ana", "2025-03-15", ""})
	assert.True(t, m.DataDt.IsZero(), "data fora do formato dd-mm-aaaa HH:MM:SS vira time zero")
	assert.Equal(t, "2025-03-15", m.Data, "o texto original é preservado")
}

func TestEquipamentoRow_RoundTripPreservaOrdemDasColunas(t *testing.T) {
	row := []string{"7", "Teclado", "SN-9", "ABNT2", "3", "Em Estoque", "01-02-2025 09:00:00", "2", "Periféricos"}
	e := sheets.ParseEquipamento(row)
	assert.Equal(t, row, sheets.EquipamentoRow(e))
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, sheets.NextID(nil), "tabela vazia começa em 1")
	rows := [][]string{{"3"}, {"7"}, {"x"}, {"5"}}
	assert.Equal(t, 8, sheets.NextID(rows), "max+1 ignorando entradas não numéricas")
}

func TestFindRowIndex(t *testing.T) {
	rows := [][]string{{"10"}, {"20"}, {"30"}}

	linha, ok := sheets.FindRowIndex(rows, 20)
	require.True(t, ok)
	assert.Equal(t, 3, linha, "linha de dados 1 corresponde à linha 3 da planilha")

	_, ok = sheets.FindRowIndex(rows, 99)
	assert.False(t, ok)
}

func TestParseParametros(t *testing.T) {
	rows := [][]string{
		{"categoria", "Periféricos"},
		{"destino", "TI"},
		{"categoria", "Computadores"},
		{"destino", "Financeiro"},
		{"default_estoque_minimo", "2"},
	}

	p, err := sheets.ParseParametros(rows)
	require.NoError(t, err)
	assert.Equal(t, []string{"Computadores", "Periféricos"}, p.Categorias, "listas saem ordenadas")
	assert.Equal(t, []string{"Financeiro", "TI"}, p.Setores)
	assert.Equal(t, 2, p.EstoqueMinimoPadrao)
}

func TestParseParametros_SemMinimoPadraoFalha(t *testing.T) {
	rows := [][]string{{"categoria", "Periféricos"}, {"destino", "TI"}}
	_, err := sheets.ParseParametros(rows)
	require.ErrorIs(t, err, domain.ErrConfigInvalida)
}

func TestColLetterECell(t *testing.T) {
	assert.Equal(t, "A", sheets.ColLetter(1))
	assert.Equal(t, "Z", sheets.ColLetter(26))
	assert.Equal(t, "AA", sheets.ColLetter(27))
	assert.Equal(t, "L5", sheets.Cell(12, 5))
}

func TestParseRange(t *testing.T) {
	c1, r1, c2, r2, err := sheets.ParseRange("E5:F7")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 5, 6, 7}, []int{c1, r1, c2, r2})

	c1, r1, c2, r2, err = sheets.ParseRange("L9")
	require.NoError(t, err)
	assert.Equal(t, []int{12, 9, 12, 9}, []int{c1, r1, c2, r2})

	_, _, _, _, err = sheets.ParseRange("5E")
	require.Error(t, err)
}
