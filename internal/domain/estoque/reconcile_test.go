package estoque_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexastock/hexastock-api/internal/domain"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
	"github.com/hexastock/hexastock-api/internal/domain/estoque"
)

var agora = time.Date(2025, 3, 15, 10, 30, 0, 0, time.Local)

func ctxSaida() estoque.Contexto {
	return estoque.Contexto{
		Responsavel:   "Ana",
		Solicitante:   "Bruno",
		Chamado:       "INC-1234",
		DestinoOrigem: "Filial Centro",
	}
}

func TestAplicarMovimentacao_SaidaDecrementaEDerivaStatus(t *testing.T) {
	itens := []estoque.Item{{ID: 5, Nome: "Notebook Dell", QuantidadeAtual: 10, QuantidadeMover: 4}}

	res, err := estoque.AplicarMovimentacao(entity.TipoSaida, itens, ctxSaida(), agora)
	require.NoError(t, err)
	require.Len(t, res.Atualizacoes, 1)
	require.Len(t, res.Movimentacoes, 1)

	assert.Equal(t, 6, res.Atualizacoes[0].NovaQuantidade)
	assert.Equal(t, entity.StatusEmEstoque, res.Atualizacoes[0].NovoStatus)

	mov := res.Movimentacoes[0]
	require.NotNil(t, mov.IDEquipamento)
	assert.Equal(t, 5, *mov.IDEquipamento)
	assert.Equal(t, entity.TipoSaida, mov.Tipo)
	assert.Equal(t, 4, mov.Quantidade)
	assert.Equal(t, "15-03-2025 10:30:00", mov.Data,
		"a data deve sair no formato dd-mm-aaaa HH:MM:SS da planilha")
	assert.Equal(t, "Filial Centro", mov.DestinoOrigem)
	assert.Empty(t, mov.MotivoLaudo, "saída não carrega motivo/laudo")
}

func TestAplicarMovimentacao_SaidaZeraEstoqueFicaForaDeEstoque(t *testing.T) {
	itens := []estoque.Item{{ID: 1, Nome: "Mouse", QuantidadeAtual: 3, QuantidadeMover: 3}}

	res, err := estoque.AplicarMovimentacao(entity.TipoSaida, itens, ctxSaida(), agora)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Atualizacoes[0].NovaQuantidade)
	assert.Equal(t, entity.StatusForaDeEstoque, res.Atualizacoes[0].NovoStatus)
}

func TestAplicarMovimentacao_SaidaMaiorQueEstoqueFalha(t *testing.T) {
	itens := []estoque.Item{{ID: 1, Nome: "Mouse", QuantidadeAtual: 3, QuantidadeMover: 4}}

	res, err := estoque.AplicarMovimentacao(entity.TipoSaida, itens, ctxSaida(), agora)
	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)
	assert.Nil(t, res, "nenhuma saída parcial quando a validação falha")
	assert.Contains(t, err.Error(), "Mouse", "o erro deve nomear o item ofensor")
}

func TestAplicarMovimentacao_EntradaIncrementaESempreEmEstoque(t *testing.T) {
	itens := []estoque.Item{{ID: 2, Nome: "Teclado", QuantidadeAtual: 0, QuantidadeMover: 5}}
	ctx := estoque.Contexto{Responsavel: "Ana", DestinoOrigem: "Fornecedor X"}

	res, err := estoque.AplicarMovimentacao(entity.TipoEntrada, itens, ctx, agora)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Atualizacoes[0].NovaQuantidade)
	assert.Equal(t, entity.StatusEmEstoque, res.Atualizacoes[0].NovoStatus)
}

func TestAplicarMovimentacao_DescarteZeraIndependenteDaQuantidade(t *testing.T) {
	itens := []estoque.Item{{ID: 3, Nome: "Monitor", QuantidadeAtual: 7, QuantidadeMover: 2}}
	ctx := estoque.Contexto{
		Responsavel: "Ana",
		Solicitante: "Bruno",
		Chamado:     "INC-9",
		MotivoLaudo: "Tela trincada",
	}

	res, err := estoque.AplicarMovimentacao(entity.TipoDescarte, itens, ctx, agora)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Atualizacoes[0].NovaQuantidade,
		"descarte zera o estoque mesmo movendo menos que o total")
	assert.Equal(t, entity.StatusDescartado, res.Atualizacoes[0].NovoStatus)

	mov := res.Movimentacoes[0]
	assert.Equal(t, "Tela trincada", mov.MotivoLaudo)
	assert.Empty(t, mov.Solicitante, "solicitante não se aplica ao descarte")
	assert.Empty(t, mov.Chamado, "chamado não se aplica ao descarte")
	assert.Empty(t, mov.DestinoOrigem)
}

func TestAplicarMovimentacao_DescarteSemMotivoFalha(t *testing.T) {
	itens := []estoque.Item{{ID: 3, Nome: "Monitor", QuantidadeAtual: 7, QuantidadeMover: 7}}
	ctx := estoque.Contexto{Responsavel: "Ana"}

	_, err := estoque.AplicarMovimentacao(entity.TipoDescarte, itens, ctx, agora)
	require.ErrorIs(t, err, domain.ErrCampoObrigatorio)
}

func TestAplicarMovimentacao_SaidaSemDestinoFalha(t *testing.T) {
	itens := []estoque.Item{{ID: 1, Nome: "Mouse", QuantidadeAtual: 3, QuantidadeMover: 1}}
	ctx := estoque.Contexto{Responsavel: "Ana"}

	_, err := estoque.AplicarMovimentacao(entity.TipoSaida, itens, ctx, agora)
	require.ErrorIs(t, err, domain.ErrCampoObrigatorio)
}

func TestAplicarMovimentacao_SemResponsavelFalha(t *testing.T) {
	itens := []estoque.Item{{ID: 1, Nome: "Mouse", QuantidadeAtual: 3, QuantidadeMover: 1}}
	ctx := estoque.Contexto{DestinoOrigem: "Filial"}

	_, err := estoque.AplicarMovimentacao(entity.TipoSaida, itens, ctx, agora)
	require.ErrorIs(t, err, domain.ErrCampoObrigatorio)
}

func TestAplicarMovimentacao_QuantidadeZeroOuNegativaFalha(t *testing.T) {
	for _, q := range []int{0, -2} {
		itens := []estoque.Item{{ID: 1, Nome: "Mouse", QuantidadeAtual: 3, QuantidadeMover: q}}
		_, err := estoque.AplicarMovimentacao(entity.TipoSaida, itens, ctxSaida(), agora)
		require.ErrorIs(t, err, domain.ErrQuantidadeInvalida, "quantidade %d deve ser rejeitada", q)
	}
}

func TestAplicarMovimentacao_TipoDesconhecidoFalha(t *testing.T) {
	itens := []estoque.Item{{ID: 1, Nome: "Mouse", QuantidadeAtual: 3, QuantidadeMover: 1}}
	_, err := estoque.AplicarMovimentacao("Transferência", itens, ctxSaida(), agora)
	require.ErrorIs(t, err, domain.ErrTipoInvalido)
}

func TestAplicarMovimentacao_LoteTudoOuNada(t *testing.T) {
	// O segundo item viola a regra de estoque; o lote inteiro deve falhar.
	itens := []estoque.Item{
		{ID: 1, Nome: "Mouse", QuantidadeAtual: 10, QuantidadeMover: 1},
		{ID: 2, Nome: "Teclado", QuantidadeAtual: 1, QuantidadeMover: 5},
		{ID: 3, Nome: "Monitor", QuantidadeAtual: 10, QuantidadeMover: 1},
	}

	res, err := estoque.AplicarMovimentacao(entity.TipoSaida, itens, ctxSaida(), agora)
	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)
	assert.Nil(t, res)
}

func TestAplicarMovimentacao_LoteCompartilhaTimestamp(t *testing.T) {
	itens := []estoque.Item{
		{ID: 1, Nome: "Mouse", QuantidadeAtual: 10, QuantidadeMover: 1},
		{ID: 2, Nome: "Teclado", QuantidadeAtual: 8, QuantidadeMover: 2},
		{ID: 3, Nome: "Monitor", QuantidadeAtual: 6, QuantidadeMover: 3},
	}

	res, err := estoque.AplicarMovimentacao(entity.TipoSaida, itens, ctxSaida(), agora)
	require.NoError(t, err)
	require.Len(t, res.Movimentacoes, 3)
	for _, m := range res.Movimentacoes {
		assert.Equal(t, res.Movimentacoes[0].Data, m.Data,
			"todos os registros do lote devem compartilhar o mesmo timestamp")
	}
}

func TestSugestaoDescarte_DevolveEstoqueInteiro(t *testing.T) {
	e := entity.Equipamento{ID: 4, Nome: "Impressora", Quantidade: 9}
	assert.Equal(t, 9, estoque.SugestaoDescarte(e))
}

func TestSugestaoReentrada_UltimaSaidaPorID(t *testing.T) {
	id := func(n int) *int { return &n }
	eq := 7
	movs := []entity.Movimentacao{
		{ID: id(1), IDEquipamento: &eq, Tipo: entity.TipoSaida, DestinoOrigem: "Filial A", Solicitante: "Carla"},
		{ID: id(3), IDEquipamento: &eq, Tipo: entity.TipoSaida, DestinoOrigem: "Filial B", Solicitante: "Davi"},
		{ID: id(4), IDEquipamento: &eq, Tipo: entity.TipoEntrada, DestinoOrigem: "Filial C"},
		{ID: id(2), IDEquipamento: id(99), Tipo: entity.TipoSaida, DestinoOrigem: "Outra"},
	}

	destino, solicitante, ok := estoque.SugestaoReentrada(movs, eq)
	require.True(t, ok)
	assert.Equal(t, "Filial B", destino, "deve usar a saída de maior ID, não a última da lista")
	assert.Equal(t, "Davi", solicitante)
}

func TestSugestaoReentrada_SemSaidaAnterior(t *testing.T) {
	_, _, ok := estoque.SugestaoReentrada(nil, 7)
	assert.False(t, ok)
}
