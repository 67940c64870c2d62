package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hexastock/hexastock-api/internal/application/analytics"
	"github.com/hexastock/hexastock-api/internal/application/projecao"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
)

func TestResumo_CartoesDoPainel(t *testing.T) {
	agora := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	intp := func(n int) *int { return &n }

	snap := &projecao.Snapshot{
		Equipamentos: []entity.Equipamento{
			{ID: 1, Quantidade: 10, EstoqueMinimo: 2, Status: entity.StatusEmEstoque},
			{ID: 2, Quantidade: 1, EstoqueMinimo: 3, Status: entity.StatusEmEstoque},
			{ID: 3, Quantidade: 0, EstoqueMinimo: 1, Status: entity.StatusForaDeEstoque},
			{ID: 4, Quantidade: 0, EstoqueMinimo: 1, Status: entity.StatusDescartado},
		},
		Movimentacoes: []entity.Movimentacao{
			{ID: intp(1), DataDt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)},
			{ID: intp(2), DataDt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)},
			{ID: intp(3), DataDt: time.Date(2025, 2, 28, 9, 0, 0, 0, time.Local)},
			{ID: intp(4)}, // data zero (linha legada) fica fora da contagem
		},
	}

	d := analytics.Resumo(snap, agora)

	assert.Equal(t, 11, d.TotalUnidades, "descartados ficam fora da soma")
	assert.Equal(t, 3, d.TiposDistintos)
	assert.Equal(t, 2, d.EstoqueBaixo, "quantidade <= mínimo conta, descartado não")
	assert.Equal(t, 2, d.MovimentacoesMes, "só o mês civil corrente entra")
}
