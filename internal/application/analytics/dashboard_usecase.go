// Package analytics calcula os cartões do painel inicial a partir do
// snapshot das tabelas.
package analytics

import (
	"context"
	"time"

	"github.com/hexastock/hexastock-api/internal/application/dto"
	"github.com/hexastock/hexastock-api/internal/application/projecao"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
)

// DashboardUseCase gera o resumo do estoque e das movimentações do mês.
//
// Fonte de dados: o Loader da projeção (leitura pura). Nenhuma escrita.
type DashboardUseCase struct {
	loader *projecao.Loader
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(loader *projecao.Loader) *DashboardUseCase {
	return &DashboardUseCase{loader: loader}
}

// GetSummary monta o DashboardDTO:
//   - TotalUnidades: soma das quantidades dos itens não descartados
//   - TiposDistintos: itens não descartados (um por linha da planilha)
//   - EstoqueBaixo: itens não descartados no ponto de reposição ou abaixo
//   - MovimentacoesMes: movimentações de estoque no mês civil de agora
func (uc *DashboardUseCase) GetSummary(ctx context.Context, agora time.Time) (dto.DashboardDTO, error) {
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return dto.DashboardDTO{}, err
	}
	return Resumo(snap, agora), nil
}

// Resumo calcula os cartões sobre um snapshot já carregado. Separado de
// GetSummary para poder ser testado sem store.
func Resumo(snap *projecao.Snapshot, agora time.Time) dto.DashboardDTO {
	var d dto.DashboardDTO
	for _, e := range snap.Equipamentos {
		if e.Status == entity.StatusDescartado {
			continue
		}
		d.TotalUnidades += e.Quantidade
		d.TiposDistintos++
		if e.EstoqueBaixo() {
			d.EstoqueBaixo++
		}
	}

	inicioMes := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
	for _, m := range snap.Movimentacoes {
		if m.DataDt.IsZero() {
			continue
		}
		if !m.DataDt.Before(inicioMes) && !m.DataDt.After(agora) {
			d.MovimentacoesMes++
		}
	}
	return d
}
