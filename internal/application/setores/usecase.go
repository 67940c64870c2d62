// Package setores orquestra as transferências de ativos entre setores e a
// sua regularização.
package setores

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hexastock/hexastock-api/internal/application/dto"
	"github.com/hexastock/hexastock-api/internal/application/projecao"
	"github.com/hexastock/hexastock-api/internal/domain"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
	domsetores "github.com/hexastock/hexastock-api/internal/domain/setores"
	"github.com/hexastock/hexastock-api/internal/infrastructure/sheets"
	"github.com/hexastock/hexastock-api/pkg/logger"
)

// UseCase concentra as operações de movimentação entre setores. Mesmo modelo
// de escrita serializada do estoque: um único escritor por processo.
type UseCase struct {
	store  sheets.Store
	loader *projecao.Loader
	abas   sheets.Abas
	params entity.Parametros
	log    *logger.Logger

	mu sync.Mutex
}

// NewUseCase constrói o caso de uso de setores.
func NewUseCase(store sheets.Store, loader *projecao.Loader, abas sheets.Abas, params entity.Parametros, log *logger.Logger) *UseCase {
	return &UseCase{store: store, loader: loader, abas: abas, params: params, log: log}
}

// Listar devolve todas as transferências registradas.
func (uc *UseCase) Listar(ctx context.Context) ([]entity.MovimentacaoSetor, error) {
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.MovimentacoesSetores, nil
}

// RegistrarTransferencia valida e grava uma transferência de ativo entre
// setores, com status inicial Pendente.
func (uc *UseCase) RegistrarTransferencia(ctx context.Context, req dto.TransferenciaRequest) (entity.MovimentacaoSetor, error) {
	t := domsetores.Transferencia{
		TipoEquipamento: req.TipoEquipamento,
		Patrimonio:      req.Patrimonio,
		ServiceTag:      req.ServiceTag,
		SetorOrigem:     req.SetorOrigem,
		SetorDestino:    req.SetorDestino,
		Responsavel:     req.Responsavel,
		Observacao:      req.Observacao,
		Chamado:         req.Chamado,
		Solicitante:     req.Solicitante,
	}
	if req.TipoEquipamento == entity.TipoEquipKit {
		t.Kit = domsetores.NovoKit(
			req.KitPatrimonioMonitor1, req.KitServiceTagMonitor1,
			req.KitPatrimonioMonitor2, req.KitServiceTagMonitor2,
			req.KitPatrimonioDesktop, req.KitServiceTagDesktop,
		)
	}
	if err := t.Validar(); err != nil {
		return entity.MovimentacaoSetor{}, err
	}
	if !uc.params.SetorValido(t.SetorOrigem) {
		return entity.MovimentacaoSetor{}, fmt.Errorf("origem %q: %w", t.SetorOrigem, domain.ErrSetorInvalido)
	}
	if !uc.params.SetorValido(t.SetorDestino) {
		return entity.MovimentacaoSetor{}, fmt.Errorf("destino %q: %w", t.SetorDestino, domain.ErrSetorInvalido)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	rows, err := uc.store.ReadAll(ctx, uc.abas.Setores)
	if err != nil {
		return entity.MovimentacaoSetor{}, fmt.Errorf("ler movimentações de setores: %w", err)
	}

	agora := time.Now()
	m := entity.MovimentacaoSetor{
		ID:                  sheets.NextID(rows),
		Data:                agora.Format(sheets.LayoutData),
		DataDt:              agora,
		Responsavel:         t.Responsavel,
		TipoEquipamento:     t.TipoEquipamento,
		Patrimonio:          t.PatrimonioPlano(),
		ServiceTag:          t.ServiceTagPlano(),
		SetorOrigem:         t.SetorOrigem,
		SetorDestino:        t.SetorDestino,
		Observacao:          t.Observacao,
		Chamado:             t.Chamado,
		Solicitante:         t.Solicitante,
		StatusRegularizacao: entity.RegularizacaoPendente,
	}
	if err := uc.store.AppendRow(ctx, uc.abas.Setores, sheets.MovimentacaoSetorRow(m)); err != nil {
		return entity.MovimentacaoSetor{}, fmt.Errorf("gravar transferência: %w", err)
	}

	uc.log.Info().Int("id", m.ID).Str("tipo", m.TipoEquipamento).
		Str("origem", m.SetorOrigem).Str("destino", m.SetorDestino).
		Msg("transferência registrada")
	return m, nil
}

// Regularizar marca as transferências dadas como Regularizado, em uma única
// escrita em lote, e devolve quantas de fato mudaram de status. Regularizar
// um ID já regularizado é no-op, não erro; o erro só acontece quando nenhum
// dos IDs resolve para uma linha existente.
func (uc *UseCase) Regularizar(ctx context.Context, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("ids: %w", domain.ErrCampoObrigatorio)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	rows, err := uc.store.ReadAll(ctx, uc.abas.Setores)
	if err != nil {
		return 0, fmt.Errorf("ler movimentações de setores: %w", err)
	}

	resolvidos := 0
	updates := make([]sheets.RangeUpdate, 0, len(ids))
	for _, id := range ids {
		linha, ok := sheets.FindRowIndex(rows, id)
		if !ok {
			continue
		}
		resolvidos++
		m := sheets.ParseMovimentacaoSetor(rows[linha-2])
		if m.StatusEfetivo() == entity.RegularizacaoRegularizado {
			continue
		}
		updates = append(updates, sheets.RangeUpdate{
			Range:  sheets.Cell(sheets.ColSetorStatus, linha),
			Values: [][]string{{entity.RegularizacaoRegularizado}},
		})
	}
	if resolvidos == 0 {
		return 0, domain.ErrNaoEncontrado
	}
	if len(updates) == 0 {
		return 0, nil
	}

	if err := uc.store.BatchUpdate(ctx, uc.abas.Setores, updates); err != nil {
		return 0, fmt.Errorf("regularizar: %w", err)
	}

	uc.log.Info().Int("regularizadas", len(updates)).Msg("transferências regularizadas")
	return len(updates), nil
}
