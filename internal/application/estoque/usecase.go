// Package estoque orquestra os casos de uso do inventário: cadastro e edição
// de equipamentos, exclusão em lote e a aplicação de movimentações calculadas
// pelo motor de reconciliação.
package estoque

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hexastock/hexastock-api/internal/application/dto"
	"github.com/hexastock/hexastock-api/internal/application/projecao"
	"github.com/hexastock/hexastock-api/internal/domain"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
	domestoque "github.com/hexastock/hexastock-api/internal/domain/estoque"
	"github.com/hexastock/hexastock-api/internal/infrastructure/sheets"
	"github.com/hexastock/hexastock-api/pkg/logger"
)

// UseCase concentra as operações de estoque. O mutex serializa todas as
// escritas: a planilha não tem transação nem incremento atômico, então um
// único escritor por processo é o que garante IDs sem colisão dentro da
// própria aplicação (edições manuais externas continuam fora do controle).
type UseCase struct {
	store  sheets.Store
	loader *projecao.Loader
	abas   sheets.Abas
	params entity.Parametros
	log    *logger.Logger

	mu sync.Mutex
}

// NewUseCase constrói o caso de uso de estoque.
func NewUseCase(store sheets.Store, loader *projecao.Loader, abas sheets.Abas, params entity.Parametros, log *logger.Logger) *UseCase {
	return &UseCase{store: store, loader: loader, abas: abas, params: params, log: log}
}

// Snapshot recarrega a projeção completa das tabelas.
func (uc *UseCase) Snapshot(ctx context.Context) (*projecao.Snapshot, error) {
	return uc.loader.Load(ctx)
}

// Parametros devolve as listas configuradas (categorias, setores, mínimo padrão).
func (uc *UseCase) Parametros() entity.Parametros {
	return uc.params
}

// AddEquipamento cadastra um novo equipamento. O status inicial é derivado da
// quantidade e a data de cadastro é o momento da criação.
func (uc *UseCase) AddEquipamento(ctx context.Context, req dto.NovoEquipamentoRequest) (entity.Equipamento, error) {
	if strings.TrimSpace(req.Nome) == "" {
		return entity.Equipamento{}, fmt.Errorf("nome: %w", domain.ErrCampoObrigatorio)
	}
	if strings.TrimSpace(req.Categoria) == "" {
		return entity.Equipamento{}, fmt.Errorf("categoria: %w", domain.ErrCampoObrigatorio)
	}
	if !uc.params.CategoriaValida(req.Categoria) {
		return entity.Equipamento{}, fmt.Errorf("%q: %w", req.Categoria, domain.ErrCategoriaInvalida)
	}
	if req.Quantidade < 0 {
		return entity.Equipamento{}, fmt.Errorf("quantidade: %w", domain.ErrQuantidadeInvalida)
	}
	minimo := uc.params.EstoqueMinimoPadrao
	if req.EstoqueMinimo != nil {
		if *req.EstoqueMinimo < 0 {
			return entity.Equipamento{}, fmt.Errorf("estoque mínimo: %w", domain.ErrQuantidadeInvalida)
		}
		minimo = *req.EstoqueMinimo
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// O ID é lido sob o lock, imediatamente antes do append.
	rows, err := uc.store.ReadAll(ctx, uc.abas.Equipamentos)
	if err != nil {
		return entity.Equipamento{}, fmt.Errorf("ler equipamentos: %w", err)
	}

	e := entity.Equipamento{
		ID:            sheets.NextID(rows),
		Nome:          strings.TrimSpace(req.Nome),
		NumeroSerie:   strings.TrimSpace(req.NumeroSerie),
		Descricao:     strings.TrimSpace(req.Descricao),
		Quantidade:    req.Quantidade,
		Status:        entity.StatusPorQuantidade(req.Quantidade),
		DataCadastro:  time.Now().Format(sheets.LayoutData),
		EstoqueMinimo: minimo,
		Categoria:     req.Categoria,
	}
	if err := uc.store.AppendRow(ctx, uc.abas.Equipamentos, sheets.EquipamentoRow(e)); err != nil {
		return entity.Equipamento{}, fmt.Errorf("gravar equipamento: %w", err)
	}

	uc.log.Info().Int("id", e.ID).Str("nome", e.Nome).Msg("equipamento cadastrado")
	return e, nil
}

// EditEquipamento sobrescreve os campos editáveis de um equipamento. A data
// de cadastro original é preservada e o status é rederivado da quantidade,
// exceto para itens descartados, que permanecem descartados.
func (uc *UseCase) EditEquipamento(ctx context.Context, id int, req dto.EditarEquipamentoRequest) (entity.Equipamento, error) {
	if strings.TrimSpace(req.Nome) == "" {
		return entity.Equipamento{}, fmt.Errorf("nome: %w", domain.ErrCampoObrigatorio)
	}
	if !uc.params.CategoriaValida(req.Categoria) {
		return entity.Equipamento{}, fmt.Errorf("%q: %w", req.Categoria, domain.ErrCategoriaInvalida)
	}
	if req.Quantidade < 0 || req.EstoqueMinimo < 0 {
		return entity.Equipamento{}, fmt.Errorf("quantidade: %w", domain.ErrQuantidadeInvalida)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	rows, err := uc.store.ReadAll(ctx, uc.abas.Equipamentos)
	if err != nil {
		return entity.Equipamento{}, fmt.Errorf("ler equipamentos: %w", err)
	}
	linha, ok := sheets.FindRowIndex(rows, id)
	if !ok {
		return entity.Equipamento{}, fmt.Errorf("equipamento %d: %w", id, domain.ErrNaoEncontrado)
	}
	atual := sheets.ParseEquipamento(rows[linha-2])

	e := entity.Equipamento{
		ID:            id,
		Nome:          strings.TrimSpace(req.Nome),
		NumeroSerie:   strings.TrimSpace(req.NumeroSerie),
		Descricao:     strings.TrimSpace(req.Descricao),
		Quantidade:    req.Quantidade,
		Status:        entity.StatusPorQuantidade(req.Quantidade),
		DataCadastro:  atual.DataCadastro,
		EstoqueMinimo: req.EstoqueMinimo,
		Categoria:     req.Categoria,
	}
	if atual.Status == entity.StatusDescartado {
		e.Quantidade = 0
		e.Status = entity.StatusDescartado
	}

	rangeSpec := fmt.Sprintf("A%d:I%d", linha, linha)
	if err := uc.store.UpdateRange(ctx, uc.abas.Equipamentos, rangeSpec, [][]string{sheets.EquipamentoRow(e)}); err != nil {
		return entity.Equipamento{}, fmt.Errorf("gravar equipamento: %w", err)
	}

	uc.log.Info().Int("id", id).Msg("equipamento editado")
	return e, nil
}

// DeleteEquipamentos remove os equipamentos em lote e devolve quantos foram
// de fato removidos. IDs inexistentes são ignorados; o histórico de
// movimentações dos itens removidos é preservado e passa a exibir
// "Item Excluído".
func (uc *UseCase) DeleteEquipamentos(ctx context.Context, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("ids: %w", domain.ErrCampoObrigatorio)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	rows, err := uc.store.ReadAll(ctx, uc.abas.Equipamentos)
	if err != nil {
		return 0, fmt.Errorf("ler equipamentos: %w", err)
	}

	linhas := make([]int, 0, len(ids))
	for _, id := range ids {
		if linha, ok := sheets.FindRowIndex(rows, id); ok {
			linhas = append(linhas, linha)
		}
	}
	if len(linhas) == 0 {
		return 0, domain.ErrNaoEncontrado
	}

	// Ordem decrescente: excluir de baixo para cima não desloca as linhas
	// que ainda serão excluídas.
	sort.Sort(sort.Reverse(sort.IntSlice(linhas)))
	for _, linha := range linhas {
		if err := uc.store.DeleteRow(ctx, uc.abas.Equipamentos, linha); err != nil {
			return 0, fmt.Errorf("excluir linha %d: %w", linha, err)
		}
	}

	uc.log.Info().Int("excluidos", len(linhas)).Msg("equipamentos excluídos")
	return len(linhas), nil
}

// Pesquisar filtra equipamentos por termo, sem distinção de maiúsculas, nos
// campos nome, número de série, categoria e descrição. Termo vazio devolve
// todos.
func (uc *UseCase) Pesquisar(ctx context.Context, termo string) ([]entity.Equipamento, error) {
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	termo = strings.ToLower(strings.TrimSpace(termo))
	if termo == "" {
		return snap.Equipamentos, nil
	}
	out := make([]entity.Equipamento, 0, len(snap.Equipamentos))
	for _, e := range snap.Equipamentos {
		alvo := strings.ToLower(strings.Join([]string{e.Nome, e.NumeroSerie, e.Categoria, e.Descricao}, "\n"))
		if strings.Contains(alvo, termo) {
			out = append(out, e)
		}
	}
	return out, nil
}

// MovimentarEstoque aplica um lote de movimentação (Saída, Entrada ou
// Descarte) sobre um ou mais itens.
//
// Fluxo: snapshot fresco, validação tudo-ou-nada pelo motor de
// reconciliação, escrita das quantidades/status e por fim o append do
// histórico em lote. Se uma linha de equipamento desaparecer entre a
// validação e a escrita (edição manual concorrente), a atualização daquela
// célula é pulada mas o histórico ainda é gravado.
func (uc *UseCase) MovimentarEstoque(ctx context.Context, req dto.MovimentacaoRequest) (dto.MovimentacaoResponse, error) {
	if len(req.Itens) == 0 {
		return dto.MovimentacaoResponse{}, fmt.Errorf("itens: %w", domain.ErrCampoObrigatorio)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return dto.MovimentacaoResponse{}, err
	}

	itens := make([]domestoque.Item, 0, len(req.Itens))
	for _, it := range req.Itens {
		e, ok := snap.EquipamentoPorID(it.ID)
		if !ok {
			return dto.MovimentacaoResponse{}, fmt.Errorf("equipamento %d: %w", it.ID, domain.ErrNaoEncontrado)
		}
		itens = append(itens, domestoque.Item{
			ID:              e.ID,
			Nome:            e.Nome,
			QuantidadeAtual: e.Quantidade,
			QuantidadeMover: it.Quantidade,
		})
	}

	agora := time.Now()
	res, err := domestoque.AplicarMovimentacao(req.Tipo, itens, domestoque.Contexto{
		Responsavel:   req.Responsavel,
		Solicitante:   req.Solicitante,
		Chamado:       req.Chamado,
		DestinoOrigem: req.DestinoOrigem,
		MotivoLaudo:   req.MotivoLaudo,
	}, agora)
	if err != nil {
		return dto.MovimentacaoResponse{}, err
	}

	lote := uuid.NewString()
	log := uc.log.With().Str("lote", lote).Str("tipo", req.Tipo).Logger()

	// Releitura antes da escrita: os índices de linha podem ter mudado.
	equipRows, err := uc.store.ReadAll(ctx, uc.abas.Equipamentos)
	if err != nil {
		return dto.MovimentacaoResponse{}, fmt.Errorf("reler equipamentos: %w", err)
	}
	updates := make([]sheets.RangeUpdate, 0, len(res.Atualizacoes))
	for _, at := range res.Atualizacoes {
		linha, ok := sheets.FindRowIndex(equipRows, at.ID)
		if !ok {
			log.Warn().Int("id", at.ID).Msg("equipamento sumiu entre a validação e a escrita")
			continue
		}
		updates = append(updates, sheets.RangeUpdate{
			Range:  fmt.Sprintf("E%d:F%d", linha, linha),
			Values: [][]string{{fmt.Sprint(at.NovaQuantidade), at.NovoStatus}},
		})
	}
	if len(updates) > 0 {
		if err := uc.store.BatchUpdate(ctx, uc.abas.Equipamentos, updates); err != nil {
			return dto.MovimentacaoResponse{}, fmt.Errorf("atualizar quantidades: %w", err)
		}
	}

	movRows, err := uc.store.ReadAll(ctx, uc.abas.Movimentacoes)
	if err != nil {
		return dto.MovimentacaoResponse{}, fmt.Errorf("ler movimentações: %w", err)
	}
	base := sheets.NextID(movRows)
	historico := make([][]string, 0, len(res.Movimentacoes))
	for i := range res.Movimentacoes {
		id := base + i
		res.Movimentacoes[i].ID = &id
		historico = append(historico, sheets.MovimentacaoRow(res.Movimentacoes[i]))
	}
	if err := uc.store.AppendRows(ctx, uc.abas.Movimentacoes, historico); err != nil {
		return dto.MovimentacaoResponse{}, fmt.Errorf("gravar histórico: %w", err)
	}

	log.Info().Int("itens", len(res.Movimentacoes)).Msg("movimentação aplicada")
	return dto.MovimentacaoResponse{
		Tipo:           req.Tipo,
		ItensAplicados: len(res.Movimentacoes),
		Data:           agora.Format(sheets.LayoutData),
	}, nil
}

// SugestaoDescarte devolve a quantidade pré-preenchida para o descarte de um
// item (o estoque atual inteiro).
func (uc *UseCase) SugestaoDescarte(ctx context.Context, id int) (dto.SugestaoDTO, error) {
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return dto.SugestaoDTO{}, err
	}
	e, ok := snap.EquipamentoPorID(id)
	if !ok {
		return dto.SugestaoDTO{}, fmt.Errorf("equipamento %d: %w", id, domain.ErrNaoEncontrado)
	}
	return dto.SugestaoDTO{ID: id, Quantidade: domestoque.SugestaoDescarte(e)}, nil
}

// SugestaoReentrada devolve destino e solicitante da saída mais recente de um
// item, como sugestão de origem para a devolução. Sem saída anterior, devolve
// campos vazios.
func (uc *UseCase) SugestaoReentrada(ctx context.Context, id int) (destino, solicitante string, err error) {
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return "", "", err
	}
	if _, ok := snap.EquipamentoPorID(id); !ok {
		return "", "", fmt.Errorf("equipamento %d: %w", id, domain.ErrNaoEncontrado)
	}
	destino, solicitante, _ = domestoque.SugestaoReentrada(snap.Movimentacoes, id)
	return destino, solicitante, nil
}

// Historico monta o histórico de movimentações dos equipamentos dados (ou de
// todos, com ids vazio), ordenado do mais recente para o mais antigo pelo ID
// da movimentação. Referências a itens já excluídos aparecem como
// "Item Excluído".
func (uc *UseCase) Historico(ctx context.Context, ids []int) ([]dto.HistoricoDTO, error) {
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtro := make(map[int]bool, len(ids))
	for _, id := range ids {
		filtro[id] = true
	}

	movs := make([]entity.Movimentacao, 0, len(snap.Movimentacoes))
	for _, m := range snap.Movimentacoes {
		if len(filtro) > 0 && (m.IDEquipamento == nil || !filtro[*m.IDEquipamento]) {
			continue
		}
		movs = append(movs, m)
	}
	// IDs nulos (linhas legadas) ficam por último.
	sort.SliceStable(movs, func(i, j int) bool {
		a, b := movs[i].ID, movs[j].ID
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})

	out := make([]dto.HistoricoDTO, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.HistoricoDTO{
			Data:            m.Data,
			NomeEquipamento: snap.NomeEquipamento(m.IDEquipamento),
			Tipo:            m.Tipo,
			Quantidade:      m.Quantidade,
			Responsavel:     m.Responsavel,
			Solicitante:     m.Solicitante,
			Chamado:         m.Chamado,
			DestinoOrigem:   m.DestinoOrigem,
			MotivoLaudo:     m.MotivoLaudo,
		})
	}
	return out, nil
}
