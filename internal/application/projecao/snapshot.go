// Package projecao carrega as linhas cruas da planilha em tabelas tipadas em
// memória. O snapshot é um valor explícito passado entre os casos de uso;
// quem muta dados é responsável por recarregar.
package projecao

import (
	"context"
	"fmt"

	"github.com/hexastock/hexastock-api/internal/domain/entity"
	"github.com/hexastock/hexastock-api/internal/infrastructure/sheets"
)

// NomeItemExcluido é exibido quando uma movimentação referencia um
// equipamento que já foi removido do estoque.
const NomeItemExcluido = "Item Excluído"

// Snapshot é a projeção completa das três tabelas de dados, recarregada
// integralmente a cada chamada de Load (sem diff nem invalidação parcial).
type Snapshot struct {
	Equipamentos         []entity.Equipamento
	Movimentacoes        []entity.Movimentacao
	MovimentacoesSetores []entity.MovimentacaoSetor
}

// EquipamentoPorID busca um equipamento no snapshot.
func (s *Snapshot) EquipamentoPorID(id int) (entity.Equipamento, bool) {
	for _, e := range s.Equipamentos {
		if e.ID == id {
			return e, true
		}
	}
	return entity.Equipamento{}, false
}

// NomeEquipamento resolve o nome de um equipamento referenciado por uma
// movimentação; referências órfãs aparecem como "Item Excluído".
func (s *Snapshot) NomeEquipamento(id *int) string {
	if id == nil {
		return NomeItemExcluido
	}
	if e, ok := s.EquipamentoPorID(*id); ok {
		return e.Nome
	}
	return NomeItemExcluido
}

// Loader lê o store e projeta as tabelas tipadas. Leitura pura: nenhum efeito
// colateral sobre a planilha.
type Loader struct {
	store sheets.Store
	abas  sheets.Abas
}

// NewLoader constrói o loader.
func NewLoader(store sheets.Store, abas sheets.Abas) *Loader {
	return &Loader{store: store, abas: abas}
}

// Load recarrega as três tabelas do zero. Abas vazias viram tabelas vazias.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	equipRows, err := l.store.ReadAll(ctx, l.abas.Equipamentos)
	if err != nil {
		return nil, fmt.Errorf("carregar equipamentos: %w", err)
	}
	movRows, err := l.store.ReadAll(ctx, l.abas.Movimentacoes)
	if err != nil {
		return nil, fmt.Errorf("carregar movimentações: %w", err)
	}
	setorRows, err := l.store.ReadAll(ctx, l.abas.Setores)
	if err != nil {
		return nil, fmt.Errorf("carregar movimentações entre setores: %w", err)
	}

	snap := &Snapshot{
		Equipamentos:         make([]entity.Equipamento, 0, len(equipRows)),
		Movimentacoes:        make([]entity.Movimentacao, 0, len(movRows)),
		MovimentacoesSetores: make([]entity.MovimentacaoSetor, 0, len(setorRows)),
	}
	for _, row := range equipRows {
		snap.Equipamentos = append(snap.Equipamentos, sheets.ParseEquipamento(row))
	}
	for _, row := range movRows {
		snap.Movimentacoes = append(snap.Movimentacoes, sheets.ParseMovimentacao(row))
	}
	for _, row := range setorRows {
		snap.MovimentacoesSetores = append(snap.MovimentacoesSetores, sheets.ParseMovimentacaoSetor(row))
	}
	return snap, nil
}

// LoadParametros lê a aba 'config' uma vez por sessão.
func (l *Loader) LoadParametros(ctx context.Context) (entity.Parametros, error) {
	rows, err := l.store.ReadAll(ctx, l.abas.Config)
	if err != nil {
		return entity.Parametros{}, fmt.Errorf("carregar configuração: %w", err)
	}
	return sheets.ParseParametros(rows)
}
