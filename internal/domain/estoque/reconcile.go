// Package estoque contém o motor de reconciliação de movimentações: a função
// pura que, dado um pedido de movimentação sobre um snapshot de quantidades,
// valida as regras de negócio e calcula as transições de quantidade/status e
// os registros de histórico correspondentes.
package estoque

import (
	"fmt"
	"strings"
	"time"

	"github.com/hexastock/hexastock-api/internal/domain"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
)

// LayoutData é o formato de data/hora gravado nas planilhas.
const LayoutData = "02-01-2006 15:04:05"

// Item é um equipamento a movimentar, com a quantidade atual vinda do
// snapshot do chamador (o motor nunca relê a planilha).
type Item struct {
	ID              int
	Nome            string
	QuantidadeAtual int
	QuantidadeMover int
}

// Contexto são os campos comuns do lote de movimentação.
type Contexto struct {
	Responsavel   string
	Solicitante   string
	Chamado       string
	DestinoOrigem string // destino (saída) ou origem (entrada); ignorado no descarte
	MotivoLaudo   string // obrigatório no descarte; ignorado nos demais
}

// Atualizacao é a mutação a aplicar na linha do equipamento: somente
// quantidade e status mudam, os demais campos ficam intocados.
type Atualizacao struct {
	ID             int
	NovaQuantidade int
	NovoStatus     string
}

// Resultado do motor: uma atualização de equipamento e um registro de
// histórico por item. Os IDs das movimentações são atribuídos depois, pelo
// caso de uso, a partir de uma única leitura da tabela.
type Resultado struct {
	Atualizacoes  []Atualizacao
	Movimentacoes []entity.Movimentacao
}

// AplicarMovimentacao valida e calcula uma movimentação de estoque
// (Saída, Entrada ou Descarte) para um ou mais itens.
//
// Validação fail-fast: a primeira violação interrompe tudo e nenhuma saída
// parcial é produzida. Ou o lote inteiro valida, ou nada é gravado.
// Todos os registros do lote compartilham o mesmo timestamp (agora), de modo
// que uma movimentação multi-item é reportável como um único evento lógico.
func AplicarMovimentacao(tipo string, itens []Item, ctx Contexto, agora time.Time) (*Resultado, error) {
	switch tipo {
	case entity.TipoSaida, entity.TipoEntrada, entity.TipoDescarte:
	default:
		return nil, fmt.Errorf("%q: %w", tipo, domain.ErrTipoInvalido)
	}

	if strings.TrimSpace(ctx.Responsavel) == "" {
		return nil, fmt.Errorf("responsável: %w", domain.ErrCampoObrigatorio)
	}
	if (tipo == entity.TipoSaida || tipo == entity.TipoEntrada) && strings.TrimSpace(ctx.DestinoOrigem) == "" {
		return nil, fmt.Errorf("destino/origem: %w", domain.ErrCampoObrigatorio)
	}
	if tipo == entity.TipoDescarte && strings.TrimSpace(ctx.MotivoLaudo) == "" {
		return nil, fmt.Errorf("motivo/laudo: %w", domain.ErrCampoObrigatorio)
	}

	for _, item := range itens {
		if item.QuantidadeMover <= 0 {
			return nil, fmt.Errorf("item %q: %w", item.Nome, domain.ErrQuantidadeInvalida)
		}
		if tipo == entity.TipoSaida && item.QuantidadeMover > item.QuantidadeAtual {
			return nil, fmt.Errorf("item %q: mover %d excede o estoque %d: %w",
				item.Nome, item.QuantidadeMover, item.QuantidadeAtual, domain.ErrEstoqueInsuficiente)
		}
	}

	data := agora.Format(LayoutData)
	res := &Resultado{
		Atualizacoes:  make([]Atualizacao, 0, len(itens)),
		Movimentacoes: make([]entity.Movimentacao, 0, len(itens)),
	}

	for _, item := range itens {
		novaQtd, novoStatus := transicao(tipo, item.QuantidadeAtual, item.QuantidadeMover)
		res.Atualizacoes = append(res.Atualizacoes, Atualizacao{
			ID:             item.ID,
			NovaQuantidade: novaQtd,
			NovoStatus:     novoStatus,
		})

		id := item.ID
		mov := entity.Movimentacao{
			IDEquipamento: &id,
			Tipo:          tipo,
			Quantidade:    item.QuantidadeMover,
			Responsavel:   ctx.Responsavel,
			Data:          data,
			DataDt:        agora,
		}
		// Campos cruzados: solicitante/chamado não se aplicam ao descarte,
		// e o laudo não se aplica a entrada/saída.
		if tipo == entity.TipoDescarte {
			mov.MotivoLaudo = strings.TrimSpace(ctx.MotivoLaudo)
		} else {
			mov.DestinoOrigem = ctx.DestinoOrigem
			mov.Solicitante = ctx.Solicitante
			mov.Chamado = ctx.Chamado
		}
		res.Movimentacoes = append(res.Movimentacoes, mov)
	}

	return res, nil
}

// transicao aplica a tabela de transição quantidade/status por tipo.
func transicao(tipo string, atual, mover int) (int, string) {
	switch tipo {
	case entity.TipoSaida:
		nova := atual - mover
		return nova, entity.StatusPorQuantidade(nova)
	case entity.TipoEntrada:
		return atual + mover, entity.StatusEmEstoque
	default: // Descarte: sempre zera o estoque
		return 0, entity.StatusDescartado
	}
}

// SugestaoDescarte devolve a quantidade pré-preenchida ao abrir um fluxo de
// descarte: o estoque atual inteiro, já que o descarte sempre zera o item.
func SugestaoDescarte(item entity.Equipamento) int {
	return item.Quantidade
}

// SugestaoReentrada procura a saída mais recente (por ID de movimentação
// decrescente) de um equipamento e devolve destino e solicitante como
// sugestão de origem para a devolução. Puramente consultivo.
func SugestaoReentrada(movs []entity.Movimentacao, idEquipamento int) (destino, solicitante string, ok bool) {
	var ultima *entity.Movimentacao
	for i := range movs {
		m := &movs[i]
		if !m.Pertence(idEquipamento) || m.Tipo != entity.TipoSaida || m.ID == nil {
			continue
		}
		if ultima == nil || *m.ID > *ultima.ID {
			ultima = m
		}
	}
	if ultima == nil {
		return "", "", false
	}
	return ultima.DestinoOrigem, ultima.Solicitante, true
}
