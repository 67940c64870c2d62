package entity

import "time"

// Tipos de movimentação de estoque. Os literais são os mesmos gravados na
// planilha, então mudá-los quebra o histórico existente.
const (
	TipoSaida    = "Saída"
	TipoEntrada  = "Entrada"
	TipoDescarte = "Descarte"
)

// Movimentacao é um registro do histórico de estoque (append-only: nunca é
// alterado nem removido depois de gravado).
//
// ID e IDEquipamento são ponteiros porque linhas legadas podem trazer valores
// não numéricos nessas colunas; a projeção os carrega como nil em vez de
// descartar a linha. A referência ao equipamento é "fraca": o item pode já ter
// sido excluído do estoque e o histórico permanece.
type Movimentacao struct {
	ID            *int
	IDEquipamento *int
	Tipo          string
	Quantidade    int
	DestinoOrigem string // destino na saída, origem na entrada; vazio no descarte
	Solicitante   string
	Chamado       string
	Responsavel   string
	Data          string    // texto original da planilha (dd-mm-aaaa HH:MM:SS)
	DataDt        time.Time // zero quando o texto não parseia; ordena por último
	MotivoLaudo   string    // somente para descarte
}

// Pertence indica se a movimentação referencia o equipamento dado.
func (m Movimentacao) Pertence(idEquipamento int) bool {
	return m.IDEquipamento != nil && *m.IDEquipamento == idEquipamento
}
