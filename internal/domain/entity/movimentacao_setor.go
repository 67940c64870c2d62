package entity

import "time"

// Status de regularização de uma movimentação entre setores.
// A transição é de mão única: Pendente -> Regularizado, sem volta.
const (
	RegularizacaoPendente     = "Pendente"
	RegularizacaoRegularizado = "Regularizado"
)

// Catálogo fixo de tipos de equipamento movimentáveis entre setores.
const (
	TipoEquipKit     = "Kit (2x Monitores e 1 desktop)"
	TipoEquipWebCam  = "WebCam"
	TipoEquipMonitor = "Monitor"
	TipoEquipDesktop = "Desktop"
	TipoEquipLeitor  = "Leitor de código de barra"
)

// TiposEquipamentoSetor devolve o catálogo na ordem de exibição.
func TiposEquipamentoSetor() []string {
	return []string{TipoEquipKit, TipoEquipWebCam, TipoEquipMonitor, TipoEquipDesktop, TipoEquipLeitor}
}

// MovimentacaoSetor registra a transferência de um ativo entre setores.
// Append-only, exceto pelo campo StatusRegularizacao.
//
// Para o tipo Kit, Patrimonio e ServiceTag carregam os três componentes em
// linhas separadas ("Monitor 1: ...\nMonitor 2: ...\nDesktop: ..."), que é o
// formato achatado gravado na planilha.
type MovimentacaoSetor struct {
	ID                  int
	Data                string
	DataDt              time.Time
	Responsavel         string
	TipoEquipamento     string
	Patrimonio          string
	ServiceTag          string
	SetorOrigem         string
	SetorDestino        string
	Observacao          string
	Chamado             string
	Solicitante         string
	StatusRegularizacao string // vazio equivale a Pendente
}

// StatusEfetivo normaliza o status: registros antigos sem a coluna preenchida
// contam como pendentes.
func (m MovimentacaoSetor) StatusEfetivo() string {
	if m.StatusRegularizacao == RegularizacaoRegularizado {
		return RegularizacaoRegularizado
	}
	return RegularizacaoPendente
}
