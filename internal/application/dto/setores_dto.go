package dto

// TransferenciaRequest corpo de POST /api/setores/movimentacoes.
// Para o tipo Kit os três pares patrimônio/servicetag são obrigatórios e
// os campos Patrimonio/ServiceTag simples são ignorados.
type TransferenciaRequest struct {
	TipoEquipamento string `json:"tipo_equipamento"`
	Patrimonio      string `json:"patrimonio"`
	ServiceTag      string `json:"servicetag"`
	SetorOrigem     string `json:"setor_origem"`
	SetorDestino    string `json:"setor_destino"`
	Responsavel     string `json:"responsavel"`
	Chamado         string `json:"chamado"`
	Solicitante     string `json:"solicitante"`
	Observacao      string `json:"observacao"`

	KitPatrimonioMonitor1 string `json:"kit_patrimonio_monitor1"`
	KitServiceTagMonitor1 string `json:"kit_servicetag_monitor1"`
	KitPatrimonioMonitor2 string `json:"kit_patrimonio_monitor2"`
	KitServiceTagMonitor2 string `json:"kit_servicetag_monitor2"`
	KitPatrimonioDesktop  string `json:"kit_patrimonio_desktop"`
	KitServiceTagDesktop  string `json:"kit_servicetag_desktop"`
}

// RegularizarRequest corpo de POST /api/setores/movimentacoes/regularizar.
type RegularizarRequest struct {
	IDs []int `json:"ids"`
}

// RegularizarResponse quantas movimentações mudaram de Pendente para
// Regularizado.
type RegularizarResponse struct {
	Regularizadas int `json:"regularizadas"`
}

// MovimentacaoSetorDTO uma transferência entre setores nas listagens.
type MovimentacaoSetorDTO struct {
	ID              int    `json:"id"`
	Data            string `json:"data"`
	Responsavel     string `json:"responsavel"`
	TipoEquipamento string `json:"tipo_equipamento"`
	Patrimonio      string `json:"patrimonio"`
	ServiceTag      string `json:"servicetag"`
	SetorOrigem     string `json:"setor_origem"`
	SetorDestino    string `json:"setor_destino"`
	Observacao      string `json:"observacao"`
	Chamado         string `json:"chamado"`
	Solicitante     string `json:"solicitante"`
	Status          string `json:"status_regularizacao"`
}
