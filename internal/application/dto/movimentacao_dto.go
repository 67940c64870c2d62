package dto

// ItemMovimentacaoRequest item individual dentro de um lote de movimentação.
type ItemMovimentacaoRequest struct {
	ID         int `json:"id"`
	Quantidade int `json:"quantidade"`
}

// MovimentacaoRequest corpo de POST /api/movimentacoes. Um único request
// pode movimentar vários itens; a validação é tudo-ou-nada.
type MovimentacaoRequest struct {
	Tipo          string                    `json:"tipo"`
	Itens         []ItemMovimentacaoRequest `json:"itens"`
	Responsavel   string                    `json:"responsavel"`
	Solicitante   string                    `json:"solicitante"`
	Chamado       string                    `json:"chamado"`
	DestinoOrigem string                    `json:"destino_origem"`
	MotivoLaudo   string                    `json:"motivo_laudo"`
}

// MovimentacaoResponse resultado de um lote aplicado.
type MovimentacaoResponse struct {
	Tipo           string `json:"tipo"`
	ItensAplicados int    `json:"itens_aplicados"`
	Data           string `json:"data"`
}

// SugestaoDTO quantidade sugerida para pré-preencher um formulário de
// descarte ou de reentrada.
type SugestaoDTO struct {
	ID         int `json:"id"`
	Quantidade int `json:"quantidade"`
}
