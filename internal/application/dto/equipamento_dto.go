package dto

// NovoEquipamentoRequest corpo de POST /api/equipamentos.
type NovoEquipamentoRequest struct {
	Nome          string `json:"nome"`
	NumeroSerie   string `json:"numero_serie"`
	Descricao     string `json:"descricao"`
	Quantidade    int    `json:"quantidade"`
	EstoqueMinimo *int   `json:"estoque_minimo"` // nil usa o padrão configurado
	Categoria     string `json:"categoria"`
}

// EditarEquipamentoRequest corpo de PUT /api/equipamentos/:id.
// A data de cadastro original é preservada; o status é rederivado da
// quantidade.
type EditarEquipamentoRequest struct {
	Nome          string `json:"nome"`
	NumeroSerie   string `json:"numero_serie"`
	Descricao     string `json:"descricao"`
	Quantidade    int    `json:"quantidade"`
	EstoqueMinimo int    `json:"estoque_minimo"`
	Categoria     string `json:"categoria"`
}

// EquipamentoDTO item de estoque nas respostas de listagem.
type EquipamentoDTO struct {
	ID            int    `json:"id"`
	Nome          string `json:"nome"`
	NumeroSerie   string `json:"numero_serie"`
	Descricao     string `json:"descricao"`
	Quantidade    int    `json:"quantidade"`
	Status        string `json:"status"`
	DataCadastro  string `json:"data_cadastro"`
	EstoqueMinimo int    `json:"estoque_minimo"`
	Categoria     string `json:"categoria"`
}

// ExcluirEquipamentosRequest corpo de DELETE /api/equipamentos.
type ExcluirEquipamentosRequest struct {
	IDs []int `json:"ids"`
}

// HistoricoDTO uma linha do histórico consolidado de um ou mais itens.
// NomeEquipamento resolve para "Item Excluído" quando o item não existe mais.
type HistoricoDTO struct {
	Data            string `json:"data"`
	NomeEquipamento string `json:"nome_equipamento"`
	Tipo            string `json:"tipo"`
	Quantidade      int    `json:"quantidade"`
	Responsavel     string `json:"responsavel"`
	Solicitante     string `json:"solicitante"`
	Chamado         string `json:"chamado"`
	DestinoOrigem   string `json:"destino_origem"`
	MotivoLaudo     string `json:"motivo_laudo"`
}
