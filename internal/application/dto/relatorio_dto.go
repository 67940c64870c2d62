package dto

// RelatorioEstoqueRequest corpo de POST /api/relatorios/estoque.
// FiltroData aceita "todos" ou "intervalo"; no segundo caso as datas vêm
// no formato dd/mm/aaaa.
type RelatorioEstoqueRequest struct {
	IDs              []int  `json:"ids"`
	IncluirHistorico bool   `json:"incluir_historico"`
	FiltroData       string `json:"filtro_data"`
	DataInicio       string `json:"data_inicio"`
	DataFim          string `json:"data_fim"`
}

// RelatorioSetoresRequest corpo de POST /api/relatorios/setores.
// FiltroStatus aceita "todos", "pendentes" ou "regularizados".
type RelatorioSetoresRequest struct {
	FiltroStatus string `json:"filtro_status"`
	FiltroData   string `json:"filtro_data"`
	DataInicio   string `json:"data_inicio"`
	DataFim      string `json:"data_fim"`
}

// RelatorioResponse relatório gerado e gravado em disco.
type RelatorioResponse struct {
	Arquivo string `json:"arquivo"`
	HTML    string `json:"html"`
}
