package dto

// DashboardDTO cartões do painel inicial.
type DashboardDTO struct {
	TotalUnidades    int `json:"total_unidades"`
	TiposDistintos   int `json:"tipos_distintos"`
	EstoqueBaixo     int `json:"estoque_baixo"`
	MovimentacoesMes int `json:"movimentacoes_mes"`
}

// ParametrosDTO listas configuráveis usadas pelos formulários.
type ParametrosDTO struct {
	Categorias          []string `json:"categorias"`
	Setores             []string `json:"setores"`
	EstoqueMinimoPadrao int      `json:"estoque_minimo_padrao"`
}
