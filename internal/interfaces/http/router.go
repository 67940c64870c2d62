package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hexastock/hexastock-api/internal/application/analytics"
	appestoque "github.com/hexastock/hexastock-api/internal/application/estoque"
	"github.com/hexastock/hexastock-api/internal/application/relatorio"
	appsetores "github.com/hexastock/hexastock-api/internal/application/setores"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	EstoqueUC   *appestoque.UseCase
	SetoresUC   *appsetores.UseCase
	RelatorioUC *relatorio.UseCase
	DashboardUC *analytics.DashboardUseCase
	Parametros  entity.Parametros
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Equipamentos
	equipHandler := NewEquipamentoHandler(deps.EstoqueUC)
	equipamentos := api.Group("/equipamentos")
	equipamentos.Get("/", equipHandler.List)
	equipamentos.Post("/", equipHandler.Create)
	equipamentos.Delete("/", equipHandler.Delete)
	equipamentos.Get("/historico", equipHandler.Historico)
	equipamentos.Put("/:id", equipHandler.Update)

	// Movimentações de estoque
	movHandler := NewMovimentacaoHandler(deps.EstoqueUC)
	movimentacoes := api.Group("/movimentacoes")
	movimentacoes.Post("/", movHandler.Aplicar)
	movimentacoes.Get("/sugestoes/descarte/:id", movHandler.SugestaoDescarte)
	movimentacoes.Get("/sugestoes/reentrada/:id", movHandler.SugestaoReentrada)

	// Transferências entre setores
	setoresHandler := NewSetoresHandler(deps.SetoresUC)
	setores := api.Group("/setores")
	setores.Get("/tipos", setoresHandler.Tipos)
	setores.Get("/movimentacoes", setoresHandler.List)
	setores.Post("/movimentacoes", setoresHandler.Create)
	setores.Post("/movimentacoes/regularizar", setoresHandler.Regularizar)

	// Relatórios
	relHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatorios := api.Group("/relatorios")
	relatorios.Post("/estoque", relHandler.Estoque)
	relatorios.Post("/setores", relHandler.Setores)

	// Dashboard e parâmetros
	dashHandler := NewDashboardHandler(deps.DashboardUC, deps.Parametros)
	api.Get("/dashboard/summary", dashHandler.GetSummary)
	api.Get("/parametros", dashHandler.GetParametros)
}
