package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/hexastock/hexastock-api/internal/application/analytics"
	appestoque "github.com/hexastock/hexastock-api/internal/application/estoque"
	"github.com/hexastock/hexastock-api/internal/application/projecao"
	"github.com/hexastock/hexastock-api/internal/application/relatorio"
	appsetores "github.com/hexastock/hexastock-api/internal/application/setores"
	"github.com/hexastock/hexastock-api/internal/infrastructure/sheets"
	httpRouter "github.com/hexastock/hexastock-api/internal/interfaces/http"
	"github.com/hexastock/hexastock-api/pkg/config"
	"github.com/hexastock/hexastock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := cfg.Sheets.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuração da planilha")
	}

	ctx := context.Background()
	store, err := sheets.NewGoogleStore(ctx, cfg.Sheets)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o Google Sheets")
	}

	abas := sheets.Abas{
		Equipamentos:  cfg.Sheets.AbaEquipamentos,
		Movimentacoes: cfg.Sheets.AbaMovimentacoes,
		Setores:       cfg.Sheets.AbaSetores,
		Config:        cfg.Sheets.AbaConfig,
	}
	loader := projecao.NewLoader(store, abas)

	// Os parâmetros (categorias, setores, mínimo padrão) são lidos uma vez
	// na subida; mudança na aba config exige reinício.
	params, err := loader.LoadParametros(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("carregar parâmetros da aba config")
	}
	log.Info().
		Int("categorias", len(params.Categorias)).
		Int("setores", len(params.Setores)).
		Msg("parâmetros carregados")

	estoqueUC := appestoque.NewUseCase(store, loader, abas, params, log)
	setoresUC := appsetores.NewUseCase(store, loader, abas, params, log)
	dashboardUC := appanalytics.NewDashboardUseCase(loader)
	gerador := relatorio.NewGerador(cfg.Relatorio.TemplateEstoque, cfg.Relatorio.TemplateSetores, cfg.Relatorio.Dir)
	relatorioUC := relatorio.NewUseCase(loader, gerador, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EstoqueUC:   estoqueUC,
		SetoresUC:   setoresUC,
		RelatorioUC: relatorioUC,
		DashboardUC: dashboardUC,
		Parametros:  params,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
