package relatorio

import (
	"context"
	"time"

	"github.com/hexastock/hexastock-api/internal/application/dto"
	"github.com/hexastock/hexastock-api/internal/application/projecao"
	"github.com/hexastock/hexastock-api/pkg/logger"
)

// UseCase liga o carregamento do snapshot à geração e gravação dos
// relatórios.
type UseCase struct {
	loader  *projecao.Loader
	gerador *Gerador
	log     *logger.Logger
}

// NewUseCase constrói o caso de uso de relatórios.
func NewUseCase(loader *projecao.Loader, gerador *Gerador, log *logger.Logger) *UseCase {
	return &UseCase{loader: loader, gerador: gerador, log: log}
}

// GerarEstoque gera e grava o relatório de estoque.
func (uc *UseCase) GerarEstoque(ctx context.Context, req dto.RelatorioEstoqueRequest) (dto.RelatorioResponse, error) {
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return dto.RelatorioResponse{}, err
	}

	agora := time.Now()
	html, err := uc.gerador.Estoque(snap, OpcoesEstoque{
		IDsVisiveis:      req.IDs,
		IncluirHistorico: req.IncluirHistorico,
		FiltroData:       req.FiltroData,
		DataInicio:       req.DataInicio,
		DataFim:          req.DataFim,
	}, agora)
	if err != nil {
		return dto.RelatorioResponse{}, err
	}
	arquivo, err := uc.gerador.SalvarEstoque(html, agora)
	if err != nil {
		return dto.RelatorioResponse{}, err
	}

	uc.log.Info().Str("arquivo", arquivo).Msg("relatório de estoque gerado")
	return dto.RelatorioResponse{Arquivo: arquivo, HTML: html}, nil
}

// GerarSetores gera e grava o relatório de movimentações entre setores.
func (uc *UseCase) GerarSetores(ctx context.Context, req dto.RelatorioSetoresRequest) (dto.RelatorioResponse, error) {
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return dto.RelatorioResponse{}, err
	}

	agora := time.Now()
	html, err := uc.gerador.Setores(snap, OpcoesSetores{
		FiltroStatus: req.FiltroStatus,
		FiltroData:   req.FiltroData,
		DataInicio:   req.DataInicio,
		DataFim:      req.DataFim,
	}, agora)
	if err != nil {
		return dto.RelatorioResponse{}, err
	}
	arquivo, err := uc.gerador.SalvarSetores(html, agora)
	if err != nil {
		return dto.RelatorioResponse{}, err
	}

	uc.log.Info().Str("arquivo", arquivo).Msg("relatório de setores gerado")
	return dto.RelatorioResponse{Arquivo: arquivo, HTML: html}, nil
}
