package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hexastock/hexastock-api/internal/application/analytics"
	"github.com/hexastock/hexastock-api/internal/application/dto"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
)

// DashboardHandler atende o painel inicial e os parâmetros configurados.
type DashboardHandler struct {
	uc     *analytics.DashboardUseCase
	params entity.Parametros
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, params entity.Parametros) *DashboardHandler {
	return &DashboardHandler{uc: uc, params: params}
}

// GetSummary godoc
// @Summary      Cartões do painel inicial
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context(), time.Now())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// GetParametros godoc
// @Summary      Listas configuradas (categorias, setores, mínimo padrão)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.ParametrosDTO
// @Router       /api/parametros [get]
func (h *DashboardHandler) GetParametros(c *fiber.Ctx) error {
	return c.JSON(dto.ParametrosDTO{
		Categorias:          h.params.Categorias,
		Setores:             h.params.Setores,
		EstoqueMinimoPadrao: h.params.EstoqueMinimoPadrao,
	})
}
