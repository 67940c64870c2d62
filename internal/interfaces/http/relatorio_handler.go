package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hexastock/hexastock-api/internal/application/dto"
	"github.com/hexastock/hexastock-api/internal/application/relatorio"
)

// RelatorioHandler atende as rotas de geração de relatórios HTML.
type RelatorioHandler struct {
	uc *relatorio.UseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorio.UseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// Estoque godoc
// @Summary      Gerar relatório de estoque
// @Tags         relatorios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RelatorioEstoqueRequest  true  "Filtros do relatório"
// @Success      201   {object}  dto.RelatorioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/relatorios/estoque [post]
func (h *RelatorioHandler) Estoque(c *fiber.Ctx) error {
	var in dto.RelatorioEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.GerarEstoque(c.Context(), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Setores godoc
// @Summary      Gerar relatório de movimentações entre setores
// @Tags         relatorios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RelatorioSetoresRequest  true  "Filtros do relatório"
// @Success      201   {object}  dto.RelatorioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/relatorios/setores [post]
func (h *RelatorioHandler) Setores(c *fiber.Ctx) error {
	var in dto.RelatorioSetoresRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.GerarSetores(c.Context(), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
