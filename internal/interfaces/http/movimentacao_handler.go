package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hexastock/hexastock-api/internal/application/dto"
	appestoque "github.com/hexastock/hexastock-api/internal/application/estoque"
)

// MovimentacaoHandler atende as rotas de movimentação de estoque.
type MovimentacaoHandler struct {
	uc *appestoque.UseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(uc *appestoque.UseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{uc: uc}
}

// Aplicar godoc
// @Summary      Aplicar movimentação de estoque (Saída, Entrada ou Descarte)
// @Tags         movimentacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovimentacaoRequest  true  "Lote de movimentação"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovimentacaoHandler) Aplicar(c *fiber.Ctx) error {
	var in dto.MovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.MovimentarEstoque(c.Context(), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SugestaoDescarte godoc
// @Summary      Quantidade sugerida para descarte (estoque atual inteiro)
// @Tags         movimentacoes
// @Produce      json
// @Param        id  path  int  true  "ID do equipamento"
// @Success      200  {object}  dto.SugestaoDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/sugestoes/descarte/{id} [get]
func (h *MovimentacaoHandler) SugestaoDescarte(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser um inteiro positivo"})
	}
	out, err := h.uc.SugestaoDescarte(c.Context(), id)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// SugestaoReentrada godoc
// @Summary      Origem sugerida para reentrada (última saída do item)
// @Tags         movimentacoes
// @Produce      json
// @Param        id  path  int  true  "ID do equipamento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/sugestoes/reentrada/{id} [get]
func (h *MovimentacaoHandler) SugestaoReentrada(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser um inteiro positivo"})
	}
	destino, solicitante, err := h.uc.SugestaoReentrada(c.Context(), id)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(fiber.Map{"origem": destino, "solicitante": solicitante})
}
