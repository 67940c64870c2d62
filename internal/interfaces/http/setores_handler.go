package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hexastock/hexastock-api/internal/application/dto"
	appsetores "github.com/hexastock/hexastock-api/internal/application/setores"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
)

// SetoresHandler atende as rotas de movimentação de ativos entre setores.
type SetoresHandler struct {
	uc *appsetores.UseCase
}

// NewSetoresHandler constrói o handler.
func NewSetoresHandler(uc *appsetores.UseCase) *SetoresHandler {
	return &SetoresHandler{uc: uc}
}

// List godoc
// @Summary      Listar transferências entre setores
// @Tags         setores
// @Produce      json
// @Success      200  {array}  dto.MovimentacaoSetorDTO
// @Router       /api/setores/movimentacoes [get]
func (h *SetoresHandler) List(c *fiber.Ctx) error {
	movs, err := h.uc.Listar(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	out := make([]dto.MovimentacaoSetorDTO, 0, len(movs))
	for _, m := range movs {
		out = append(out, movimentacaoSetorDTO(m))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar transferência entre setores
// @Tags         setores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferenciaRequest  true  "Dados da transferência"
// @Success      201   {object}  dto.MovimentacaoSetorDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/setores/movimentacoes [post]
func (h *SetoresHandler) Create(c *fiber.Ctx) error {
	var in dto.TransferenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	m, err := h.uc.RegistrarTransferencia(c.Context(), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movimentacaoSetorDTO(m))
}

// Regularizar godoc
// @Summary      Regularizar transferências pendentes
// @Tags         setores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegularizarRequest  true  "IDs a regularizar"
// @Success      200   {object}  dto.RegularizarResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/setores/movimentacoes/regularizar [post]
func (h *SetoresHandler) Regularizar(c *fiber.Ctx) error {
	var in dto.RegularizarRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	n, err := h.uc.Regularizar(c.Context(), in.IDs)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.RegularizarResponse{Regularizadas: n})
}

// Tipos godoc
// @Summary      Catálogo de tipos de equipamento transferíveis
// @Tags         setores
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/setores/tipos [get]
func (h *SetoresHandler) Tipos(c *fiber.Ctx) error {
	return c.JSON(entity.TiposEquipamentoSetor())
}

func movimentacaoSetorDTO(m entity.MovimentacaoSetor) dto.MovimentacaoSetorDTO {
	return dto.MovimentacaoSetorDTO{
		ID:              m.ID,
		Data:            m.Data,
		Responsavel:     m.Responsavel,
		TipoEquipamento: m.TipoEquipamento,
		Patrimonio:      m.Patrimonio,
		ServiceTag:      m.ServiceTag,
		SetorOrigem:     m.SetorOrigem,
		SetorDestino:    m.SetorDestino,
		Observacao:      m.Observacao,
		Chamado:         m.Chamado,
		Solicitante:     m.Solicitante,
		Status:          m.StatusEfetivo(),
	}
}
