package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hexastock/hexastock-api/internal/application/dto"
	appestoque "github.com/hexastock/hexastock-api/internal/application/estoque"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
)

// EquipamentoHandler atende as rotas de cadastro de equipamentos.
type EquipamentoHandler struct {
	uc *appestoque.UseCase
}

// NewEquipamentoHandler constrói o handler.
func NewEquipamentoHandler(uc *appestoque.UseCase) *EquipamentoHandler {
	return &EquipamentoHandler{uc: uc}
}

// List godoc
// @Summary      Listar equipamentos, com pesquisa opcional
// @Tags         equipamentos
// @Produce      json
// @Param        q  query  string  false  "Termo de pesquisa (nome, série, categoria, descrição)"
// @Success      200  {array}  dto.EquipamentoDTO
// @Router       /api/equipamentos [get]
func (h *EquipamentoHandler) List(c *fiber.Ctx) error {
	itens, err := h.uc.Pesquisar(c.Context(), c.Query("q"))
	if err != nil {
		return respostaErro(c, err)
	}
	out := make([]dto.EquipamentoDTO, 0, len(itens))
	for _, e := range itens {
		out = append(out, equipamentoDTO(e))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar equipamento
// @Tags         equipamentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NovoEquipamentoRequest  true  "Dados do equipamento"
// @Success      201   {object}  dto.EquipamentoDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/equipamentos [post]
func (h *EquipamentoHandler) Create(c *fiber.Ctx) error {
	var in dto.NovoEquipamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	e, err := h.uc.AddEquipamento(c.Context(), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(equipamentoDTO(e))
}

// Update godoc
// @Summary      Editar equipamento
// @Tags         equipamentos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do equipamento"
// @Param        body  body  dto.EditarEquipamentoRequest  true  "Dados editáveis"
// @Success      200   {object}  dto.EquipamentoDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/equipamentos/{id} [put]
func (h *EquipamentoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser um inteiro positivo"})
	}
	var in dto.EditarEquipamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	e, err := h.uc.EditEquipamento(c.Context(), id, in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(equipamentoDTO(e))
}

// Delete godoc
// @Summary      Excluir equipamentos em lote
// @Tags         equipamentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExcluirEquipamentosRequest  true  "IDs a excluir"
// @Success      200   {object}  map[string]int
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/equipamentos [delete]
func (h *EquipamentoHandler) Delete(c *fiber.Ctx) error {
	var in dto.ExcluirEquipamentosRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	n, err := h.uc.DeleteEquipamentos(c.Context(), in.IDs)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(fiber.Map{"excluidos": n})
}

// Historico godoc
// @Summary      Histórico de movimentações
// @Tags         equipamentos
// @Produce      json
// @Param        ids  query  string  false  "IDs separados por vírgula; vazio devolve todos"
// @Success      200  {array}  dto.HistoricoDTO
// @Router       /api/equipamentos/historico [get]
func (h *EquipamentoHandler) Historico(c *fiber.Ctx) error {
	ids, err := parseIDs(c.Query("ids"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "ids deve ser uma lista de inteiros separados por vírgula"})
	}
	hist, err := h.uc.Historico(c.Context(), ids)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(hist)
}

func equipamentoDTO(e entity.Equipamento) dto.EquipamentoDTO {
	return dto.EquipamentoDTO{
		ID:            e.ID,
		Nome:          e.Nome,
		NumeroSerie:   e.NumeroSerie,
		Descricao:     e.Descricao,
		Quantidade:    e.Quantidade,
		Status:        e.Status,
		DataCadastro:  e.DataCadastro,
		EstoqueMinimo: e.EstoqueMinimo,
		Categoria:     e.Categoria,
	}
}

// parseIDs converte "1,2,3" em []int. Vazio devolve nil.
func parseIDs(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	partes := strings.Split(s, ",")
	ids := make([]int, 0, len(partes))
	for _, p := range partes {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, n)
	}
	return ids, nil
}
