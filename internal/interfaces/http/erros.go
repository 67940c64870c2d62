package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hexastock/hexastock-api/internal/application/dto"
	"github.com/hexastock/hexastock-api/internal/domain"
)

// mapa sentinela -> (status, código). Erros fora do mapa viram 500.
var errosHTTP = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNaoEncontrado, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrQuantidadeInvalida, fiber.StatusBadRequest, "INVALID_QUANTITY"},
	{domain.ErrEstoqueInsuficiente, fiber.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"},
	{domain.ErrCampoObrigatorio, fiber.StatusBadRequest, "MISSING_FIELD"},
	{domain.ErrKitIncompleto, fiber.StatusBadRequest, "INCOMPLETE_KIT"},
	{domain.ErrRotaInvalida, fiber.StatusBadRequest, "INVALID_ROUTE"},
	{domain.ErrCategoriaInvalida, fiber.StatusBadRequest, "INVALID_CATEGORY"},
	{domain.ErrSetorInvalido, fiber.StatusBadRequest, "INVALID_SECTOR"},
	{domain.ErrDataInvalida, fiber.StatusBadRequest, "INVALID_DATE"},
	{domain.ErrRelatorioVazio, fiber.StatusNotFound, "EMPTY_REPORT"},
	{domain.ErrTipoInvalido, fiber.StatusBadRequest, "INVALID_TYPE"},
}

// respostaErro converte um erro de caso de uso na resposta HTTP
// correspondente, preservando a mensagem encadeada (que nomeia o campo ou o
// item ofensor).
func respostaErro(c *fiber.Ctx, err error) error {
	for _, m := range errosHTTP {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func corpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo da requisição inválido"})
}
