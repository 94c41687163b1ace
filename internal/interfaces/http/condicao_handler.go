package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
	"github.com/gestaofacil/recebiveis-api/internal/application/pedidos"
)

// CondicaoHandler trata as condições de pagamento (protegido).
type CondicaoHandler struct {
	uc *pedidos.CondicaoUseCase
}

// NewCondicaoHandler constrói o handler.
func NewCondicaoHandler(uc *pedidos.CondicaoUseCase) *CondicaoHandler {
	return &CondicaoHandler{uc: uc}
}

// Create cadastra uma condição de pagamento.
// POST /api/condicoes
func (h *CondicaoHandler) Create(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CriarCondicaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	cond, err := h.uc.Create(c.Context(), empresaID, in)
	if err != nil {
		return respondErr(c, err, "condição não encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(cond)
}

// List lista as condições da empresa.
// GET /api/condicoes
func (h *CondicaoHandler) List(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	conds, err := h.uc.List(empresaID)
	if err != nil {
		return respondErr(c, err, "")
	}
	return c.JSON(conds)
}
