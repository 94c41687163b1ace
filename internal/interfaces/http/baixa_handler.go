package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
	"github.com/gestaofacil/recebiveis-api/internal/application/pagamentos"
)

// BaixaHandler trata baixas e estornos (protegido).
type BaixaHandler struct {
	uc *pagamentos.BaixaUseCase
}

// NewBaixaHandler constrói o handler.
func NewBaixaHandler(uc *pagamentos.BaixaUseCase) *BaixaHandler {
	return &BaixaHandler{uc: uc}
}

// Create registra uma baixa contra uma duplicata.
// POST /api/duplicatas/:id/baixas
func (h *BaixaHandler) Create(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.BaixarDuplicataRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	baixa, err := h.uc.BaixarDuplicata(c.Context(), empresaID, c.Params("id"), in)
	if err != nil {
		return respondErr(c, err, "duplicata não encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(baixa)
}

// List lista as baixas de uma duplicata (estornadas incluídas).
// GET /api/duplicatas/:id/baixas
func (h *BaixaHandler) List(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	baixas, err := h.uc.ListBaixas(c.Context(), empresaID, c.Params("id"))
	if err != nil {
		return respondErr(c, err, "duplicata não encontrada")
	}
	return c.JSON(baixas)
}

// Estornar desfaz uma baixa, restaurando o saldo da duplicata.
// POST /api/baixas/:id/estorno
func (h *BaixaHandler) Estornar(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CancelarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	baixa, err := h.uc.EstornarBaixa(c.Context(), empresaID, c.Params("id"), in)
	if err != nil {
		return respondErr(c, err, "baixa não encontrada")
	}
	return c.JSON(baixa)
}
