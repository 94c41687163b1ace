package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
	"github.com/gestaofacil/recebiveis-api/internal/application/recebiveis"
)

// DuplicataHandler trata o razão de duplicatas (protegido).
type DuplicataHandler struct {
	uc *recebiveis.DuplicataUseCase
}

// NewDuplicataHandler constrói o handler.
func NewDuplicataHandler(uc *recebiveis.DuplicataUseCase) *DuplicataHandler {
	return &DuplicataHandler{uc: uc}
}

// Create emite uma duplicata, avulsa ou contra uma parcela.
// POST /api/duplicatas
func (h *DuplicataHandler) Create(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.EmitirDuplicataRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	duplicata, err := h.uc.EmitirDuplicata(c.Context(), empresaID, in)
	if err != nil {
		return respondErr(c, err, "cliente ou parcela não encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(duplicata)
}

// GetByID obtém uma duplicata.
// GET /api/duplicatas/:id
func (h *DuplicataHandler) GetByID(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	duplicata, err := h.uc.GetDuplicata(c.Context(), empresaID, c.Params("id"))
	if err != nil {
		return respondErr(c, err, "duplicata não encontrada")
	}
	return c.JSON(duplicata)
}

// List lista duplicatas de um cliente.
// GET /api/duplicatas?cliente_id=&limit=&offset=
func (h *DuplicataHandler) List(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	clienteID := c.Query("cliente_id")
	if clienteID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente_id é obrigatório"})
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	duplicatas, err := h.uc.ListDuplicatas(c.Context(), empresaID, clienteID, limit, offset)
	if err != nil {
		return respondErr(c, err, "cliente não encontrado")
	}
	return c.JSON(duplicatas)
}

// Cancel cancela uma duplicata não liquidada.
// POST /api/duplicatas/:id/cancelar
func (h *DuplicataHandler) Cancel(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CancelarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	duplicata, err := h.uc.CancelarDuplicata(c.Context(), empresaID, c.Params("id"), in)
	if err != nil {
		return respondErr(c, err, "duplicata não encontrada")
	}
	return c.JSON(duplicata)
}

// PDF devolve a representação imprimível da duplicata.
// GET /api/duplicatas/:id/pdf
func (h *DuplicataHandler) PDF(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pdfBytes, err := h.uc.GerarPDF(c.Context(), empresaID, c.Params("id"))
	if err != nil {
		return respondErr(c, err, "duplicata não encontrada")
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `inline; filename="duplicata.pdf"`)
	return c.Send(pdfBytes)
}
