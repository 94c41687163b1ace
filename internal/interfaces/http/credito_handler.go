package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/gestaofacil/recebiveis-api/internal/application/credito"
	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
)

// CreditoHandler trata a avaliação consultiva de limite de crédito (protegido).
type CreditoHandler struct {
	uc *credito.CreditoUseCase
}

// NewCreditoHandler constrói o handler.
func NewCreditoHandler(uc *credito.CreditoUseCase) *CreditoHandler {
	return &CreditoHandler{uc: uc}
}

// AvaliarLimite devolve o snapshot de limite do cliente: limite, utilizado,
// disponível e se um valor candidato estoura o limite.
// GET /api/clientes/:id/limite?valor=
func (h *CreditoHandler) AvaliarLimite(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	valor := decimal.Zero
	if raw := c.Query("valor"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valor deve ser um número não negativo"})
		}
		valor = parsed
	}
	snapshot, err := h.uc.AvaliarLimite(c.Context(), empresaID, c.Params("id"), valor)
	if err != nil {
		return respondErr(c, err, "cliente não encontrado")
	}
	return c.JSON(snapshot)
}
