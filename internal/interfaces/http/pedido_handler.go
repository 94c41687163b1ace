package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
	"github.com/gestaofacil/recebiveis-api/internal/application/pedidos"
)

// PedidoHandler trata pedidos, itens e parcelamento (protegido).
type PedidoHandler struct {
	uc *pedidos.PedidoUseCase
}

// NewPedidoHandler constrói o handler.
func NewPedidoHandler(uc *pedidos.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Create cria um pedido com itens, calcula totais e planeja as parcelas.
// POST /api/pedidos
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CriarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	pedido, err := h.uc.CriarPedido(c.Context(), empresaID, in)
	if err != nil {
		return respondErr(c, err, "cliente ou condição de pagamento não encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(pedido)
}

// GetByID obtém um pedido com itens e parcelas.
// GET /api/pedidos/:id
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pedido, err := h.uc.GetPedido(c.Context(), empresaID, c.Params("id"))
	if err != nil {
		return respondErr(c, err, "pedido não encontrado")
	}
	return c.JSON(pedido)
}

// UpdateItens substitui os itens de um pedido ABERTO e replaneja as parcelas.
// PUT /api/pedidos/:id/itens
func (h *PedidoHandler) UpdateItens(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AtualizarItensRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	pedido, err := h.uc.AtualizarItens(c.Context(), empresaID, c.Params("id"), in)
	if err != nil {
		return respondErr(c, err, "pedido não encontrado")
	}
	return c.JSON(pedido)
}

// Cancel cancela um pedido ABERTO e suas parcelas.
// POST /api/pedidos/:id/cancelar
func (h *PedidoHandler) Cancel(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pedido, err := h.uc.CancelarPedido(c.Context(), empresaID, c.Params("id"))
	if err != nil {
		return respondErr(c, err, "pedido não encontrado")
	}
	return c.JSON(pedido)
}
