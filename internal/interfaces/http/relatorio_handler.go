package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
	"github.com/gestaofacil/recebiveis-api/internal/application/relatorios"
)

// RelatorioHandler trata as visões de conciliação (protegido, somente leitura).
type RelatorioHandler struct {
	uc *relatorios.RelatorioUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorios.RelatorioUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// PosicaoCliente devolve a posição financeira do cliente: duplicatas com
// saldo, total em aberto, vencido e baixado.
// GET /api/clientes/:id/posicao
func (h *RelatorioHandler) PosicaoCliente(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	posicao, err := h.uc.PosicaoCliente(c.Context(), empresaID, c.Params("id"))
	if err != nil {
		return respondErr(c, err, "cliente não encontrado")
	}
	return c.JSON(posicao)
}

// PosicaoPedido devolve a conciliação parcela a parcela de um pedido,
// com as duplicatas emitidas contra cada parcela.
// GET /api/pedidos/:id/posicao
func (h *RelatorioHandler) PosicaoPedido(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	posicao, err := h.uc.PosicaoPedido(c.Context(), empresaID, c.Params("id"))
	if err != nil {
		return respondErr(c, err, "pedido não encontrado")
	}
	return c.JSON(posicao)
}
