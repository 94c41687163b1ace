package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
	"github.com/gestaofacil/recebiveis-api/internal/domain"
)

// respondErr mapeia os erros sentinela do domínio para status HTTP.
// notFoundMsg personaliza a mensagem de 404 por recurso.
func respondErr(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMsg})
	case errors.Is(err, domain.ErrAcessoNegado):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado ao recurso"})
	case errors.Is(err, domain.ErrNaoAutorizado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrPedidoSemItens):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_ORDER", Message: "pedido sem itens válidos"})
	case errors.Is(err, domain.ErrValorInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "valor deve ser positivo"})
	case errors.Is(err, domain.ErrPagamentoExcedente):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "OVERPAYMENT", Message: "pagamento excede o saldo em aberto"})
	case errors.Is(err, domain.ErrSomaCheques):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CHEQUE_SUM", Message: "soma dos cheques difere do valor pago"})
	case errors.Is(err, domain.ErrLimiteExcedido):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CREDIT_LIMIT", Message: "limite de crédito do cliente excedido"})
	case errors.Is(err, domain.ErrDuplicataLiquidada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SETTLED", Message: "duplicata já liquidada"})
	case errors.Is(err, domain.ErrDuplicataTerminal):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TERMINAL", Message: "duplicata não aceita mais operações"})
	case errors.Is(err, domain.ErrBaixaJaEstornada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_REVERSED", Message: "baixa já estornada"})
	case errors.Is(err, domain.ErrPedidoImutavel):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IMMUTABLE_ORDER", Message: "pedido não pode mais ser alterado"})
	case errors.Is(err, domain.ErrConflitoConcorrencia):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONCURRENT_UPDATE", Message: "registro alterado por outra operação; tente novamente"})
	case errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro duplicado"})
	case errors.Is(err, domain.ErrEmailJaExiste):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "email já registrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
