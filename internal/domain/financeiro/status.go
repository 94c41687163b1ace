package financeiro

import (
	"github.com/shopspring/decimal"

	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
)

// StatusDuplicata deriva o status de uma duplicata dos saldos.
// Função pura dos valores: ABERTA quando nada foi baixado, PARCIAL quando
// 0 < aberto < original, LIQUIDADA quando o saldo zera. CANCELADA não passa
// por aqui: é pegajoso e tratado pelo chamador antes de qualquer derivação.
func StatusDuplicata(valorOriginal, valorAberto decimal.Decimal) string {
	switch {
	case valorAberto.LessThanOrEqual(decimal.Zero):
		return entity.DuplicataLiquidada
	case valorAberto.GreaterThanOrEqual(valorOriginal):
		return entity.DuplicataAberta
	default:
		return entity.DuplicataParcial
	}
}

// StatusParcela deriva o status de uma parcela de valor e valor pago.
func StatusParcela(valor, valorPago decimal.Decimal) string {
	switch {
	case valorPago.GreaterThanOrEqual(valor):
		return entity.ParcelaPaga
	case valorPago.GreaterThan(decimal.Zero):
		return entity.ParcelaParcial
	default:
		return entity.ParcelaAberta
	}
}
