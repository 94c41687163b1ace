package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de uma parcela. O status é derivado de ValorPago vs Valor
// (financeiro.StatusParcela); CANCELADA acompanha o cancelamento do pedido.
const (
	ParcelaAberta    = "ABERTA"
	ParcelaParcial   = "PARCIAL"
	ParcelaPaga      = "PAGA"
	ParcelaCancelada = "CANCELADA"
)

// Parcela representa uma porção programada do total de um pedido.
// Invariante: ValorPago <= Valor. ValorPago só muda pelo motor de baixas,
// creditando o valor líquido de baixas de duplicatas vinculadas.
type Parcela struct {
	ID            string
	PedidoID      string
	Numero        int // 1..TotalParcelas
	TotalParcelas int
	Valor         decimal.Decimal
	ValorPago     decimal.Decimal
	Vencimento    time.Time
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaldoAberto devolve quanto da parcela ainda não foi pago.
func (p *Parcela) SaldoAberto() decimal.Decimal {
	return p.Valor.Sub(p.ValorPago)
}
