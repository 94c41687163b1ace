package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos e estados de um pedido.
const (
	TipoPedidoVenda  = "VENDA"
	TipoPedidoCompra = "COMPRA"

	PedidoAberto    = "ABERTO"
	PedidoConcluido = "CONCLUIDO"
	PedidoCancelado = "CANCELADO"
)

// Pedido representa a cabeça de um pedido de venda ou compra.
// Os totais são sempre recalculados a partir dos itens; nunca editados direto.
// Uma vez CANCELADO ou CONCLUIDO o pedido é imutável.
type Pedido struct {
	ID                 string
	EmpresaID          string
	ClienteID          string
	Tipo               string
	Status             string
	Data               time.Time
	CondicaoID         string
	Subtotal           decimal.Decimal
	DescontoValor      decimal.Decimal
	DescontoPercentual decimal.Decimal
	Frete              decimal.Decimal
	OutrasTaxas        decimal.Decimal
	Total              decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ItemPedido representa uma linha do pedido.
// Subtotal = max(0, Quantidade*PrecoUnitario - Desconto).
type ItemPedido struct {
	ID            string
	PedidoID      string
	Descricao     string
	Quantidade    decimal.Decimal
	PrecoUnitario decimal.Decimal
	Desconto      decimal.Decimal
	Subtotal      decimal.Decimal
}
