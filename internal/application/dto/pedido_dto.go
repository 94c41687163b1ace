package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemPedidoRequest linha de pedido na entrada.
type ItemPedidoRequest struct {
	Descricao     string          `json:"descricao"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Desconto      decimal.Decimal `json:"desconto"`
}

// CriarPedidoRequest body para POST /api/pedidos.
type CriarPedidoRequest struct {
	ClienteID          string              `json:"cliente_id"`
	Tipo               string              `json:"tipo"` // VENDA | COMPRA
	CondicaoID         string              `json:"condicao_id"`
	Itens              []ItemPedidoRequest `json:"itens"`
	DescontoValor      decimal.Decimal     `json:"desconto_valor"`
	DescontoPercentual decimal.Decimal     `json:"desconto_percentual"`
	Frete              decimal.Decimal     `json:"frete"`
	OutrasTaxas        decimal.Decimal     `json:"outras_taxas"`
}

// AtualizarItensRequest body para PUT /api/pedidos/:id/itens.
// Substitui as linhas e replaneja as parcelas; só é aceito enquanto nenhum
// pagamento ou duplicata existir contra o pedido.
type AtualizarItensRequest struct {
	Itens              []ItemPedidoRequest `json:"itens"`
	DescontoValor      decimal.Decimal     `json:"desconto_valor"`
	DescontoPercentual decimal.Decimal     `json:"desconto_percentual"`
	Frete              decimal.Decimal     `json:"frete"`
	OutrasTaxas        decimal.Decimal     `json:"outras_taxas"`
}

// ItemPedidoResponse linha de pedido na resposta.
type ItemPedidoResponse struct {
	ID            string          `json:"id"`
	Descricao     string          `json:"descricao"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Desconto      decimal.Decimal `json:"desconto"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// ParcelaResponse parcela na resposta.
type ParcelaResponse struct {
	ID            string          `json:"id"`
	Numero        int             `json:"numero"`
	TotalParcelas int             `json:"total_parcelas"`
	Valor         decimal.Decimal `json:"valor"`
	ValorPago     decimal.Decimal `json:"valor_pago"`
	Vencimento    time.Time       `json:"vencimento"`
	Status        string          `json:"status"`
}

// PedidoResponse pedido completo com itens e parcelas.
type PedidoResponse struct {
	ID                 string               `json:"id"`
	ClienteID          string               `json:"cliente_id"`
	Tipo               string               `json:"tipo"`
	Status             string               `json:"status"`
	Data               time.Time            `json:"data"`
	Subtotal           decimal.Decimal      `json:"subtotal"`
	DescontoValor      decimal.Decimal      `json:"desconto_valor"`
	DescontoPercentual decimal.Decimal      `json:"desconto_percentual"`
	Frete              decimal.Decimal      `json:"frete"`
	OutrasTaxas        decimal.Decimal      `json:"outras_taxas"`
	Total              decimal.Decimal      `json:"total"`
	Itens              []ItemPedidoResponse `json:"itens"`
	Parcelas           []ParcelaResponse    `json:"parcelas"`
	LimiteExcedido     bool                 `json:"limite_excedido,omitempty"`
}
