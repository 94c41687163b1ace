package dto

import "github.com/shopspring/decimal"

// DuplicataPosicao linha da posição de um cliente ou pedido.
type DuplicataPosicao struct {
	ID            string          `json:"id"`
	Numero        string          `json:"numero"`
	Vencimento    string          `json:"vencimento"`
	ValorOriginal decimal.Decimal `json:"valor_original"`
	ValorAberto   decimal.Decimal `json:"valor_aberto"`
	Status        string          `json:"status"`
	Vencida       bool            `json:"vencida"`
	TotalBaixado  decimal.Decimal `json:"total_baixado"`
}

// PosicaoClienteResponse agregação de leitura por cliente
// (GET /api/clientes/:id/posicao).
type PosicaoClienteResponse struct {
	ClienteID     string             `json:"cliente_id"`
	TotalAberto   decimal.Decimal    `json:"total_aberto"`
	TotalVencido  decimal.Decimal    `json:"total_vencido"`
	TotalBaixado  decimal.Decimal    `json:"total_baixado"`
	Duplicatas    []DuplicataPosicao `json:"duplicatas"`
}

// ParcelaPosicao parcela com suas duplicatas na posição do pedido.
type ParcelaPosicao struct {
	Parcela    ParcelaResponse    `json:"parcela"`
	Duplicatas []DuplicataPosicao `json:"duplicatas"`
}

// PosicaoPedidoResponse agregação de leitura por pedido
// (GET /api/pedidos/:id/posicao).
type PosicaoPedidoResponse struct {
	PedidoID    string           `json:"pedido_id"`
	Total       decimal.Decimal  `json:"total"`
	TotalPago   decimal.Decimal  `json:"total_pago"`
	TotalAberto decimal.Decimal  `json:"total_aberto"`
	Parcelas    []ParcelaPosicao `json:"parcelas"`
}
