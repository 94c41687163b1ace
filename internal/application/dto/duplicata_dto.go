package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmitirDuplicataRequest body para POST /api/duplicatas.
// ParcelaID presente vincula a duplicata a uma parcela de pedido; ausente
// emite cobrança avulsa. Várias duplicatas contra a mesma parcela são
// aceitas (divisão deliberada); divergência da soma gera alerta, não erro.
type EmitirDuplicataRequest struct {
	ClienteID  string          `json:"cliente_id"`
	ParcelaID  string          `json:"parcela_id,omitempty"`
	Numero     string          `json:"numero"`
	Emissao    time.Time       `json:"emissao"`
	Vencimento time.Time       `json:"vencimento"`
	Valor      decimal.Decimal `json:"valor"`
}

// CancelarRequest body para os endpoints de cancelamento/estorno.
type CancelarRequest struct {
	Motivo string `json:"motivo,omitempty"`
}

// DuplicataResponse duplicata nas respostas.
type DuplicataResponse struct {
	ID            string          `json:"id"`
	ClienteID     string          `json:"cliente_id"`
	ParcelaID     string          `json:"parcela_id,omitempty"`
	PedidoID      string          `json:"pedido_id,omitempty"`
	Numero        string          `json:"numero"`
	Emissao       time.Time       `json:"emissao"`
	Vencimento    time.Time       `json:"vencimento"`
	ValorOriginal decimal.Decimal `json:"valor_original"`
	ValorAberto   decimal.Decimal `json:"valor_aberto"`
	Status        string          `json:"status"`
	// Alerta preenchido quando a soma das duplicatas da parcela diverge do
	// saldo em aberto dela no momento da emissão.
	Alerta string `json:"alerta,omitempty"`
}
