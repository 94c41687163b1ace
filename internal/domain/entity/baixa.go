package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Meios de pagamento aceitos em uma baixa.
const (
	MetodoDinheiro      = "DINHEIRO"
	MetodoPix           = "PIX"
	MetodoTransferencia = "TRANSFERENCIA"
	MetodoCartao        = "CARTAO"
	MetodoCheque        = "CHEQUE"
)

// Baixa registra um recebimento contra uma duplicata.
// ValorLiquido = ValorPago + Juros + Multa - Desconto, calculado na aplicação
// e congelado aqui. Uma baixa pode ser estornada exatamente uma vez; baixas
// estornadas permanecem no histórico (nunca são apagadas).
type Baixa struct {
	ID            string
	DuplicataID   string
	ValorPago     decimal.Decimal
	Juros         decimal.Decimal
	Multa         decimal.Decimal
	Desconto      decimal.Decimal
	ValorLiquido  decimal.Decimal
	DataPagamento time.Time
	Metodo        string
	Estornada     bool
	MotivoEstorno string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
