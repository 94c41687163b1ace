package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente representa a contraparte de pedidos e duplicatas.
// LimiteCredito nulo significa que o cliente não tem limite configurado
// (a avaliação de crédito nunca bloqueia nesse caso).
type Cliente struct {
	ID            string
	EmpresaID     string
	Nome          string
	Documento     string // CNPJ ou CPF
	Email         string
	Telefone      string
	LimiteCredito *decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
