package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de um cheque no sub-razão.
const (
	ChequeEmCarteira = "EM_CARTEIRA"
	ChequeCompensado = "COMPENSADO"
	ChequeDevolvido  = "DEVOLVIDO"
)

// Cheque é a linha do sub-razão de cheques anexada a uma baixa com
// método CHEQUE. A soma dos cheques de uma baixa deve igualar o ValorPago
// dela (tolerância de um centavo).
type Cheque struct {
	ID               string
	BaixaID          string
	Titular          string
	DocumentoTitular string // CPF/CNPJ do emitente
	Banco            string
	Agencia          string
	Conta            string
	Numero           string
	Valor            decimal.Decimal
	BomPara          time.Time // data de apresentação (cheque pré-datado)
	Status           string
	CreatedAt        time.Time
}
