package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de uma duplicata. ABERTA/PARCIAL/LIQUIDADA são derivados do saldo
// (financeiro.StatusDuplicata); CANCELADA é explícito, pegajoso e terminal.
const (
	DuplicataAberta    = "ABERTA"
	DuplicataParcial   = "PARCIAL"
	DuplicataLiquidada = "LIQUIDADA"
	DuplicataCancelada = "CANCELADA"
)

// Duplicata é o título de crédito emitido contra uma parcela de pedido ou
// como cobrança avulsa (ParcelaID nulo).
//
// Invariantes: ValorAberto <= ValorOriginal; ValorAberto só diminui por
// baixas e só aumenta por estornos, nunca além de ValorOriginal.
// Versao é a guarda otimista de concorrência: toda escrita de saldo exige a
// versão lida e incrementa a coluna; escrita perdida vira ErrConflitoConcorrencia.
type Duplicata struct {
	ID                 string
	EmpresaID          string
	ClienteID          string
	ParcelaID          *string // nulo = cobrança avulsa
	PedidoID           *string
	Numero             string // único por empresa
	Emissao            time.Time
	Vencimento         time.Time
	ValorOriginal      decimal.Decimal
	ValorAberto        decimal.Decimal
	Status             string
	MotivoCancelamento string
	Versao             int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Terminal indica se a duplicata não aceita mais baixas.
func (d *Duplicata) Terminal() bool {
	return d.Status == DuplicataLiquidada || d.Status == DuplicataCancelada
}
