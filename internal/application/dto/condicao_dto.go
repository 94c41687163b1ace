package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParcelaCondicaoRequest item do cronograma de uma condição de pagamento.
type ParcelaCondicaoRequest struct {
	Numero     int             `json:"numero"`
	Percentual decimal.Decimal `json:"percentual"`
	Dias       int             `json:"dias"`
}

// CriarCondicaoRequest body para POST /api/condicoes.
// Sem parcelas: prazo único em PrazoDias. Com parcelas: cronograma explícito.
type CriarCondicaoRequest struct {
	Descricao string                   `json:"descricao"`
	PrazoDias int                      `json:"prazo_dias"`
	Parcelas  []ParcelaCondicaoRequest `json:"parcelas,omitempty"`
}

// ParcelaCondicaoResponse item do cronograma nas respostas.
type ParcelaCondicaoResponse struct {
	Numero     int             `json:"numero"`
	Percentual decimal.Decimal `json:"percentual"`
	Dias       int             `json:"dias"`
}

// CondicaoResponse condição de pagamento nas respostas.
type CondicaoResponse struct {
	ID        string                    `json:"id"`
	Descricao string                    `json:"descricao"`
	PrazoDias int                       `json:"prazo_dias"`
	Parcelas  []ParcelaCondicaoResponse `json:"parcelas,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
}
