package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarClienteRequest body para POST /api/clientes.
// LimiteCredito ausente = cliente sem limite (avaliação nunca bloqueia).
type CriarClienteRequest struct {
	Nome          string           `json:"nome"`
	Documento     string           `json:"documento"`
	Email         string           `json:"email,omitempty"`
	Telefone      string           `json:"telefone,omitempty"`
	LimiteCredito *decimal.Decimal `json:"limite_credito,omitempty"`
}

// ClienteResponse cliente nas respostas.
type ClienteResponse struct {
	ID            string           `json:"id"`
	EmpresaID     string           `json:"empresa_id"`
	Nome          string           `json:"nome"`
	Documento     string           `json:"documento"`
	Email         string           `json:"email,omitempty"`
	Telefone      string           `json:"telefone,omitempty"`
	LimiteCredito *decimal.Decimal `json:"limite_credito,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// SnapshotLimiteResponse resposta de GET /api/clientes/:id/limite.
type SnapshotLimiteResponse struct {
	ClienteID  string           `json:"cliente_id"`
	Limite     *decimal.Decimal `json:"limite,omitempty"`
	Utilizado  decimal.Decimal  `json:"utilizado"`
	Disponivel decimal.Decimal  `json:"disponivel"`
	Excedido   bool             `json:"excedido"`
}
