package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChequeRequest cheque anexado a uma baixa com método CHEQUE.
type ChequeRequest struct {
	Titular          string          `json:"titular"`
	DocumentoTitular string          `json:"documento_titular"`
	Banco            string          `json:"banco"`
	Agencia          string          `json:"agencia"`
	Conta            string          `json:"conta"`
	Numero           string          `json:"numero"`
	Valor            decimal.Decimal `json:"valor"`
	BomPara          time.Time       `json:"bom_para"`
}

// BaixarDuplicataRequest body para POST /api/duplicatas/:id/baixas.
type BaixarDuplicataRequest struct {
	ValorPago     decimal.Decimal `json:"valor_pago"`
	Juros         decimal.Decimal `json:"juros"`
	Multa         decimal.Decimal `json:"multa"`
	Desconto      decimal.Decimal `json:"desconto"`
	DataPagamento time.Time       `json:"data_pagamento"`
	Metodo        string          `json:"metodo"`
	Cheques       []ChequeRequest `json:"cheques,omitempty"`
}

// ChequeResponse cheque nas respostas.
type ChequeResponse struct {
	ID               string          `json:"id"`
	Titular          string          `json:"titular"`
	DocumentoTitular string          `json:"documento_titular"`
	Banco            string          `json:"banco"`
	Agencia          string          `json:"agencia"`
	Conta            string          `json:"conta"`
	Numero           string          `json:"numero"`
	Valor            decimal.Decimal `json:"valor"`
	BomPara          time.Time       `json:"bom_para"`
	Status           string          `json:"status"`
}

// BaixaResponse baixa nas respostas, com o saldo resultante da duplicata.
type BaixaResponse struct {
	ID                   string           `json:"id"`
	DuplicataID          string           `json:"duplicata_id"`
	ValorPago            decimal.Decimal  `json:"valor_pago"`
	Juros                decimal.Decimal  `json:"juros"`
	Multa                decimal.Decimal  `json:"multa"`
	Desconto             decimal.Decimal  `json:"desconto"`
	ValorLiquido         decimal.Decimal  `json:"valor_liquido"`
	DataPagamento        time.Time        `json:"data_pagamento"`
	Metodo               string           `json:"metodo"`
	Estornada            bool             `json:"estornada"`
	Cheques              []ChequeResponse `json:"cheques,omitempty"`
	DuplicataValorAberto decimal.Decimal  `json:"duplicata_valor_aberto"`
	DuplicataStatus      string           `json:"duplicata_status"`
}
