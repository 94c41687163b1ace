package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CondicaoPagamento define como o total de um pedido vira parcelas.
// Sem itens de parcelamento: prazo único (uma parcela em Data+PrazoDias).
// Com itens: N parcelas, cada uma com percentual do total e dias a partir
// da data do pedido. A soma dos percentuais é responsabilidade de quem
// cadastra a condição; o planejador força o fechamento centavo a centavo
// independente de desvio.
type CondicaoPagamento struct {
	ID        string
	EmpresaID string
	Descricao string
	PrazoDias int
	Parcelas  []ParcelaCondicao
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParcelaCondicao é um item do cronograma da condição de pagamento.
type ParcelaCondicao struct {
	ID         string
	CondicaoID string
	Numero     int
	Percentual decimal.Decimal // percentual do total (ex.: 33.33)
	Dias       int             // dias a partir da data do pedido
}
