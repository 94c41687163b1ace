// Package financeiro concentra os serviços de domínio puros do motor de
// recebíveis: totais de pedido, planejamento de parcelas, derivação de
// status, matemática de baixas e avaliação de limite de crédito.
//
// Todas as funções são determinísticas, sem efeito colateral e operam
// exclusivamente sobre decimal.Decimal. O arredondamento (meio para cima,
// 2 casas) acontece apenas nas fronteiras documentadas em cada função,
// nunca em passos intermediários.
package financeiro

import (
	"github.com/shopspring/decimal"

	"github.com/gestaofacil/recebiveis-api/internal/domain"
)

var cem = decimal.NewFromInt(100)

// ItemCalculo é a entrada de uma linha para o cálculo de totais.
type ItemCalculo struct {
	Quantidade    decimal.Decimal
	PrecoUnitario decimal.Decimal
	Desconto      decimal.Decimal
}

// ItemCalculado é uma linha aceita, com o índice original e o subtotal.
type ItemCalculado struct {
	Indice   int
	Subtotal decimal.Decimal
}

// ResultadoTotais agrega o resultado do cálculo de um pedido.
type ResultadoTotais struct {
	Itens    []ItemCalculado
	Subtotal decimal.Decimal
	Total    decimal.Decimal
}

// CalcularTotais deriva subtotal e total de um pedido a partir das linhas.
//
//	subtotal_item = max(0, quantidade*preço - desconto)
//	total = subtotal - descontoValor - subtotal*descontoPercentual/100 + frete + outrasTaxas
//
// Linhas com quantidade <= 0 ou preço unitário <= 0 são excluídas do
// resultado; se nenhuma linha válida restar, devolve ErrPedidoSemItens.
// O cálculo é puro e deve ser reexecutado integralmente após qualquer
// edição de linha; nenhum estado incremental é confiável entre edições.
func CalcularTotais(itens []ItemCalculo, descontoValor, descontoPercentual, frete, outrasTaxas decimal.Decimal) (*ResultadoTotais, error) {
	r := &ResultadoTotais{}
	for i, item := range itens {
		if item.Quantidade.LessThanOrEqual(decimal.Zero) || item.PrecoUnitario.LessThanOrEqual(decimal.Zero) {
			continue
		}
		sub := item.Quantidade.Mul(item.PrecoUnitario).Sub(item.Desconto)
		if sub.IsNegative() {
			sub = decimal.Zero
		}
		sub = sub.Round(2)
		r.Itens = append(r.Itens, ItemCalculado{Indice: i, Subtotal: sub})
		r.Subtotal = r.Subtotal.Add(sub)
	}
	if len(r.Itens) == 0 {
		return nil, domain.ErrPedidoSemItens
	}
	descPerc := r.Subtotal.Mul(descontoPercentual).Div(cem)
	r.Total = r.Subtotal.Sub(descontoValor).Sub(descPerc).Add(frete).Add(outrasTaxas).Round(2)
	return r, nil
}
