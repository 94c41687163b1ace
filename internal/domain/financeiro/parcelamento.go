package financeiro

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaofacil/recebiveis-api/internal/domain"
	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
)

// ParcelaPlanejada é a saída do planejador para uma parcela.
type ParcelaPlanejada struct {
	Numero     int
	Valor      decimal.Decimal
	Vencimento time.Time
}

// PlanejarParcelas divide o total de um pedido em parcelas segundo a
// condição de pagamento.
//
// Condição sem cronograma: uma parcela única vencendo em data+PrazoDias.
// Condição com cronograma: valor_i = round(total * percentual_i / 100),
// vencimento_i = data + dias_i. A última parcela absorve o resíduo de
// arredondamento para que a soma feche exatamente no total, mesmo quando
// os percentuais cadastrados não somam 100.
//
// Função pura: a persistência das parcelas é responsabilidade do chamador.
func PlanejarParcelas(total decimal.Decimal, dataPedido time.Time, cond *entity.CondicaoPagamento) ([]ParcelaPlanejada, error) {
	if total.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrValorInvalido
	}
	if cond == nil || len(cond.Parcelas) == 0 {
		prazo := 0
		if cond != nil {
			prazo = cond.PrazoDias
		}
		return []ParcelaPlanejada{{
			Numero:     1,
			Valor:      total.Round(2),
			Vencimento: dataPedido.AddDate(0, 0, prazo),
		}}, nil
	}

	n := len(cond.Parcelas)
	parcelas := make([]ParcelaPlanejada, 0, n)
	acumulado := decimal.Zero
	for i, pc := range cond.Parcelas {
		var valor decimal.Decimal
		if i == n-1 {
			// Resíduo de arredondamento fica na última parcela
			valor = total.Sub(acumulado)
		} else {
			valor = total.Mul(pc.Percentual).Div(cem).Round(2)
			acumulado = acumulado.Add(valor)
		}
		parcelas = append(parcelas, ParcelaPlanejada{
			Numero:     i + 1,
			Valor:      valor,
			Vencimento: dataPedido.AddDate(0, 0, pc.Dias),
		})
	}
	return parcelas, nil
}
