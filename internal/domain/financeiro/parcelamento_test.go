package financeiro_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaofacil/recebiveis-api/internal/domain"
	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
	"github.com/gestaofacil/recebiveis-api/internal/domain/financeiro"
)

var dataPedido = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func condParcelada(percentuais []string, dias []int) *entity.CondicaoPagamento {
	cond := &entity.CondicaoPagamento{ID: "cond-1", Descricao: "teste"}
	for i := range percentuais {
		cond.Parcelas = append(cond.Parcelas, entity.ParcelaCondicao{
			Numero:     i + 1,
			Percentual: d(percentuais[i]),
			Dias:       dias[i],
		})
	}
	return cond
}

func somaParcelas(ps []financeiro.ParcelaPlanejada) decimal.Decimal {
	soma := decimal.Zero
	for _, p := range ps {
		soma = soma.Add(p.Valor)
	}
	return soma
}

func TestPlanejarParcelas_PrazoUnico(t *testing.T) {
	cond := &entity.CondicaoPagamento{PrazoDias: 30}
	ps, err := financeiro.PlanejarParcelas(d("200.00"), dataPedido, cond)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.True(t, ps[0].Valor.Equal(d("200.00")))
	assert.Equal(t, dataPedido.AddDate(0, 0, 30), ps[0].Vencimento)
}

func TestPlanejarParcelas_QuatroIguais(t *testing.T) {
	cond := condParcelada([]string{"25", "25", "25", "25"}, []int{30, 60, 90, 120})
	ps, err := financeiro.PlanejarParcelas(d("200.00"), dataPedido, cond)
	require.NoError(t, err)
	require.Len(t, ps, 4)
	for i, p := range ps {
		assert.True(t, p.Valor.Equal(d("50.00")), "parcela %d: %s", i+1, p.Valor)
		assert.Equal(t, i+1, p.Numero)
	}
}

// 3x33.33 + resíduo: a última parcela absorve o centavo que sobra.
func TestPlanejarParcelas_ResiduoNaUltima(t *testing.T) {
	cond := condParcelada([]string{"33.33", "33.33", "33.34"}, []int{30, 60, 90})
	ps, err := financeiro.PlanejarParcelas(d("100.00"), dataPedido, cond)
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.True(t, ps[0].Valor.Equal(d("33.33")))
	assert.True(t, ps[1].Valor.Equal(d("33.33")))
	assert.True(t, ps[2].Valor.Equal(d("33.34")))
	assert.True(t, somaParcelas(ps).Equal(d("100.00")))
}

// Mesmo com percentuais que não somam 100, a soma das parcelas fecha
// exatamente no total (a condição cadastrada errada é problema de quem a
// configurou; o fechamento centavo a centavo não é negociável).
func TestPlanejarParcelas_PercentuaisComDesvio(t *testing.T) {
	tests := []struct {
		name        string
		total       string
		percentuais []string
	}{
		{"soma abaixo de 100", "150.00", []string{"30", "30", "30"}},
		{"soma acima de 100", "99.99", []string{"50", "50", "10"}},
		{"dízima", "100.00", []string{"33.33", "33.33", "33.33"}},
		{"valor quebrado", "123.45", []string{"33.33", "33.33", "33.34"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dias := make([]int, len(tt.percentuais))
			for i := range dias {
				dias[i] = (i + 1) * 30
			}
			ps, err := financeiro.PlanejarParcelas(d(tt.total), dataPedido, condParcelada(tt.percentuais, dias))
			require.NoError(t, err)
			assert.True(t, somaParcelas(ps).Equal(d(tt.total)),
				"soma %s deve fechar no total %s", somaParcelas(ps), tt.total)
		})
	}
}

func TestPlanejarParcelas_TotalInvalido(t *testing.T) {
	_, err := financeiro.PlanejarParcelas(decimal.Zero, dataPedido, nil)
	assert.ErrorIs(t, err, domain.ErrValorInvalido)

	_, err = financeiro.PlanejarParcelas(d("-10.00"), dataPedido, nil)
	assert.ErrorIs(t, err, domain.ErrValorInvalido)
}

func TestPlanejarParcelas_Vencimentos(t *testing.T) {
	cond := condParcelada([]string{"50", "50"}, []int{15, 45})
	ps, err := financeiro.PlanejarParcelas(d("80.00"), dataPedido, cond)
	require.NoError(t, err)
	assert.Equal(t, dataPedido.AddDate(0, 0, 15), ps[0].Vencimento)
	assert.Equal(t, dataPedido.AddDate(0, 0, 45), ps[1].Vencimento)
}
