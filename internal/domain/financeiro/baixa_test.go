package financeiro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gestaofacil/recebiveis-api/internal/domain"
	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
	"github.com/gestaofacil/recebiveis-api/internal/domain/financeiro"
)

func TestValorLiquido(t *testing.T) {
	tests := []struct {
		name                          string
		pago, juros, multa, desconto  string
		esperado                      string
	}{
		{"só principal", "100.00", "0", "0", "0", "100.00"},
		{"com juros e multa", "100.00", "2.50", "5.00", "0", "107.50"},
		{"com desconto", "100.00", "0", "0", "10.00", "90.00"},
		{"tudo junto", "50.00", "1.25", "2.00", "3.25", "50.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := financeiro.ValorLiquido(d(tt.pago), d(tt.juros), d(tt.multa), d(tt.desconto))
			assert.True(t, got.Equal(d(tt.esperado)), "líquido: %s", got)
		})
	}
}

func TestValidarBaixa(t *testing.T) {
	tests := []struct {
		name    string
		aberto  string
		liquido string
		err     error
	}{
		{"baixa total", "100.00", "100.00", nil},
		{"baixa parcial", "100.00", "40.00", nil},
		{"um centavo acima dentro do epsilon", "100.00", "100.01", nil},
		{"dois centavos acima", "100.00", "100.02", domain.ErrPagamentoExcedente},
		{"muito acima", "100.00", "150.00", domain.ErrPagamentoExcedente},
		{"líquido zero", "100.00", "0.00", domain.ErrValorInvalido},
		{"líquido negativo", "100.00", "-5.00", domain.ErrValorInvalido},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := financeiro.ValidarBaixa(d(tt.aberto), d(tt.liquido))
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func chequeOK(valor string) *entity.Cheque {
	return &entity.Cheque{
		Titular:          "Fulano de Tal",
		DocumentoTitular: "123.456.789-00",
		Banco:            "341",
		Agencia:          "0001",
		Conta:            "12345-6",
		Numero:           "000321",
		Valor:            d(valor),
	}
}

func TestValidarCheques(t *testing.T) {
	t.Run("um cheque no valor exato", func(t *testing.T) {
		assert.NoError(t, financeiro.ValidarCheques([]*entity.Cheque{chequeOK("25.00")}, d("25.00")))
	})

	t.Run("dois cheques somando o valor pago", func(t *testing.T) {
		cheques := []*entity.Cheque{chequeOK("60.00"), chequeOK("40.00")}
		assert.NoError(t, financeiro.ValidarCheques(cheques, d("100.00")))
	})

	t.Run("diferença de um centavo é tolerada", func(t *testing.T) {
		assert.NoError(t, financeiro.ValidarCheques([]*entity.Cheque{chequeOK("99.99")}, d("100.00")))
	})

	t.Run("diferença acima do epsilon é rejeitada, nunca arredondada", func(t *testing.T) {
		err := financeiro.ValidarCheques([]*entity.Cheque{chequeOK("99.00")}, d("100.00"))
		assert.ErrorIs(t, err, domain.ErrSomaCheques)
	})

	t.Run("soma acima do valor pago é rejeitada", func(t *testing.T) {
		cheques := []*entity.Cheque{chequeOK("60.00"), chequeOK("60.00")}
		assert.ErrorIs(t, financeiro.ValidarCheques(cheques, d("100.00")), domain.ErrSomaCheques)
	})

	t.Run("sem cheques", func(t *testing.T) {
		assert.ErrorIs(t, financeiro.ValidarCheques(nil, d("10.00")), domain.ErrEntradaInvalida)
	})

	t.Run("cheque sem campos obrigatórios", func(t *testing.T) {
		ch := chequeOK("10.00")
		ch.Banco = ""
		assert.ErrorIs(t, financeiro.ValidarCheques([]*entity.Cheque{ch}, d("10.00")), domain.ErrEntradaInvalida)
	})

	t.Run("cheque com valor zero", func(t *testing.T) {
		ch := chequeOK("0.00")
		assert.ErrorIs(t, financeiro.ValidarCheques([]*entity.Cheque{ch}, d("0.00")), domain.ErrValorInvalido)
	})
}
