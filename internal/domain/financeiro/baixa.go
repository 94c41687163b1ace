package financeiro

import (
	"github.com/shopspring/decimal"

	"github.com/gestaofacil/recebiveis-api/internal/domain"
	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
)

// Epsilon é a tolerância de arredondamento aceita nas comparações
// monetárias de baixa (um centavo). Diferenças acima disso são rejeitadas,
// nunca arredondadas silenciosamente.
var Epsilon = decimal.New(1, -2)

// ValorLiquido calcula o valor líquido de uma baixa:
// pago + juros + multa - desconto, arredondado a 2 casas.
func ValorLiquido(valorPago, juros, multa, desconto decimal.Decimal) decimal.Decimal {
	return valorPago.Add(juros).Add(multa).Sub(desconto).Round(2)
}

// ValidarBaixa verifica o valor líquido contra o saldo em aberto da
// duplicata, antes de qualquer mutação.
func ValidarBaixa(valorAberto, valorLiquido decimal.Decimal) error {
	if valorLiquido.LessThanOrEqual(decimal.Zero) {
		return domain.ErrValorInvalido
	}
	if valorLiquido.GreaterThan(valorAberto.Add(Epsilon)) {
		return domain.ErrPagamentoExcedente
	}
	return nil
}

// ValidarCheques confere o sub-razão de cheques de uma baixa com método
// CHEQUE: pelo menos um cheque, todos os campos de identificação
// preenchidos, valor positivo, e soma igual ao valor pago dentro de Epsilon.
func ValidarCheques(cheques []*entity.Cheque, valorPago decimal.Decimal) error {
	if len(cheques) == 0 {
		return domain.ErrEntradaInvalida
	}
	soma := decimal.Zero
	for _, ch := range cheques {
		if ch.Titular == "" || ch.DocumentoTitular == "" || ch.Banco == "" || ch.Agencia == "" || ch.Conta == "" || ch.Numero == "" {
			return domain.ErrEntradaInvalida
		}
		if ch.Valor.LessThanOrEqual(decimal.Zero) {
			return domain.ErrValorInvalido
		}
		soma = soma.Add(ch.Valor)
	}
	if soma.Sub(valorPago).Abs().GreaterThan(Epsilon) {
		return domain.ErrSomaCheques
	}
	return nil
}
