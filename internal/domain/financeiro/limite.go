package financeiro

import (
	"github.com/shopspring/decimal"

	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
)

// SnapshotLimite é o resultado derivado (nunca persistido) da avaliação
// de limite de crédito de um cliente.
type SnapshotLimite struct {
	Limite     *decimal.Decimal // nulo = sem limite configurado
	Utilizado  decimal.Decimal
	Disponivel decimal.Decimal
	Excedido   bool
}

// CalcularUtilizado soma a exposição em aberto de um cliente.
//
// Para não contar em dobro, a soma é feita na granularidade da duplicata
// quando existem duplicatas para uma parcela: o saldo da própria parcela só
// entra quando nenhuma duplicata foi emitida contra ela. Duplicatas
// canceladas e parcelas canceladas ficam de fora.
func CalcularUtilizado(duplicatas []*entity.Duplicata, parcelas []*entity.Parcela) decimal.Decimal {
	utilizado := decimal.Zero
	parcelasComDuplicata := make(map[string]bool)
	for _, d := range duplicatas {
		if d.Status == entity.DuplicataCancelada {
			continue
		}
		utilizado = utilizado.Add(d.ValorAberto)
		if d.ParcelaID != nil {
			parcelasComDuplicata[*d.ParcelaID] = true
		}
	}
	for _, p := range parcelas {
		if p.Status == entity.ParcelaCancelada || parcelasComDuplicata[p.ID] {
			continue
		}
		utilizado = utilizado.Add(p.SaldoAberto())
	}
	return utilizado
}

// AvaliarLimite compara a exposição atual mais um pedido candidato contra o
// limite do cliente. A função é consultiva: quem decide bloquear a criação
// do pedido é o chamador. Limite nulo significa sem enforcement: nunca
// excedido e disponível zero por convenção.
func AvaliarLimite(limite *decimal.Decimal, utilizado, valorCandidato decimal.Decimal) SnapshotLimite {
	s := SnapshotLimite{Limite: limite, Utilizado: utilizado}
	if limite == nil {
		return s
	}
	s.Disponivel = limite.Sub(utilizado)
	s.Excedido = utilizado.Add(valorCandidato).GreaterThan(*limite)
	return s
}
