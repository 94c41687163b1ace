package pagamentos

import (
	"context"

	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação que inclui os repos
// do motor de baixas. Validação e mutação acontecem integralmente dentro
// de fn: se fn retorna erro há rollback e nenhuma escrita parcial fica
// visível para outros leitores (aplicação tudo-ou-nada).
type TxRunner interface {
	RunPagamentos(ctx context.Context, fn func(
		duplicataRepo repository.DuplicataRepository,
		baixaRepo repository.BaixaRepository,
		chequeRepo repository.ChequeRepository,
		parcelaRepo repository.ParcelaRepository,
		pedidoRepo repository.PedidoRepository,
	) error) error
}
