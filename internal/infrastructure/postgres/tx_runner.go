package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestaofacil/recebiveis-api/internal/application/pagamentos"
	"github.com/gestaofacil/recebiveis-api/internal/application/pedidos"
	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
)

var _ pedidos.TxRunner = (*TxRunner)(nil)
var _ pedidos.CondicaoTxRunner = (*TxRunner)(nil)
var _ pagamentos.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL, com
// repositórios atados à tx. Erro do callback (inclusive conflito de versão)
// faz rollback de tudo.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPedidos abre uma transação com os repos de pedido e parcela
// (criação e replanejamento de pedidos).
func (r *TxRunner) RunPedidos(ctx context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	parcelaRepo repository.ParcelaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPedidoRepository(tx), NewParcelaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPagamentos abre uma transação com os repos do motor de baixas:
// duplicata, baixa, cheque, parcela e o pedido (para a conclusão derivada)
// mudam juntos ou não mudam.
func (r *TxRunner) RunPagamentos(ctx context.Context, fn func(
	duplicataRepo repository.DuplicataRepository,
	baixaRepo repository.BaixaRepository,
	chequeRepo repository.ChequeRepository,
	parcelaRepo repository.ParcelaRepository,
	pedidoRepo repository.PedidoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewDuplicataRepository(tx),
		NewBaixaRepository(tx),
		NewChequeRepository(tx),
		NewParcelaRepository(tx),
		NewPedidoRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCondicoes abre uma transação para o cadastro de uma condição de
// pagamento: cabeçalho e itens do cronograma gravam juntos ou não gravam.
func (r *TxRunner) RunCondicoes(ctx context.Context, fn func(
	condicaoRepo repository.CondicaoPagamentoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCondicaoPagamentoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
