package pedidos

import (
	"context"

	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação que inclui os repos
// de pedido e parcela. Se fn retorna erro, a transação sofre rollback e
// nenhuma escrita parcial fica visível.
type TxRunner interface {
	RunPedidos(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		parcelaRepo repository.ParcelaRepository,
	) error) error
}

// CondicaoTxRunner executa o cadastro de uma condição de pagamento em uma
// transação: o cabeçalho e os itens do cronograma gravam juntos ou nada
// fica visível.
type CondicaoTxRunner interface {
	RunCondicoes(ctx context.Context, fn func(
		condicaoRepo repository.CondicaoPagamentoRepository,
	) error) error
}
