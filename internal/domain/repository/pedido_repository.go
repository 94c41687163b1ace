package repository

import "github.com/gestaofacil/recebiveis-api/internal/domain/entity"

// PedidoRepository define o porto de persistência para Pedido e itens.
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	CreateItem(item *entity.ItemPedido) error
	GetByID(id string) (*entity.Pedido, error)
	GetItens(pedidoID string) ([]*entity.ItemPedido, error)
	ListByCliente(clienteID string, limit, offset int) ([]*entity.Pedido, error)
	// UpdateTotais regrava totais e status após recálculo.
	UpdateTotais(pedido *entity.Pedido) error
	UpdateStatus(pedido *entity.Pedido) error
	// DeleteItens remove todas as linhas do pedido (substituição em recálculo).
	DeleteItens(pedidoID string) error
}

// ParcelaRepository define o porto de persistência para Parcela.
type ParcelaRepository interface {
	Create(parcela *entity.Parcela) error
	GetByID(id string) (*entity.Parcela, error)
	ListByPedido(pedidoID string) ([]*entity.Parcela, error)
	ListAbertasByCliente(clienteID string) ([]*entity.Parcela, error)
	// UpdateValorPago regrava valor_pago e o status derivado.
	UpdateValorPago(parcela *entity.Parcela) error
	// CancelarByPedido marca todas as parcelas do pedido como CANCELADA.
	CancelarByPedido(pedidoID string) error
	// DeleteByPedido remove as parcelas do pedido (replanejamento, só sem pagamentos).
	DeleteByPedido(pedidoID string) error
}

// CondicaoPagamentoRepository lê as condições de pagamento (configuração
// externa ao núcleo; somente leitura fora do seeding).
type CondicaoPagamentoRepository interface {
	Create(cond *entity.CondicaoPagamento) error
	GetByID(id string) (*entity.CondicaoPagamento, error)
	ListByEmpresa(empresaID string) ([]*entity.CondicaoPagamento, error)
}
