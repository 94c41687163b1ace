package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementação de PedidoRepository (usável com pool ou tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste a cabeça de um pedido.
func (r *PedidoRepo) Create(pedido *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (id, empresa_id, cliente_id, tipo, status, data, condicao_id,
			subtotal, desconto_valor, desconto_percentual, frete, outras_taxas, total,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.EmpresaID, pedido.ClienteID, pedido.Tipo, pedido.Status,
		pedido.Data, nullIfEmpty(pedido.CondicaoID), pedido.Subtotal, pedido.DescontoValor,
		pedido.DescontoPercentual, pedido.Frete, pedido.OutrasTaxas, pedido.Total,
		pedido.CreatedAt, pedido.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha do pedido.
func (r *PedidoRepo) CreateItem(item *entity.ItemPedido) error {
	query := `
		INSERT INTO itens_pedido (id, pedido_id, descricao, quantidade, preco_unitario, desconto, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PedidoID, item.Descricao, item.Quantidade, item.PrecoUnitario,
		item.Desconto, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtém a cabeça de um pedido por ID.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `
		SELECT id, empresa_id, cliente_id, tipo, status, data, COALESCE(condicao_id, ''),
			subtotal, desconto_valor, desconto_percentual, frete, outras_taxas, total,
			created_at, updated_at
		FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.EmpresaID, &p.ClienteID, &p.Tipo, &p.Status, &p.Data, &p.CondicaoID,
		&p.Subtotal, &p.DescontoValor, &p.DescontoPercentual, &p.Frete, &p.OutrasTaxas,
		&p.Total, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// GetItens obtém as linhas de um pedido ordenadas por inserção.
func (r *PedidoRepo) GetItens(pedidoID string) ([]*entity.ItemPedido, error) {
	query := `
		SELECT id, pedido_id, descricao, quantidade, preco_unitario, desconto, subtotal
		FROM itens_pedido WHERE pedido_id = $1 ORDER BY ctid`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list itens: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemPedido
	for rows.Next() {
		var it entity.ItemPedido
		if err := rows.Scan(&it.ID, &it.PedidoID, &it.Descricao, &it.Quantidade,
			&it.PrecoUnitario, &it.Desconto, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByCliente lista pedidos de um cliente, mais recentes primeiro.
func (r *PedidoRepo) ListByCliente(clienteID string, limit, offset int) ([]*entity.Pedido, error) {
	query := `
		SELECT id, empresa_id, cliente_id, tipo, status, data, COALESCE(condicao_id, ''),
			subtotal, desconto_valor, desconto_percentual, frete, outras_taxas, total,
			created_at, updated_at
		FROM pedidos WHERE cliente_id = $1 ORDER BY data DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clienteID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.ClienteID, &p.Tipo, &p.Status, &p.Data,
			&p.CondicaoID, &p.Subtotal, &p.DescontoValor, &p.DescontoPercentual, &p.Frete,
			&p.OutrasTaxas, &p.Total, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateTotais regrava os totais após recálculo a partir dos itens.
func (r *PedidoRepo) UpdateTotais(pedido *entity.Pedido) error {
	query := `
		UPDATE pedidos SET subtotal = $2, desconto_valor = $3, desconto_percentual = $4,
			frete = $5, outras_taxas = $6, total = $7, condicao_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.Subtotal, pedido.DescontoValor, pedido.DescontoPercentual,
		pedido.Frete, pedido.OutrasTaxas, pedido.Total, nullIfEmpty(pedido.CondicaoID),
		pedido.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update totais: %w", err)
	}
	return nil
}

// UpdateStatus regrava só o status (conclusão ou cancelamento).
func (r *PedidoRepo) UpdateStatus(pedido *entity.Pedido) error {
	query := `UPDATE pedidos SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, pedido.ID, pedido.Status, pedido.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update status pedido: %w", err)
	}
	return nil
}

// DeleteItens remove todas as linhas do pedido (substituição em recálculo).
func (r *PedidoRepo) DeleteItens(pedidoID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM itens_pedido WHERE pedido_id = $1`, pedidoID)
	if err != nil {
		return fmt.Errorf("delete itens: %w", err)
	}
	return nil
}

// nullIfEmpty converte string vazia em NULL (colunas FK opcionais).
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
