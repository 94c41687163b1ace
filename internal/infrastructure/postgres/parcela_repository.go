package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
)

var _ repository.ParcelaRepository = (*ParcelaRepo)(nil)

// ParcelaRepo implementação de ParcelaRepository (usável com pool ou tx).
type ParcelaRepo struct {
	q Querier
}

// NewParcelaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewParcelaRepository(q Querier) *ParcelaRepo {
	return &ParcelaRepo{q: q}
}

// Create persiste uma parcela planejada.
func (r *ParcelaRepo) Create(parcela *entity.Parcela) error {
	query := `
		INSERT INTO parcelas (id, pedido_id, numero, total_parcelas, valor, valor_pago,
			vencimento, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		parcela.ID, parcela.PedidoID, parcela.Numero, parcela.TotalParcelas,
		parcela.Valor, parcela.ValorPago, parcela.Vencimento, parcela.Status,
		parcela.CreatedAt, parcela.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert parcela: %w", err)
	}
	return nil
}

// GetByID obtém uma parcela por ID.
func (r *ParcelaRepo) GetByID(id string) (*entity.Parcela, error) {
	query := `
		SELECT id, pedido_id, numero, total_parcelas, valor, valor_pago, vencimento, status,
			created_at, updated_at
		FROM parcelas WHERE id = $1`
	var p entity.Parcela
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.PedidoID, &p.Numero, &p.TotalParcelas, &p.Valor, &p.ValorPago,
		&p.Vencimento, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parcela: %w", err)
	}
	return &p, nil
}

// ListByPedido lista as parcelas de um pedido em ordem de número.
func (r *ParcelaRepo) ListByPedido(pedidoID string) ([]*entity.Parcela, error) {
	query := `
		SELECT id, pedido_id, numero, total_parcelas, valor, valor_pago, vencimento, status,
			created_at, updated_at
		FROM parcelas WHERE pedido_id = $1 ORDER BY numero`
	return r.list(query, pedidoID)
}

// ListAbertasByCliente lista parcelas não canceladas e não pagas dos pedidos
// de venda do cliente (insumo da avaliação de crédito).
func (r *ParcelaRepo) ListAbertasByCliente(clienteID string) ([]*entity.Parcela, error) {
	query := `
		SELECT p.id, p.pedido_id, p.numero, p.total_parcelas, p.valor, p.valor_pago,
			p.vencimento, p.status, p.created_at, p.updated_at
		FROM parcelas p
		JOIN pedidos pd ON pd.id = p.pedido_id
		WHERE pd.cliente_id = $1 AND pd.tipo = 'VENDA'
			AND p.status IN ('ABERTA', 'PARCIAL')
		ORDER BY p.vencimento`
	return r.list(query, clienteID)
}

func (r *ParcelaRepo) list(query string, args ...any) ([]*entity.Parcela, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parcelas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Parcela
	for rows.Next() {
		var p entity.Parcela
		if err := rows.Scan(&p.ID, &p.PedidoID, &p.Numero, &p.TotalParcelas, &p.Valor,
			&p.ValorPago, &p.Vencimento, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan parcela: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateValorPago regrava valor_pago e o status derivado.
func (r *ParcelaRepo) UpdateValorPago(parcela *entity.Parcela) error {
	query := `UPDATE parcelas SET valor_pago = $2, status = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, parcela.ID, parcela.ValorPago, parcela.Status)
	if err != nil {
		return fmt.Errorf("update valor_pago: %w", err)
	}
	return nil
}

// CancelarByPedido marca todas as parcelas do pedido como CANCELADA.
func (r *ParcelaRepo) CancelarByPedido(pedidoID string) error {
	query := `UPDATE parcelas SET status = $2, updated_at = now() WHERE pedido_id = $1`
	_, err := r.q.Exec(context.Background(), query, pedidoID, entity.ParcelaCancelada)
	if err != nil {
		return fmt.Errorf("cancelar parcelas: %w", err)
	}
	return nil
}

// DeleteByPedido remove as parcelas do pedido (replanejamento sem pagamentos).
func (r *ParcelaRepo) DeleteByPedido(pedidoID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parcelas WHERE pedido_id = $1`, pedidoID)
	if err != nil {
		return fmt.Errorf("delete parcelas: %w", err)
	}
	return nil
}
