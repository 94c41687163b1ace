package postgres

import (
	"context"
	"fmt"

	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
)

var _ repository.ChequeRepository = (*ChequeRepo)(nil)

// ChequeRepo implementação de ChequeRepository (usável com pool ou tx).
type ChequeRepo struct {
	q Querier
}

// NewChequeRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewChequeRepository(q Querier) *ChequeRepo {
	return &ChequeRepo{q: q}
}

// Create persiste um cheque do sub-razão.
func (r *ChequeRepo) Create(c *entity.Cheque) error {
	query := `
		INSERT INTO cheques (id, baixa_id, titular, documento_titular, banco, agencia, conta,
			numero, valor, bom_para, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.BaixaID, c.Titular, c.DocumentoTitular, c.Banco, c.Agencia, c.Conta,
		c.Numero, c.Valor, c.BomPara, c.Status, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cheque: %w", err)
	}
	return nil
}

// ListByBaixa lista os cheques anexados a uma baixa.
func (r *ChequeRepo) ListByBaixa(baixaID string) ([]*entity.Cheque, error) {
	query := `
		SELECT id, baixa_id, titular, documento_titular, banco, agencia, conta, numero,
			valor, bom_para, status, created_at
		FROM cheques WHERE baixa_id = $1 ORDER BY numero`
	rows, err := r.q.Query(context.Background(), query, baixaID)
	if err != nil {
		return nil, fmt.Errorf("list cheques: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cheque
	for rows.Next() {
		var c entity.Cheque
		if err := rows.Scan(&c.ID, &c.BaixaID, &c.Titular, &c.DocumentoTitular, &c.Banco,
			&c.Agencia, &c.Conta, &c.Numero, &c.Valor, &c.BomPara, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cheque: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
