package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestaofacil/recebiveis-api/internal/domain"
	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
)

var _ repository.CondicaoPagamentoRepository = (*CondicaoPagamentoRepo)(nil)

// CondicaoPagamentoRepo implementação de CondicaoPagamentoRepository.
type CondicaoPagamentoRepo struct {
	q Querier
}

// NewCondicaoPagamentoRepository constrói o adaptador.
func NewCondicaoPagamentoRepository(q Querier) *CondicaoPagamentoRepo {
	return &CondicaoPagamentoRepo{q: q}
}

// Create persiste a condição e seu cronograma de parcelas.
func (r *CondicaoPagamentoRepo) Create(cond *entity.CondicaoPagamento) error {
	query := `
		INSERT INTO condicoes_pagamento (id, empresa_id, descricao, prazo_dias, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		cond.ID, cond.EmpresaID, cond.Descricao, cond.PrazoDias, cond.CreatedAt, cond.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert condicao: %w", err)
	}
	for _, pc := range cond.Parcelas {
		itemQuery := `
			INSERT INTO condicoes_pagamento_parcelas (id, condicao_id, numero, percentual, dias)
			VALUES ($1, $2, $3, $4, $5)`
		if _, err := r.q.Exec(context.Background(), itemQuery,
			pc.ID, cond.ID, pc.Numero, pc.Percentual, pc.Dias); err != nil {
			return fmt.Errorf("insert parcela da condicao: %w", err)
		}
	}
	return nil
}

// GetByID obtém a condição com o cronograma carregado.
func (r *CondicaoPagamentoRepo) GetByID(id string) (*entity.CondicaoPagamento, error) {
	query := `
		SELECT id, empresa_id, descricao, prazo_dias, created_at, updated_at
		FROM condicoes_pagamento WHERE id = $1`
	var c entity.CondicaoPagamento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.EmpresaID, &c.Descricao, &c.PrazoDias, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get condicao: %w", err)
	}
	parcelas, err := r.listParcelas(c.ID)
	if err != nil {
		return nil, err
	}
	c.Parcelas = parcelas
	return &c, nil
}

// ListByEmpresa lista as condições da empresa com cronogramas.
func (r *CondicaoPagamentoRepo) ListByEmpresa(empresaID string) ([]*entity.CondicaoPagamento, error) {
	query := `
		SELECT id, empresa_id, descricao, prazo_dias, created_at, updated_at
		FROM condicoes_pagamento WHERE empresa_id = $1 ORDER BY descricao`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list condicoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.CondicaoPagamento
	for rows.Next() {
		var c entity.CondicaoPagamento
		if err := rows.Scan(&c.ID, &c.EmpresaID, &c.Descricao, &c.PrazoDias,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan condicao: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range list {
		parcelas, err := r.listParcelas(c.ID)
		if err != nil {
			return nil, err
		}
		c.Parcelas = parcelas
	}
	return list, nil
}

func (r *CondicaoPagamentoRepo) listParcelas(condicaoID string) ([]entity.ParcelaCondicao, error) {
	query := `
		SELECT id, condicao_id, numero, percentual, dias
		FROM condicoes_pagamento_parcelas WHERE condicao_id = $1 ORDER BY numero`
	rows, err := r.q.Query(context.Background(), query, condicaoID)
	if err != nil {
		return nil, fmt.Errorf("list parcelas da condicao: %w", err)
	}
	defer rows.Close()
	var list []entity.ParcelaCondicao
	for rows.Next() {
		var pc entity.ParcelaCondicao
		if err := rows.Scan(&pc.ID, &pc.CondicaoID, &pc.Numero, &pc.Percentual, &pc.Dias); err != nil {
			return nil, fmt.Errorf("scan parcela da condicao: %w", err)
		}
		list = append(list, pc)
	}
	return list, rows.Err()
}
