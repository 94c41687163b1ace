package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
)

var _ repository.BaixaRepository = (*BaixaRepo)(nil)

// BaixaRepo implementação de BaixaRepository (usável com pool ou tx).
type BaixaRepo struct {
	q Querier
}

// NewBaixaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewBaixaRepository(q Querier) *BaixaRepo {
	return &BaixaRepo{q: q}
}

// Create persiste uma baixa.
func (r *BaixaRepo) Create(b *entity.Baixa) error {
	query := `
		INSERT INTO baixas (id, duplicata_id, valor_pago, juros, multa, desconto, valor_liquido,
			data_pagamento, metodo, estornada, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.DuplicataID, b.ValorPago, b.Juros, b.Multa, b.Desconto, b.ValorLiquido,
		b.DataPagamento, b.Metodo, b.Estornada, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert baixa: %w", err)
	}
	return nil
}

// GetByID obtém uma baixa por ID.
func (r *BaixaRepo) GetByID(id string) (*entity.Baixa, error) {
	query := `
		SELECT id, duplicata_id, valor_pago, juros, multa, desconto, valor_liquido,
			data_pagamento, metodo, estornada, COALESCE(motivo_estorno, ''), created_at, updated_at
		FROM baixas WHERE id = $1`
	var b entity.Baixa
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.DuplicataID, &b.ValorPago, &b.Juros, &b.Multa, &b.Desconto,
		&b.ValorLiquido, &b.DataPagamento, &b.Metodo, &b.Estornada, &b.MotivoEstorno,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get baixa: %w", err)
	}
	return &b, nil
}

// ListByDuplicata lista as baixas de uma duplicata, estornadas incluídas.
func (r *BaixaRepo) ListByDuplicata(duplicataID string) ([]*entity.Baixa, error) {
	query := `
		SELECT id, duplicata_id, valor_pago, juros, multa, desconto, valor_liquido,
			data_pagamento, metodo, estornada, COALESCE(motivo_estorno, ''), created_at, updated_at
		FROM baixas WHERE duplicata_id = $1 ORDER BY data_pagamento`
	rows, err := r.q.Query(context.Background(), query, duplicataID)
	if err != nil {
		return nil, fmt.Errorf("list baixas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Baixa
	for rows.Next() {
		var b entity.Baixa
		if err := rows.Scan(&b.ID, &b.DuplicataID, &b.ValorPago, &b.Juros, &b.Multa,
			&b.Desconto, &b.ValorLiquido, &b.DataPagamento, &b.Metodo, &b.Estornada,
			&b.MotivoEstorno, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan baixa: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// MarcarEstornada grava estornada=true e o motivo; a baixa nunca é apagada.
func (r *BaixaRepo) MarcarEstornada(b *entity.Baixa) error {
	query := `UPDATE baixas SET estornada = true, motivo_estorno = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, b.ID, b.MotivoEstorno)
	if err != nil {
		return fmt.Errorf("estornar baixa: %w", err)
	}
	return nil
}
