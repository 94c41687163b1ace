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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação de ClienteRepository (usável com pool ou tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, empresa_id, nome, documento, email, telefone, limite_credito, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.EmpresaID, cliente.Nome, cliente.Documento, cliente.Email,
		cliente.Telefone, cliente.LimiteCredito, cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `
		SELECT id, empresa_id, nome, documento, email, telefone, limite_credito, created_at, updated_at
		FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.EmpresaID, &c.Nome, &c.Documento, &c.Email, &c.Telefone,
		&c.LimiteCredito, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// GetByEmpresaEDocumento obtém um cliente por empresa e CNPJ/CPF.
func (r *ClienteRepo) GetByEmpresaEDocumento(empresaID, documento string) (*entity.Cliente, error) {
	query := `
		SELECT id, empresa_id, nome, documento, email, telefone, limite_credito, created_at, updated_at
		FROM clientes WHERE empresa_id = $1 AND documento = $2`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, empresaID, documento).Scan(
		&c.ID, &c.EmpresaID, &c.Nome, &c.Documento, &c.Email, &c.Telefone,
		&c.LimiteCredito, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by documento: %w", err)
	}
	return &c, nil
}

// ListByEmpresa lista clientes da empresa com paginação.
func (r *ClienteRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT id, empresa_id, nome, documento, email, telefone, limite_credito, created_at, updated_at
		FROM clientes WHERE empresa_id = $1 ORDER BY nome LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.EmpresaID, &c.Nome, &c.Documento, &c.Email, &c.Telefone,
			&c.LimiteCredito, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza os dados cadastrais de um cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET nome = $2, documento = $3, email = $4, telefone = $5, limite_credito = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nome, cliente.Documento, cliente.Email, cliente.Telefone,
		cliente.LimiteCredito, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}
