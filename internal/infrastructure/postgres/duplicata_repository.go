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

var _ repository.DuplicataRepository = (*DuplicataRepo)(nil)

// DuplicataRepo implementação de DuplicataRepository (usável com pool ou tx).
type DuplicataRepo struct {
	q Querier
}

// NewDuplicataRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewDuplicataRepository(q Querier) *DuplicataRepo {
	return &DuplicataRepo{q: q}
}

const duplicataCols = `id, empresa_id, cliente_id, parcela_id, pedido_id, numero, emissao,
	vencimento, valor_original, valor_aberto, status, COALESCE(motivo_cancelamento, ''),
	versao, created_at, updated_at`

// Create persiste uma nova duplicata com versão inicial.
func (r *DuplicataRepo) Create(d *entity.Duplicata) error {
	query := `
		INSERT INTO duplicatas (id, empresa_id, cliente_id, parcela_id, pedido_id, numero,
			emissao, vencimento, valor_original, valor_aberto, status, versao, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.EmpresaID, d.ClienteID, d.ParcelaID, d.PedidoID, d.Numero,
		d.Emissao, d.Vencimento, d.ValorOriginal, d.ValorAberto, d.Status, d.Versao,
		d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert duplicata: %w", err)
	}
	return nil
}

// GetByID obtém uma duplicata por ID.
func (r *DuplicataRepo) GetByID(id string) (*entity.Duplicata, error) {
	query := `SELECT ` + duplicataCols + ` FROM duplicatas WHERE id = $1`
	return r.get(query, id)
}

// GetByEmpresaENumero obtém uma duplicata pelo número dentro da empresa.
func (r *DuplicataRepo) GetByEmpresaENumero(empresaID, numero string) (*entity.Duplicata, error) {
	query := `SELECT ` + duplicataCols + ` FROM duplicatas WHERE empresa_id = $1 AND numero = $2`
	return r.get(query, empresaID, numero)
}

func (r *DuplicataRepo) get(query string, args ...any) (*entity.Duplicata, error) {
	var d entity.Duplicata
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&d.ID, &d.EmpresaID, &d.ClienteID, &d.ParcelaID, &d.PedidoID, &d.Numero,
		&d.Emissao, &d.Vencimento, &d.ValorOriginal, &d.ValorAberto, &d.Status,
		&d.MotivoCancelamento, &d.Versao, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get duplicata: %w", err)
	}
	return &d, nil
}

// ListByCliente lista duplicatas de um cliente, vencimento mais próximo primeiro.
func (r *DuplicataRepo) ListByCliente(clienteID string, limit, offset int) ([]*entity.Duplicata, error) {
	query := `SELECT ` + duplicataCols + `
		FROM duplicatas WHERE cliente_id = $1 ORDER BY vencimento LIMIT $2 OFFSET $3`
	return r.list(query, clienteID, limit, offset)
}

// ListByParcela lista as duplicatas emitidas contra uma parcela.
func (r *DuplicataRepo) ListByParcela(parcelaID string) ([]*entity.Duplicata, error) {
	query := `SELECT ` + duplicataCols + `
		FROM duplicatas WHERE parcela_id = $1 ORDER BY emissao`
	return r.list(query, parcelaID)
}

// ListAbertasByCliente lista as duplicatas com saldo do cliente
// (insumo da avaliação de crédito).
func (r *DuplicataRepo) ListAbertasByCliente(clienteID string) ([]*entity.Duplicata, error) {
	query := `SELECT ` + duplicataCols + `
		FROM duplicatas WHERE cliente_id = $1 AND status IN ('ABERTA', 'PARCIAL')
		ORDER BY vencimento`
	return r.list(query, clienteID)
}

func (r *DuplicataRepo) list(query string, args ...any) ([]*entity.Duplicata, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list duplicatas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Duplicata
	for rows.Next() {
		var d entity.Duplicata
		if err := rows.Scan(&d.ID, &d.EmpresaID, &d.ClienteID, &d.ParcelaID, &d.PedidoID,
			&d.Numero, &d.Emissao, &d.Vencimento, &d.ValorOriginal, &d.ValorAberto,
			&d.Status, &d.MotivoCancelamento, &d.Versao, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan duplicata: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateSaldo regrava valor_aberto, status e motivo de cancelamento com guarda
// otimista: a escrita só acontece se a versão no banco ainda for versaoEsperada.
// Zero linhas afetadas significa que outro escritor passou na frente.
func (r *DuplicataRepo) UpdateSaldo(d *entity.Duplicata, versaoEsperada int) error {
	query := `
		UPDATE duplicatas
		SET valor_aberto = $2, status = $3, motivo_cancelamento = $4, versao = versao + 1,
			updated_at = now()
		WHERE id = $1 AND versao = $5`
	tag, err := r.q.Exec(context.Background(), query,
		d.ID, d.ValorAberto, d.Status, d.MotivoCancelamento, versaoEsperada,
	)
	if err != nil {
		return fmt.Errorf("update saldo duplicata: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflitoConcorrencia
	}
	return nil
}
