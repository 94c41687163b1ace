package recebiveis

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
	"github.com/gestaofacil/recebiveis-api/internal/domain"
	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
)

// ClienteUseCase casos de uso de clientes (contrapartes dos recebíveis).
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create cria um novo cliente.
func (uc *ClienteUseCase) Create(empresaID string, in dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nome == "" || in.Documento == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existente, _ := uc.repo.GetByEmpresaEDocumento(empresaID, in.Documento)
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:            uuid.New().String(),
		EmpresaID:     empresaID,
		Nome:          in.Nome,
		Documento:     in.Documento,
		Email:         in.Email,
		Telefone:      in.Telefone,
		LimiteCredito: in.LimiteCredito,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtém um cliente por id.
func (uc *ClienteUseCase) GetByID(empresaID, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil || cliente == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}
	return toClienteResponse(cliente), nil
}

// List lista os clientes da empresa com paginação.
func (uc *ClienteUseCase) List(empresaID string, limit, offset int) ([]dto.ClienteResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	clientes, err := uc.repo.ListByEmpresa(empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, *toClienteResponse(c))
	}
	return out, nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:            c.ID,
		EmpresaID:     c.EmpresaID,
		Nome:          c.Nome,
		Documento:     c.Documento,
		Email:         c.Email,
		Telefone:      c.Telefone,
		LimiteCredito: c.LimiteCredito,
		CreatedAt:     c.CreatedAt,
	}
}
