package pedidos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
	"github.com/gestaofacil/recebiveis-api/internal/domain"
	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
)

// CondicaoUseCase cadastra e lista condições de pagamento. Para o núcleo
// financeiro a condição é configuração somente leitura; aqui fica só o
// seed e a consulta.
type CondicaoUseCase struct {
	txRunner     CondicaoTxRunner
	condicaoRepo repository.CondicaoPagamentoRepository
}

// NewCondicaoUseCase constrói o caso de uso.
func NewCondicaoUseCase(txRunner CondicaoTxRunner, condicaoRepo repository.CondicaoPagamentoRepository) *CondicaoUseCase {
	return &CondicaoUseCase{txRunner: txRunner, condicaoRepo: condicaoRepo}
}

// Create cadastra uma condição. Com cronograma, cada item precisa de
// percentual positivo; os números são normalizados para 1..N. Cabeçalho e
// itens gravam na mesma transação.
func (uc *CondicaoUseCase) Create(ctx context.Context, empresaID string, in dto.CriarCondicaoRequest) (*dto.CondicaoResponse, error) {
	if in.Descricao == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if len(in.Parcelas) == 0 && in.PrazoDias < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	cond := &entity.CondicaoPagamento{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Descricao: in.Descricao,
		PrazoDias: in.PrazoDias,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i, pc := range in.Parcelas {
		if pc.Percentual.LessThanOrEqual(decimal.Zero) || pc.Dias < 0 {
			return nil, domain.ErrEntradaInvalida
		}
		cond.Parcelas = append(cond.Parcelas, entity.ParcelaCondicao{
			ID:         uuid.New().String(),
			CondicaoID: cond.ID,
			Numero:     i + 1,
			Percentual: pc.Percentual,
			Dias:       pc.Dias,
		})
	}
	err := uc.txRunner.RunCondicoes(ctx, func(condicaoRepo repository.CondicaoPagamentoRepository) error {
		return condicaoRepo.Create(cond)
	})
	if err != nil {
		return nil, err
	}
	return toCondicaoResponse(cond), nil
}

// List lista as condições da empresa.
func (uc *CondicaoUseCase) List(empresaID string) ([]dto.CondicaoResponse, error) {
	conds, err := uc.condicaoRepo.ListByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CondicaoResponse, 0, len(conds))
	for _, c := range conds {
		out = append(out, *toCondicaoResponse(c))
	}
	return out, nil
}

func toCondicaoResponse(cond *entity.CondicaoPagamento) *dto.CondicaoResponse {
	resp := &dto.CondicaoResponse{
		ID:        cond.ID,
		Descricao: cond.Descricao,
		PrazoDias: cond.PrazoDias,
		CreatedAt: cond.CreatedAt,
	}
	for _, pc := range cond.Parcelas {
		resp.Parcelas = append(resp.Parcelas, dto.ParcelaCondicaoResponse{
			Numero:     pc.Numero,
			Percentual: pc.Percentual,
			Dias:       pc.Dias,
		})
	}
	return resp
}
