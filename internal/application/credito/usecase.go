package credito

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
	"github.com/gestaofacil/recebiveis-api/internal/domain"
	"github.com/gestaofacil/recebiveis-api/internal/domain/financeiro"
	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
)

// CreditoUseCase avalia o limite de crédito de um cliente.
// Somente leitura: recalcula a exposição sob demanda e nunca muta estado.
type CreditoUseCase struct {
	clienteRepo   repository.ClienteRepository
	duplicataRepo repository.DuplicataRepository
	parcelaRepo   repository.ParcelaRepository
}

// NewCreditoUseCase constrói o caso de uso.
func NewCreditoUseCase(
	clienteRepo repository.ClienteRepository,
	duplicataRepo repository.DuplicataRepository,
	parcelaRepo repository.ParcelaRepository,
) *CreditoUseCase {
	return &CreditoUseCase{
		clienteRepo:   clienteRepo,
		duplicataRepo: duplicataRepo,
		parcelaRepo:   parcelaRepo,
	}
}

// AvaliarLimite devolve o snapshot derivado {limite, utilizado,
// disponível, excedido} para um cliente e um valor candidato de pedido.
// A resposta é consultiva: quem bloqueia (ou não) é o chamador.
func (uc *CreditoUseCase) AvaliarLimite(_ context.Context, empresaID, clienteID string, valorCandidato decimal.Decimal) (*dto.SnapshotLimiteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(clienteID)
	if err != nil || cliente == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}
	duplicatas, err := uc.duplicataRepo.ListAbertasByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	parcelas, err := uc.parcelaRepo.ListAbertasByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	utilizado := financeiro.CalcularUtilizado(duplicatas, parcelas)
	s := financeiro.AvaliarLimite(cliente.LimiteCredito, utilizado, valorCandidato)
	return &dto.SnapshotLimiteResponse{
		ClienteID:  clienteID,
		Limite:     s.Limite,
		Utilizado:  s.Utilizado,
		Disponivel: s.Disponivel,
		Excedido:   s.Excedido,
	}, nil
}
