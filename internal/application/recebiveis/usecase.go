package recebiveis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
	"github.com/gestaofacil/recebiveis-api/internal/domain"
	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
	"github.com/gestaofacil/recebiveis-api/pkg/logger"
)

// DuplicataUseCase casos de uso do razão de duplicatas: emissão,
// cancelamento, consulta e PDF.
type DuplicataUseCase struct {
	duplicataRepo repository.DuplicataRepository
	parcelaRepo   repository.ParcelaRepository
	clienteRepo   repository.ClienteRepository
	empresaRepo   repository.EmpresaRepository
	baixaRepo     repository.BaixaRepository
	pdfGenerator  DuplicataPDFGenerator
	log           *logger.Logger
}

// NewDuplicataUseCase constrói o caso de uso.
func NewDuplicataUseCase(
	duplicataRepo repository.DuplicataRepository,
	parcelaRepo repository.ParcelaRepository,
	clienteRepo repository.ClienteRepository,
	empresaRepo repository.EmpresaRepository,
	baixaRepo repository.BaixaRepository,
	pdfGenerator DuplicataPDFGenerator,
	log *logger.Logger,
) *DuplicataUseCase {
	return &DuplicataUseCase{
		duplicataRepo: duplicataRepo,
		parcelaRepo:   parcelaRepo,
		clienteRepo:   clienteRepo,
		empresaRepo:   empresaRepo,
		baixaRepo:     baixaRepo,
		pdfGenerator:  pdfGenerator,
		log:           log,
	}
}

// EmitirDuplicata emite uma duplicata avulsa ou vinculada a uma parcela.
//
// Valor <= 0 é rejeitado com ErrValorInvalido. Várias duplicatas contra a
// mesma parcela são legais (divisão deliberada de uma parcela em títulos
// menores); quando a soma emitida diverge do saldo em aberto da parcela o
// caso de uso devolve a duplicata com um alerta preenchido e loga WARN;
// nunca bloqueia. Número repetido na empresa vira ErrDuplicado.
func (uc *DuplicataUseCase) EmitirDuplicata(ctx context.Context, empresaID string, in dto.EmitirDuplicataRequest) (*dto.DuplicataResponse, error) {
	if in.ClienteID == "" || in.Numero == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Valor.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrValorInvalido
	}

	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil || cliente == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}

	existente, _ := uc.duplicataRepo.GetByEmpresaENumero(empresaID, in.Numero)
	if existente != nil {
		return nil, domain.ErrDuplicado
	}

	now := time.Now()
	emissao := in.Emissao
	if emissao.IsZero() {
		emissao = now
	}
	vencimento := in.Vencimento
	if vencimento.IsZero() {
		vencimento = emissao
	}

	d := &entity.Duplicata{
		ID:            uuid.New().String(),
		EmpresaID:     empresaID,
		ClienteID:     cliente.ID,
		Numero:        in.Numero,
		Emissao:       emissao,
		Vencimento:    vencimento,
		ValorOriginal: in.Valor.Round(2),
		ValorAberto:   in.Valor.Round(2),
		Status:        entity.DuplicataAberta,
		Versao:        1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var alerta string
	if in.ParcelaID != "" {
		parcela, err := uc.parcelaRepo.GetByID(in.ParcelaID)
		if err != nil || parcela == nil {
			return nil, domain.ErrNaoEncontrado
		}
		if parcela.Status == entity.ParcelaCancelada {
			return nil, domain.ErrEntradaInvalida
		}
		d.ParcelaID = &parcela.ID
		d.PedidoID = &parcela.PedidoID

		// Soma do que já foi emitido contra a parcela mais esta emissão,
		// comparada ao saldo em aberto dela: divergência gera alerta
		emitidas, err := uc.duplicataRepo.ListByParcela(parcela.ID)
		if err != nil {
			return nil, err
		}
		somaEmitida := d.ValorOriginal
		for _, e := range emitidas {
			if e.Status != entity.DuplicataCancelada {
				somaEmitida = somaEmitida.Add(e.ValorOriginal)
			}
		}
		if !somaEmitida.Equal(parcela.SaldoAberto()) {
			alerta = fmt.Sprintf(
				"soma das duplicatas da parcela (%s) difere do saldo em aberto (%s)",
				somaEmitida.StringFixed(2), parcela.SaldoAberto().StringFixed(2),
			)
			uc.log.Warn().
				Str("parcela_id", parcela.ID).
				Str("soma_emitida", somaEmitida.StringFixed(2)).
				Str("saldo_parcela", parcela.SaldoAberto().StringFixed(2)).
				Msg("emissão de duplicata diverge do saldo da parcela")
		}
	}

	if err := uc.duplicataRepo.Create(d); err != nil {
		return nil, err
	}
	resp := toDuplicataResponse(d)
	resp.Alerta = alerta
	return resp, nil
}

// CancelarDuplicata cancela uma duplicata ABERTA ou PARCIAL.
// O saldo em aberto é congelado (não zerado) para fins de auditoria.
// Duplicata LIQUIDADA devolve ErrDuplicataLiquidada; já cancelada,
// ErrDuplicataTerminal. A escrita usa a guarda otimista de versão.
func (uc *DuplicataUseCase) CancelarDuplicata(ctx context.Context, empresaID, id string, in dto.CancelarRequest) (*dto.DuplicataResponse, error) {
	d, err := uc.duplicataRepo.GetByID(id)
	if err != nil || d == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if d.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}
	switch d.Status {
	case entity.DuplicataLiquidada:
		return nil, domain.ErrDuplicataLiquidada
	case entity.DuplicataCancelada:
		return nil, domain.ErrDuplicataTerminal
	}

	versaoLida := d.Versao
	d.Status = entity.DuplicataCancelada
	d.MotivoCancelamento = in.Motivo
	d.UpdatedAt = time.Now()
	if err := uc.duplicataRepo.UpdateSaldo(d, versaoLida); err != nil {
		return nil, err
	}
	return toDuplicataResponse(d), nil
}

// GetDuplicata devolve a duplicata por id.
func (uc *DuplicataUseCase) GetDuplicata(_ context.Context, empresaID, id string) (*dto.DuplicataResponse, error) {
	d, err := uc.duplicataRepo.GetByID(id)
	if err != nil || d == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if d.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}
	return toDuplicataResponse(d), nil
}

// ListDuplicatas lista as duplicatas de um cliente.
func (uc *DuplicataUseCase) ListDuplicatas(_ context.Context, empresaID, clienteID string, limit, offset int) ([]dto.DuplicataResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(clienteID)
	if err != nil || cliente == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}
	duplicatas, err := uc.duplicataRepo.ListByCliente(clienteID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DuplicataResponse, 0, len(duplicatas))
	for _, d := range duplicatas {
		out = append(out, *toDuplicataResponse(d))
	}
	return out, nil
}

// GerarPDF monta a representação imprimível da duplicata.
func (uc *DuplicataUseCase) GerarPDF(ctx context.Context, empresaID, id string) ([]byte, error) {
	d, err := uc.duplicataRepo.GetByID(id)
	if err != nil || d == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if d.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}
	empresa, err := uc.empresaRepo.GetByID(empresaID)
	if err != nil || empresa == nil {
		return nil, domain.ErrNaoEncontrado
	}
	cliente, err := uc.clienteRepo.GetByID(d.ClienteID)
	if err != nil || cliente == nil {
		return nil, domain.ErrNaoEncontrado
	}
	baixas, err := uc.baixaRepo.ListByDuplicata(d.ID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateDuplicataPDF(ctx, d, empresa, cliente, baixas)
}

func toDuplicataResponse(d *entity.Duplicata) *dto.DuplicataResponse {
	resp := &dto.DuplicataResponse{
		ID:            d.ID,
		ClienteID:     d.ClienteID,
		Numero:        d.Numero,
		Emissao:       d.Emissao,
		Vencimento:    d.Vencimento,
		ValorOriginal: d.ValorOriginal,
		ValorAberto:   d.ValorAberto,
		Status:        d.Status,
	}
	if d.ParcelaID != nil {
		resp.ParcelaID = *d.ParcelaID
	}
	if d.PedidoID != nil {
		resp.PedidoID = *d.PedidoID
	}
	return resp
}
