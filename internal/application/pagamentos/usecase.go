package pagamentos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
	"github.com/gestaofacil/recebiveis-api/internal/domain"
	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
	"github.com/gestaofacil/recebiveis-api/internal/domain/financeiro"
	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
	"github.com/gestaofacil/recebiveis-api/pkg/logger"
)

var metodosValidos = map[string]bool{
	entity.MetodoDinheiro:      true,
	entity.MetodoPix:           true,
	entity.MetodoTransferencia: true,
	entity.MetodoCartao:        true,
	entity.MetodoCheque:        true,
}

// BaixaUseCase é o motor de baixas e estornos de duplicatas.
//
// Cada operação roda em uma única transação: lê saldos, valida tudo antes
// de qualquer escrita e regrava os saldos com guarda otimista de versão.
// Duas baixas concorrentes contra a mesma duplicata, ambas validadas sobre
// o mesmo saldo, não podem juntas estourar o título: a segunda escrita
// perde a corrida de versão e devolve ErrConflitoConcorrencia.
type BaixaUseCase struct {
	txRunner      TxRunner
	duplicataRepo repository.DuplicataRepository
	baixaRepo     repository.BaixaRepository
	chequeRepo    repository.ChequeRepository
	log           *logger.Logger
}

// NewBaixaUseCase constrói o caso de uso.
func NewBaixaUseCase(
	txRunner TxRunner,
	duplicataRepo repository.DuplicataRepository,
	baixaRepo repository.BaixaRepository,
	chequeRepo repository.ChequeRepository,
	log *logger.Logger,
) *BaixaUseCase {
	return &BaixaUseCase{
		txRunner:      txRunner,
		duplicataRepo: duplicataRepo,
		baixaRepo:     baixaRepo,
		chequeRepo:    chequeRepo,
		log:           log,
	}
}

// BaixarDuplicata aplica um recebimento contra uma duplicata.
//
// Ordem de validação (tudo antes de qualquer escrita):
//  1. duplicata LIQUIDADA ou CANCELADA -> ErrDuplicataTerminal;
//  2. líquido = pago + juros + multa - desconto; líquido acima do saldo em
//     aberto além da tolerância -> ErrPagamentoExcedente;
//  3. método CHEQUE exige ao menos um cheque completo cuja soma iguale o
//     valor pago dentro da tolerância -> ErrSomaCheques.
//
// Aplicação: saldo da duplicata diminui o líquido, status rederivado dos
// saldos; duplicata vinculada a parcela credita o mesmo líquido em
// valor_pago da parcela (limitado ao valor dela) e rederiva o status.
// Quando a última parcela do pedido chega a PAGA, o pedido vai a CONCLUIDO.
func (uc *BaixaUseCase) BaixarDuplicata(ctx context.Context, empresaID, duplicataID string, in dto.BaixarDuplicataRequest) (*dto.BaixaResponse, error) {
	if !metodosValidos[in.Metodo] {
		return nil, domain.ErrEntradaInvalida
	}
	if in.ValorPago.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrValorInvalido
	}
	if in.Juros.IsNegative() || in.Multa.IsNegative() || in.Desconto.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}

	var resp *dto.BaixaResponse
	err := uc.txRunner.RunPagamentos(ctx, func(
		duplicataRepo repository.DuplicataRepository,
		baixaRepo repository.BaixaRepository,
		chequeRepo repository.ChequeRepository,
		parcelaRepo repository.ParcelaRepository,
		pedidoRepo repository.PedidoRepository,
	) error {
		d, err := duplicataRepo.GetByID(duplicataID)
		if err != nil || d == nil {
			return domain.ErrNaoEncontrado
		}
		if d.EmpresaID != empresaID {
			return domain.ErrAcessoNegado
		}
		if d.Terminal() {
			return domain.ErrDuplicataTerminal
		}
		versaoLida := d.Versao

		liquido := financeiro.ValorLiquido(in.ValorPago, in.Juros, in.Multa, in.Desconto)
		if err := financeiro.ValidarBaixa(d.ValorAberto, liquido); err != nil {
			return err
		}

		now := time.Now()
		baixa := &entity.Baixa{
			ID:            uuid.New().String(),
			DuplicataID:   d.ID,
			ValorPago:     in.ValorPago.Round(2),
			Juros:         in.Juros.Round(2),
			Multa:         in.Multa.Round(2),
			Desconto:      in.Desconto.Round(2),
			ValorLiquido:  liquido,
			DataPagamento: dataPagamentoOuAgora(in.DataPagamento, now),
			Metodo:        in.Metodo,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		var cheques []*entity.Cheque
		if in.Metodo == entity.MetodoCheque {
			cheques = montarCheques(baixa.ID, in.Cheques, now)
			if err := financeiro.ValidarCheques(cheques, baixa.ValorPago); err != nil {
				return err
			}
		} else if len(in.Cheques) > 0 {
			return domain.ErrEntradaInvalida
		}

		// Toda validação passou: aplicar
		novoAberto := d.ValorAberto.Sub(liquido)
		if novoAberto.IsNegative() {
			// resto dentro do epsilon; o saldo nunca fica negativo
			novoAberto = decimal.Zero
		}
		d.ValorAberto = novoAberto
		d.Status = financeiro.StatusDuplicata(d.ValorOriginal, novoAberto)
		d.UpdatedAt = now
		if err := duplicataRepo.UpdateSaldo(d, versaoLida); err != nil {
			return err
		}
		if err := baixaRepo.Create(baixa); err != nil {
			return err
		}
		for _, ch := range cheques {
			if err := chequeRepo.Create(ch); err != nil {
				return err
			}
		}

		// Propagação de crédito na parcela vinculada
		if d.ParcelaID != nil {
			p, err := creditarParcela(parcelaRepo, *d.ParcelaID, liquido, now)
			if err != nil {
				return err
			}
			if err := sincronizarStatusPedido(pedidoRepo, parcelaRepo, p.PedidoID, now); err != nil {
				return err
			}
		}

		resp = toBaixaResponse(baixa, cheques, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// EstornarBaixa desfaz uma baixa aplicada, exatamente uma vez.
//
// O saldo da duplicata é restaurado com o líquido da baixa; se o
// arredondamento levaria o saldo acima do valor original, o excesso é
// truncado no original e logado como WARN (desvio de arredondamento de
// quem emitiu, não estado inseguro). A parcela vinculada sofre o ajuste
// inverso; um pedido CONCLUIDO cuja parcela reabre volta para ABERTO.
// A baixa e seus cheques permanecem no histórico.
func (uc *BaixaUseCase) EstornarBaixa(ctx context.Context, empresaID, baixaID string, in dto.CancelarRequest) (*dto.BaixaResponse, error) {
	var resp *dto.BaixaResponse
	err := uc.txRunner.RunPagamentos(ctx, func(
		duplicataRepo repository.DuplicataRepository,
		baixaRepo repository.BaixaRepository,
		chequeRepo repository.ChequeRepository,
		parcelaRepo repository.ParcelaRepository,
		pedidoRepo repository.PedidoRepository,
	) error {
		baixa, err := baixaRepo.GetByID(baixaID)
		if err != nil || baixa == nil {
			return domain.ErrNaoEncontrado
		}
		if baixa.Estornada {
			return domain.ErrBaixaJaEstornada
		}
		d, err := duplicataRepo.GetByID(baixa.DuplicataID)
		if err != nil || d == nil {
			return domain.ErrNaoEncontrado
		}
		if d.EmpresaID != empresaID {
			return domain.ErrAcessoNegado
		}
		if d.Status == entity.DuplicataCancelada {
			// CANCELADA é terminal; o saldo congelado não pode ser mexido
			return domain.ErrDuplicataTerminal
		}
		versaoLida := d.Versao

		now := time.Now()
		restaurado := d.ValorAberto.Add(baixa.ValorLiquido)
		if restaurado.GreaterThan(d.ValorOriginal) {
			uc.log.Warn().
				Str("duplicata_id", d.ID).
				Str("baixa_id", baixa.ID).
				Str("restaurado", restaurado.StringFixed(2)).
				Str("valor_original", d.ValorOriginal.StringFixed(2)).
				Msg("estorno ultrapassaria o valor original; saldo truncado")
			restaurado = d.ValorOriginal
		}
		d.ValorAberto = restaurado
		d.Status = financeiro.StatusDuplicata(d.ValorOriginal, restaurado)
		d.UpdatedAt = now
		if err := duplicataRepo.UpdateSaldo(d, versaoLida); err != nil {
			return err
		}

		baixa.Estornada = true
		baixa.MotivoEstorno = in.Motivo
		baixa.UpdatedAt = now
		if err := baixaRepo.MarcarEstornada(baixa); err != nil {
			return err
		}

		if d.ParcelaID != nil {
			p, err := debitarParcela(parcelaRepo, *d.ParcelaID, baixa.ValorLiquido, now)
			if err != nil {
				return err
			}
			if err := sincronizarStatusPedido(pedidoRepo, parcelaRepo, p.PedidoID, now); err != nil {
				return err
			}
		}

		cheques, err := chequeRepo.ListByBaixa(baixa.ID)
		if err != nil {
			return err
		}
		resp = toBaixaResponse(baixa, cheques, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListBaixas lista as baixas de uma duplicata com seus cheques.
func (uc *BaixaUseCase) ListBaixas(_ context.Context, empresaID, duplicataID string) ([]dto.BaixaResponse, error) {
	d, err := uc.duplicataRepo.GetByID(duplicataID)
	if err != nil || d == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if d.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}
	baixas, err := uc.baixaRepo.ListByDuplicata(duplicataID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BaixaResponse, 0, len(baixas))
	for _, b := range baixas {
		cheques, err := uc.chequeRepo.ListByBaixa(b.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toBaixaResponse(b, cheques, d))
	}
	return out, nil
}

// creditarParcela soma o líquido em valor_pago, limitado ao valor da
// parcela, e rederiva o status.
func creditarParcela(parcelaRepo repository.ParcelaRepository, parcelaID string, liquido decimal.Decimal, now time.Time) (*entity.Parcela, error) {
	p, err := parcelaRepo.GetByID(parcelaID)
	if err != nil || p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	pago := p.ValorPago.Add(liquido)
	if pago.GreaterThan(p.Valor) {
		pago = p.Valor
	}
	p.ValorPago = pago
	p.Status = financeiro.StatusParcela(p.Valor, pago)
	p.UpdatedAt = now
	if err := parcelaRepo.UpdateValorPago(p); err != nil {
		return nil, err
	}
	return p, nil
}

// debitarParcela subtrai o líquido de valor_pago, nunca abaixo de zero,
// e rederiva o status.
func debitarParcela(parcelaRepo repository.ParcelaRepository, parcelaID string, liquido decimal.Decimal, now time.Time) (*entity.Parcela, error) {
	p, err := parcelaRepo.GetByID(parcelaID)
	if err != nil || p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	pago := p.ValorPago.Sub(liquido)
	if pago.IsNegative() {
		pago = decimal.Zero
	}
	p.ValorPago = pago
	p.Status = financeiro.StatusParcela(p.Valor, pago)
	p.UpdatedAt = now
	if err := parcelaRepo.UpdateValorPago(p); err != nil {
		return nil, err
	}
	return p, nil
}

// sincronizarStatusPedido rederiva o status do pedido após movimento em uma
// parcela: todas as parcelas PAGA concluem o pedido; um estorno que reabre
// uma parcela devolve um pedido CONCLUIDO para ABERTO. Pedido cancelado
// nunca é tocado.
func sincronizarStatusPedido(pedidoRepo repository.PedidoRepository, parcelaRepo repository.ParcelaRepository, pedidoID string, now time.Time) error {
	pedido, err := pedidoRepo.GetByID(pedidoID)
	if err != nil || pedido == nil {
		return domain.ErrNaoEncontrado
	}
	if pedido.Status != entity.PedidoAberto && pedido.Status != entity.PedidoConcluido {
		return nil
	}
	parcelas, err := parcelaRepo.ListByPedido(pedidoID)
	if err != nil {
		return err
	}
	status := entity.PedidoAberto
	if todasPagas(parcelas) {
		status = entity.PedidoConcluido
	}
	if status == pedido.Status {
		return nil
	}
	pedido.Status = status
	pedido.UpdatedAt = now
	return pedidoRepo.UpdateStatus(pedido)
}

func todasPagas(parcelas []*entity.Parcela) bool {
	if len(parcelas) == 0 {
		return false
	}
	for _, p := range parcelas {
		if p.Status != entity.ParcelaPaga {
			return false
		}
	}
	return true
}

func montarCheques(baixaID string, in []dto.ChequeRequest, now time.Time) []*entity.Cheque {
	cheques := make([]*entity.Cheque, 0, len(in))
	for _, ch := range in {
		cheques = append(cheques, &entity.Cheque{
			ID:               uuid.New().String(),
			BaixaID:          baixaID,
			Titular:          ch.Titular,
			DocumentoTitular: ch.DocumentoTitular,
			Banco:            ch.Banco,
			Agencia:          ch.Agencia,
			Conta:            ch.Conta,
			Numero:           ch.Numero,
			Valor:            ch.Valor,
			BomPara:          ch.BomPara,
			Status:           entity.ChequeEmCarteira,
			CreatedAt:        now,
		})
	}
	return cheques
}

func dataPagamentoOuAgora(data time.Time, now time.Time) time.Time {
	if data.IsZero() {
		return now
	}
	return data
}

func toBaixaResponse(b *entity.Baixa, cheques []*entity.Cheque, d *entity.Duplicata) *dto.BaixaResponse {
	resp := &dto.BaixaResponse{
		ID:                   b.ID,
		DuplicataID:          b.DuplicataID,
		ValorPago:            b.ValorPago,
		Juros:                b.Juros,
		Multa:                b.Multa,
		Desconto:             b.Desconto,
		ValorLiquido:         b.ValorLiquido,
		DataPagamento:        b.DataPagamento,
		Metodo:               b.Metodo,
		Estornada:            b.Estornada,
		DuplicataValorAberto: d.ValorAberto,
		DuplicataStatus:      d.Status,
	}
	for _, ch := range cheques {
		resp.Cheques = append(resp.Cheques, dto.ChequeResponse{
			ID:               ch.ID,
			Titular:          ch.Titular,
			DocumentoTitular: ch.DocumentoTitular,
			Banco:            ch.Banco,
			Agencia:          ch.Agencia,
			Conta:            ch.Conta,
			Numero:           ch.Numero,
			Valor:            ch.Valor,
			BomPara:          ch.BomPara,
			Status:           ch.Status,
		})
	}
	return resp
}
