package relatorios

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
	"github.com/gestaofacil/recebiveis-api/internal/domain"
	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
	"github.com/gestaofacil/recebiveis-api/internal/domain/repository"
)

// RelatorioUseCase monta as posições de conciliação (por cliente e por
// pedido) dobrando sobre duplicatas, parcelas e baixas. Somente leitura:
// roda fora de transação e nunca bloqueia escritores.
type RelatorioUseCase struct {
	clienteRepo   repository.ClienteRepository
	pedidoRepo    repository.PedidoRepository
	parcelaRepo   repository.ParcelaRepository
	duplicataRepo repository.DuplicataRepository
	baixaRepo     repository.BaixaRepository
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(
	clienteRepo repository.ClienteRepository,
	pedidoRepo repository.PedidoRepository,
	parcelaRepo repository.ParcelaRepository,
	duplicataRepo repository.DuplicataRepository,
	baixaRepo repository.BaixaRepository,
) *RelatorioUseCase {
	return &RelatorioUseCase{
		clienteRepo:   clienteRepo,
		pedidoRepo:    pedidoRepo,
		parcelaRepo:   parcelaRepo,
		duplicataRepo: duplicataRepo,
		baixaRepo:     baixaRepo,
	}
}

// PosicaoCliente devolve a posição de recebíveis de um cliente: totais em
// aberto, vencidos e baixados, e a lista de duplicatas não canceladas.
func (uc *RelatorioUseCase) PosicaoCliente(_ context.Context, empresaID, clienteID string) (*dto.PosicaoClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(clienteID)
	if err != nil || cliente == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}
	duplicatas, err := uc.duplicataRepo.ListByCliente(clienteID, 1000, 0)
	if err != nil {
		return nil, err
	}

	resp := &dto.PosicaoClienteResponse{ClienteID: clienteID}
	hoje := time.Now()
	for _, d := range duplicatas {
		if d.Status == entity.DuplicataCancelada {
			continue
		}
		linha, err := uc.linhaPosicao(d, hoje)
		if err != nil {
			return nil, err
		}
		resp.TotalAberto = resp.TotalAberto.Add(d.ValorAberto)
		resp.TotalBaixado = resp.TotalBaixado.Add(linha.TotalBaixado)
		if linha.Vencida {
			resp.TotalVencido = resp.TotalVencido.Add(d.ValorAberto)
		}
		resp.Duplicatas = append(resp.Duplicatas, linha)
	}
	return resp, nil
}

// PosicaoPedido devolve a posição de um pedido: cada parcela com suas
// duplicatas e os totais pagos/em aberto.
func (uc *RelatorioUseCase) PosicaoPedido(_ context.Context, empresaID, pedidoID string) (*dto.PosicaoPedidoResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil || pedido == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if pedido.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}
	parcelas, err := uc.parcelaRepo.ListByPedido(pedidoID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PosicaoPedidoResponse{
		PedidoID: pedido.ID,
		Total:    pedido.Total,
	}
	hoje := time.Now()
	for _, p := range parcelas {
		pos := dto.ParcelaPosicao{
			Parcela: dto.ParcelaResponse{
				ID:            p.ID,
				Numero:        p.Numero,
				TotalParcelas: p.TotalParcelas,
				Valor:         p.Valor,
				ValorPago:     p.ValorPago,
				Vencimento:    p.Vencimento,
				Status:        p.Status,
			},
		}
		duplicatas, err := uc.duplicataRepo.ListByParcela(p.ID)
		if err != nil {
			return nil, err
		}
		for _, d := range duplicatas {
			linha, err := uc.linhaPosicao(d, hoje)
			if err != nil {
				return nil, err
			}
			pos.Duplicatas = append(pos.Duplicatas, linha)
		}
		resp.TotalPago = resp.TotalPago.Add(p.ValorPago)
		resp.TotalAberto = resp.TotalAberto.Add(p.SaldoAberto())
		resp.Parcelas = append(resp.Parcelas, pos)
	}
	return resp, nil
}

func (uc *RelatorioUseCase) linhaPosicao(d *entity.Duplicata, hoje time.Time) (dto.DuplicataPosicao, error) {
	baixas, err := uc.baixaRepo.ListByDuplicata(d.ID)
	if err != nil {
		return dto.DuplicataPosicao{}, err
	}
	totalBaixado := decimal.Zero
	for _, b := range baixas {
		if !b.Estornada {
			totalBaixado = totalBaixado.Add(b.ValorLiquido)
		}
	}
	vencida := d.Status != entity.DuplicataLiquidada &&
		d.ValorAberto.GreaterThan(decimal.Zero) &&
		d.Vencimento.Before(hoje)
	return dto.DuplicataPosicao{
		ID:            d.ID,
		Numero:        d.Numero,
		Vencimento:    d.Vencimento.Format("2006-01-02"),
		ValorOriginal: d.ValorOriginal,
		ValorAberto:   d.ValorAberto,
		Status:        d.Status,
		Vencida:       vencida,
		TotalBaixado:  totalBaixado,
	}, nil
}
