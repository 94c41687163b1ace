package pedidos

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

// PedidoUseCase casos de uso de pedidos: criação com planejamento de
// parcelas e checagem de limite, recálculo de itens e cancelamento.
type PedidoUseCase struct {
	txRunner      TxRunner
	pedidoRepo    repository.PedidoRepository
	parcelaRepo   repository.ParcelaRepository
	clienteRepo   repository.ClienteRepository
	condicaoRepo  repository.CondicaoPagamentoRepository
	duplicataRepo repository.DuplicataRepository
	log           *logger.Logger
}

// NewPedidoUseCase constrói o caso de uso.
func NewPedidoUseCase(
	txRunner TxRunner,
	pedidoRepo repository.PedidoRepository,
	parcelaRepo repository.ParcelaRepository,
	clienteRepo repository.ClienteRepository,
	condicaoRepo repository.CondicaoPagamentoRepository,
	duplicataRepo repository.DuplicataRepository,
	log *logger.Logger,
) *PedidoUseCase {
	return &PedidoUseCase{
		txRunner:      txRunner,
		pedidoRepo:    pedidoRepo,
		parcelaRepo:   parcelaRepo,
		clienteRepo:   clienteRepo,
		condicaoRepo:  condicaoRepo,
		duplicataRepo: duplicataRepo,
		log:           log,
	}
}

// CriarPedido calcula totais, planeja as parcelas pela condição de
// pagamento, avalia o limite de crédito e persiste pedido, itens e
// parcelas em uma única transação.
//
// Pedidos de VENDA são bloqueados com ErrLimiteExcedido quando a exposição
// em aberto mais o total do pedido ultrapassa o limite do cliente; a
// avaliação em si é consultiva (financeiro.AvaliarLimite); o bloqueio é
// decisão deste caso de uso.
func (uc *PedidoUseCase) CriarPedido(ctx context.Context, empresaID string, in dto.CriarPedidoRequest) (*dto.PedidoResponse, error) {
	if in.ClienteID == "" || len(in.Itens) == 0 {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Tipo != entity.TipoPedidoVenda && in.Tipo != entity.TipoPedidoCompra {
		return nil, domain.ErrEntradaInvalida
	}

	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil || cliente == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}

	// Totais: função pura, itens inválidos filtrados aqui
	calc := make([]financeiro.ItemCalculo, len(in.Itens))
	for i, item := range in.Itens {
		calc[i] = financeiro.ItemCalculo{
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Desconto:      item.Desconto,
		}
	}
	totais, err := financeiro.CalcularTotais(calc, in.DescontoValor, in.DescontoPercentual, in.Frete, in.OutrasTaxas)
	if err != nil {
		return nil, err
	}

	// Condição de pagamento (configuração externa, somente leitura)
	var cond *entity.CondicaoPagamento
	if in.CondicaoID != "" {
		cond, err = uc.condicaoRepo.GetByID(in.CondicaoID)
		if err != nil || cond == nil {
			return nil, domain.ErrNaoEncontrado
		}
		if cond.EmpresaID != empresaID {
			return nil, domain.ErrAcessoNegado
		}
	}

	now := time.Now()
	planejadas, err := financeiro.PlanejarParcelas(totais.Total, now, cond)
	if err != nil {
		return nil, err
	}

	// Limite de crédito: bloqueia vendas, nunca compras
	snapshot, err := uc.avaliarLimite(cliente, totais.Total)
	if err != nil {
		return nil, err
	}
	if in.Tipo == entity.TipoPedidoVenda && snapshot.Excedido {
		uc.log.Warn().
			Str("cliente_id", cliente.ID).
			Str("utilizado", snapshot.Utilizado.String()).
			Str("total_pedido", totais.Total.String()).
			Msg("pedido de venda bloqueado por limite de crédito")
		return nil, domain.ErrLimiteExcedido
	}

	pedido := &entity.Pedido{
		ID:                 uuid.New().String(),
		EmpresaID:          empresaID,
		ClienteID:          cliente.ID,
		Tipo:               in.Tipo,
		Status:             entity.PedidoAberto,
		Data:               now,
		CondicaoID:         in.CondicaoID,
		Subtotal:           totais.Subtotal,
		DescontoValor:      in.DescontoValor,
		DescontoPercentual: in.DescontoPercentual,
		Frete:              in.Frete,
		OutrasTaxas:        in.OutrasTaxas,
		Total:              totais.Total,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	itens := montarItens(pedido.ID, in.Itens, totais)
	parcelas := montarParcelas(pedido.ID, planejadas, now)

	err = uc.txRunner.RunPedidos(ctx, func(
		pedidoRepo repository.PedidoRepository,
		parcelaRepo repository.ParcelaRepository,
	) error {
		if err := pedidoRepo.Create(pedido); err != nil {
			return err
		}
		for _, item := range itens {
			if err := pedidoRepo.CreateItem(item); err != nil {
				return err
			}
		}
		for _, p := range parcelas {
			if err := parcelaRepo.Create(p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toPedidoResponse(pedido, itens, parcelas)
	resp.LimiteExcedido = snapshot.Excedido
	return resp, nil
}

// AtualizarItens substitui as linhas do pedido, recalcula totais e
// replaneja as parcelas. Só é aceito enquanto o pedido está ABERTO e
// nenhuma parcela tem pagamento ou duplicata emitida; depois disso o
// cronograma é história contábil e não pode ser regravado.
func (uc *PedidoUseCase) AtualizarItens(ctx context.Context, empresaID, pedidoID string, in dto.AtualizarItensRequest) (*dto.PedidoResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil || pedido == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if pedido.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}
	if pedido.Status != entity.PedidoAberto {
		return nil, domain.ErrPedidoImutavel
	}

	atuais, err := uc.parcelaRepo.ListByPedido(pedidoID)
	if err != nil {
		return nil, err
	}
	if err := uc.garantirSemMovimentos(atuais); err != nil {
		return nil, err
	}

	calc := make([]financeiro.ItemCalculo, len(in.Itens))
	for i, item := range in.Itens {
		calc[i] = financeiro.ItemCalculo{
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Desconto:      item.Desconto,
		}
	}
	totais, err := financeiro.CalcularTotais(calc, in.DescontoValor, in.DescontoPercentual, in.Frete, in.OutrasTaxas)
	if err != nil {
		return nil, err
	}

	var cond *entity.CondicaoPagamento
	if pedido.CondicaoID != "" {
		cond, err = uc.condicaoRepo.GetByID(pedido.CondicaoID)
		if err != nil || cond == nil {
			return nil, domain.ErrNaoEncontrado
		}
	}
	planejadas, err := financeiro.PlanejarParcelas(totais.Total, pedido.Data, cond)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pedido.Subtotal = totais.Subtotal
	pedido.DescontoValor = in.DescontoValor
	pedido.DescontoPercentual = in.DescontoPercentual
	pedido.Frete = in.Frete
	pedido.OutrasTaxas = in.OutrasTaxas
	pedido.Total = totais.Total
	pedido.UpdatedAt = now

	itens := montarItens(pedido.ID, in.Itens, totais)
	parcelas := montarParcelas(pedido.ID, planejadas, now)

	err = uc.txRunner.RunPedidos(ctx, func(
		pedidoRepo repository.PedidoRepository,
		parcelaRepo repository.ParcelaRepository,
	) error {
		if err := pedidoRepo.DeleteItens(pedido.ID); err != nil {
			return err
		}
		if err := parcelaRepo.DeleteByPedido(pedido.ID); err != nil {
			return err
		}
		if err := pedidoRepo.UpdateTotais(pedido); err != nil {
			return err
		}
		for _, item := range itens {
			if err := pedidoRepo.CreateItem(item); err != nil {
				return err
			}
		}
		for _, p := range parcelas {
			if err := parcelaRepo.Create(p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido, itens, parcelas), nil
}

// CancelarPedido marca pedido e parcelas como cancelados. Parcelas nunca
// são apagadas. Pedido concluído ou já cancelado é imutável, assim como um
// pedido cujas parcelas já têm pagamento ou duplicata emitida: o registro
// de liquidação não pode ser destruído por um cancelamento.
func (uc *PedidoUseCase) CancelarPedido(ctx context.Context, empresaID, pedidoID string) (*dto.PedidoResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil || pedido == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if pedido.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}
	if pedido.Status != entity.PedidoAberto {
		return nil, domain.ErrPedidoImutavel
	}
	parcelas, err := uc.parcelaRepo.ListByPedido(pedidoID)
	if err != nil {
		return nil, err
	}
	if err := uc.garantirSemMovimentos(parcelas); err != nil {
		return nil, err
	}

	pedido.Status = entity.PedidoCancelado
	pedido.UpdatedAt = time.Now()

	err = uc.txRunner.RunPedidos(ctx, func(
		pedidoRepo repository.PedidoRepository,
		parcelaRepo repository.ParcelaRepository,
	) error {
		if err := pedidoRepo.UpdateStatus(pedido); err != nil {
			return err
		}
		return parcelaRepo.CancelarByPedido(pedido.ID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetPedido(ctx, empresaID, pedidoID)
}

// GetPedido devolve o pedido completo com itens e parcelas.
func (uc *PedidoUseCase) GetPedido(_ context.Context, empresaID, pedidoID string) (*dto.PedidoResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil || pedido == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if pedido.EmpresaID != empresaID {
		return nil, domain.ErrAcessoNegado
	}
	itens, err := uc.pedidoRepo.GetItens(pedidoID)
	if err != nil {
		return nil, err
	}
	parcelas, err := uc.parcelaRepo.ListByPedido(pedidoID)
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido, itens, parcelas), nil
}

// garantirSemMovimentos falha com ErrPedidoImutavel quando alguma parcela
// já recebeu pagamento ou tem duplicata emitida contra ela.
func (uc *PedidoUseCase) garantirSemMovimentos(parcelas []*entity.Parcela) error {
	for _, p := range parcelas {
		if p.ValorPago.GreaterThan(decimal.Zero) {
			return domain.ErrPedidoImutavel
		}
		duplicatas, err := uc.duplicataRepo.ListByParcela(p.ID)
		if err != nil {
			return err
		}
		if len(duplicatas) > 0 {
			return domain.ErrPedidoImutavel
		}
	}
	return nil
}

func (uc *PedidoUseCase) avaliarLimite(cliente *entity.Cliente, total decimal.Decimal) (financeiro.SnapshotLimite, error) {
	if cliente.LimiteCredito == nil {
		return financeiro.AvaliarLimite(nil, decimal.Zero, total), nil
	}
	duplicatas, err := uc.duplicataRepo.ListAbertasByCliente(cliente.ID)
	if err != nil {
		return financeiro.SnapshotLimite{}, err
	}
	parcelas, err := uc.parcelaRepo.ListAbertasByCliente(cliente.ID)
	if err != nil {
		return financeiro.SnapshotLimite{}, err
	}
	utilizado := financeiro.CalcularUtilizado(duplicatas, parcelas)
	return financeiro.AvaliarLimite(cliente.LimiteCredito, utilizado, total), nil
}

func montarItens(pedidoID string, in []dto.ItemPedidoRequest, totais *financeiro.ResultadoTotais) []*entity.ItemPedido {
	itens := make([]*entity.ItemPedido, 0, len(totais.Itens))
	for _, ic := range totais.Itens {
		src := in[ic.Indice]
		itens = append(itens, &entity.ItemPedido{
			ID:            uuid.New().String(),
			PedidoID:      pedidoID,
			Descricao:     src.Descricao,
			Quantidade:    src.Quantidade,
			PrecoUnitario: src.PrecoUnitario,
			Desconto:      src.Desconto,
			Subtotal:      ic.Subtotal,
		})
	}
	return itens
}

func montarParcelas(pedidoID string, planejadas []financeiro.ParcelaPlanejada, now time.Time) []*entity.Parcela {
	parcelas := make([]*entity.Parcela, 0, len(planejadas))
	for _, pp := range planejadas {
		parcelas = append(parcelas, &entity.Parcela{
			ID:            uuid.New().String(),
			PedidoID:      pedidoID,
			Numero:        pp.Numero,
			TotalParcelas: len(planejadas),
			Valor:         pp.Valor,
			ValorPago:     decimal.Zero,
			Vencimento:    pp.Vencimento,
			Status:        entity.ParcelaAberta,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return parcelas
}

func toPedidoResponse(p *entity.Pedido, itens []*entity.ItemPedido, parcelas []*entity.Parcela) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:                 p.ID,
		ClienteID:          p.ClienteID,
		Tipo:               p.Tipo,
		Status:             p.Status,
		Data:               p.Data,
		Subtotal:           p.Subtotal,
		DescontoValor:      p.DescontoValor,
		DescontoPercentual: p.DescontoPercentual,
		Frete:              p.Frete,
		OutrasTaxas:        p.OutrasTaxas,
		Total:              p.Total,
		Itens:              make([]dto.ItemPedidoResponse, 0, len(itens)),
		Parcelas:           make([]dto.ParcelaResponse, 0, len(parcelas)),
	}
	for _, item := range itens {
		resp.Itens = append(resp.Itens, dto.ItemPedidoResponse{
			ID:            item.ID,
			Descricao:     item.Descricao,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Desconto:      item.Desconto,
			Subtotal:      item.Subtotal,
		})
	}
	for _, parcela := range parcelas {
		resp.Parcelas = append(resp.Parcelas, toParcelaResponse(parcela))
	}
	return resp
}

func toParcelaResponse(p *entity.Parcela) dto.ParcelaResponse {
	return dto.ParcelaResponse{
		ID:            p.ID,
		Numero:        p.Numero,
		TotalParcelas: p.TotalParcelas,
		Valor:         p.Valor,
		ValorPago:     p.ValorPago,
		Vencimento:    p.Vencimento,
		Status:        p.Status,
	}
}
