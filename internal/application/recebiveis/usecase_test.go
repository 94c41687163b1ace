package recebiveis_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaofacil/recebiveis-api/internal/application/dto"
	"github.com/gestaofacil/recebiveis-api/internal/application/recebiveis"
	"github.com/gestaofacil/recebiveis-api/internal/domain"
	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
	"github.com/gestaofacil/recebiveis-api/pkg/logger"
)

const empresaID = "emp-1"

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ---------------------------------------------------------------------------
// Fakes em memória
// ---------------------------------------------------------------------------

type memClienteRepo struct{ m map[string]*entity.Cliente }

func (r *memClienteRepo) Create(c *entity.Cliente) error { cp := *c; r.m[c.ID] = &cp; return nil }
func (r *memClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *memClienteRepo) GetByEmpresaEDocumento(empresaID, documento string) (*entity.Cliente, error) {
	for _, c := range r.m {
		if c.EmpresaID == empresaID && c.Documento == documento {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *memClienteRepo) ListByEmpresa(string, int, int) ([]*entity.Cliente, error) {
	return nil, nil
}
func (r *memClienteRepo) Update(c *entity.Cliente) error { cp := *c; r.m[c.ID] = &cp; return nil }

type memEmpresaRepo struct{ m map[string]*entity.Empresa }

func (r *memEmpresaRepo) Create(e *entity.Empresa) error { cp := *e; r.m[e.ID] = &cp; return nil }
func (r *memEmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	e, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

type memDuplicataRepo struct{ m map[string]*entity.Duplicata }

func (r *memDuplicataRepo) Create(dup *entity.Duplicata) error {
	cp := *dup
	r.m[dup.ID] = &cp
	return nil
}
func (r *memDuplicataRepo) GetByID(id string) (*entity.Duplicata, error) {
	dup, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *dup
	return &cp, nil
}
func (r *memDuplicataRepo) GetByEmpresaENumero(empresaID, numero string) (*entity.Duplicata, error) {
	for _, dup := range r.m {
		if dup.EmpresaID == empresaID && dup.Numero == numero {
			cp := *dup
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *memDuplicataRepo) ListByCliente(clienteID string, _, _ int) ([]*entity.Duplicata, error) {
	var out []*entity.Duplicata
	for _, dup := range r.m {
		if dup.ClienteID == clienteID {
			cp := *dup
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *memDuplicataRepo) ListByParcela(parcelaID string) ([]*entity.Duplicata, error) {
	var out []*entity.Duplicata
	for _, dup := range r.m {
		if dup.ParcelaID != nil && *dup.ParcelaID == parcelaID {
			cp := *dup
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *memDuplicataRepo) ListAbertasByCliente(clienteID string) ([]*entity.Duplicata, error) {
	return r.ListByCliente(clienteID, 0, 0)
}
func (r *memDuplicataRepo) UpdateSaldo(dup *entity.Duplicata, versaoEsperada int) error {
	atual, ok := r.m[dup.ID]
	if !ok {
		return domain.ErrNaoEncontrado
	}
	if atual.Versao != versaoEsperada {
		return domain.ErrConflitoConcorrencia
	}
	cp := *dup
	cp.Versao = versaoEsperada + 1
	r.m[dup.ID] = &cp
	return nil
}

type memParcelaRepo struct{ m map[string]*entity.Parcela }

func (r *memParcelaRepo) Create(p *entity.Parcela) error { cp := *p; r.m[p.ID] = &cp; return nil }
func (r *memParcelaRepo) GetByID(id string) (*entity.Parcela, error) {
	p, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *memParcelaRepo) ListByPedido(string) ([]*entity.Parcela, error)        { return nil, nil }
func (r *memParcelaRepo) ListAbertasByCliente(string) ([]*entity.Parcela, error) { return nil, nil }
func (r *memParcelaRepo) UpdateValorPago(p *entity.Parcela) error {
	cp := *p
	r.m[p.ID] = &cp
	return nil
}
func (r *memParcelaRepo) CancelarByPedido(string) error { return nil }
func (r *memParcelaRepo) DeleteByPedido(string) error   { return nil }

type memBaixaRepo struct{ m map[string]*entity.Baixa }

func (r *memBaixaRepo) Create(b *entity.Baixa) error { cp := *b; r.m[b.ID] = &cp; return nil }
func (r *memBaixaRepo) GetByID(id string) (*entity.Baixa, error) {
	b, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}
func (r *memBaixaRepo) ListByDuplicata(duplicataID string) ([]*entity.Baixa, error) {
	var out []*entity.Baixa
	for _, b := range r.m {
		if b.DuplicataID == duplicataID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *memBaixaRepo) MarcarEstornada(b *entity.Baixa) error {
	cp := *b
	r.m[b.ID] = &cp
	return nil
}

type fakePDFGenerator struct{ chamado bool }

func (g *fakePDFGenerator) GenerateDuplicataPDF(
	_ context.Context,
	_ *entity.Duplicata,
	_ *entity.Empresa,
	_ *entity.Cliente,
	_ []*entity.Baixa,
) ([]byte, error) {
	g.chamado = true
	return []byte("%PDF-1.7"), nil
}

// ---------------------------------------------------------------------------

type cenario struct {
	uc         *recebiveis.DuplicataUseCase
	clientes   *memClienteRepo
	empresas   *memEmpresaRepo
	duplicatas *memDuplicataRepo
	parcelas   *memParcelaRepo
	baixas     *memBaixaRepo
	pdf        *fakePDFGenerator
}

func novoCenario(t *testing.T) *cenario {
	t.Helper()
	c := &cenario{
		clientes:   &memClienteRepo{m: map[string]*entity.Cliente{}},
		empresas:   &memEmpresaRepo{m: map[string]*entity.Empresa{}},
		duplicatas: &memDuplicataRepo{m: map[string]*entity.Duplicata{}},
		parcelas:   &memParcelaRepo{m: map[string]*entity.Parcela{}},
		baixas:     &memBaixaRepo{m: map[string]*entity.Baixa{}},
		pdf:        &fakePDFGenerator{},
	}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	c.uc = recebiveis.NewDuplicataUseCase(
		c.duplicatas, c.parcelas, c.clientes, c.empresas, c.baixas, c.pdf, log,
	)
	require.NoError(t, c.empresas.Create(&entity.Empresa{
		ID: empresaID, RazaoSocial: "Gestão Fácil LTDA", CNPJ: "00.000.000/0001-00",
	}))
	return c
}

func (c *cenario) novoCliente(t *testing.T) *entity.Cliente {
	t.Helper()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      "Comercial Sul",
		Documento: "11.111.111/0001-11",
	}
	require.NoError(t, c.clientes.Create(cliente))
	return cliente
}

func (c *cenario) novaParcela(t *testing.T, valor string) *entity.Parcela {
	t.Helper()
	p := &entity.Parcela{
		ID:         uuid.New().String(),
		PedidoID:   "ped-1",
		Numero:     1,
		Valor:      d(valor),
		ValorPago:  decimal.Zero,
		Vencimento: time.Now().AddDate(0, 1, 0),
		Status:     entity.ParcelaAberta,
	}
	require.NoError(t, c.parcelas.Create(p))
	return p
}

func TestEmitirDuplicata_Avulsa(t *testing.T) {
	c := novoCenario(t)
	cliente := c.novoCliente(t)

	resp, err := c.uc.EmitirDuplicata(context.Background(), empresaID, dto.EmitirDuplicataRequest{
		ClienteID: cliente.ID,
		Numero:    "DUP-001",
		Valor:     d("150.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DuplicataAberta, resp.Status)
	assert.True(t, resp.ValorOriginal.Equal(d("150.00")))
	assert.True(t, resp.ValorAberto.Equal(d("150.00")))
	assert.Empty(t, resp.ParcelaID)
	assert.Empty(t, resp.Alerta)
}

func TestEmitirDuplicata_Validacoes(t *testing.T) {
	c := novoCenario(t)
	cliente := c.novoCliente(t)
	ctx := context.Background()

	t.Run("valor não positivo", func(t *testing.T) {
		_, err := c.uc.EmitirDuplicata(ctx, empresaID, dto.EmitirDuplicataRequest{
			ClienteID: cliente.ID, Numero: "DUP-010", Valor: decimal.Zero,
		})
		assert.ErrorIs(t, err, domain.ErrValorInvalido)
	})

	t.Run("numero obrigatório", func(t *testing.T) {
		_, err := c.uc.EmitirDuplicata(ctx, empresaID, dto.EmitirDuplicataRequest{
			ClienteID: cliente.ID, Valor: d("10.00"),
		})
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	})

	t.Run("numero repetido na empresa", func(t *testing.T) {
		_, err := c.uc.EmitirDuplicata(ctx, empresaID, dto.EmitirDuplicataRequest{
			ClienteID: cliente.ID, Numero: "DUP-011", Valor: d("10.00"),
		})
		require.NoError(t, err)
		_, err = c.uc.EmitirDuplicata(ctx, empresaID, dto.EmitirDuplicataRequest{
			ClienteID: cliente.ID, Numero: "DUP-011", Valor: d("20.00"),
		})
		assert.ErrorIs(t, err, domain.ErrDuplicado)
	})

	t.Run("cliente de outra empresa", func(t *testing.T) {
		_, err := c.uc.EmitirDuplicata(ctx, "outra-empresa", dto.EmitirDuplicataRequest{
			ClienteID: cliente.ID, Numero: "DUP-012", Valor: d("10.00"),
		})
		assert.ErrorIs(t, err, domain.ErrAcessoNegado)
	})
}

func TestEmitirDuplicata_ContraParcela(t *testing.T) {
	ctx := context.Background()

	t.Run("duas emissões fechando o saldo não geram alerta", func(t *testing.T) {
		c := novoCenario(t)
		cliente := c.novoCliente(t)
		parcela := c.novaParcela(t, "50.00")

		respA, err := c.uc.EmitirDuplicata(ctx, empresaID, dto.EmitirDuplicataRequest{
			ClienteID: cliente.ID, ParcelaID: parcela.ID, Numero: "DUP-020/A", Valor: d("25.00"),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, respA.Alerta, "metade emitida ainda diverge do saldo")

		respB, err := c.uc.EmitirDuplicata(ctx, empresaID, dto.EmitirDuplicataRequest{
			ClienteID: cliente.ID, ParcelaID: parcela.ID, Numero: "DUP-020/B", Valor: d("25.00"),
		})
		require.NoError(t, err)
		assert.Empty(t, respB.Alerta, "soma agora fecha com o saldo da parcela")
		assert.Equal(t, parcela.ID, respB.ParcelaID)
		assert.Equal(t, parcela.PedidoID, respB.PedidoID)
	})

	t.Run("sobre-emissão gera alerta mas não bloqueia", func(t *testing.T) {
		c := novoCenario(t)
		cliente := c.novoCliente(t)
		parcela := c.novaParcela(t, "50.00")

		resp, err := c.uc.EmitirDuplicata(ctx, empresaID, dto.EmitirDuplicataRequest{
			ClienteID: cliente.ID, ParcelaID: parcela.ID, Numero: "DUP-021", Valor: d("80.00"),
		})
		require.NoError(t, err, "sobre-emissão é sinalizada, nunca rejeitada")
		assert.NotEmpty(t, resp.Alerta)
	})

	t.Run("parcela cancelada é rejeitada", func(t *testing.T) {
		c := novoCenario(t)
		cliente := c.novoCliente(t)
		parcela := c.novaParcela(t, "50.00")
		c.parcelas.m[parcela.ID].Status = entity.ParcelaCancelada

		_, err := c.uc.EmitirDuplicata(ctx, empresaID, dto.EmitirDuplicataRequest{
			ClienteID: cliente.ID, ParcelaID: parcela.ID, Numero: "DUP-022", Valor: d("50.00"),
		})
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	})
}

func TestCancelarDuplicata(t *testing.T) {
	ctx := context.Background()

	t.Run("cancelamento congela o saldo", func(t *testing.T) {
		c := novoCenario(t)
		cliente := c.novoCliente(t)
		resp, err := c.uc.EmitirDuplicata(ctx, empresaID, dto.EmitirDuplicataRequest{
			ClienteID: cliente.ID, Numero: "DUP-030", Valor: d("100.00"),
		})
		require.NoError(t, err)

		cancelada, err := c.uc.CancelarDuplicata(ctx, empresaID, resp.ID, dto.CancelarRequest{Motivo: "emissão errada"})
		require.NoError(t, err)
		assert.Equal(t, entity.DuplicataCancelada, cancelada.Status)
		assert.True(t, cancelada.ValorAberto.Equal(d("100.00")),
			"saldo congelado para auditoria, não zerado")
	})

	t.Run("cancelar duas vezes é rejeitado", func(t *testing.T) {
		c := novoCenario(t)
		cliente := c.novoCliente(t)
		resp, err := c.uc.EmitirDuplicata(ctx, empresaID, dto.EmitirDuplicataRequest{
			ClienteID: cliente.ID, Numero: "DUP-031", Valor: d("100.00"),
		})
		require.NoError(t, err)

		_, err = c.uc.CancelarDuplicata(ctx, empresaID, resp.ID, dto.CancelarRequest{})
		require.NoError(t, err)
		_, err = c.uc.CancelarDuplicata(ctx, empresaID, resp.ID, dto.CancelarRequest{})
		assert.ErrorIs(t, err, domain.ErrDuplicataTerminal)
	})

	t.Run("liquidada não cancela", func(t *testing.T) {
		c := novoCenario(t)
		cliente := c.novoCliente(t)
		resp, err := c.uc.EmitirDuplicata(ctx, empresaID, dto.EmitirDuplicataRequest{
			ClienteID: cliente.ID, Numero: "DUP-032", Valor: d("100.00"),
		})
		require.NoError(t, err)
		c.duplicatas.m[resp.ID].Status = entity.DuplicataLiquidada
		c.duplicatas.m[resp.ID].ValorAberto = decimal.Zero

		_, err = c.uc.CancelarDuplicata(ctx, empresaID, resp.ID, dto.CancelarRequest{})
		assert.ErrorIs(t, err, domain.ErrDuplicataLiquidada)
	})
}

func TestGerarPDF(t *testing.T) {
	c := novoCenario(t)
	cliente := c.novoCliente(t)
	resp, err := c.uc.EmitirDuplicata(context.Background(), empresaID, dto.EmitirDuplicataRequest{
		ClienteID: cliente.ID, Numero: "DUP-040", Valor: d("100.00"),
	})
	require.NoError(t, err)

	pdfBytes, err := c.uc.GerarPDF(context.Background(), empresaID, resp.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.True(t, c.pdf.chamado)

	_, err = c.uc.GerarPDF(context.Background(), empresaID, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestClienteUseCase(t *testing.T) {
	repo := &memClienteRepo{m: map[string]*entity.Cliente{}}
	uc := recebiveis.NewClienteUseCase(repo)

	resp, err := uc.Create(empresaID, dto.CriarClienteRequest{
		Nome: "Distribuidora Norte", Documento: "22.222.222/0001-22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)

	t.Run("documento repetido é rejeitado", func(t *testing.T) {
		_, err := uc.Create(empresaID, dto.CriarClienteRequest{
			Nome: "Outra", Documento: "22.222.222/0001-22",
		})
		assert.ErrorIs(t, err, domain.ErrDuplicado)
	})

	t.Run("nome e documento obrigatórios", func(t *testing.T) {
		_, err := uc.Create(empresaID, dto.CriarClienteRequest{Nome: "Sem Documento"})
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	})

	t.Run("acesso cruzado entre empresas é negado", func(t *testing.T) {
		_, err := uc.GetByID("outra-empresa", resp.ID)
		assert.ErrorIs(t, err, domain.ErrAcessoNegado)
	})
}
