package credito_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaofacil/recebiveis-api/internal/application/credito"
	"github.com/gestaofacil/recebiveis-api/internal/domain"
	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
)

const empresaID = "emp-1"

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

type memClienteRepo struct{ m map[string]*entity.Cliente }

func (r *memClienteRepo) Create(c *entity.Cliente) error { r.m[c.ID] = c; return nil }
func (r *memClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *memClienteRepo) GetByEmpresaEDocumento(string, string) (*entity.Cliente, error) {
	return nil, nil
}
func (r *memClienteRepo) ListByEmpresa(string, int, int) ([]*entity.Cliente, error) {
	return nil, nil
}
func (r *memClienteRepo) Update(c *entity.Cliente) error { r.m[c.ID] = c; return nil }

type memDuplicataRepo struct{ abertas []*entity.Duplicata }

func (r *memDuplicataRepo) Create(*entity.Duplicata) error              { return nil }
func (r *memDuplicataRepo) GetByID(string) (*entity.Duplicata, error)   { return nil, nil }
func (r *memDuplicataRepo) GetByEmpresaENumero(string, string) (*entity.Duplicata, error) {
	return nil, nil
}
func (r *memDuplicataRepo) ListByCliente(string, int, int) ([]*entity.Duplicata, error) {
	return nil, nil
}
func (r *memDuplicataRepo) ListByParcela(string) ([]*entity.Duplicata, error) { return nil, nil }
func (r *memDuplicataRepo) ListAbertasByCliente(string) ([]*entity.Duplicata, error) {
	return r.abertas, nil
}
func (r *memDuplicataRepo) UpdateSaldo(*entity.Duplicata, int) error { return nil }

type memParcelaRepo struct{ abertas []*entity.Parcela }

func (r *memParcelaRepo) Create(*entity.Parcela) error                      { return nil }
func (r *memParcelaRepo) GetByID(string) (*entity.Parcela, error)           { return nil, nil }
func (r *memParcelaRepo) ListByPedido(string) ([]*entity.Parcela, error)    { return nil, nil }
func (r *memParcelaRepo) ListAbertasByCliente(string) ([]*entity.Parcela, error) {
	return r.abertas, nil
}
func (r *memParcelaRepo) UpdateValorPago(*entity.Parcela) error { return nil }
func (r *memParcelaRepo) CancelarByPedido(string) error         { return nil }
func (r *memParcelaRepo) DeleteByPedido(string) error           { return nil }

func novoUseCase(limite *decimal.Decimal, dups []*entity.Duplicata, parcelas []*entity.Parcela) (*credito.CreditoUseCase, string) {
	cliente := &entity.Cliente{
		ID:            "cli-1",
		EmpresaID:     empresaID,
		Nome:          "Distribuidora Norte",
		LimiteCredito: limite,
	}
	clientes := &memClienteRepo{m: map[string]*entity.Cliente{cliente.ID: cliente}}
	uc := credito.NewCreditoUseCase(
		clientes,
		&memDuplicataRepo{abertas: dups},
		&memParcelaRepo{abertas: parcelas},
	)
	return uc, cliente.ID
}

func TestAvaliarLimite_Candidato(t *testing.T) {
	limite := d("1000.00")
	dups := []*entity.Duplicata{
		{ID: "dup-1", ClienteID: "cli-1", ValorAberto: d("950.00"), Status: entity.DuplicataAberta},
	}
	uc, clienteID := novoUseCase(&limite, dups, nil)

	resp, err := uc.AvaliarLimite(context.Background(), empresaID, clienteID, d("100.00"))
	require.NoError(t, err)
	require.NotNil(t, resp.Limite)
	assert.True(t, resp.Utilizado.Equal(d("950.00")))
	assert.True(t, resp.Disponivel.Equal(d("50.00")))
	assert.True(t, resp.Excedido, "950 + 100 ultrapassa 1000")

	// no limite exato não há excesso
	resp, err = uc.AvaliarLimite(context.Background(), empresaID, clienteID, d("50.00"))
	require.NoError(t, err)
	assert.False(t, resp.Excedido)
}

func TestAvaliarLimite_SemLimiteConfigurado(t *testing.T) {
	dups := []*entity.Duplicata{
		{ID: "dup-1", ClienteID: "cli-1", ValorAberto: d("999999.00"), Status: entity.DuplicataAberta},
	}
	uc, clienteID := novoUseCase(nil, dups, nil)

	resp, err := uc.AvaliarLimite(context.Background(), empresaID, clienteID, d("500000.00"))
	require.NoError(t, err)
	assert.Nil(t, resp.Limite)
	assert.False(t, resp.Excedido, "sem limite nunca há bloqueio")
	assert.True(t, resp.Utilizado.Equal(d("999999.00")))
}

// Parcela com duplicata emitida não entra duas vezes na exposição: a soma
// passa a ser feita na granularidade da duplicata.
func TestAvaliarLimite_SemContagemDupla(t *testing.T) {
	limite := d("500.00")
	parcelaID := "par-1"
	dups := []*entity.Duplicata{
		{ID: "dup-1", ClienteID: "cli-1", ParcelaID: &parcelaID,
			ValorAberto: d("70.00"), Status: entity.DuplicataParcial},
		{ID: "dup-2", ClienteID: "cli-1",
			ValorAberto: d("30.00"), Status: entity.DuplicataAberta},
		// cancelada fica de fora
		{ID: "dup-3", ClienteID: "cli-1",
			ValorAberto: d("40.00"), Status: entity.DuplicataCancelada},
	}
	parcelas := []*entity.Parcela{
		// coberta pela dup-1: não soma
		{ID: parcelaID, Valor: d("100.00"), ValorPago: decimal.Zero, Status: entity.ParcelaAberta},
		// sem duplicata: soma o saldo (60 - 10 = 50)
		{ID: "par-2", Valor: d("60.00"), ValorPago: d("10.00"), Status: entity.ParcelaParcial},
	}
	uc, clienteID := novoUseCase(&limite, dups, parcelas)

	resp, err := uc.AvaliarLimite(context.Background(), empresaID, clienteID, decimal.Zero)
	require.NoError(t, err)
	// 70 + 30 + 50
	assert.True(t, resp.Utilizado.Equal(d("150.00")), "utilizado foi %s", resp.Utilizado)
	assert.True(t, resp.Disponivel.Equal(d("350.00")))
	assert.False(t, resp.Excedido)
}

func TestAvaliarLimite_Guardas(t *testing.T) {
	limite := d("100.00")
	uc, clienteID := novoUseCase(&limite, nil, nil)

	_, err := uc.AvaliarLimite(context.Background(), empresaID, "nao-existe", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)

	_, err = uc.AvaliarLimite(context.Background(), "outra-empresa", clienteID, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrAcessoNegado)
}
