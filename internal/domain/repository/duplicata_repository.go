package repository

import "github.com/gestaofacil/recebiveis-api/internal/domain/entity"

// DuplicataRepository define o porto de persistência para Duplicata.
type DuplicataRepository interface {
	Create(d *entity.Duplicata) error
	GetByID(id string) (*entity.Duplicata, error)
	GetByEmpresaENumero(empresaID, numero string) (*entity.Duplicata, error)
	ListByCliente(clienteID string, limit, offset int) ([]*entity.Duplicata, error)
	ListByParcela(parcelaID string) ([]*entity.Duplicata, error)
	ListAbertasByCliente(clienteID string) ([]*entity.Duplicata, error)
	// UpdateSaldo regrava valor_aberto, status e motivo de cancelamento com
	// guarda otimista: a escrita só acontece se a versão no banco ainda for
	// versaoEsperada; caso contrário devolve domain.ErrConflitoConcorrencia.
	UpdateSaldo(d *entity.Duplicata, versaoEsperada int) error
}

// BaixaRepository define o porto de persistência para Baixa.
type BaixaRepository interface {
	Create(b *entity.Baixa) error
	GetByID(id string) (*entity.Baixa, error)
	ListByDuplicata(duplicataID string) ([]*entity.Baixa, error)
	// MarcarEstornada grava estornada=true e o motivo; nunca apaga a baixa.
	MarcarEstornada(b *entity.Baixa) error
}

// ChequeRepository define o porto de persistência para o sub-razão de cheques.
type ChequeRepository interface {
	Create(c *entity.Cheque) error
	ListByBaixa(baixaID string) ([]*entity.Cheque, error)
}
