package repository

import "github.com/gestaofacil/recebiveis-api/internal/domain/entity"

// ClienteRepository define o porto de persistência para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByEmpresaEDocumento(empresaID, documento string) (*entity.Cliente, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
}

// EmpresaRepository define o porto de persistência para Empresa (tenant).
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
}

// UsuarioRepository define o porto de persistência para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	FindByEmail(email string) (*entity.Usuario, error)
}
