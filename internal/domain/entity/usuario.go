package entity

import "time"

// Perfis de usuário.
const (
	PerfilAdmin      = "admin"
	PerfilFinanceiro = "financeiro"
	PerfilVendedor   = "vendedor"
)

// Usuario representa um usuário autenticável da empresa.
type Usuario struct {
	ID        string
	EmpresaID string
	Email     string
	SenhaHash string
	Nome      string
	Perfil    string
	Status    string // active | disabled
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Empresa é o tenant dono de clientes, pedidos e duplicatas.
type Empresa struct {
	ID          string
	RazaoSocial string
	CNPJ        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
