package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
// Cria a empresa (tenant) e o primeiro usuário admin em uma chamada.
type RegisterRequest struct {
	RazaoSocial string `json:"razao_social"`
	CNPJ        string `json:"cnpj"`
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuário nas respostas.
type UserResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	Perfil    string    `json:"perfil"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
