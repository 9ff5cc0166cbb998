package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis dos operadores do console.
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
)

// Operator é um usuário do painel de administração. Não confundir com os
// usuários da plataforma (lojistas/entregadores), que vivem no backend remoto.
type Operator struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims carrega a identidade do operador dentro do token JWT do console.
type Claims struct {
	OperatorID     int
	OperatorName   string
	OperatorEmail  string
	OperatorActive bool
	OperatorRoleID int
	jwt.RegisteredClaims
}
