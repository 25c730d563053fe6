package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Papéis aceitos nos tokens de acesso
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// Claims são as informações carregadas no token de acesso às rotas operacionais
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
