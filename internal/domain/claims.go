package domain

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// Claims são os dados da sessão do dashboard administrativo
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AdminSession struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
