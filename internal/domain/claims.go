package domain

import "github.com/golang-jwt/jwt/v5"

// ServiceClaims são as claims do credential de serviço aceito pelas rotas internas
// (trigger de sincronização e cron jobs)
type ServiceClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope,omitempty"`
}

// AllowsSync indica se o credential autoriza disparar sincronizações
func (c *ServiceClaims) AllowsSync() bool {
	return c != nil && (c.Scope == "sync" || c.Scope == "admin")
}
