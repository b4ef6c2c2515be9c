package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/apiErrors"
	"github.com/vfg2006/ad-performance-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

// ContextKeyService é a chave das claims do credential de serviço no contexto
const ContextKeyService contextKey = "service"

// CronSecretHeader é o header usado pelo disparo via cron externo
const CronSecretHeader = "X-Cron-Secret"

// ServiceAuth autoriza rotas internas de sincronização: aceita um credential de
// serviço (Bearer JWT) ou o segredo compartilhado de cron no header X-Cron-Secret,
// verificado contra um hash bcrypt para não manter o segredo em claro na config.
func ServiceAuth(jwtSecret, cronSecretHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret := r.Header.Get(CronSecretHeader); secret != "" {
				if cronSecretHash == "" {
					apiErrors.WriteError(w, apiErrors.ErrInvalidCredential, "Disparo via cron não está habilitado", nil)
					return
				}

				if err := bcrypt.CompareHashAndPassword([]byte(cronSecretHash), []byte(secret)); err != nil {
					log.ForContext(r.Context()).Warn("Segredo de cron inválido recebido")
					apiErrors.WriteError(w, apiErrors.ErrInvalidCredential, "Segredo de cron inválido", nil)
					return
				}

				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingCredential, "Credencial de serviço ausente", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredential, "Bearer token é obrigatório", nil)
				return
			}

			claims := &domain.ServiceClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredential, "Credencial de serviço inválida", nil)
				return
			}

			if !claims.AllowsSync() {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Credencial sem escopo de sincronização", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyService, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
