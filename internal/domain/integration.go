package domain

import (
	"errors"
	"time"
)

// ErrCredentialRevoked indica que o provedor rejeitou a credencial da integração
var ErrCredentialRevoked = errors.New("credencial da integração revogada pelo provedor")

// Provider identifica a plataforma de anúncios de origem dos dados
type Provider string

const (
	ProviderMeta   Provider = "meta"
	ProviderGoogle Provider = "google"
)

// IntegrationStatus representa o estado atual de uma integração conectada
type IntegrationStatus string

const (
	IntegrationStatusActive  IntegrationStatus = "active"
	IntegrationStatusRevoked IntegrationStatus = "revoked"
	IntegrationStatusError   IntegrationStatus = "error"
)

// Integration representa uma conta de plataforma de anúncios conectada por um usuário.
// As credenciais são opacas para o core: apenas a referência é carregada e o status é lido.
type Integration struct {
	ID                string            `json:"id"`
	UserID            string            `json:"user_id"`
	Provider          Provider          `json:"provider"`
	Status            IntegrationStatus `json:"status"`
	ExternalAccountID string            `json:"external_account_id"`
	CredentialsRef    string            `json:"-"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// IsActive indica se a integração pode ser usada para sincronização
func (i *Integration) IsActive() bool {
	return i != nil && i.Status == IntegrationStatusActive
}
