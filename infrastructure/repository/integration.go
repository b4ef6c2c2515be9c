package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

const integrationsTable = "integrations i"

type IntegrationRepository interface {
	GetByID(id string) (*domain.Integration, error)
	GetActiveByUserAndProvider(userID string, provider domain.Provider) (*domain.Integration, error)
	ListByUser(userID string) ([]*domain.Integration, error)
	UpdateStatus(id string, status domain.IntegrationStatus) error
}

type integrationRepository struct {
	conn *postgres.Connection
}

func NewIntegrationRepository(conn *postgres.Connection) IntegrationRepository {
	return &integrationRepository{
		conn: conn,
	}
}

func (r *integrationRepository) GetByID(id string) (*domain.Integration, error) {
	query, args, err := squirrel.
		Select("i.id, i.user_id, i.provider, i.status, i.external_account_id, i.credentials_ref, i.created_at, i.updated_at").
		From(integrationsTable).
		Where(squirrel.Eq{"i.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	integration, err := r.scanIntegration(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear integração: %w", err)
	}

	return integration, nil
}

// GetActiveByUserAndProvider retorna a integração ativa do usuário para o provider
// informado, ou nil quando não existe nenhuma ativa (não é erro).
func (r *integrationRepository) GetActiveByUserAndProvider(userID string, provider domain.Provider) (*domain.Integration, error) {
	query, args, err := squirrel.
		Select("i.id, i.user_id, i.provider, i.status, i.external_account_id, i.credentials_ref, i.created_at, i.updated_at").
		From(integrationsTable).
		Where(squirrel.Eq{
			"i.user_id":  userID,
			"i.provider": provider,
			"i.status":   domain.IntegrationStatusActive,
		}).
		OrderBy("i.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	integration, err := r.scanIntegration(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear integração: %w", err)
	}

	return integration, nil
}

func (r *integrationRepository) ListByUser(userID string) ([]*domain.Integration, error) {
	query, args, err := squirrel.
		Select("i.id, i.user_id, i.provider, i.status, i.external_account_id, i.credentials_ref, i.created_at, i.updated_at").
		From(integrationsTable).
		Where(squirrel.Eq{"i.user_id": userID}).
		OrderBy("i.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	integrations := make([]*domain.Integration, 0)
	for rows.Next() {
		integration := &domain.Integration{}
		err := rows.Scan(
			&integration.ID,
			&integration.UserID,
			&integration.Provider,
			&integration.Status,
			&integration.ExternalAccountID,
			&integration.CredentialsRef,
			&integration.CreatedAt,
			&integration.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear integração: %w", err)
		}
		integrations = append(integrations, integration)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return integrations, nil
}

func (r *integrationRepository) UpdateStatus(id string, status domain.IntegrationStatus) error {
	query, args, err := squirrel.
		Update("integrations").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *integrationRepository) scanIntegration(row *sql.Row) (*domain.Integration, error) {
	integration := &domain.Integration{}
	err := row.Scan(
		&integration.ID,
		&integration.UserID,
		&integration.Provider,
		&integration.Status,
		&integration.ExternalAccountID,
		&integration.CredentialsRef,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return integration, nil
}
