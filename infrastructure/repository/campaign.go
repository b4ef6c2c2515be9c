package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

const campaignsTable = "campaigns c"

type CampaignRepository interface {
	SaveOrUpdate(campaign *domain.Campaign) error
	ListByAccount(accountID string) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// SaveOrUpdate insere ou atualiza a campanha pela chave (provider, external_id).
// Sincronizações repetidas sobrescrevem a mesma linha, nunca duplicam.
func (r *campaignRepository) SaveOrUpdate(campaign *domain.Campaign) error {
	id := campaign.ID
	if id == "" {
		generated, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da campanha: %w", err)
		}
		id = generated
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("id", "account_id", "provider", "external_id", "name", "objective", "status").
		Values(
			id,
			campaign.AccountID,
			campaign.Provider,
			campaign.ExternalID,
			campaign.Name,
			campaign.Objective,
			campaign.Status,
		).
		Suffix(`
			ON CONFLICT (provider, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				objective = EXCLUDED.objective,
				status = EXCLUDED.status,
				updated_at = NOW()
		`).
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

func (r *campaignRepository) ListByAccount(accountID string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.id, c.account_id, c.provider, c.external_id, c.name, c.objective, c.status, c.created_at, c.updated_at").
		From(campaignsTable).
		Where(squirrel.Eq{"c.account_id": accountID}).
		OrderBy("c.name ASC").
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}
		var updatedAt, createdAt time.Time
		err := rows.Scan(
			&campaign.ID,
			&campaign.AccountID,
			&campaign.Provider,
			&campaign.ExternalID,
			&campaign.Name,
			&campaign.Objective,
			&campaign.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaign.CreatedAt = createdAt
		campaign.UpdatedAt = updatedAt
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}
