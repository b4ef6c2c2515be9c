package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

const (
	campaignMetricsTable  = "campaign_metrics m"
	metricBreakdownsTable = "metric_breakdowns b"
)

// MetricRepository lê e escreve as linhas brutas de métricas diárias e suas
// variantes segmentadas. Escritas são upserts pela chave natural, de forma que
// sincronizações repetidas são idempotentes.
type MetricRepository interface {
	SaveOrUpdateRow(row *domain.RawMetricRow) error
	SaveOrUpdateBreakdown(row *domain.BreakdownRow) error
	GetByScope(scope *domain.MetricScope) ([]*domain.RawMetricRow, error)
	GetBreakdownsByScope(scope *domain.MetricScope, dimension domain.BreakdownType) ([]*domain.BreakdownRow, error)
}

type metricRepository struct {
	conn *postgres.Connection
}

func NewMetricRepository(conn *postgres.Connection) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

func (r *metricRepository) SaveOrUpdateRow(row *domain.RawMetricRow) error {
	id := row.ID
	if id == "" {
		generated, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da métrica: %w", err)
		}
		id = generated
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("campaign_metrics").
		Columns("id", "account_id", "provider", "campaign_id", "ad_set_id", "ad_id", "date",
			"impressions", "clicks", "spend", "conversions", "results", "messages").
		Values(
			id,
			row.AccountID,
			row.Provider,
			row.CampaignID,
			row.AdSetID,
			row.AdID,
			row.Date.Format("2006-01-02"),
			row.Impressions,
			row.Clicks,
			row.Spend,
			row.Conversions,
			row.Results,
			row.Messages,
		).
		Suffix(`
			ON CONFLICT (campaign_id, entity_key, date) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				spend = EXCLUDED.spend,
				conversions = EXCLUDED.conversions,
				results = EXCLUDED.results,
				messages = EXCLUDED.messages,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *metricRepository) SaveOrUpdateBreakdown(row *domain.BreakdownRow) error {
	id := row.ID
	if id == "" {
		generated, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do breakdown: %w", err)
		}
		id = generated
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("metric_breakdowns").
		Columns("id", "account_id", "provider", "campaign_id", "date",
			"breakdown_type", "breakdown_value",
			"impressions", "clicks", "spend", "conversions", "results", "messages").
		Values(
			id,
			row.AccountID,
			row.Provider,
			row.CampaignID,
			row.Date.Format("2006-01-02"),
			row.BreakdownType,
			row.BreakdownValue,
			row.Impressions,
			row.Clicks,
			row.Spend,
			row.Conversions,
			row.Results,
			row.Messages,
		).
		Suffix(`
			ON CONFLICT (campaign_id, date, breakdown_type, breakdown_value) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				spend = EXCLUDED.spend,
				conversions = EXCLUDED.conversions,
				results = EXCLUDED.results,
				messages = EXCLUDED.messages,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetByScope retorna as linhas brutas do recorte: período obrigatório,
// filtros opcionais de conta, campanha, provider e status de campanha.
func (r *metricRepository) GetByScope(scope *domain.MetricScope) ([]*domain.RawMetricRow, error) {
	builder := squirrel.
		Select("m.id, m.account_id, m.provider, m.campaign_id, m.ad_set_id, m.ad_id, m.date, " +
			"m.impressions, m.clicks, m.spend, m.conversions, m.results, m.messages").
		From(campaignMetricsTable).
		Where(squirrel.GtOrEq{"m.date": scope.StartDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"m.date": scope.EndDate.Format("2006-01-02")})

	builder = applyScopeFilters(builder, scope, "m")

	query, args, err := builder.
		OrderBy("m.date ASC, m.campaign_id ASC").
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

	metrics := make([]*domain.RawMetricRow, 0)
	for rows.Next() {
		metric, err := scanMetricRow(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *metricRepository) GetBreakdownsByScope(scope *domain.MetricScope, dimension domain.BreakdownType) ([]*domain.BreakdownRow, error) {
	builder := squirrel.
		Select("b.id, b.account_id, b.provider, b.campaign_id, b.date, b.breakdown_type, b.breakdown_value, " +
			"b.impressions, b.clicks, b.spend, b.conversions, b.results, b.messages").
		From(metricBreakdownsTable).
		Where(squirrel.Eq{"b.breakdown_type": dimension}).
		Where(squirrel.GtOrEq{"b.date": scope.StartDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"b.date": scope.EndDate.Format("2006-01-02")})

	builder = applyScopeFilters(builder, scope, "b")

	query, args, err := builder.
		OrderBy("b.date ASC, b.campaign_id ASC, b.breakdown_value ASC").
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

	breakdowns := make([]*domain.BreakdownRow, 0)
	for rows.Next() {
		breakdown := &domain.BreakdownRow{}
		err := rows.Scan(
			&breakdown.ID,
			&breakdown.AccountID,
			&breakdown.Provider,
			&breakdown.CampaignID,
			&breakdown.Date,
			&breakdown.BreakdownType,
			&breakdown.BreakdownValue,
			&breakdown.Impressions,
			&breakdown.Clicks,
			&breakdown.Spend,
			&breakdown.Conversions,
			&breakdown.Results,
			&breakdown.Messages,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear breakdowns: %w", err)
		}
		breakdowns = append(breakdowns, breakdown)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return breakdowns, nil
}

// applyScopeFilters aplica os filtros opcionais do recorte ao builder.
// O filtro de status exige subquery na tabela de campanhas.
func applyScopeFilters(builder squirrel.SelectBuilder, scope *domain.MetricScope, alias string) squirrel.SelectBuilder {
	if scope.AccountID != nil {
		builder = builder.Where(squirrel.Eq{alias + ".account_id": *scope.AccountID})
	}
	if scope.CampaignID != nil {
		builder = builder.Where(squirrel.Eq{alias + ".campaign_id": *scope.CampaignID})
	}
	if scope.Provider != nil {
		builder = builder.Where(squirrel.Eq{alias + ".provider": *scope.Provider})
	}
	if scope.Status != nil {
		// As linhas de métrica referenciam campanhas pelo id externo do provider
		builder = builder.Where(
			alias+".campaign_id IN (SELECT external_id FROM campaigns WHERE status = ?)",
			*scope.Status,
		)
	}
	return builder
}

func scanMetricRow(rows *sql.Rows) (*domain.RawMetricRow, error) {
	metric := &domain.RawMetricRow{}
	err := rows.Scan(
		&metric.ID,
		&metric.AccountID,
		&metric.Provider,
		&metric.CampaignID,
		&metric.AdSetID,
		&metric.AdID,
		&metric.Date,
		&metric.Impressions,
		&metric.Clicks,
		&metric.Spend,
		&metric.Conversions,
		&metric.Results,
		&metric.Messages,
	)
	if err != nil {
		return nil, err
	}

	return metric, nil
}
