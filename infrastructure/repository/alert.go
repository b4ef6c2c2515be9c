package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

const (
	spendingAlertsTable = "spending_alerts a"
	alertTriggersTable  = "alert_triggers t"
)

// uniqueViolation é o código do Postgres para violação de constraint de unicidade
const uniqueViolation = "23505"

// AlertRepository lê as regras de alerta e é o único escritor dos trigger records.
// O invariante de um único trigger não resolvido por regra é garantido por um
// índice único parcial (alert_id WHERE resolved_at IS NULL), não apenas pelo
// check-before-create da aplicação.
type AlertRepository interface {
	ListActiveRules() ([]*domain.SpendingAlert, error)
	GetOpenTrigger(alertID string) (*domain.AlertTrigger, error)
	CreateTrigger(trigger *domain.AlertTrigger) error
	UpdateTriggerAmount(triggerID string, amount float64) error
	ResolveTrigger(triggerID string, resolvedAt time.Time) error
	UpdateLastTriggeredAt(alertID string, triggeredAt time.Time) error
	ListTriggers(userID string, onlyOpen bool) ([]*domain.AlertTrigger, error)
}

// ErrDuplicateOpenTrigger indica que já existe um trigger não resolvido para a regra
var ErrDuplicateOpenTrigger = fmt.Errorf("já existe um trigger não resolvido para esta regra")

type alertRepository struct {
	conn *postgres.Connection
}

func NewAlertRepository(conn *postgres.Connection) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

func (r *alertRepository) ListActiveRules() ([]*domain.SpendingAlert, error) {
	query, args, err := squirrel.
		Select("a.id, a.user_id, a.name, a.metric_type, a.condition, a.threshold, " +
			"a.provider, a.account_id, a.campaign_id, a.lookback_days, a.is_active, " +
			"a.last_triggered_at, a.created_at, a.updated_at").
		From(spendingAlertsTable).
		Where(squirrel.Eq{"a.is_active": true}).
		OrderBy("a.created_at ASC").
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

	alerts := make([]*domain.SpendingAlert, 0)
	for rows.Next() {
		alert := &domain.SpendingAlert{}
		err := rows.Scan(
			&alert.ID,
			&alert.UserID,
			&alert.Name,
			&alert.MetricType,
			&alert.Condition,
			&alert.Threshold,
			&alert.Provider,
			&alert.AccountID,
			&alert.CampaignID,
			&alert.LookbackDays,
			&alert.IsActive,
			&alert.LastTriggeredAt,
			&alert.CreatedAt,
			&alert.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear regra de alerta: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return alerts, nil
}

// GetOpenTrigger retorna o trigger não resolvido da regra, ou nil quando não existe
func (r *alertRepository) GetOpenTrigger(alertID string) (*domain.AlertTrigger, error) {
	query, args, err := squirrel.
		Select("t.id, t.alert_id, t.current_amount, t.triggered_at, t.resolved_at").
		From(alertTriggersTable).
		Where(squirrel.Eq{"t.alert_id": alertID, "t.resolved_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	trigger := &domain.AlertTrigger{}
	err = r.conn.QueryRow(query, args...).Scan(
		&trigger.ID,
		&trigger.AlertID,
		&trigger.CurrentAmount,
		&trigger.TriggeredAt,
		&trigger.ResolvedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear trigger: %w", err)
	}

	return trigger, nil
}

func (r *alertRepository) CreateTrigger(trigger *domain.AlertTrigger) error {
	if trigger.ID == "" {
		generated, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do trigger: %w", err)
		}
		trigger.ID = generated
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("alert_triggers").
		Columns("id", "alert_id", "current_amount", "triggered_at").
		Values(trigger.ID, trigger.AlertID, trigger.CurrentAmount, trigger.TriggeredAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return ErrDuplicateOpenTrigger
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *alertRepository) UpdateTriggerAmount(triggerID string, amount float64) error {
	query, args, err := squirrel.
		Update("alert_triggers").
		Set("current_amount", amount).
		Where(squirrel.Eq{"id": triggerID, "resolved_at": nil}).
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

func (r *alertRepository) ResolveTrigger(triggerID string, resolvedAt time.Time) error {
	query, args, err := squirrel.
		Update("alert_triggers").
		Set("resolved_at", resolvedAt).
		Where(squirrel.Eq{"id": triggerID, "resolved_at": nil}).
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

func (r *alertRepository) UpdateLastTriggeredAt(alertID string, triggeredAt time.Time) error {
	query, args, err := squirrel.
		Update("spending_alerts").
		Set("last_triggered_at", triggeredAt).
		Set("updated_at", triggeredAt).
		Where(squirrel.Eq{"id": alertID}).
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

// ListTriggers retorna os triggers das regras do usuário, para consulta nos dashboards
func (r *alertRepository) ListTriggers(userID string, onlyOpen bool) ([]*domain.AlertTrigger, error) {
	builder := squirrel.
		Select("t.id, t.alert_id, t.current_amount, t.triggered_at, t.resolved_at").
		From(alertTriggersTable).
		Join("spending_alerts a ON a.id = t.alert_id").
		Where(squirrel.Eq{"a.user_id": userID}).
		OrderBy("t.triggered_at DESC")

	if onlyOpen {
		builder = builder.Where(squirrel.Eq{"t.resolved_at": nil})
	}

	query, args, err := builder.
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

	triggers := make([]*domain.AlertTrigger, 0)
	for rows.Next() {
		trigger := &domain.AlertTrigger{}
		err := rows.Scan(
			&trigger.ID,
			&trigger.AlertID,
			&trigger.CurrentAmount,
			&trigger.TriggeredAt,
			&trigger.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear trigger: %w", err)
		}
		triggers = append(triggers, trigger)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return triggers, nil
}
