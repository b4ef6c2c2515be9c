package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

const syncSchedulesTable = "sync_schedules s"

// SyncScheduleRepository encapsula o protocolo claim-then-update dos agendamentos.
// As colunas in_flight/claimed_at são o claim: um agendamento só é despachado por
// quem conseguiu o Claim, e o claim é liberado no finalize (sucesso ou falha).
type SyncScheduleRepository interface {
	GetByID(id string) (*domain.SyncSchedule, error)
	ListDue(now time.Time) ([]*domain.SyncSchedule, error)
	Claim(id string, now time.Time) (bool, error)
	FinalizeSuccess(id string, now time.Time, next time.Time) error
	ReleaseClaim(id string) error
	ReleaseStaleClaims(olderThan time.Time) (int64, error)
}

type syncScheduleRepository struct {
	conn *postgres.Connection
}

func NewSyncScheduleRepository(conn *postgres.Connection) SyncScheduleRepository {
	return &syncScheduleRepository{
		conn: conn,
	}
}

func (r *syncScheduleRepository) GetByID(id string) (*domain.SyncSchedule, error) {
	query, args, err := squirrel.
		Select(scheduleColumns).
		From(syncSchedulesTable).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	schedule, err := scanSchedule(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear agendamento: %w", err)
	}

	return schedule, nil
}

// ListDue retorna os agendamentos elegíveis: ativos, sem claim em andamento e com
// next_sync_at nulo ou no passado.
func (r *syncScheduleRepository) ListDue(now time.Time) ([]*domain.SyncSchedule, error) {
	query, args, err := squirrel.
		Select(scheduleColumns).
		From(syncSchedulesTable).
		Where(squirrel.Eq{"s.is_active": true, "s.in_flight": false}).
		Where(squirrel.Or{
			squirrel.Eq{"s.next_sync_at": nil},
			squirrel.LtOrEq{"s.next_sync_at": now},
		}).
		OrderBy("s.next_sync_at ASC NULLS FIRST").
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

	schedules := make([]*domain.SyncSchedule, 0)
	for rows.Next() {
		schedule, err := scanScheduleRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agendamentos: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return schedules, nil
}

// Claim tenta marcar o agendamento como in_flight em um único UPDATE condicional.
// Retorna false quando outra invocação já levou o claim ou o agendamento deixou de
// estar elegível entre a listagem e o claim.
func (r *syncScheduleRepository) Claim(id string, now time.Time) (bool, error) {
	query, args, err := squirrel.
		Update("sync_schedules").
		Set("in_flight", true).
		Set("claimed_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "is_active": true, "in_flight": false}).
		Where(squirrel.Or{
			squirrel.Eq{"next_sync_at": nil},
			squirrel.LtOrEq{"next_sync_at": now},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected == 1, nil
}

// FinalizeSuccess grava o bookkeeping de sucesso e libera o claim atomicamente
func (r *syncScheduleRepository) FinalizeSuccess(id string, now time.Time, next time.Time) error {
	query, args, err := squirrel.
		Update("sync_schedules").
		Set("last_sync_at", now).
		Set("next_sync_at", next).
		Set("in_flight", false).
		Set("claimed_at", nil).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "in_flight": true}).
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

// ReleaseClaim libera o claim sem avançar next_sync_at, deixando o agendamento
// elegível novamente no próximo tick.
func (r *syncScheduleRepository) ReleaseClaim(id string) error {
	query, args, err := squirrel.
		Update("sync_schedules").
		Set("in_flight", false).
		Set("claimed_at", nil).
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

// ReleaseStaleClaims libera claims abandonados (processo morto no meio do dispatch)
// mais antigos que o limite informado.
func (r *syncScheduleRepository) ReleaseStaleClaims(olderThan time.Time) (int64, error) {
	query, args, err := squirrel.
		Update("sync_schedules").
		Set("in_flight", false).
		Set("claimed_at", nil).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"in_flight": true}).
		Where(squirrel.Lt{"claimed_at": olderThan}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected, nil
}

const scheduleColumns = "s.id, s.user_id, s.provider, s.sync_type, s.frequency, " +
	"s.last_sync_at, s.next_sync_at, s.is_active, s.in_flight, s.claimed_at, s.created_at, s.updated_at"

func scanSchedule(row *sql.Row) (*domain.SyncSchedule, error) {
	schedule := &domain.SyncSchedule{}
	err := row.Scan(
		&schedule.ID,
		&schedule.UserID,
		&schedule.Provider,
		&schedule.SyncType,
		&schedule.Frequency,
		&schedule.LastSyncAt,
		&schedule.NextSyncAt,
		&schedule.IsActive,
		&schedule.InFlight,
		&schedule.ClaimedAt,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return schedule, nil
}

func scanScheduleRows(rows *sql.Rows) (*domain.SyncSchedule, error) {
	schedule := &domain.SyncSchedule{}
	err := rows.Scan(
		&schedule.ID,
		&schedule.UserID,
		&schedule.Provider,
		&schedule.SyncType,
		&schedule.Frequency,
		&schedule.LastSyncAt,
		&schedule.NextSyncAt,
		&schedule.IsActive,
		&schedule.InFlight,
		&schedule.ClaimedAt,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return schedule, nil
}
