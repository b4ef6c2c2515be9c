package domain

import "time"

// SyncType define qual porção dos dados a sincronização deve cobrir
type SyncType string

const (
	SyncTypeCampaigns SyncType = "campaigns"
	SyncTypeMetrics   SyncType = "metrics"
	SyncTypeFull      SyncType = "full"
)

// SyncFrequency define o intervalo de recorrência de um agendamento
type SyncFrequency string

const (
	SyncFrequencyHourly SyncFrequency = "hourly"
	SyncFrequencyDaily  SyncFrequency = "daily"
	SyncFrequencyWeekly SyncFrequency = "weekly"
)

// Interval converte a frequência no intervalo entre execuções
func (f SyncFrequency) Interval() time.Duration {
	switch f {
	case SyncFrequencyHourly:
		return time.Hour
	case SyncFrequencyWeekly:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// SyncSchedule é a definição de um job recorrente de sincronização.
// O bookkeeping (last_sync_at/next_sync_at) e o claim (in_flight/claimed_at)
// são mutados exclusivamente pelo SyncScheduler.
type SyncSchedule struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	Provider   Provider      `json:"provider"`
	SyncType   SyncType      `json:"sync_type"`
	Frequency  SyncFrequency `json:"frequency"`
	LastSyncAt *time.Time    `json:"last_sync_at,omitempty"`
	NextSyncAt *time.Time    `json:"next_sync_at,omitempty"`
	IsActive   bool          `json:"is_active"`
	InFlight   bool          `json:"-"`
	ClaimedAt  *time.Time    `json:"-"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// IsDue indica se o agendamento está elegível para execução no instante informado
func (s *SyncSchedule) IsDue(now time.Time) bool {
	if s == nil || !s.IsActive {
		return false
	}
	return s.NextSyncAt == nil || !s.NextSyncAt.After(now)
}
