package domain

import "time"

// ScheduleOutcome classifica o resultado do processamento de um agendamento
type ScheduleOutcome string

const (
	OutcomeSuccess ScheduleOutcome = "success"
	OutcomeSkipped ScheduleOutcome = "skipped"
	OutcomeFailed  ScheduleOutcome = "failed"
)

// Motivos padronizados usados no campo Detail
const (
	SkipReasonNoActiveIntegration = "no_active_integration"
	SkipReasonClaimLost           = "claim_not_acquired"
)

// ScheduleResult é a entrada do relatório para um único agendamento.
// Falhas são dados, nunca propagadas como erro para fora do run.
type ScheduleResult struct {
	ScheduleID       string          `json:"schedule_id"`
	Provider         Provider        `json:"provider"`
	SyncType         SyncType        `json:"sync_type"`
	Outcome          ScheduleOutcome `json:"outcome"`
	Detail           string          `json:"detail,omitempty"`
	CampaignsSynced  int             `json:"campaigns_synced,omitempty"`
	MetricsSynced    int             `json:"metrics_synced,omitempty"`
	BreakdownsSynced int             `json:"breakdowns_synced,omitempty"`
}

// RunReport é o resultado completo de uma invocação de RunDueSchedules
type RunReport struct {
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Processed  int               `json:"processed"`
	Results    []*ScheduleResult `json:"results"`
}

// CountByOutcome devolve quantos agendamentos terminaram com o resultado informado
func (r *RunReport) CountByOutcome(outcome ScheduleOutcome) int {
	count := 0
	for _, result := range r.Results {
		if result.Outcome == outcome {
			count++
		}
	}
	return count
}
