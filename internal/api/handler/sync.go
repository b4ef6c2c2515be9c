package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/usecases/syncing"
	"github.com/vfg2006/ad-performance-api/pkg/apiErrors"
	"github.com/vfg2006/ad-performance-api/pkg/log"
)

// RunSyncResponse é o corpo de resposta do disparo manual de sincronização
type RunSyncResponse struct {
	Success   bool                     `json:"success"`
	Processed int                      `json:"processed"`
	Results   []*domain.ScheduleResult `json:"results"`
}

// RunSyncSchedules dispara um run síncrono do motor sobre os agendamentos
// vencidos. Falhas de agendamentos individuais viram entradas do relatório,
// nunca erro HTTP: só um erro de infraestrutura derruba o run inteiro.
func RunSyncSchedules(engine syncing.Scheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("sync: manual run requested")

		report, err := engine.RunDueSchedules(r.Context(), time.Now())
		if err != nil {
			logger.WithError(err).Error("sync: manual run failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar a sincronização", nil)
			return
		}

		logger.WithFields(log.Fields{
			"processed": report.Processed,
			"succeeded": report.CountByOutcome(domain.OutcomeSuccess),
			"skipped":   report.CountByOutcome(domain.OutcomeSkipped),
			"failed":    report.CountByOutcome(domain.OutcomeFailed),
		}).Info("sync: manual run finished")

		response := RunSyncResponse{
			Success:   true,
			Processed: report.Processed,
			Results:   report.Results,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("sync: failed to encode response")
		}
	})
}
