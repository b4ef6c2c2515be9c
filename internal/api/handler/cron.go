package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/internal/scheduler"
	"github.com/vfg2006/ad-performance-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSync   = "sync"
	CronJobTypeAlerts = "alerts"
	CronJobTypeAll    = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SyncScheduleService    *scheduler.SyncScheduleService
	AlertEvaluationService *scheduler.AlertEvaluationService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSync:
			if services.SyncScheduleService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
				return
			}
			services.SyncScheduleService.TriggerManualSync()

		case CronJobTypeAlerts:
			if services.AlertEvaluationService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de avaliação de alertas não disponível", nil)
				return
			}
			services.AlertEvaluationService.TriggerManualSync()

		case CronJobTypeAll:
			if services.SyncScheduleService != nil {
				services.SyncScheduleService.TriggerManualSync()
			}
			if services.AlertEvaluationService != nil {
				services.AlertEvaluationService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: sync, alerts, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"sync":   services.SyncScheduleService.GetStatus(),
			"alerts": services.AlertEvaluationService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
