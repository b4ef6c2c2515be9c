package handler

import (
	"net/http"

	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/pkg/apiErrors"
	"github.com/vfg2006/ad-performance-api/pkg/log"
)

// ListAlertTriggers lista os triggers das regras de alerta do usuário.
// Com only_open=true devolve apenas os triggers ainda não resolvidos.
func ListAlertTriggers(alertRepo repository.AlertRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro user_id é obrigatório", nil)
			return
		}

		onlyOpen := r.URL.Query().Get("only_open") == "true"

		triggers, err := alertRepo.ListTriggers(userID, onlyOpen)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("alerts: failed to list triggers")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar triggers de alerta", nil)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":   userID,
			"only_open": onlyOpen,
			"total":     len(triggers),
		}).Info("alerts: triggers listed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(triggers); err != nil {
			logger.WithError(err).Error("alerts: failed to encode response")
		}
	})
}
