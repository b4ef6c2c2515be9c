package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/usecases/aggregating"
	"github.com/vfg2006/ad-performance-api/pkg/apiErrors"
	"github.com/vfg2006/ad-performance-api/pkg/log"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

// scopeFromRequest monta o recorte de agregação a partir do path e da query string
func scopeFromRequest(r *http.Request) (*domain.MetricScope, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, err
	}

	if startDate == nil || endDate == nil {
		return nil, fmt.Errorf("os parâmetros start_date e end_date são obrigatórios")
	}

	accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

	scope := &domain.MetricScope{
		StartDate: startDate,
		EndDate:   endDate,
		AccountID: &accountID,
	}

	if campaignID := r.URL.Query().Get("campaign_id"); campaignID != "" {
		scope.CampaignID = &campaignID
	}

	if provider := r.URL.Query().Get("provider"); provider != "" {
		p := domain.Provider(provider)
		scope.Provider = &p
	}

	if status := r.URL.Query().Get("status"); status != "" {
		s := domain.CampaignStatus(status)
		scope.Status = &s
	}

	return scope, nil
}

// GetAccountInsights agrega as métricas da conta para o período pedido
func GetAccountInsights(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		scope, err := scopeFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("insights: invalid date parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros start_date e end_date inválidos", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": *scope.AccountID,
		}).Info("insights: aggregating account metrics")

		aggregated, err := service.Aggregate(scope)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": *scope.AccountID,
				"error":      err.Error(),
			}).Error("insights: failed to aggregate account metrics")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao agregar métricas da conta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(aggregated); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
		}
	})
}

// GetAccountInsightsBreakdown agrega as métricas segmentadas pela dimensão pedida
func GetAccountInsightsBreakdown(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		scope, err := scopeFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("insights: invalid date parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros start_date e end_date inválidos", nil)
			return
		}

		dimension := domain.BreakdownType(r.URL.Query().Get("dimension"))
		if !domain.ValidBreakdown(dimension) {
			logger.WithField("dimension", dimension).Warn("insights: unknown breakdown dimension")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dimensão de breakdown desconhecida. Valores aceitos: age, gender, device, platform, region", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": *scope.AccountID,
			"dimension":  dimension,
		}).Info("insights: aggregating breakdown metrics")

		aggregated, err := service.AggregateBreakdown(scope, dimension)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": *scope.AccountID,
				"dimension":  dimension,
				"error":      err.Error(),
			}).Error("insights: failed to aggregate breakdown metrics")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao agregar métricas segmentadas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(aggregated); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
		}
	})
}
