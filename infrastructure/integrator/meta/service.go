package meta

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/usecases/syncing"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

// Adapter sincroniza campanhas e métricas da Graph API do Meta.
// A estrutura (campanhas) precisa estar persistida antes das métricas, pois as
// linhas de métrica referenciam o ID externo da campanha.
type Adapter struct {
	cfg          *config.Config
	Client       metaclient.Client
	campaignRepo repository.CampaignRepository
	metricRepo   repository.MetricRepository
	lookbackDays int
}

func New(
	cfg *config.Config,
	client metaclient.Client,
	campaignRepo repository.CampaignRepository,
	metricRepo repository.MetricRepository,
) *Adapter {
	lookback := cfg.SyncScheduler.MetricsLookbackDays
	if lookback <= 0 {
		lookback = 7
	}

	return &Adapter{
		cfg:          cfg,
		Client:       client,
		campaignRepo: campaignRepo,
		metricRepo:   metricRepo,
		lookbackDays: lookback,
	}
}

// SyncCampaigns busca a estrutura de campanhas da conta e faz upsert de cada uma
func (s *Adapter) SyncCampaigns(ctx context.Context, integration *domain.Integration) (*syncing.CampaignSyncResult, error) {
	campaigns, err := s.Client.GetCampaignsByAccountID(ctx, integration.ExternalAccountID, s.accessToken(integration))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"integration_id": integration.ID,
			"account_id":     integration.ExternalAccountID,
			"error":          err.Error(),
		}).Error("sync: failed to get campaigns from Graph API")
		return nil, err
	}

	synced := 0
	for _, campaign := range campaigns {
		err := s.campaignRepo.SaveOrUpdate(&domain.Campaign{
			AccountID:  integration.ExternalAccountID,
			Provider:   domain.ProviderMeta,
			ExternalID: campaign.ID,
			Name:       campaign.Name,
			Objective:  campaign.Objective,
			Status:     campaignStatus(campaign.EffectiveStatus),
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"account_id":  integration.ExternalAccountID,
				"error":       err.Error(),
			}).Error("sync: failed to upsert campaign")
			continue
		}
		synced++
	}

	logrus.WithFields(logrus.Fields{
		"integration_id": integration.ID,
		"account_id":     integration.ExternalAccountID,
		"campaigns":      synced,
	}).Info("sync: meta campaigns synced")

	return &syncing.CampaignSyncResult{CampaignsSynced: synced}, nil
}

// SyncMetrics busca os insights diários da janela de lookback e faz upsert das
// linhas de métrica e das linhas segmentadas por dimensão
func (s *Adapter) SyncMetrics(ctx context.Context, integration *domain.Integration) (*syncing.MetricsSyncResult, error) {
	today := utils.TruncateToDay(time.Now().UTC())
	start := today.AddDate(0, 0, -(s.lookbackDays - 1))

	result := &syncing.MetricsSyncResult{}

	for _, date := range utils.DatesBetween(start, today) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		synced, err := s.syncDailyMetrics(ctx, integration, date)
		if err != nil {
			return result, err
		}
		result.MetricsSynced += synced

		breakdowns, err := s.syncDailyBreakdowns(ctx, integration, date)
		if err != nil {
			return result, err
		}
		result.BreakdownsSynced += breakdowns
	}

	logrus.WithFields(logrus.Fields{
		"integration_id": integration.ID,
		"account_id":     integration.ExternalAccountID,
		"metrics":        result.MetricsSynced,
		"breakdowns":     result.BreakdownsSynced,
	}).Info("sync: meta metrics synced")

	return result, nil
}

func (s *Adapter) syncDailyMetrics(ctx context.Context, integration *domain.Integration, date time.Time) (int, error) {
	insights, err := s.Client.GetDailyInsights(ctx, integration.ExternalAccountID, s.accessToken(integration), date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"integration_id": integration.ID,
			"account_id":     integration.ExternalAccountID,
			"date":           date.Format(time.DateOnly),
			"error":          err.Error(),
		}).Error("sync: failed to get daily insights from Graph API")
		return 0, err
	}

	synced := 0
	for i := range insights {
		insight := insights[i]

		row := &domain.RawMetricRow{
			AccountID:   integration.ExternalAccountID,
			Provider:    domain.ProviderMeta,
			CampaignID:  insight.CampaignID,
			Date:        date,
			Impressions: metadomain.ParseCount(insight.Impressions),
			Clicks:      metadomain.ParseCount(insight.Clicks),
			Spend:       metadomain.ParseAmount(insight.Spend),
			Conversions: insight.ConversionCount(),
			Results:     insight.ResultCount(),
			Messages:    insight.MessageCount(),
		}
		if insight.AdSetID != "" {
			row.AdSetID = &insight.AdSetID
		}
		if insight.AdID != "" {
			row.AdID = &insight.AdID
		}

		if err := s.metricRepo.SaveOrUpdateRow(row); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": insight.CampaignID,
				"date":        date.Format(time.DateOnly),
				"error":       err.Error(),
			}).Error("sync: failed to upsert metric row")
			continue
		}
		synced++
	}

	return synced, nil
}

func (s *Adapter) syncDailyBreakdowns(ctx context.Context, integration *domain.Integration, date time.Time) (int, error) {
	synced := 0

	for _, dimension := range domain.KnownBreakdowns {
		insights, err := s.Client.GetDailyBreakdowns(ctx, integration.ExternalAccountID, s.accessToken(integration), date, dimension)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"integration_id": integration.ID,
				"account_id":     integration.ExternalAccountID,
				"date":           date.Format(time.DateOnly),
				"breakdown":      dimension,
				"error":          err.Error(),
			}).Error("sync: failed to get breakdown insights from Graph API")
			return synced, err
		}

		for i := range insights {
			insight := insights[i]

			row := &domain.BreakdownRow{
				AccountID:      integration.ExternalAccountID,
				Provider:       domain.ProviderMeta,
				CampaignID:     insight.CampaignID,
				Date:           date,
				BreakdownType:  dimension,
				BreakdownValue: insight.DimensionValue(),
				Impressions:    metadomain.ParseCount(insight.Impressions),
				Clicks:         metadomain.ParseCount(insight.Clicks),
				Spend:          metadomain.ParseAmount(insight.Spend),
				Conversions:    metadomain.ActionCount(insight.Actions, "offsite_conversion"),
				Messages:       metadomain.ActionCount(insight.Actions, "onsite_conversion.messaging_conversation_started_7d"),
			}

			if err := s.metricRepo.SaveOrUpdateBreakdown(row); err != nil {
				logrus.WithFields(logrus.Fields{
					"campaign_id": insight.CampaignID,
					"breakdown":   dimension,
					"date":        date.Format(time.DateOnly),
					"error":       err.Error(),
				}).Error("sync: failed to upsert breakdown row")
				continue
			}
			synced++
		}
	}

	return synced, nil
}

// accessToken resolve o token da integração, caindo no token global de
// desenvolvimento quando a integração não carrega referência própria
func (s *Adapter) accessToken(integration *domain.Integration) string {
	if integration.CredentialsRef != "" {
		return integration.CredentialsRef
	}
	return s.cfg.Meta.AccessToken
}

func campaignStatus(effectiveStatus string) domain.CampaignStatus {
	switch strings.ToUpper(effectiveStatus) {
	case "ACTIVE":
		return domain.CampaignStatusActive
	case "PAUSED", "CAMPAIGN_PAUSED", "ADSET_PAUSED":
		return domain.CampaignStatusPaused
	default:
		return domain.CampaignStatusEnded
	}
}
