package google

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/usecases/syncing"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

// Adapter sincroniza campanhas e métricas da Google Ads API. Diferente do Meta,
// um único relatório GAQL carrega estrutura e métricas juntas: SyncMetrics faz
// upsert das campanhas encontradas nas próprias linhas do relatório.
type Adapter struct {
	cfg          *config.Config
	Client       googleclient.Client
	campaignRepo repository.CampaignRepository
	metricRepo   repository.MetricRepository
	lookbackDays int
}

func New(
	cfg *config.Config,
	client googleclient.Client,
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

const campaignQuery = `SELECT campaign.id, campaign.name, campaign.status, campaign.advertising_channel_type FROM campaign`

// SyncCampaigns busca apenas a estrutura de campanhas do cliente
func (s *Adapter) SyncCampaigns(ctx context.Context, integration *domain.Integration) (*syncing.CampaignSyncResult, error) {
	rows, err := s.Client.SearchReport(ctx, integration.ExternalAccountID, s.accessToken(integration), campaignQuery)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"integration_id": integration.ID,
			"customer_id":    integration.ExternalAccountID,
			"error":          err.Error(),
		}).Error("sync: failed to get campaigns from Google Ads API")
		return nil, err
	}

	synced := 0
	for i := range rows {
		if err := s.upsertCampaign(integration, &rows[i].Campaign); err != nil {
			continue
		}
		synced++
	}

	logrus.WithFields(logrus.Fields{
		"integration_id": integration.ID,
		"customer_id":    integration.ExternalAccountID,
		"campaigns":      synced,
	}).Info("sync: google campaigns synced")

	return &syncing.CampaignSyncResult{CampaignsSynced: synced}, nil
}

// SyncMetrics busca o relatório diário da janela de lookback. Cada linha carrega
// a campanha junto das métricas, então a estrutura é atualizada no mesmo passo.
func (s *Adapter) SyncMetrics(ctx context.Context, integration *domain.Integration) (*syncing.MetricsSyncResult, error) {
	today := utils.TruncateToDay(time.Now().UTC())
	start := today.AddDate(0, 0, -(s.lookbackDays - 1))

	metricsQuery := fmt.Sprintf(
		`SELECT campaign.id, campaign.name, campaign.status, campaign.advertising_channel_type, metrics.impressions, metrics.clicks, metrics.cost_micros, metrics.conversions, segments.date FROM campaign WHERE segments.date BETWEEN '%s' AND '%s'`,
		start.Format(time.DateOnly), today.Format(time.DateOnly),
	)

	rows, err := s.Client.SearchReport(ctx, integration.ExternalAccountID, s.accessToken(integration), metricsQuery)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"integration_id": integration.ID,
			"customer_id":    integration.ExternalAccountID,
			"error":          err.Error(),
		}).Error("sync: failed to get daily report from Google Ads API")
		return nil, err
	}

	result := &syncing.MetricsSyncResult{}

	for i := range rows {
		row := rows[i]

		// A estrutura vem na própria linha do relatório
		if err := s.upsertCampaign(integration, &row.Campaign); err != nil {
			continue
		}

		date, err := utils.ParseDate(row.Segments.Date)
		if err != nil || date == nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": row.Campaign.ID,
				"date":        row.Segments.Date,
			}).Warn("sync: invalid date in report row")
			continue
		}

		metricRow := &domain.RawMetricRow{
			AccountID:   integration.ExternalAccountID,
			Provider:    domain.ProviderGoogle,
			CampaignID:  row.Campaign.ID,
			Date:        *date,
			Impressions: googledomain.ParseCount(row.Metrics.Impressions),
			Clicks:      googledomain.ParseCount(row.Metrics.Clicks),
			Spend:       googledomain.ParseCostMicros(row.Metrics.CostMicros),
			Conversions: int(row.Metrics.Conversions),
			Results:     int(row.Metrics.Conversions),
		}

		if err := s.metricRepo.SaveOrUpdateRow(metricRow); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": row.Campaign.ID,
				"date":        row.Segments.Date,
				"error":       err.Error(),
			}).Error("sync: failed to upsert metric row")
			continue
		}
		result.MetricsSynced++
	}

	breakdowns, err := s.syncDeviceBreakdowns(ctx, integration, start, today)
	if err != nil {
		return result, err
	}
	result.BreakdownsSynced = breakdowns

	logrus.WithFields(logrus.Fields{
		"integration_id": integration.ID,
		"customer_id":    integration.ExternalAccountID,
		"metrics":        result.MetricsSynced,
		"breakdowns":     result.BreakdownsSynced,
	}).Info("sync: google metrics synced")

	return result, nil
}

// syncDeviceBreakdowns busca o relatório segmentado por device, a única dimensão
// que a API expõe como segmento direto do relatório de campanha
func (s *Adapter) syncDeviceBreakdowns(ctx context.Context, integration *domain.Integration, start, end time.Time) (int, error) {
	query := fmt.Sprintf(
		`SELECT campaign.id, metrics.impressions, metrics.clicks, metrics.cost_micros, metrics.conversions, segments.date, segments.device FROM campaign WHERE segments.date BETWEEN '%s' AND '%s'`,
		start.Format(time.DateOnly), end.Format(time.DateOnly),
	)

	rows, err := s.Client.SearchReport(ctx, integration.ExternalAccountID, s.accessToken(integration), query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"integration_id": integration.ID,
			"customer_id":    integration.ExternalAccountID,
			"error":          err.Error(),
		}).Error("sync: failed to get device report from Google Ads API")
		return 0, err
	}

	synced := 0
	for i := range rows {
		row := rows[i]

		date, err := utils.ParseDate(row.Segments.Date)
		if err != nil || date == nil {
			continue
		}

		breakdownRow := &domain.BreakdownRow{
			AccountID:      integration.ExternalAccountID,
			Provider:       domain.ProviderGoogle,
			CampaignID:     row.Campaign.ID,
			Date:           *date,
			BreakdownType:  domain.BreakdownDevice,
			BreakdownValue: deviceValue(row.Segments.Device),
			Impressions:    googledomain.ParseCount(row.Metrics.Impressions),
			Clicks:         googledomain.ParseCount(row.Metrics.Clicks),
			Spend:          googledomain.ParseCostMicros(row.Metrics.CostMicros),
			Conversions:    int(row.Metrics.Conversions),
		}

		if err := s.metricRepo.SaveOrUpdateBreakdown(breakdownRow); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": row.Campaign.ID,
				"date":        row.Segments.Date,
				"error":       err.Error(),
			}).Error("sync: failed to upsert breakdown row")
			continue
		}
		synced++
	}

	return synced, nil
}

func (s *Adapter) upsertCampaign(integration *domain.Integration, campaign *googledomain.Campaign) error {
	err := s.campaignRepo.SaveOrUpdate(&domain.Campaign{
		AccountID:  integration.ExternalAccountID,
		Provider:   domain.ProviderGoogle,
		ExternalID: campaign.ID,
		Name:       campaign.Name,
		Objective:  campaign.AdvertisingChannelType,
		Status:     campaignStatus(campaign.Status),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"customer_id": integration.ExternalAccountID,
			"error":       err.Error(),
		}).Error("sync: failed to upsert campaign")
	}
	return err
}

func (s *Adapter) accessToken(integration *domain.Integration) string {
	if integration.CredentialsRef != "" {
		return integration.CredentialsRef
	}
	return s.cfg.Google.AccessToken
}

func campaignStatus(status string) domain.CampaignStatus {
	switch status {
	case "ENABLED":
		return domain.CampaignStatusActive
	case "PAUSED":
		return domain.CampaignStatusPaused
	default:
		return domain.CampaignStatusEnded
	}
}

func deviceValue(device string) string {
	if device == "" || device == "UNSPECIFIED" || device == "UNKNOWN" {
		return "unknown"
	}
	return device
}
