package syncing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/usecases/syncing"
	syncmocks "github.com/vfg2006/ad-performance-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() config.SyncScheduler {
	return config.SyncScheduler{
		MaxConcurrentJobs:     1,
		AdapterTimeoutSeconds: 30,
		ClaimStaleMinutes:     10,
	}
}

func activeIntegration(userID string, provider domain.Provider) *domain.Integration {
	return &domain.Integration{
		ID:                "int-" + userID,
		UserID:            userID,
		Provider:          provider,
		Status:            domain.IntegrationStatusActive,
		ExternalAccountID: "1234567890",
	}
}

func schedule(id string, provider domain.Provider, syncType domain.SyncType) *domain.SyncSchedule {
	return &domain.SyncSchedule{
		ID:        id,
		UserID:    "user-1",
		Provider:  provider,
		SyncType:  syncType,
		Frequency: domain.SyncFrequencyDaily,
		IsActive:  true,
	}
}

func TestService_RunDueSchedules(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter)
		validate func(t *testing.T, report *domain.RunReport, err error)
	}{
		{
			name: "Nenhum agendamento elegível - relatório vazio sem erro",
			setup: func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter) {
				scheduleRepo.EXPECT().ReleaseStaleClaims(gomock.Any()).Return(int64(0), nil)
				scheduleRepo.EXPECT().ListDue(now).Return([]*domain.SyncSchedule{}, nil)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, report.Processed)
				assert.Empty(t, report.Results)
			},
		},
		{
			name: "Erro ao listar agendamentos - único erro fatal do ciclo",
			setup: func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter) {
				scheduleRepo.EXPECT().ReleaseStaleClaims(gomock.Any()).Return(int64(0), nil)
				scheduleRepo.EXPECT().ListDue(now).Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.Error(t, err)
				assert.Nil(t, report)
			},
		},
		{
			name: "Falha no sweep de claims abandonados não impede o ciclo",
			setup: func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter) {
				scheduleRepo.EXPECT().ReleaseStaleClaims(now.Add(-10*time.Minute)).Return(int64(0), errors.New("deadlock"))
				scheduleRepo.EXPECT().ListDue(now).Return([]*domain.SyncSchedule{}, nil)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, report.Processed)
			},
		},
		{
			name: "Sincronização Meta metrics com sucesso - finalize avança next_sync_at pela frequência",
			setup: func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter) {
				sched := schedule("sch-1", domain.ProviderMeta, domain.SyncTypeMetrics)

				scheduleRepo.EXPECT().ReleaseStaleClaims(gomock.Any()).Return(int64(0), nil)
				scheduleRepo.EXPECT().ListDue(now).Return([]*domain.SyncSchedule{sched}, nil)
				scheduleRepo.EXPECT().Claim("sch-1", now).Return(true, nil)
				integrationRepo.EXPECT().
					GetActiveByUserAndProvider("user-1", domain.ProviderMeta).
					Return(activeIntegration("user-1", domain.ProviderMeta), nil)
				metaAdapter.EXPECT().
					SyncMetrics(gomock.Any(), gomock.Any()).
					Return(&syncing.MetricsSyncResult{MetricsSynced: 42, BreakdownsSynced: 15}, nil)
				scheduleRepo.EXPECT().FinalizeSuccess("sch-1", now, now.Add(24*time.Hour)).Return(nil)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, report.Processed)
				assert.Equal(t, domain.OutcomeSuccess, report.Results[0].Outcome)
				assert.Equal(t, 0, report.Results[0].CampaignsSynced)
				assert.Equal(t, 42, report.Results[0].MetricsSynced)
				assert.Equal(t, 15, report.Results[0].BreakdownsSynced)
			},
		},
		{
			name: "Meta campaigns despacha apenas SyncCampaigns",
			setup: func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter) {
				sched := schedule("sch-1", domain.ProviderMeta, domain.SyncTypeCampaigns)

				scheduleRepo.EXPECT().ReleaseStaleClaims(gomock.Any()).Return(int64(0), nil)
				scheduleRepo.EXPECT().ListDue(now).Return([]*domain.SyncSchedule{sched}, nil)
				scheduleRepo.EXPECT().Claim("sch-1", now).Return(true, nil)
				integrationRepo.EXPECT().
					GetActiveByUserAndProvider("user-1", domain.ProviderMeta).
					Return(activeIntegration("user-1", domain.ProviderMeta), nil)
				metaAdapter.EXPECT().
					SyncCampaigns(gomock.Any(), gomock.Any()).
					Return(&syncing.CampaignSyncResult{CampaignsSynced: 7}, nil)
				scheduleRepo.EXPECT().FinalizeSuccess("sch-1", now, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.OutcomeSuccess, report.Results[0].Outcome)
				assert.Equal(t, 7, report.Results[0].CampaignsSynced)
				assert.Equal(t, 0, report.Results[0].MetricsSynced)
			},
		},
		{
			name: "Google metrics executa o sync combinado: estrutura antes das métricas",
			setup: func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter) {
				sched := schedule("sch-1", domain.ProviderGoogle, domain.SyncTypeMetrics)

				scheduleRepo.EXPECT().ReleaseStaleClaims(gomock.Any()).Return(int64(0), nil)
				scheduleRepo.EXPECT().ListDue(now).Return([]*domain.SyncSchedule{sched}, nil)
				scheduleRepo.EXPECT().Claim("sch-1", now).Return(true, nil)
				integrationRepo.EXPECT().
					GetActiveByUserAndProvider("user-1", domain.ProviderGoogle).
					Return(activeIntegration("user-1", domain.ProviderGoogle), nil)

				campaignsCall := googleAdapter.EXPECT().
					SyncCampaigns(gomock.Any(), gomock.Any()).
					Return(&syncing.CampaignSyncResult{CampaignsSynced: 3}, nil)
				googleAdapter.EXPECT().
					SyncMetrics(gomock.Any(), gomock.Any()).
					Return(&syncing.MetricsSyncResult{MetricsSynced: 20, BreakdownsSynced: 5}, nil).
					After(campaignsCall)

				scheduleRepo.EXPECT().FinalizeSuccess("sch-1", now, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.OutcomeSuccess, report.Results[0].Outcome)
				assert.Equal(t, 3, report.Results[0].CampaignsSynced)
				assert.Equal(t, 20, report.Results[0].MetricsSynced)
				assert.Equal(t, 5, report.Results[0].BreakdownsSynced)
			},
		},
		{
			name: "Claim perdido para outra invocação - skipped sem dispatch nem finalize",
			setup: func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter) {
				sched := schedule("sch-1", domain.ProviderMeta, domain.SyncTypeFull)

				scheduleRepo.EXPECT().ReleaseStaleClaims(gomock.Any()).Return(int64(0), nil)
				scheduleRepo.EXPECT().ListDue(now).Return([]*domain.SyncSchedule{sched}, nil)
				scheduleRepo.EXPECT().Claim("sch-1", now).Return(false, nil)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.OutcomeSkipped, report.Results[0].Outcome)
				assert.Equal(t, domain.SkipReasonClaimLost, report.Results[0].Detail)
			},
		},
		{
			name: "Integração revogada - skipped, claim liberado e next_sync_at preservado",
			setup: func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter) {
				sched := schedule("sch-1", domain.ProviderMeta, domain.SyncTypeFull)
				revoked := activeIntegration("user-1", domain.ProviderMeta)
				revoked.Status = domain.IntegrationStatusRevoked

				scheduleRepo.EXPECT().ReleaseStaleClaims(gomock.Any()).Return(int64(0), nil)
				scheduleRepo.EXPECT().ListDue(now).Return([]*domain.SyncSchedule{sched}, nil)
				scheduleRepo.EXPECT().Claim("sch-1", now).Return(true, nil)
				integrationRepo.EXPECT().
					GetActiveByUserAndProvider("user-1", domain.ProviderMeta).
					Return(revoked, nil)
				scheduleRepo.EXPECT().ReleaseClaim("sch-1").Return(nil)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.OutcomeSkipped, report.Results[0].Outcome)
				assert.Equal(t, domain.SkipReasonNoActiveIntegration, report.Results[0].Detail)
			},
		},
		{
			name: "Usuário sem integração para o provider - skipped com claim liberado",
			setup: func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter) {
				sched := schedule("sch-1", domain.ProviderGoogle, domain.SyncTypeFull)

				scheduleRepo.EXPECT().ReleaseStaleClaims(gomock.Any()).Return(int64(0), nil)
				scheduleRepo.EXPECT().ListDue(now).Return([]*domain.SyncSchedule{sched}, nil)
				scheduleRepo.EXPECT().Claim("sch-1", now).Return(true, nil)
				integrationRepo.EXPECT().
					GetActiveByUserAndProvider("user-1", domain.ProviderGoogle).
					Return(nil, nil)
				scheduleRepo.EXPECT().ReleaseClaim("sch-1").Return(nil)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.OutcomeSkipped, report.Results[0].Outcome)
				assert.Equal(t, domain.SkipReasonNoActiveIntegration, report.Results[0].Detail)
			},
		},
		{
			name: "Falha do adapter - failed com claim liberado, sem finalize",
			setup: func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter) {
				sched := schedule("sch-1", domain.ProviderMeta, domain.SyncTypeMetrics)

				scheduleRepo.EXPECT().ReleaseStaleClaims(gomock.Any()).Return(int64(0), nil)
				scheduleRepo.EXPECT().ListDue(now).Return([]*domain.SyncSchedule{sched}, nil)
				scheduleRepo.EXPECT().Claim("sch-1", now).Return(true, nil)
				integrationRepo.EXPECT().
					GetActiveByUserAndProvider("user-1", domain.ProviderMeta).
					Return(activeIntegration("user-1", domain.ProviderMeta), nil)
				metaAdapter.EXPECT().
					SyncMetrics(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("rate limit excedido"))
				scheduleRepo.EXPECT().ReleaseClaim("sch-1").Return(nil)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.OutcomeFailed, report.Results[0].Outcome)
				assert.Contains(t, report.Results[0].Detail, "rate limit excedido")
			},
		},
		{
			name: "Falha de um agendamento não impede os demais",
			setup: func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter) {
				schedules := []*domain.SyncSchedule{
					schedule("sch-1", domain.ProviderMeta, domain.SyncTypeCampaigns),
					schedule("sch-2", domain.ProviderMeta, domain.SyncTypeMetrics),
					schedule("sch-3", domain.ProviderGoogle, domain.SyncTypeFull),
				}

				scheduleRepo.EXPECT().ReleaseStaleClaims(gomock.Any()).Return(int64(0), nil)
				scheduleRepo.EXPECT().ListDue(now).Return(schedules, nil)
				integrationRepo.EXPECT().
					GetActiveByUserAndProvider("user-1", domain.ProviderMeta).
					Return(activeIntegration("user-1", domain.ProviderMeta), nil).
					Times(2)
				integrationRepo.EXPECT().
					GetActiveByUserAndProvider("user-1", domain.ProviderGoogle).
					Return(activeIntegration("user-1", domain.ProviderGoogle), nil)

				scheduleRepo.EXPECT().Claim("sch-1", now).Return(true, nil)
				metaAdapter.EXPECT().
					SyncCampaigns(gomock.Any(), gomock.Any()).
					Return(&syncing.CampaignSyncResult{CampaignsSynced: 4}, nil)
				scheduleRepo.EXPECT().FinalizeSuccess("sch-1", now, gomock.Any()).Return(nil)

				scheduleRepo.EXPECT().Claim("sch-2", now).Return(true, nil)
				metaAdapter.EXPECT().
					SyncMetrics(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("token expirado"))
				scheduleRepo.EXPECT().ReleaseClaim("sch-2").Return(nil)

				scheduleRepo.EXPECT().Claim("sch-3", now).Return(true, nil)
				googleAdapter.EXPECT().
					SyncCampaigns(gomock.Any(), gomock.Any()).
					Return(&syncing.CampaignSyncResult{CampaignsSynced: 2}, nil)
				googleAdapter.EXPECT().
					SyncMetrics(gomock.Any(), gomock.Any()).
					Return(&syncing.MetricsSyncResult{MetricsSynced: 10}, nil)
				scheduleRepo.EXPECT().FinalizeSuccess("sch-3", now, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3, report.Processed)
				assert.Equal(t, 2, report.CountByOutcome(domain.OutcomeSuccess))
				assert.Equal(t, 1, report.CountByOutcome(domain.OutcomeFailed))

				// O relatório preserva a ordem da listagem
				assert.Equal(t, "sch-1", report.Results[0].ScheduleID)
				assert.Equal(t, "sch-2", report.Results[1].ScheduleID)
				assert.Equal(t, "sch-3", report.Results[2].ScheduleID)
				assert.Equal(t, domain.OutcomeFailed, report.Results[1].Outcome)
			},
		},
		{
			name: "Provider sem adapter registrado - failed com claim liberado",
			setup: func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter) {
				sched := schedule("sch-1", domain.Provider("tiktok"), domain.SyncTypeFull)

				scheduleRepo.EXPECT().ReleaseStaleClaims(gomock.Any()).Return(int64(0), nil)
				scheduleRepo.EXPECT().ListDue(now).Return([]*domain.SyncSchedule{sched}, nil)
				scheduleRepo.EXPECT().Claim("sch-1", now).Return(true, nil)
				integrationRepo.EXPECT().
					GetActiveByUserAndProvider("user-1", domain.Provider("tiktok")).
					Return(activeIntegration("user-1", domain.Provider("tiktok")), nil)
				scheduleRepo.EXPECT().ReleaseClaim("sch-1").Return(nil)
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.OutcomeFailed, report.Results[0].Outcome)
				assert.Contains(t, report.Results[0].Detail, "nenhum adapter registrado")
			},
		},
		{
			name: "Falha no finalize após sucesso do adapter - failed sem liberar claim",
			setup: func(scheduleRepo *mocks.MockSyncScheduleRepository, integrationRepo *mocks.MockIntegrationRepository, metaAdapter, googleAdapter *syncmocks.MockProviderSyncAdapter) {
				sched := schedule("sch-1", domain.ProviderMeta, domain.SyncTypeCampaigns)

				scheduleRepo.EXPECT().ReleaseStaleClaims(gomock.Any()).Return(int64(0), nil)
				scheduleRepo.EXPECT().ListDue(now).Return([]*domain.SyncSchedule{sched}, nil)
				scheduleRepo.EXPECT().Claim("sch-1", now).Return(true, nil)
				integrationRepo.EXPECT().
					GetActiveByUserAndProvider("user-1", domain.ProviderMeta).
					Return(activeIntegration("user-1", domain.ProviderMeta), nil)
				metaAdapter.EXPECT().
					SyncCampaigns(gomock.Any(), gomock.Any()).
					Return(&syncing.CampaignSyncResult{CampaignsSynced: 1}, nil)
				scheduleRepo.EXPECT().
					FinalizeSuccess("sch-1", now, gomock.Any()).
					Return(errors.New("conexão perdida"))
				// Sem ReleaseClaim: o sweep de claims abandonados recupera o registro
			},
			validate: func(t *testing.T, report *domain.RunReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.OutcomeFailed, report.Results[0].Outcome)
				assert.Contains(t, report.Results[0].Detail, "bookkeeping")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			scheduleRepo := mocks.NewMockSyncScheduleRepository(ctrl)
			integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
			metaAdapter := syncmocks.NewMockProviderSyncAdapter(ctrl)
			googleAdapter := syncmocks.NewMockProviderSyncAdapter(ctrl)

			tt.setup(scheduleRepo, integrationRepo, metaAdapter, googleAdapter)

			service := syncing.NewService(scheduleRepo, integrationRepo, map[domain.Provider]syncing.ProviderSyncAdapter{
				domain.ProviderMeta:   metaAdapter,
				domain.ProviderGoogle: googleAdapter,
			}, testConfig())

			report, err := service.RunDueSchedules(context.Background(), now)
			tt.validate(t, report, err)
		})
	}
}

func TestService_RunDueSchedules_FrequencyIntervals(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frequency domain.SyncFrequency
		next      time.Time
	}{
		{
			name:      "Frequência hourly agenda para uma hora depois",
			frequency: domain.SyncFrequencyHourly,
			next:      now.Add(time.Hour),
		},
		{
			name:      "Frequência daily agenda para o dia seguinte",
			frequency: domain.SyncFrequencyDaily,
			next:      now.Add(24 * time.Hour),
		},
		{
			name:      "Frequência weekly agenda para sete dias depois",
			frequency: domain.SyncFrequencyWeekly,
			next:      now.Add(7 * 24 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			scheduleRepo := mocks.NewMockSyncScheduleRepository(ctrl)
			integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
			metaAdapter := syncmocks.NewMockProviderSyncAdapter(ctrl)

			sched := schedule("sch-1", domain.ProviderMeta, domain.SyncTypeCampaigns)
			sched.Frequency = tt.frequency

			scheduleRepo.EXPECT().ReleaseStaleClaims(gomock.Any()).Return(int64(0), nil)
			scheduleRepo.EXPECT().ListDue(now).Return([]*domain.SyncSchedule{sched}, nil)
			scheduleRepo.EXPECT().Claim("sch-1", now).Return(true, nil)
			integrationRepo.EXPECT().
				GetActiveByUserAndProvider("user-1", domain.ProviderMeta).
				Return(activeIntegration("user-1", domain.ProviderMeta), nil)
			metaAdapter.EXPECT().
				SyncCampaigns(gomock.Any(), gomock.Any()).
				Return(&syncing.CampaignSyncResult{CampaignsSynced: 1}, nil)

			// next_sync_at é derivado do instante do ciclo, não do relógio da máquina
			scheduleRepo.EXPECT().FinalizeSuccess("sch-1", now, tt.next).Return(nil)

			service := syncing.NewService(scheduleRepo, integrationRepo, map[domain.Provider]syncing.ProviderSyncAdapter{
				domain.ProviderMeta: metaAdapter,
			}, testConfig())

			report, err := service.RunDueSchedules(context.Background(), now)
			assert.NoError(t, err)
			assert.Equal(t, domain.OutcomeSuccess, report.Results[0].Outcome)
		})
	}
}
