package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/google"
	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/api"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/scheduler"
	"github.com/vfg2006/ad-performance-api/internal/usecases/aggregating"
	"github.com/vfg2006/ad-performance-api/internal/usecases/alerting"
	"github.com/vfg2006/ad-performance-api/internal/usecases/syncing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	integrationRepo := repository.NewIntegrationRepository(pgConn)
	scheduleRepo := repository.NewSyncScheduleRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)

	metaClient := metaclient.NewClient(cfg)
	metaAdapter := meta.New(cfg, metaClient, campaignRepo, metricRepo)

	googleClient := googleclient.NewClient(cfg)
	googleAdapter := google.New(cfg, googleClient, campaignRepo, metricRepo)

	adapters := map[domain.Provider]syncing.ProviderSyncAdapter{
		domain.ProviderMeta:   metaAdapter,
		domain.ProviderGoogle: googleAdapter,
	}

	syncEngine := syncing.NewService(scheduleRepo, integrationRepo, adapters, cfg.SyncScheduler)
	aggregator := aggregating.NewService(metricRepo)
	evaluator := alerting.NewService(alertRepo, aggregator, alerting.NewLogNotifier())

	// Inicializa os agendadores de sincronização e de alertas
	syncScheduleService := scheduler.NewSyncScheduleService(syncEngine, cfg)
	alertEvaluationService := scheduler.NewAlertEvaluationService(evaluator, cfg)

	// Inicia os agendadores em background
	if err := syncScheduleService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronizações")
	} else {
		logrus.Info("Agendador de sincronizações iniciado com sucesso")
	}

	if err := alertEvaluationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de avaliação de alertas")
	} else {
		logrus.Info("Agendador de avaliação de alertas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		syncEngine,
		aggregator,
		alertRepo,
		syncScheduleService,
		alertEvaluationService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
