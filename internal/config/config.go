package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Meta          Meta          `mapstructure:",squash"`
	Google        Google        `mapstructure:",squash"`
	SyncScheduler SyncScheduler `mapstructure:",squash"`
	AlertSync     AlertSync     `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
}

type Google struct {
	BaseURL        string `mapstructure:"google_ads_base_url"`
	DeveloperToken string `mapstructure:"google_ads_developer_token"`
	AccessToken    string `mapstructure:"google_ads_access_token"`
}

// SyncScheduler controla o motor de sincronização: cadência do tick, tamanho do
// pool de workers, timeout por adapter, janela de lookback das métricas e o limite
// de expiração de claims abandonados.
type SyncScheduler struct {
	CronSchedule          string `mapstructure:"sync_scheduler_cron"`
	Enabled               bool   `mapstructure:"sync_scheduler_enabled"`
	MaxConcurrentJobs     int    `mapstructure:"sync_scheduler_max_concurrent_jobs"`
	AdapterTimeoutSeconds int    `mapstructure:"sync_scheduler_adapter_timeout_seconds"`
	ClaimStaleMinutes     int    `mapstructure:"sync_scheduler_claim_stale_minutes"`
	MetricsLookbackDays   int    `mapstructure:"sync_scheduler_metrics_lookback_days"`
}

type AlertSync struct {
	CronSchedule string `mapstructure:"alert_sync_cron"`
	Enabled      bool   `mapstructure:"alert_sync_enabled"`
}

type Auth struct {
	ServiceSecret  string `mapstructure:"auth_service_secret"`
	CronSecretHash string `mapstructure:"auth_cron_secret_hash"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ad_performance")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com/v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "your_developer_token")
	viper.SetDefault("GOOGLE_ADS_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	// Defaults do motor de sincronização
	viper.SetDefault("SYNC_SCHEDULER_CRON", "*/15 * * * *")          // A cada 15 minutos
	viper.SetDefault("SYNC_SCHEDULER_ENABLED", false)                // Habilitar o tick periódico
	viper.SetDefault("SYNC_SCHEDULER_MAX_CONCURRENT_JOBS", 5)        // 5 dispatches concorrentes
	viper.SetDefault("SYNC_SCHEDULER_ADAPTER_TIMEOUT_SECONDS", 45)   // Timeout por chamada de adapter
	viper.SetDefault("SYNC_SCHEDULER_CLAIM_STALE_MINUTES", 10)       // Claims mais antigos são recuperados
	viper.SetDefault("SYNC_SCHEDULER_METRICS_LOOKBACK_DAYS", 7)      // 7 dias de métricas por sync

	// Defaults da avaliação de alertas
	viper.SetDefault("ALERT_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("ALERT_SYNC_ENABLED", false)

	viper.SetDefault("AUTH_SERVICE_SECRET", "your_service_secret")
	viper.SetDefault("AUTH_CRON_SECRET_HASH", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o arquivo .env via godotenv, tentando localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
