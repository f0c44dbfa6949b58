package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Ingest  IngestConfig
	Metrics MetricsConfig
	CORS    CORSConfig
	Agent   AgentConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ADSPEND_APP_ENV" default:"dev"`
	Port         string `envconfig:"ADSPEND_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"ADSPEND_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ADSPEND_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

type DBConfig struct {
	Driver      string        `envconfig:"ADSPEND_DB_DRIVER" default:"sqlite"`
	Path        string        `envconfig:"DB_PATH" default:"warehouse.db"`
	DSN         string        `envconfig:"ADSPEND_DB_DSN"`
	BusyTimeout time.Duration `envconfig:"ADSPEND_DB_BUSY_TIMEOUT" default:"5s"`
	AutoMigrate bool          `envconfig:"ADSPEND_DB_AUTO_MIGRATE" default:"false"`
}

// IsSQLite reports whether the store is the embedded file engine.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

func (db *DBConfig) normalize() error {
	db.Driver = strings.ToLower(strings.TrimSpace(db.Driver))
	switch db.Driver {
	case DriverSQLite:
		if strings.TrimSpace(db.Path) == "" {
			return fmt.Errorf("%s must not be empty", EnvDBPath)
		}
		abs, err := filepath.Abs(db.Path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", EnvDBPath, err)
		}
		db.Path = abs
	case DriverPostgres:
		if db.DSN == "" {
			return fmt.Errorf("%s is required when %s=%s", EnvDBDSN, EnvDBDriver, DriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported %s %q", EnvDBDriver, db.Driver)
	}
	return nil
}

type IngestConfig struct {
	MaxUploadMB int `envconfig:"ADSPEND_MAX_UPLOAD_MB" default:"50"`
	BatchSize   int `envconfig:"ADSPEND_INGEST_BATCH_SIZE" default:"500"`
}

// MaxUploadBytes returns the request body limit for uploads.
func (i IngestConfig) MaxUploadBytes() int64 {
	if i.MaxUploadMB <= 0 {
		return 0
	}
	return int64(i.MaxUploadMB) << 20
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"ADSPEND_PROMETHEUS_ENABLED" default:"true"`
	Path    string `envconfig:"ADSPEND_PROMETHEUS_PATH" default:"/internal/prometheus"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ADSPEND_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:8501"`
}

type AgentConfig struct {
	BaseURL string        `envconfig:"ADSPEND_AGENT_BASE_URL" default:"http://127.0.0.1:8000"`
	Timeout time.Duration `envconfig:"ADSPEND_AGENT_TIMEOUT" default:"30s"`
}
