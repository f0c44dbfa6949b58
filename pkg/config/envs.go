package config

const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	EnvAppEnv       = "ADSPEND_APP_ENV"
	EnvPort         = "ADSPEND_APP_PORT"
	EnvLogLevel     = "ADSPEND_LOG_LEVEL"
	EnvLogWarnStack = "ADSPEND_LOG_WARN_STACK"

	EnvDBDriver      = "ADSPEND_DB_DRIVER"
	EnvDBPath        = "DB_PATH"
	EnvDBDSN         = "ADSPEND_DB_DSN"
	EnvDBBusyTimeout = "ADSPEND_DB_BUSY_TIMEOUT"
	EnvDBAutoMigrate = "ADSPEND_DB_AUTO_MIGRATE"

	EnvMaxUploadMB     = "ADSPEND_MAX_UPLOAD_MB"
	EnvIngestBatchSize = "ADSPEND_INGEST_BATCH_SIZE"

	EnvPrometheusEnabled = "ADSPEND_PROMETHEUS_ENABLED"
	EnvPrometheusPath    = "ADSPEND_PROMETHEUS_PATH"

	EnvCORSAllowedOrigins = "ADSPEND_CORS_ALLOWED_ORIGINS"

	EnvAgentBaseURL = "ADSPEND_AGENT_BASE_URL"
	EnvAgentTimeout = "ADSPEND_AGENT_TIMEOUT"
)
