package config

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Costing   CostingConfig   `yaml:"costing"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout and LockTimeout are applied as session parameters so a
	// stuck cost calculation fails with a retryable error instead of hanging.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
	LockTimeout      time.Duration `yaml:"lock_timeout"      env:"DATABASE_LOCK_TIMEOUT"      env-default:"5s"`
	AutoMigrate      bool          `yaml:"auto_migrate"      env:"DATABASE_AUTO_MIGRATE"      env-default:"false"`
}

// AuthConfig holds access token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"prodcost"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits for the REST API.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"600"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// CostingConfig holds the fixed operational figures copied into every cost
// summary, and calculation settings.
type CostingConfig struct {
	OperatorsCount      int    `yaml:"operators_count"      env:"COSTING_OPERATORS_COUNT"      env-default:"1"`
	LaborRatePerHourRaw string `yaml:"labor_rate_per_hour"  env:"COSTING_LABOR_RATE_PER_HOUR"  env-default:"0"`
	LossPercentRaw      string `yaml:"loss_percent"         env:"COSTING_LOSS_PERCENT"         env-default:"0"`
	UtilityPercentRaw   string `yaml:"utility_percent"      env:"COSTING_UTILITY_PERCENT"      env-default:"0"`
	Timezone            string `yaml:"timezone"             env:"COSTING_TIMEZONE"             env-default:"UTC"`
	AllowMixedUnits     bool   `yaml:"allow_mixed_units"    env:"COSTING_ALLOW_MIXED_UNITS"    env-default:"false"`
	RecalcConcurrency   int    `yaml:"recalc_concurrency"   env:"COSTING_RECALC_CONCURRENCY"   env-default:"4"`

	// Parsed during validation.
	LaborRatePerHour decimal.Decimal `yaml:"-" env:"-"`
	LossPercent      decimal.Decimal `yaml:"-" env:"-"`
	UtilityPercent   decimal.Decimal `yaml:"-" env:"-"`
	Location         *time.Location  `yaml:"-" env:"-"`
}
