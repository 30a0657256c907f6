package config

import (
	"strings"
	"time"

	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/docsense/docsense/internal/types"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds the full runtime configuration of the marketing-site
// backend. Values come from config/config.yaml with DOCSENSE_* environment
// overrides.
type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment"`
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Sentry     SentryConfig     `mapstructure:"sentry"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Email      EmailConfig      `mapstructure:"email"`
	Calculator CalculatorConfig `mapstructure:"calculator"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
}

type DeploymentConfig struct {
	Mode string `mapstructure:"mode"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type LoggingConfig struct {
	Level          string `mapstructure:"level"`
	FluentdEnabled bool   `mapstructure:"fluentd_enabled"`
	FluentdHost    string `mapstructure:"fluentd_host"`
	FluentdPort    int    `mapstructure:"fluentd_port"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Type    string `mapstructure:"type"`
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	UseTLS   bool          `mapstructure:"use_tls"`
	PoolSize int           `mapstructure:"pool_size"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	APIKey       string `mapstructure:"api_key"`
	FromAddress  string `mapstructure:"from_address"`
	SalesAddress string `mapstructure:"sales_address"`
}

// CalculatorConfig exposes the assumptions behind the savings calculator so
// they can be adjusted without a code change. TimeReductionFactor is the
// fraction of document-search time the product claims to eliminate; it is the
// single most consequential number in the whole calculation.
type CalculatorConfig struct {
	TimeReductionFactor float64 `mapstructure:"time_reduction_factor"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// NewConfig loads configuration from file and environment.
func NewConfig() (*Configuration, error) {
	// .env is optional; real deployments use environment variables directly
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("docsense")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithMessage("failed to read config file").
				Mark(ierr.ErrSystem)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to unmarshal config").
			Mark(ierr.ErrSystem)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", "api")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("sentry.sample_rate", 1.0)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.type", "inmemory")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.timeout", 5*time.Second)
	v.SetDefault("email.from_address", "noreply@docsense.ch")
	v.SetDefault("email.sales_address", "sales@docsense.ch")
	v.SetDefault("calculator.time_reduction_factor", 0.60)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
}

// Validate checks invariants that would otherwise surface as confusing
// runtime behavior.
func (c *Configuration) Validate() error {
	if c.Calculator.TimeReductionFactor <= 0 || c.Calculator.TimeReductionFactor > 1 {
		return ierr.NewError("calculator.time_reduction_factor out of range").
			WithHint("Time reduction factor must be in (0, 1]").
			WithReportableDetails(map[string]any{
				"time_reduction_factor": c.Calculator.TimeReductionFactor,
			}).
			Mark(ierr.ErrValidation)
	}
	if c.Email.Enabled && c.Email.APIKey == "" {
		return ierr.NewError("email enabled without api key").
			WithHint("Set DOCSENSE_EMAIL_API_KEY or disable email").
			Mark(ierr.ErrValidation)
	}
	if c.Sentry.Enabled && c.Sentry.DSN == "" {
		return ierr.NewError("sentry enabled without dsn").
			WithHint("Set DOCSENSE_SENTRY_DSN or disable sentry").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// GetDefaultConfig returns a configuration suitable for tests: logging at
// debug level, no external sinks, default calculator assumptions.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: "test"},
		Server:     ServerConfig{Address: ":0"},
		Logging:    LoggingConfig{Level: "debug"},
		Cache:      CacheConfig{Enabled: true, Type: "inmemory"},
		Calculator: CalculatorConfig{TimeReductionFactor: 0.60},
		Email:      EmailConfig{FromAddress: "noreply@docsense.ch", SalesAddress: "sales@docsense.ch"},
	}
}

// GetLocaleOrDefault normalizes a raw locale string from a request.
func GetLocaleOrDefault(raw string) types.Locale {
	l := types.Locale(strings.ToLower(raw))
	if l.IsValid() {
		return l
	}
	return types.LocaleDefault
}
