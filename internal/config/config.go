package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hirestream/hirestream/internal/types"
)

type Configuration struct {
	Deployment  DeploymentConfig  `validate:"required"`
	Server      ServerConfig      `validate:"required"`
	Logging     LoggingConfig     `validate:"required"`
	Postgres    PostgresConfig    `validate:"required"`
	Auth        AuthConfig        `validate:"required"`
	LinkToken   LinkTokenConfig   `validate:"required"`
	ObjectStore ObjectStoreConfig `mapstructure:"objectstore"`
	LLM         LLMConfig         `mapstructure:"llm"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Sentry      SentryConfig      `mapstructure:"sentry"`
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type PostgresConfig struct {
	Host         string `validate:"required"`
	Port         int    `validate:"required"`
	User         string `validate:"required"`
	Password     string
	DBName       string `validate:"required"`
	SSLMode      string `validate:"required"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetMigrationURL returns the URL form of the DSN that golang-migrate expects.
func (c PostgresConfig) GetMigrationURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

type AuthConfig struct {
	Provider types.AuthProvider `validate:"required"`
	Secret   string             `validate:"required"`
}

// LinkTokenConfig configures the short-lived onboarding link tokens. The
// signing secret is kept separate from the staff auth secret so rotating
// one does not invalidate the other.
type LinkTokenConfig struct {
	Secret       string `validate:"required"`
	ValidityDays int    `mapstructure:"validity_days"`
}

type ObjectStoreConfig struct {
	Enabled  bool
	Region   string
	Document DocumentBucketConfig `mapstructure:"document"`
	Logo     LogoBucketConfig     `mapstructure:"logo"`
}

type DocumentBucketConfig struct {
	Bucket                string
	KeyPrefix             string `mapstructure:"key_prefix"`
	PresignExpiryDuration string `mapstructure:"presign_expiry_duration"`
}

type LogoBucketConfig struct {
	Bucket    string
	KeyPrefix string `mapstructure:"key_prefix"`
}

type LLMConfig struct {
	Enabled bool
	APIKey  string `mapstructure:"api_key"`
	Model   string
}

type CacheConfig struct {
	Enabled bool
}

type SentryConfig struct {
	Enabled     bool
	DSN         string
	Environment string
	SampleRate  float64 `mapstructure:"sample_rate"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional; deployed environments set variables directly
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/hirestream")

	v.SetEnvPrefix("HIRESTREAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeLocal))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "hirestream")
	v.SetDefault("postgres.dbname", "hirestream")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("auth.provider", string(types.AuthProviderHirestream))
	v.SetDefault("linktoken.validity_days", 7)
	v.SetDefault("cache.enabled", true)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// and tests. This is useful for running scripts or other non-web entry
// points without a config file.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Auth: AuthConfig{
			Provider: types.AuthProviderHirestream,
			Secret:   "local-dev-secret",
		},
		LinkToken: LinkTokenConfig{
			Secret:       "local-dev-link-secret",
			ValidityDays: 7,
		},
		Cache: CacheConfig{Enabled: true},
	}
}
