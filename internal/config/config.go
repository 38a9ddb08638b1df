package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anishchandragiri369/studio-sub000/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Postgres   PostgresConfig
	Auth       AuthConfig
	Cache      CacheConfig
	Delivery   DeliveryConfig `validate:"required"`
	Pricing    PricingConfig
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
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	Enabled  bool
	Provider types.AuthProvider
	// Secret is the JWT signing secret used to validate Supabase access tokens
	Secret   string
	Supabase SupabaseConfig
}

type SupabaseConfig struct {
	BaseURL    string
	ServiceKey string
}

type CacheConfig struct {
	Enabled bool
}

func NewConfig() (*Configuration, error) {
	// Load .env if present, real env vars still win
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/studio-sub")

	v.SetEnvPrefix("STUDIO")
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
	v.SetDefault("deployment.mode", string(types.ModeAPI))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("cache.enabled", true)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.provider", string(types.AuthProviderSupabase))

	v.SetDefault("delivery.weekly_step_days", 7)
	v.SetDefault("delivery.monthly_step_days", 2)
	v.SetDefault("delivery.excluded_weekday", "sunday")
	v.SetDefault("delivery.pause_notice_hours", 24)
	v.SetDefault("delivery.reactivation_months", 3)
	v.SetDefault("delivery.renewal_warning_days", 5)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if _, err := c.Delivery.SchedulePolicy(); err != nil {
		return err
	}
	if err := c.Delivery.EligibilityPolicy().Validate(); err != nil {
		return err
	}
	return c.Pricing.DiscountConfig().Validate()
}

// GetDefaultConfig returns a default configuration for local development.
// This is useful for running scripts or other non-web applications.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Cache:      CacheConfig{Enabled: true},
		Delivery:   DefaultDeliveryConfig(),
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
