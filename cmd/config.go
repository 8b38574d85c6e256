package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string `mapstructure:"http_port"`

	DBHost         string `mapstructure:"db_host"`
	DBPort         string `mapstructure:"db_port"`
	DBUser         string `mapstructure:"db_user"`
	DBPassword     string `mapstructure:"db_password"`
	DBName         string `mapstructure:"db_name"`
	DBSslMode      string `mapstructure:"db_sslmode"`
	DatabaseURL    string `mapstructure:"database_url"`
	DBMaxOpenConns int    `mapstructure:"db_max_open_conns"`

	OrdersServiceURL string        `mapstructure:"orders_service_url"`
	AuthServiceURL   string        `mapstructure:"auth_service_url"`
	GatewayTimeout   time.Duration `mapstructure:"gateway_timeout"`
	ProbeSchedule    string        `mapstructure:"probe_schedule"`

	RoutesTimezone string `mapstructure:"routes_timezone"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`
}

// LoadConfig reads envFile when it exists, then the process environment.
// Unset keys keep their defaults.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("http_port", "8080")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "logistics")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("database_url", "")
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("orders_service_url", "http://pedidos:8080")
	v.SetDefault("auth_service_url", "http://autenticador:8080")
	v.SetDefault("gateway_timeout", "10s")
	v.SetDefault("probe_schedule", "@every 30s")
	v.SetDefault("routes_timezone", "UTC")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("log_file", "")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	if c.OrdersServiceURL == "" {
		errs = append(errs, errors.New("ORDERS_SERVICE_URL is required"))
	}
	if c.AuthServiceURL == "" {
		errs = append(errs, errors.New("AUTH_SERVICE_URL is required"))
	}
	if c.GatewayTimeout <= 0 {
		errs = append(errs, fmt.Errorf("GATEWAY_TIMEOUT must be positive, got %s", c.GatewayTimeout))
	}
	if _, err := time.LoadLocation(c.RoutesTimezone); err != nil {
		errs = append(errs, fmt.Errorf("ROUTES_TIMEZONE %q: %w", c.RoutesTimezone, err))
	}
	return errors.Join(errs...)
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN built from the DB_* parts.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.RoutesTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// EchoLogLevel maps LOG_LEVEL onto echo's logger levels.
func (c Config) EchoLogLevel() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
