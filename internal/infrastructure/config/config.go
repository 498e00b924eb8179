package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"

	MirrorAuto     = "auto"
	MirrorEnabled  = "enabled"
	MirrorDisabled = "disabled"
)

type Config struct {
	HTTPAddr         string   `mapstructure:"http_addr"`
	CORSAllowOrigins []string `mapstructure:"cors_allow_origins"`

	StorageBackend string `mapstructure:"storage_backend"`
	MirrorTable    string `mapstructure:"mirror_table"`

	DynamoDB DynamoDBConfig `mapstructure:",squash"`
	Postgres PostgresConfig `mapstructure:",squash"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"aws_region"`
	AccessKeyID     string `mapstructure:"aws_access_key_id"`
	SecretAccessKey string `mapstructure:"aws_secret_access_key"`
	Endpoint        string `mapstructure:"dynamodb_endpoint"`

	OrderRequestsTable     string `mapstructure:"order_requests_table"`
	OrderRequestItemsTable string `mapstructure:"order_request_items_table"`
	ClientOrdersTable      string `mapstructure:"client_orders_table"`
	ClientsTable           string `mapstructure:"clients_table"`
	StatusHistoryTable     string `mapstructure:"status_history_table"`
	CodeSequencesTable     string `mapstructure:"code_sequences_table"`
}

type PostgresConfig struct {
	DSN          string `mapstructure:"database_dsn"`
	MaxOpenConns int    `mapstructure:"db_max_open_conns"`
	MaxIdleConns int    `mapstructure:"db_max_idle_conns"`
}

var defaults = map[string]any{
	"http_addr":          ":8080",
	"cors_allow_origins": []string{"*"},
	"storage_backend":    BackendDynamoDB,
	"mirror_table":       MirrorAuto,

	"aws_region":            "us-east-1",
	"aws_access_key_id":     "local",
	"aws_secret_access_key": "local",
	"dynamodb_endpoint":     "",

	"order_requests_table":      "order_requests",
	"order_request_items_table": "order_request_items",
	"client_orders_table":       "client_orders",
	"clients_table":             "clients",
	"status_history_table":      "status_history",
	"code_sequences_table":      "code_sequences",

	"database_dsn":      "",
	"db_max_open_conns": 10,
	"db_max_idle_conns": 5,

	"log_level":  "info",
	"log_format": "text",
}

// Load reads defaults, then an optional config.yaml, then the environment.
func Load() (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("/etc/printhub/")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	cfg.MirrorTable = strings.ToLower(strings.TrimSpace(cfg.MirrorTable))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendDynamoDB:
	case BackendPostgres:
		if strings.TrimSpace(c.Postgres.DSN) == "" {
			return errors.New("config: DATABASE_DSN is required for the postgres backend")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	switch c.MirrorTable {
	case MirrorAuto, MirrorEnabled, MirrorDisabled:
	default:
		return fmt.Errorf("config: MIRROR_TABLE must be auto, enabled or disabled, got %q", c.MirrorTable)
	}
	return nil
}
