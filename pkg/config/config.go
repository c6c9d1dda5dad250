package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV" default:"local"`
	Port         int    `envconfig:"PORT" default:"8080"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`
	// RateLimit is the number of requests per second allowed per client IP.
	RateLimit float64 `envconfig:"RATE_LIMIT" default:"20"`

	DB struct {
		Driver     string `envconfig:"DB_DRIVER" default:"postgres"`
		Name       string `envconfig:"DB_NAME"`
		Host       string `envconfig:"DB_HOST"`
		Port       int    `envconfig:"DB_PORT"`
		User       string `envconfig:"DB_USER"`
		Pass       string `envconfig:"DB_PASS"`
		EnableSSL  bool   `envconfig:"ENABLE_SSL"`
		LogQueries bool   `envconfig:"DB_LOG_QUERIES"`
	}
	DynamoDB struct {
		Region        string `envconfig:"DDB_REGION"`
		Endpoint      string `envconfig:"DDB_ENDPOINT"`
		AccessKey     string `envconfig:"DDB_ACCESS_KEY"`
		SecretKey     string `envconfig:"DDB_SECRET_KEY"`
		SessionToken  string `envconfig:"DDB_SESSION_TOKEN"`
		MoviesTable   string `envconfig:"DDB_MOVIES_TABLE" default:"movies"`
		GenresTable   string `envconfig:"DDB_GENRES_TABLE" default:"genres"`
		CountersTable string `envconfig:"DDB_COUNTERS_TABLE" default:"counters"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	switch cfg.DB.Driver {
	case DriverPostgres, DriverDynamoDB:
	default:
		return nil, fmt.Errorf("load config error: unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	return cfg, nil
}
