package cmd

import (
	"fmt"
	"net"
	"net/url"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME,required"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	AuthJWTSecret string `env:"AUTH_JWT_SECRET,required"`
	CronSecret    string `env:"CRON_SECRET"`

	// RecurringOrdersSchedule is a cron expression; empty disables the
	// in-process job.
	RecurringOrdersSchedule string `env:"RECURRING_ORDERS_SCHEDULE"`
	PlanCatalogSeed         bool   `env:"PLAN_CATALOG_SEED" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// DSN is the postgres:// URL shared by gorm and the migrations. Credentials
// and the database name are escaped, so empty or unusual values survive.
func (c Config) DSN() string {
	user := url.User(c.DBUser)
	if c.DBPassword != "" {
		user = url.UserPassword(c.DBUser, c.DBPassword)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return dsn.String()
}
