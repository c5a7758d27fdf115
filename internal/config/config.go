package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendSQLite   = "sqlite"
)

type Config struct {
	Port string

	StoreBackend     string
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	SQLitePath       string

	OperatorWorkers   int
	Timezone          string
	APIToken          string
	LogLevel          string
	BurnRateMaxMonths int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:              "9446",
		StoreBackend:      StoreBackendPostgres,
		PostgresAddress:   "localhost",
		PostgresPort:      "5433",
		PostgresDB:        "postgres",
		PostgresUsername:  "postgres",
		PostgresPassword:  "testpassword",
		SQLitePath:        "./data/budget.db",
		OperatorWorkers:   1,
		LogLevel:          "info",
		BurnRateMaxMonths: 120,
	}

	overrideString(&env.Port, "PORT")
	overrideString(&env.StoreBackend, "STORE_BACKEND")
	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	overrideString(&env.SQLitePath, "SQLITE_PATH")
	overrideString(&env.Timezone, "TIMEZONE")
	overrideString(&env.APIToken, "API_TOKEN")
	overrideString(&env.LogLevel, "LOG_LEVEL")

	var errs []string
	if err := overrideInt(&env.OperatorWorkers, "OPERATOR_WORKERS"); err != nil {
		errs = append(errs, err.Error())
	}
	if err := overrideInt(&env.BurnRateMaxMonths, "BURN_RATE_MAX_MONTHS"); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.StoreBackend {
	case StoreBackendPostgres:
		if c.PostgresAddress == "" || c.PostgresDB == "" {
			errs = append(errs, "postgres address and database are required for the postgres backend")
		}
	case StoreBackendSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, "SQLITE_PATH cannot be empty for the sqlite backend")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid store backend '%s': must be one of [%s %s]",
			c.StoreBackend, StoreBackendPostgres, StoreBackendSQLite))
	}

	if c.OperatorWorkers < 1 {
		errs = append(errs, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}

	if c.BurnRateMaxMonths < 1 {
		errs = append(errs, fmt.Sprintf("invalid burn rate max months %d: must be at least 1", c.BurnRateMaxMonths))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("invalid log level '%s': %v", c.LogLevel, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Location resolves Timezone. An empty Timezone means the process local zone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}

func overrideInt(target *int, key string) error {
	value := os.Getenv(key)
	if len(value) == 0 {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s '%s': must be a number", key, value)
	}
	*target = i
	return nil
}
