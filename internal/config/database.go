package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	databaseURLEnv         = "DATABASE_URL"
	databaseHostEnv        = "DB_HOST"
	databasePortEnv        = "DB_PORT"
	databaseUserEnv        = "DB_USER"
	databasePasswordEnv    = "DB_PASSWORD"
	databaseNameEnv        = "DB_NAME"
	databaseSSLModeEnv     = "DB_SSLMODE"
	databaseMaxOpenEnv     = "DB_MAX_OPEN_CONNS"
	databaseMaxIdleEnv     = "DB_MAX_IDLE_CONNS"
	databaseConnMaxLifeEnv = "DB_CONN_MAX_LIFETIME_MINUTES"
	databaseAutoMigrateEnv = "DB_AUTO_MIGRATE"

	defaultDatabaseHost        = "localhost"
	defaultDatabasePort        = 5432
	defaultDatabaseUser        = "postgres"
	defaultDatabaseName        = "babylog"
	defaultDatabaseSSLMode     = "disable"
	defaultDatabaseMaxOpen     = 20
	defaultDatabaseMaxIdle     = 5
	defaultDatabaseConnMaxLife = 30
)

type DatabaseConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

func LoadDatabaseConfig() (*DatabaseConfig, error) {
	host := os.Getenv(databaseHostEnv)
	if host == "" {
		host = defaultDatabaseHost
	}

	port := defaultDatabasePort
	if raw := os.Getenv(databasePortEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ErrInvalidDatabasePort
		}
		port = parsed
	}

	user := os.Getenv(databaseUserEnv)
	if user == "" {
		user = defaultDatabaseUser
	}

	name := os.Getenv(databaseNameEnv)
	if name == "" {
		name = defaultDatabaseName
	}

	sslMode := os.Getenv(databaseSSLModeEnv)
	if sslMode == "" {
		sslMode = defaultDatabaseSSLMode
	}

	return &DatabaseConfig{
		URL:             os.Getenv(databaseURLEnv),
		Host:            host,
		Port:            port,
		User:            user,
		Password:        os.Getenv(databasePasswordEnv),
		Name:            name,
		SSLMode:         sslMode,
		MaxOpenConns:    positiveIntEnv(databaseMaxOpenEnv, defaultDatabaseMaxOpen),
		MaxIdleConns:    positiveIntEnv(databaseMaxIdleEnv, defaultDatabaseMaxIdle),
		ConnMaxLifetime: time.Duration(positiveIntEnv(databaseConnMaxLifeEnv, defaultDatabaseConnMaxLife)) * time.Minute,
		AutoMigrate:     os.Getenv(databaseAutoMigrateEnv) == "true",
	}, nil
}

// DSN prefers DATABASE_URL and otherwise builds a key/value DSN for the postgres driver.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *DatabaseConfig) Validate() error {
	if c == nil || (c.URL == "" && c.Host == "") {
		return ErrDatabaseDSNMissing
	}
	return nil
}

func positiveIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}
