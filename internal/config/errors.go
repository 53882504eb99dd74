package config

import "errors"

var (
	ErrRedisAddrMissing    = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB      = errors.New("REDIS_DB must be a valid integer")
	ErrDatabaseDSNMissing  = errors.New("DATABASE_URL or DB_HOST is required")
	ErrInvalidDatabasePort = errors.New("DB_PORT must be a valid integer")
)
