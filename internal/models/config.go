package models

import "time"

// Config represents the application configuration
type Config struct {
	Storage  StorageConfig
	Database DatabaseConfig
	Security SecurityConfig
	Tiers    TiersConfig
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	// Backend is either "json" or "sqlite"
	Backend           string
	DataDir           string
	UsersFile         string
	SubscriptionsFile string
}

// DatabaseConfig holds SQLite connection settings
type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// SecurityConfig holds password hashing settings
type SecurityConfig struct {
	HashIterations int
}

// TiersConfig points at the optional tier policy file
type TiersConfig struct {
	PolicyFile string
}
