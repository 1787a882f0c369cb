package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Ledger      LedgerConfig   `mapstructure:"ledger"`
	Provider    ProviderConfig `mapstructure:"provider"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LedgerConfig contains the credit ledger settings
type LedgerConfig struct {
	StartingGrant        int64         `mapstructure:"startingGrant"`
	RechargeAmount       int64         `mapstructure:"rechargeAmount"`
	MaxConflictRetries   int           `mapstructure:"maxConflictRetries"`
	ConflictRetryDelay   time.Duration `mapstructure:"conflictRetryDelay"`
}

// ProviderConfig contains the external generation provider settings
type ProviderConfig struct {
	BaseURL        string        `mapstructure:"baseUrl"`
	APIKey         string        `mapstructure:"apiKey"`
	Timeout        time.Duration `mapstructure:"timeout"`
	GenerationCost int64         `mapstructure:"generationCost"`
}
