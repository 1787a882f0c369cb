package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from the environment-named YAML file, with
// CL_-prefixed environment variables overriding file values
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("CL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.Environment == "" {
		config.Environment = env
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configuration for required values
func (c *Config) Validate() error {
	var missing []string

	if c.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if c.Database.Host == "" {
		missing = append(missing, "database.host (or CL_DATABASE_HOST)")
	}
	if c.Database.Database == "" {
		missing = append(missing, "database.database (or CL_DATABASE_DATABASE)")
	}
	if c.Ledger.StartingGrant < 0 {
		missing = append(missing, "ledger.startingGrant")
	}
	if c.Ledger.RechargeAmount <= 0 {
		missing = append(missing, "ledger.rechargeAmount")
	}
	if c.Provider.GenerationCost <= 0 {
		missing = append(missing, "provider.generationCost")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	switch c.Environment {
	case Development, Production, Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}
	return nil
}

// loadDotEnvFile loads the first .env file found in the known locations
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path)
		}
	}
	return errors.New("no .env file found")
}

// getEnvironment reads the environment name, defaulting to development
func getEnvironment() string {
	env := os.Getenv("CL_ENVIRONMENT")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// setDefaults sets default values for non-critical settings
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.readTimeout", "10s")
	v.SetDefault("server.writeTimeout", "10s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "5s")
	v.SetDefault("server.shutdownTimeout", "15s")

	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", "5m")
	v.SetDefault("database.connMaxIdleTime", "5m")
	v.SetDefault("database.queryTimeout", "10s")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("ledger.startingGrant", 100)
	v.SetDefault("ledger.rechargeAmount", 100)
	v.SetDefault("ledger.maxConflictRetries", 3)
	v.SetDefault("ledger.conflictRetryDelay", "50ms")

	v.SetDefault("provider.timeout", "30s")
	v.SetDefault("provider.generationCost", 1)
}
