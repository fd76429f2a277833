package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/bloom/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Environment string `validate:"required,oneof=dev prod test"`
	LogLevel    string `validate:"required,oneof=debug info warn warning error"`
	LogFormat   string `validate:"required,oneof=json text"`
	LogDir      string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`

	StorageBackend string `validate:"required,oneof=gdata postgres memory"`
	AppName        string `validate:"required,excludesall=/\\"`
	SaveProfile    string `validate:"required,max=64"`
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBURL          string
	DBMaxConns     int `validate:"gte=1"`

	CatalogPath string

	GardenSize    int           `validate:"gte=1,lte=64"`
	StageDuration time.Duration `validate:"gt=0"`
	MaxStage      int           `validate:"gte=1"`
	MaturityStage int           `validate:"gte=1,ltfield=SeedStage"`
	SeedStage     int           `validate:"ltefield=MaxStage"`

	LoginRewardInterval time.Duration `validate:"gte=0"`
	LoginRewardSeeds    int           `validate:"gte=0"`

	DebugAddr string `validate:"omitempty,hostname_port"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: strings.ToLower(getEnv("BLOOM_ENV", "dev")),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		ServiceName: getEnv("SERVICE_NAME", "bloom"),
		Version:     getEnv("VERSION", "dev"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageBackendGdata)),
		AppName:        getEnv("APP_NAME", DefaultAppName),
		SaveProfile:    getEnv("SAVE_PROFILE", DefaultSaveProfile),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "bloom"),
		DBURL:          getEnv("DB_URL", ""),
		DBMaxConns:     getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),

		CatalogPath: getEnv("CATALOG_PATH", ""),

		GardenSize:    getEnvAsInt("GARDEN_SIZE", domain.DefaultGardenSize),
		StageDuration: getEnvAsDuration("STAGE_DURATION", domain.DefaultStageDuration),
		MaxStage:      getEnvAsInt("MAX_STAGE", domain.DefaultMaxStage),
		MaturityStage: getEnvAsInt("MATURITY_STAGE", domain.DefaultMaturityStage),
		SeedStage:     getEnvAsInt("SEED_STAGE", domain.DefaultSeedStage),

		LoginRewardInterval: getEnvAsDuration("LOGIN_REWARD_INTERVAL", domain.DefaultLoginRewardInterval),
		LoginRewardSeeds:    getEnvAsInt("LOGIN_REWARD_SEEDS", domain.DefaultLoginRewardSeeds),

		DebugAddr: getEnv("DEBUG_ADDR", ""),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GrowthStages returns the growth thresholds used by the garden and catalog
func (c *Config) GrowthStages() domain.GrowthStages {
	return domain.GrowthStages{
		Duration:      c.StageDuration,
		MaxStage:      c.MaxStage,
		MaturityStage: c.MaturityStage,
		SeedStage:     c.SeedStage,
	}
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	if c.DBURL != "" {
		return c.DBURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the default
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration accepts Go durations ("90s", "1h") or a bare number of seconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
