package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogDir      string
	Environment string
	Version     string
	APIKey      string // API key for authenticating the game gateway

	// TrustedProxies lists proxy IPs whose X-Forwarded-For headers are honored
	TrustedProxies []string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Raid tuning
	RespawnDelay       time.Duration
	MaxTapBatch        int
	TapEnergyCost      int
	EnergyMax          int
	EnergyRegenPerTick int

	// Intervals
	BroadcastInterval   time.Duration
	EnergyRegenInterval time.Duration

	// Event system
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	BossRosterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),
		APIKey:      getEnv("API_KEY", ""),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "bossraid"),

		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", ""),
		BossRosterPath:      getEnv("BOSS_ROSTER_PATH", DefaultBossRosterPath),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, trimmed)
			}
		}
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.MaxTapBatch, err = getEnvInt("MAX_TAP_BATCH", 0); err != nil {
		return nil, err
	}
	if cfg.TapEnergyCost, err = getEnvInt("TAP_ENERGY_COST", 0); err != nil {
		return nil, err
	}
	if cfg.EnergyMax, err = getEnvInt("ENERGY_MAX", 0); err != nil {
		return nil, err
	}
	if cfg.EnergyRegenPerTick, err = getEnvInt("ENERGY_REGEN_PER_TICK", 0); err != nil {
		return nil, err
	}
	if cfg.EventMaxRetries, err = getEnvInt("EVENT_MAX_RETRIES", 0); err != nil {
		return nil, err
	}

	if cfg.RespawnDelay, err = getEnvSeconds("RESPAWN_DELAY_SECONDS"); err != nil {
		return nil, err
	}
	if cfg.BroadcastInterval, err = getEnvSeconds("BROADCAST_INTERVAL_SECONDS"); err != nil {
		return nil, err
	}
	if cfg.EnergyRegenInterval, err = getEnvSeconds("ENERGY_REGEN_INTERVAL_SECONDS"); err != nil {
		return nil, err
	}
	if cfg.EventRetryDelay, err = getEnvSeconds("EVENT_RETRY_DELAY_SECONDS"); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable; zero means "unset,
// use the domain default" and is filled in by Validate.
func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// getEnvSeconds reads a whole-second duration; zero means unset.
func getEnvSeconds(key string) (time.Duration, error) {
	secs, err := getEnvInt(key, 0)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
