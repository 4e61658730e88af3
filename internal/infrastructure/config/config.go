package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported route store drivers
const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string
	Location   *time.Location

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	StaticDir    string

	// Route store
	StoreDriver  string
	StoreTimeout time.Duration

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL
	PostgresDSN string

	// Seeding
	SeedFile string
	GTFSFeed string

	// NATS status broadcasting
	NATSURL                 string
	StatusSubjectPrefix     string
	StatusBroadcastInterval time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		Port:         getEnv("PORT", "4000"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,
		StaticDir:    getEnv("STATIC_DIR", "public"),

		StoreDriver:  strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
		StoreTimeout: time.Duration(getEnvAsInt("STORE_TIMEOUT", 5)) * time.Second,

		MongoURI:      firstNonEmpty(os.Getenv("MONGODB_URI"), os.Getenv("MONGODB_DSN"), "mongodb://127.0.0.1:27017"),
		MongoDB:       getEnv("MONGO_DB", "boat_tracker"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),

		SeedFile: getEnv("SEED_FILE", ""),
		GTFSFeed: getEnv("GTFS_FEED", ""),

		NATSURL:                 getEnv("NATS_URL", ""),
		StatusSubjectPrefix:     getEnv("STATUS_SUBJECT_PREFIX", "ferry.status"),
		StatusBroadcastInterval: time.Duration(getEnvAsInt("STATUS_BROADCAST_INTERVAL", 60)) * time.Second,
	}

	switch config.StoreDriver {
	case StoreMongo:
	case StorePostgres:
		if config.PostgresDSN == "" {
			return nil, fmt.Errorf("POSTGRES_DSN must be set when STORE_DRIVER=%s", StorePostgres)
		}
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: expected %s or %s", config.StoreDriver, StoreMongo, StorePostgres)
	}

	if config.StatusBroadcastInterval <= 0 {
		return nil, fmt.Errorf("invalid STATUS_BROADCAST_INTERVAL: must be positive")
	}

	// Time zone used for the current time of day
	tzName := getEnv("TZ", "")
	if tzName == "" {
		config.Location = time.Local
	} else {
		loc, err := time.LoadLocation(tzName)
		if err != nil {
			return nil, fmt.Errorf("invalid TZ: %w", err)
		}
		config.Location = loc
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
