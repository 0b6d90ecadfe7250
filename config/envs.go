package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store backends selectable with STORE.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string // Host IP for the server
	RESTPort      int    // Port for the REST API
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
	Store         string // Run store backend: memory or mongo
	DBHost        string // Hostname or IP address for the database
	DBPort        int    // Port number for the database
	DBUser        string // Username for the database
	DBPassword    string // Password for the database
	DBName        string // Name of the database
	RedisAddr     string // Address of the redis server backing the run queue
	RedisPassword string // Password for the redis server
	QueueTTL      int    // Seconds a queued run key lives in redis
	QueueBatch    int    // Runs drained from the queue at once
	JWTSecret     string // Secret key for JWT signing
	JWTIssuer     string // Issuer claim for JWTs
}

// Envs holds the configuration loaded by Load.
var Envs Config

// Load reads the .env file if present, populates Envs from the environment and returns it.
// Missing required variables are fatal.
func Load() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg := Config{
		HostIP:     getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:   getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:    getEnvWithDefault("GIN_MODE", "release"),
		Store:      getEnvWithDefault("STORE", StoreMemory),
		QueueBatch: getEnvAsIntWithDefault("QUEUE_BATCH", 1),
		JWTSecret:  mustGetEnv("JWT_SECRET"),
		JWTIssuer:  getEnvWithDefault("JWT_ISSUER", "vinom-wumpus"),
	}

	// The database and redis are only needed by the persistent backend.
	if cfg.Store == StoreMongo {
		cfg.DBHost = mustGetEnv("DB_HOST")
		cfg.DBPort = mustGetEnvAsInt("DB_PORT")
		cfg.DBUser = mustGetEnv("DB_USER")
		cfg.DBPassword = mustGetEnv("DB_PASS")
		cfg.DBName = mustGetEnv("DB_NAME")
		cfg.RedisAddr = mustGetEnv("REDIS_ADDR")
		cfg.RedisPassword = getEnvWithDefault("REDIS_PASSWORD", "")
		cfg.QueueTTL = getEnvAsIntWithDefault("QUEUE_TTL", 3600)
	}

	Envs = cfg
	return cfg
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers; unparsable values are fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	if _, exists := os.LookupEnv(key); !exists {
		return defaultValue
	}
	return mustGetEnvAsInt(key)
}
