package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer        string        // Optional: issuer claim for session tokens (default: appinvite)
	SessionSecret string        // Required: HS256 secret shared with the host framework
	SessionTTL    time.Duration // Optional: lifetime of auto sign-in tokens (default: 24h)

	DatabaseFile string        // Optional: path to SQLite database file (default: ./invite.db)
	PepperFile   string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	ExpiresIn    time.Duration // Optional: invitation lifetime (default: 48h)

	AutoSignIn    bool // Optional: mint a session token on acceptance (default: true)
	AllowPersonal bool // Optional: permit personal invitations (default: true)
	AllowPublic   bool // Optional: permit public invitations (default: false)
	AllowCancel   bool // Optional: permit inviters to cancel their invitations (default: true)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expiry sweep interval (default: 1h)
}

func LoadConfig() Config {
	// A .env file is a development convenience; in deployments the
	// environment comes from the process manager.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:        getEnvOrDefault("INVITE_ISSUER", "appinvite"),
		SessionSecret: os.Getenv("INVITE_SESSION_SECRET"),
		SessionTTL:    getEnvDurationOrDefault("INVITE_SESSION_TTL", 24*time.Hour),

		DatabaseFile: getEnvOrDefault("INVITE_DATABASE_FILE", "invite.db"),
		PepperFile:   getEnvOrDefault("INVITE_PEPPER_FILE", "pepper"),
		ExpiresIn:    getEnvDurationOrDefault("INVITE_EXPIRES_IN", 48*time.Hour),

		AutoSignIn:    getEnvBoolOrDefault("INVITE_AUTO_SIGN_IN", true),
		AllowPersonal: getEnvBoolOrDefault("INVITE_ALLOW_PERSONAL", true),
		AllowPublic:   getEnvBoolOrDefault("INVITE_ALLOW_PUBLIC", false),
		AllowCancel:   getEnvBoolOrDefault("INVITE_ALLOW_CANCEL", true),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are read as seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
