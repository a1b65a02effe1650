package config

import (
	"log"
	"os"
	"strconv"

	"github.com/gatewarden/auth-service/pkg/constant"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int

	BruteForceMaxAttempts  int
	BruteForceLockoutSec   int
	MaxActiveTokensPerUser int

	BcryptCost   int
	APIKeyMarker string

	LoginRateLimit     int
	LoginRateWindowSec int
}

func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DBURL:              mustGetEnv("DB_URL"),
		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", constant.DefaultAccessExpiryMin),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", constant.DefaultRefreshExpiryMin),

		BruteForceMaxAttempts:  getEnvAsInt("BRUTE_FORCE_MAX_ATTEMPTS", constant.DefaultBruteForceMaxAttempts),
		BruteForceLockoutSec:   getEnvAsInt("BRUTE_FORCE_LOCKOUT_DURATION", constant.DefaultLockoutSeconds),
		MaxActiveTokensPerUser: getEnvAsInt("MAX_ACTIVE_TOKENS_PER_USER", constant.DefaultMaxActiveTokensPerUser),

		BcryptCost:   getEnvAsInt("BCRYPT_ROUNDS", constant.DefaultBcryptCost),
		APIKeyMarker: getEnv("API_KEY_PREFIX", constant.DefaultAPIKeyMarker),

		LoginRateLimit:     getEnvAsInt("LOGIN_RATE_LIMIT", 5),
		LoginRateWindowSec: getEnvAsInt("LOGIN_RATE_WINDOW", 60),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
