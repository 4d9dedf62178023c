package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultAccessTokenExpireMinutes is used when ACCESS_TOKEN_EXPIRE_MINUTES is unset.
const DefaultAccessTokenExpireMinutes = 30

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	SecretKey      string
	AccessTokenTTL time.Duration
	AdminEmail     string
	AdminPassword  string
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults.
//
// The SECRET_KEY fallback exists so the server boots in local development.
// It is an insecure default; any real deployment must set SECRET_KEY.
func Load() *Config {
	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/marketplace?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		SecretKey:      getEnv("SECRET_KEY", "fallback-secret-key-change-me"),
		AccessTokenTTL: time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", DefaultAccessTokenExpireMinutes)) * time.Minute,
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@marketplace.local"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin12345"),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
