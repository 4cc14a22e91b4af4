package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr     string
	RedisPassword string
	CartTTL       time.Duration

	CatalogFile string
	CORSOrigins []string

	AWSRegion string
	SESSender string
}

func LoadConfig() *Config {
	// .env เป็น optional (prod ใช้ env จริง)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "preorder.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        getDuration("JWT_TTL", 24*time.Hour),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CartTTL:       getDuration("CART_TTL", 2*time.Hour),
		CatalogFile:   os.Getenv("CATALOG_FILE"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
		AWSRegion:     getEnv("AWS_REGION", "ap-southeast-1"),
		SESSender:     os.Getenv("SES_SENDER"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
