package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ValidationPolicy controls how request bodies are handled before they reach
// the service layer.
type ValidationPolicy struct {
	// StripUnknownFields drops JSON keys that have no matching struct field.
	// When false an unknown key fails the request instead.
	StripUnknownFields bool
	// RejectOnViolation turns constraint violations into a 400 response.
	RejectOnViolation bool
}

type Config struct {
	Env          string
	Host         string
	Port         int
	DBURL        string
	OTLPEndpoint string
	CORSOrigins  []string
	MaxBodyBytes int64
	Validation   ValidationPolicy
}

func Load() Config {
	// optional .env for local runs; real environments set vars directly
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "dev")
	host := getEnv("HOST", "0.0.0.0")
	port := getEnvInt("PORT", 3000)
	dbURL := buildDBURL()

	return Config{
		Env:          env,
		Host:         host,
		Port:         port,
		DBURL:        dbURL,
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		CORSOrigins:  []string{getEnv("CORS_ORIGIN", "http://localhost:5173")},
		MaxBodyBytes: int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
		Validation: ValidationPolicy{
			StripUnknownFields: getEnvBool("VALIDATION_STRIP_UNKNOWN", true),
			RejectOnViolation:  getEnvBool("VALIDATION_REJECT", true),
		},
	}
}

func buildDBURL() string {
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "userhub")
	pass := getEnv("DB_PASSWORD", "userhub")
	name := getEnv("DB_NAME", "userhub")
	ssl := getEnv("DB_SSLMODE", "disable")

	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			fmt.Println(err)
			return fallback
		}

		return num
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)

		if err != nil {
			fmt.Println(err)
			return fallback
		}

		return b
	}
	return fallback
}
