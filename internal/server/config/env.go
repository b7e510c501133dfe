package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the process environment. A .env file in the
// working directory is loaded first, so local development and deployment read
// the same variable names.
//
// Variables:
//
//	DATABASE_URL          PostgreSQL DSN
//	PORT                  listening port (bare number, e.g. "5000")
//	CORS_ALLOWED_ORIGINS  comma-separated origins, "*" for any
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("PORT"); v != "" {
		config.EndpointAddr = ":" + v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		config.CORSAllowedOrigins = v
	}
}
