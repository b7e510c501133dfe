package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":5000", cfg.EndpointAddr)
	assert.Equal(t, "*", cfg.CORSAllowedOrigins)
	assert.Contains(t, cfg.DatabaseDSN, "postgres://")
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db.example.com/app")
	t.Setenv("PORT", "8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "postgres://u:p@db.example.com/app", cfg.DatabaseDSN)
	assert.Equal(t, ":8081", cfg.EndpointAddr)
	assert.Equal(t, "https://app.example.com", cfg.CORSAllowedOrigins)
}

func TestParseEnv_EmptyKeepsDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":5000", cfg.EndpointAddr)
	assert.Contains(t, cfg.DatabaseDSN, "localhost")
}

func TestEnsureSSLMode(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{
			name: "localhost left alone",
			dsn:  "postgres://u:p@localhost:5432/app",
			want: "postgres://u:p@localhost:5432/app",
		},
		{
			name: "loopback left alone",
			dsn:  "postgres://u:p@127.0.0.1:5432/app",
			want: "postgres://u:p@127.0.0.1:5432/app",
		},
		{
			name: "remote gets sslmode=require",
			dsn:  "postgres://u:p@db.example.com/app",
			want: "postgres://u:p@db.example.com/app?sslmode=require",
		},
		{
			name: "remote with existing params",
			dsn:  "postgres://u:p@db.example.com/app?connect_timeout=5",
			want: "postgres://u:p@db.example.com/app?connect_timeout=5&sslmode=require",
		},
		{
			name: "explicit sslmode wins",
			dsn:  "postgres://u:p@db.example.com/app?sslmode=disable",
			want: "postgres://u:p@db.example.com/app?sslmode=disable",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ensureSSLMode(tc.dsn))
		})
	}
}
