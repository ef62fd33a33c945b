package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STATIC_DIR", "DATABASE_URL", "DB_NAME", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "./static", cfg.Server.StaticDir)
	assert.Equal(t, "*", cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "activities", cfg.Database.DBName)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STATIC_DIR", "/srv/static")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/srv/static", cfg.Server.StaticDir)
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "db", Port: "5432", User: "app", Password: "secret",
		DBName: "activities", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://app:secret@db:5432/activities?sslmode=disable", c.DSN())

	c.URL = "postgres://elsewhere/activities"
	assert.Equal(t, "postgres://elsewhere/activities", c.DSN())
}
