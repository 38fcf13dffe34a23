package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "file:cfg?mode=memory&cache=shared")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestParse_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Parse()

	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.IsProduction())
}

func TestParse_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Parse()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestParse_MissingJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:cfg?mode=memory&cache=shared")
	t.Setenv("JWT_SECRET", "")

	_, err := Parse()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestParse_ProdRequiresLongSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")

	_, err := Parse()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))
	cfg, err := Parse()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestParse_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("AUTO_MIGRATE", "false")

	cfg, err := Parse()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.False(t, cfg.AutoMigrate)
}

func TestParse_InvalidLogFormat(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Parse()

	require.Error(t, err)
}

func TestLoadTool_NeedsOnlyDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:tool?mode=memory&cache=shared")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadTool()

	require.NoError(t, err)
	assert.Equal(t, "file:tool?mode=memory&cache=shared", cfg.DatabaseURL)
	assert.Equal(t, "console", cfg.LogFormat)

	t.Setenv("DATABASE_URL", "")
	_, err = LoadTool()
	assert.Error(t, err)
}
