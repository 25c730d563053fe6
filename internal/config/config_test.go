package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:4001"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "csv", cfg.Export.Format)
	assert.Equal(t, "rounded", cfg.Export.Precision)
	assert.Equal(t, "0 2 * * *", cfg.ModelExport.CronSchedule)
	assert.False(t, cfg.ModelExport.Enabled)
	assert.Equal(t, "output", cfg.ModelExport.OutputPrefix)
	assert.False(t, cfg.Database.Enabled())
	assert.Empty(t, cfg.Database.DSN)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "db:5432/clinic")
	t.Setenv("DATABASE_USER", "clinic")
	t.Setenv("DATABASE_PASSWORD", "segredo")
	t.Setenv("MODEL_EXPORT_ENABLED", "true")
	t.Setenv("MODEL_EXPORT_CRON", "*/5 * * * *")
	t.Setenv("EXPORT_PRECISION", "full")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, "postgres://clinic:segredo@db:5432/clinic", cfg.Database.DSN)
	assert.True(t, cfg.ModelExport.Enabled)
	assert.Equal(t, "*/5 * * * *", cfg.ModelExport.CronSchedule)
	assert.Equal(t, "full", cfg.Export.Precision)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(previous) })
}
