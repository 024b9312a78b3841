package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-hrms/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

		assert.NoError(t, err)
		assert.Equal(t, "3000", cfg.HTTP.Port)
		assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
		assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
		assert.Equal(t, 2, cfg.Schedule.ReturnToWorkDays)
		assert.Equal(t, 3*time.Second, cfg.Schedule.OutboxPollInterval)
		assert.True(t, cfg.Schedule.ReturnToWorkNotifyManager)
		assert.True(t, cfg.Schedule.ReturnToWorkNotifyIT)
		assert.False(t, cfg.Schedule.ReturnToWorkNotifyHR)
		assert.Equal(t, "it@company.com", cfg.Schedule.ReturnToWorkITAddress)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("dotenv file fills unset variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		assert.NoError(t, os.WriteFile(path, []byte("DB_DRIVER=sqlite\nRETURN_TO_WORK_DAYS_IN_ADVANCE=5\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv("DB_DRIVER")
			os.Unsetenv("RETURN_TO_WORK_DAYS_IN_ADVANCE")
		})

		cfg, err := config.Load(path)

		assert.NoError(t, err)
		assert.Equal(t, config.DriverSQLite, cfg.DB.Driver)
		assert.Equal(t, 5, cfg.Schedule.ReturnToWorkDays)
	})

	t.Run("environment wins over dotenv", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		assert.NoError(t, os.WriteFile(path, []byte("PORT=9999\n"), 0o600))
		t.Setenv("PORT", "8080")

		cfg, err := config.Load(path)

		assert.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTP.Port)
	})

	t.Run("unsupported driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")

		_, err := config.Load()

		assert.ErrorContains(t, err, "unsupported DB_DRIVER")
	})

	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("OPENAI_TIMEOUT", "soon")

		_, err := config.Load()

		assert.ErrorContains(t, err, "parse env:")
	})
}
