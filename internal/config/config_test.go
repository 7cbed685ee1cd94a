package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvCount, EnvMaxDelay, EnvFancy, EnvLogFile, EnvNoColor, EnvDebug} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("returns base when nothing is set", func(t *testing.T) {
		clearEnv(t)

		cfg, err := FromEnv(Default())
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("reads every variable", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvCount, "4")
		t.Setenv(EnvMaxDelay, "1s")
		t.Setenv(EnvFancy, "true")
		t.Setenv(EnvLogFile, "/tmp/interm.log")
		t.Setenv(EnvNoColor, "1")
		t.Setenv(EnvDebug, "1")

		cfg, err := FromEnv(Default())
		require.NoError(t, err)
		require.Equal(t, Config{
			Count:    4,
			MaxDelay: time.Second,
			Fancy:    true,
			NoColor:  true,
			LogFile:  "/tmp/interm.log",
			Debug:    true,
		}, cfg)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		tests := []struct {
			key   string
			value string
		}{
			{EnvCount, "ten"},
			{EnvMaxDelay, "soon"},
			{EnvFancy, "maybe"},
		}
		for _, tt := range tests {
			t.Run(tt.key, func(t *testing.T) {
				clearEnv(t)
				t.Setenv(tt.key, tt.value)

				_, err := FromEnv(Default())
				require.ErrorIs(t, err, ErrInvalidConfig)
				require.Contains(t, err.Error(), tt.key)
			})
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing env file is ignored", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load(filepath.Join(t.TempDir(), ".env"))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("env file fills unset variables", func(t *testing.T) {
		clearEnv(t)
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("INTERM_COUNT=3\nINTERM_MAX_DELAY=50ms\n"), 0600))
		t.Cleanup(func() {
			_ = os.Unsetenv(EnvCount)
			_ = os.Unsetenv(EnvMaxDelay)
		})

		cfg, err := Load(envFile)
		require.NoError(t, err)
		require.Equal(t, 3, cfg.Count)
		require.Equal(t, 50*time.Millisecond, cfg.MaxDelay)
	})

	t.Run("environment wins over env file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvCount, "7")
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("INTERM_COUNT=3\n"), 0600))

		cfg, err := Load(envFile)
		require.NoError(t, err)
		require.Equal(t, 7, cfg.Count)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", Default(), false},
		{"single download", Config{Count: 1}, false},
		{"zero count", Config{Count: 0}, true},
		{"negative count", Config{Count: -2}, true},
		{"negative delay", Config{Count: 1, MaxDelay: -time.Millisecond}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
