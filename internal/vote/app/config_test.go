package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"VOTE_DATABASE_DRIVER", "VOTE_TOKEN_TTL", "VOTE_CLOSER_INTERVAL", "PORT", "BOOTSTRAP_TOKEN"} {
			t.Setenv(key, "")
		}

		cfg := LoadConfig()
		require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
		require.Equal(t, "vote.db", cfg.DatabaseFile)
		require.Equal(t, "ballotbox", cfg.Issuer)
		require.Equal(t, time.Hour, cfg.TokenTTL)
		require.Zero(t, cfg.CloserInterval)
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
		require.Empty(t, cfg.BootstrapToken)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("VOTE_DATABASE_DRIVER", "postgres")
		t.Setenv("VOTE_DATABASE_URL", "postgres://vote@db/vote")
		t.Setenv("VOTE_TOKEN_TTL", "15m")
		t.Setenv("VOTE_CLOSER_INTERVAL", "2") // bare integers are minutes
		t.Setenv("PORT", "9090")

		cfg := LoadConfig()
		require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
		require.Equal(t, "postgres://vote@db/vote", cfg.DatabaseURL)
		require.Equal(t, 15*time.Minute, cfg.TokenTTL)
		require.Equal(t, 2*time.Minute, cfg.CloserInterval)
		require.Equal(t, 9090, cfg.Port)
	})

	t.Run("malformed values fall back", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		t.Setenv("VOTE_TOKEN_TTL", "soon")

		cfg := LoadConfig()
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, time.Hour, cfg.TokenTTL)
	})
}
