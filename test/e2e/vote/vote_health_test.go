package vote_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

// TestHealthEndpoints verifies the health endpoints and JWKS are served before
// bootstrap.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupVoteContainer(t)
	defer cleanup()

	client := votesdk.NewClient(baseURL)

	t.Run("livez", func(t *testing.T) {
		health, err := client.GetLiveness(t.Context())
		assertHealthy(t, health, err)
	})

	t.Run("readyz", func(t *testing.T) {
		health, err := client.GetReadiness(t.Context())
		assertHealthy(t, health, err)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
		require.Equal(t, "ok", health.Checks.Signer)
	})

	t.Run("jwks", func(t *testing.T) {
		jwks, err := client.GetJWKS(t.Context())
		require.NoError(t, err)
		require.NotEmpty(t, jwks.Keys, "JWKS should contain at least one key")

		for _, key := range jwks.Keys {
			require.Equal(t, "OKP", key.Kty)
			require.Equal(t, "EdDSA", key.Alg)
			t.Logf("Key ID: %s, Algorithm: %s, Use: %s", key.Kid, key.Alg, key.Use)
		}
	})
}
