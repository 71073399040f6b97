package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSigner(t *testing.T, kid string) *jwtx.EdDSASigner {
	t.Helper()
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	s, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	return s
}

func voterClaims(subject string) jwtx.Claims {
	return jwtx.NewAccessClaims(subject, "Test Voter", "s0000001",
		[]string{"voter"}, []string{"vote:cast", "vote:read"},
		5*time.Minute, testIssuer, []string{"vote"}, time.Now().UTC())
}

func TestEdDSASignAndVerify(t *testing.T) {
	signer := newSigner(t, "test-key")
	require.Equal(t, "EdDSA", signer.Alg())
	require.Equal(t, "test-key", signer.KID())

	claims := voterClaims("user-456")
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	jwks := keyset.PublicJWKS()
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "OKP", jwks.Keys[0].Kty)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)

	parsed, err := jwtx.NewVerifierEdDSA(keyset, testIssuer, []string{"vote"}).Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, parsed.Subject)
	require.Equal(t, claims.StudentID, parsed.StudentID)
	require.ElementsMatch(t, claims.Scopes, parsed.Scopes)
	require.ElementsMatch(t, claims.Roles, parsed.Roles)
	require.Equal(t, claims.ID, parsed.ID)
}

func TestEdDSAVerifyFailures(t *testing.T) {
	signer := newSigner(t, "k1")
	token, err := signer.Sign(voterClaims("user-789"))
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := jwtx.NewVerifierEdDSA(keyset, "wrong-issuer", nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		_, err := jwtx.NewVerifierEdDSA(keyset, testIssuer, []string{"admin"}).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("unknown key", func(t *testing.T) {
		other := jwtx.NewKeySet()
		require.NoError(t, other.AddSigner(newSigner(t, "k2")))
		_, err := jwtx.NewVerifierEdDSA(other, testIssuer, nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrNoKey)
	})

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		forged := parts[0] + "." + parts[1] + "x." + parts[2]
		_, err := jwtx.NewVerifierEdDSA(keyset, testIssuer, nil).Verify(forged)
		require.Error(t, err)
	})
}

func TestNewSignerEdDSARejectsGarbage(t *testing.T) {
	_, err := jwtx.NewSignerEdDSA("test", []byte("not-a-pem-key"))
	require.ErrorContains(t, err, "invalid PEM")
}

func TestSignerDefaultsKIDToThumbprint(t *testing.T) {
	s := newSigner(t, "")
	pub, err := s.PublicJWK().PublicKey()
	require.NoError(t, err)
	require.Equal(t, jwtx.Thumbprint(pub), s.KID())

	pemText, err := s.PublicJWK().PEM()
	require.NoError(t, err)
	require.Contains(t, pemText, "BEGIN PUBLIC KEY")
}

func TestKeyManager(t *testing.T) {
	t.Run("requires issuer", func(t *testing.T) {
		_, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{})
		require.Error(t, err)
	})

	t.Run("ephemeral key signs and verifies", func(t *testing.T) {
		km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer})
		require.NoError(t, err)
		require.True(t, km.IsReady())

		token, err := km.Signer().Sign(voterClaims("user-1"))
		require.NoError(t, err)
		got, err := km.Verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "user-1", got.Subject)
	})

	t.Run("loaded key keeps a stable kid", func(t *testing.T) {
		pemKey, err := cryptox.GenerateEd25519Key()
		require.NoError(t, err)

		a, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer, PrivateKeyPEM: pemKey})
		require.NoError(t, err)
		b, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer, PrivateKeyPEM: pemKey})
		require.NoError(t, err)
		require.Equal(t, a.Signer().KID(), b.Signer().KID())

		token, err := a.Signer().Sign(voterClaims("user-2"))
		require.NoError(t, err)
		_, err = b.Verifier.Verify(token)
		require.NoError(t, err)
	})

	t.Run("rotation keeps old tokens valid", func(t *testing.T) {
		km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer})
		require.NoError(t, err)
		old, err := km.Signer().Sign(voterClaims("user-3"))
		require.NoError(t, err)

		next := newSigner(t, "")
		require.NoError(t, km.Rotate(next))
		require.Equal(t, next.KID(), km.Signer().KID())
		require.Len(t, km.KeySet.PublicJWKS().Keys, 2)

		_, err = km.Verifier.Verify(old)
		require.NoError(t, err)
	})
}
