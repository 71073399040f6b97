package service

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
)

// AccessToken is a signed bearer token and its lifetime.
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresIn int64 // seconds
	ExpiresAt time.Time
}

// TokenService signs access tokens for users. Scopes are derived from the
// user's roles at issue time.
type TokenService struct {
	KeyManager *jwtx.KeyManager
	Issuer     string
	Audience   []string
	AccessTTL  time.Duration
	Clock      Clock
}

func (s *TokenService) Issue(u domain.User) (AccessToken, error) {
	now := s.Clock.now()
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(
		u.ID, u.Name, u.StudentID,
		domain.RoleStrings(u.Roles),
		domain.ScopesFor(u.Roles),
		ttl, s.Issuer, s.Audience, now,
	)
	token, err := s.KeyManager.Signer().Sign(claims)
	if err != nil {
		return AccessToken{}, fmt.Errorf("sign access token: %w", err)
	}
	return AccessToken{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(ttl.Seconds()),
		ExpiresAt: now.Add(ttl),
	}, nil
}
