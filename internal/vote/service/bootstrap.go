package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store"
	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
	"github.com/aussiebroadwan/ballotbox/pkg/idx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

var (
	ErrBootstrapDisabled     = errors.New("bootstrap is disabled")
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService creates the first system administrator on an empty
// database.
type BootstrapService struct {
	Store  store.Store
	Tokens *TokenService
	Clock  Clock
	Token  string // Pre-configured bootstrap token; empty disables bootstrap
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap creates reg as a system administrator if no user exists yet and
// token matches the configured bootstrap token.
func (s *BootstrapService) Bootstrap(ctx context.Context, token string, reg domain.Registration) (Session, error) {
	l := slogx.FromContext(ctx)

	// 1. Bootstrap must be configured
	if s.Token == "" {
		return Session{}, ErrBootstrapDisabled
	}

	// 2. Check if already bootstrapped
	if bootstrapped, _ := s.IsBootstrapped(ctx); bootstrapped {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return Session{}, ErrBootstrapAlready
	}

	// 3. Validate provided token
	if !cryptox.TokensEqual(token, s.Token) {
		l.Warn("unauthorized bootstrap attempt")
		return Session{}, ErrBootstrapUnauthorized
	}

	// 4. Validate and hash the admin's credentials
	reg.Normalize()
	if err := reg.Validate(); err != nil {
		return Session{}, err
	}
	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.Clock.now()
	admin := domain.User{
		ID:           idx.NewAt(now).String(),
		StudentID:    reg.StudentID,
		Email:        reg.Email,
		Name:         reg.Name,
		PasswordHash: hash,
		Faculty:      reg.Faculty,
		Gender:       reg.Gender,
		YearOfStudy:  reg.YearOfStudy,
		Roles:        []domain.Role{domain.RoleVoter, domain.RoleSystemAdmin},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 5. Create the admin, re-checking emptiness inside the transaction
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrBootstrapAlready
		}
		return tx.Users().CreateUser(ctx, admin)
	})
	if err != nil {
		if !errors.Is(err, ErrBootstrapAlready) {
			l.Error("failed to create admin user", slog.Any("error", err))
		}
		return Session{}, err
	}

	l.Info("successfully bootstrapped system", slog.String("admin_user_id", admin.ID))

	tok, err := s.Tokens.Issue(admin)
	if err != nil {
		return Session{}, err
	}
	return Session{User: admin, Token: tok}, nil
}
