package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store"
	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
	"github.com/aussiebroadwan/ballotbox/pkg/idx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

const (
	// MinSearchLength is the shortest query Search will run.
	MinSearchLength = 2

	// SearchLimit caps the number of search results.
	SearchLimit = 20
)

// Session is a user together with a freshly issued access token.
type Session struct {
	User  domain.User
	Token AccessToken
}

type UserService struct {
	Store  store.Store
	Tokens *TokenService
	Clock  Clock
}

// Register creates a voter account and signs the new user in.
func (s *UserService) Register(ctx context.Context, reg domain.Registration) (Session, error) {
	l := slogx.FromContext(ctx)

	reg.Normalize()
	if err := reg.Validate(); err != nil {
		return Session{}, err
	}

	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.Clock.now()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		StudentID:    reg.StudentID,
		Email:        reg.Email,
		Name:         reg.Name,
		PasswordHash: hash,
		Faculty:      reg.Faculty,
		Gender:       reg.Gender,
		YearOfStudy:  reg.YearOfStudy,
		Roles:        []domain.Role{domain.RoleVoter},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return Session{}, ErrUserExists
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	l.Info("user registered", slog.String("user_id", u.ID))
	return s.session(u)
}

// Login checks the student id and password and issues a token. Unknown
// accounts and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, studentID, password string) (Session, error) {
	l := slogx.FromContext(ctx)

	studentID = strings.TrimSpace(studentID)
	if studentID == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	u, err := s.Store.Users().GetUserByStudentID(ctx, studentID)
	if errors.Is(err, store.ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("load user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			l.Error("stored password hash is unreadable", slog.String("user_id", u.ID), slog.Any("error", err))
		}
		return Session{}, ErrInvalidCredentials
	}
	return s.session(u)
}

func (s *UserService) session(u domain.User) (Session, error) {
	tok, err := s.Tokens.Issue(u)
	if err != nil {
		return Session{}, err
	}
	return Session{User: u, Token: tok}, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (domain.User, error) {
	return loadUser(ctx, s.Store, userID)
}

// UpdateProfile applies a partial profile update to the user.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd domain.UserUpdate) (domain.User, error) {
	if upd.IsEmpty() {
		return domain.User{}, ErrEmptyUpdate
	}
	if err := upd.Validate(); err != nil {
		return domain.User{}, err
	}

	u, err := loadUser(ctx, s.Store, userID)
	if err != nil {
		return domain.User{}, err
	}
	upd.Apply(&u)
	if err := s.Store.Users().UpdateUserProfile(ctx, u); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}
	return loadUser(ctx, s.Store, userID)
}

func (s *UserService) List(ctx context.Context, caller domain.Caller) ([]domain.User, error) {
	if !domain.Can(caller, domain.ActionListUsers, nil) {
		return nil, ErrForbidden
	}
	return s.Store.Users().ListUsers(ctx)
}

// Delete removes a user account. Users who are the only admin of a club must
// be replaced as admin first.
func (s *UserService) Delete(ctx context.Context, caller domain.Caller, userID string) error {
	if !domain.Can(caller, domain.ActionDeleteUser, nil) {
		return ErrForbidden
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := loadUser(ctx, tx, userID); err != nil {
			return err
		}
		clubs, err := tx.Clubs().SoleAdminClubs(ctx, userID)
		if err != nil {
			return fmt.Errorf("sole admin clubs: %w", err)
		}
		if len(clubs) > 0 {
			return fmt.Errorf("%w: %s", ErrSoleClubAdmin, strings.Join(clubs, ", "))
		}
		if err := tx.Users().DeleteUser(ctx, userID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("user deleted", slog.String("deleted_user_id", userID))
	return nil
}

// Search matches q against name or student id. Queries shorter than
// MinSearchLength return no results.
func (s *UserService) Search(ctx context.Context, q string) ([]domain.User, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < MinSearchLength {
		return []domain.User{}, nil
	}
	return s.Store.Users().SearchUsers(ctx, q, SearchLimit)
}
