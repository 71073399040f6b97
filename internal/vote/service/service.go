// Package service holds the vote application's use cases. Services take a
// store.Store and return sentinel errors the HTTP layer maps to status codes.
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store"
)

// Clock returns the current time. A nil Clock means time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}

func loadClub(ctx context.Context, s store.Store, id string) (domain.Club, error) {
	c, err := s.Clubs().GetClubByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Club{}, ErrClubNotFound
	}
	if err != nil {
		return domain.Club{}, fmt.Errorf("load club: %w", err)
	}
	return c, nil
}

func loadElection(ctx context.Context, s store.Store, id string) (domain.Election, error) {
	e, err := s.Elections().GetElectionByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Election{}, ErrElectionNotFound
	}
	if err != nil {
		return domain.Election{}, fmt.Errorf("load election: %w", err)
	}
	return e, nil
}

func loadUser(ctx context.Context, s store.Store, id string) (domain.User, error) {
	u, err := s.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}

// grantRole adds r to the user's role set if missing.
func grantRole(ctx context.Context, s store.Store, userID string, r domain.Role) error {
	u, err := loadUser(ctx, s, userID)
	if err != nil {
		return err
	}
	if u.HasRole(r) {
		return nil
	}
	return s.Users().UpdateUserRoles(ctx, userID, append(slices.Clone(u.Roles), r))
}
