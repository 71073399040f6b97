package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store"
	"github.com/aussiebroadwan/ballotbox/pkg/idx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

type ClubService struct {
	Store store.Store
	Clock Clock
}

// NewClub is the input to ClubService.Create.
type NewClub struct {
	Name        string
	Description string
	LogoURL     string
	Admins      []string
	Members     []string
}

func (s *ClubService) List(ctx context.Context) ([]domain.Club, error) {
	return s.Store.Clubs().ListClubs(ctx)
}

func (s *ClubService) Get(ctx context.Context, id string) (domain.Club, error) {
	return loadClub(ctx, s.Store, id)
}

// Managed lists the clubs the caller administers.
func (s *ClubService) Managed(ctx context.Context, caller domain.Caller) ([]domain.Club, error) {
	return s.Store.Clubs().ListClubsByAdmin(ctx, caller.UserID)
}

// Create makes a new club with the caller as its first admin. Every admin is
// also a member and is granted the clubAdmin role.
func (s *ClubService) Create(ctx context.Context, caller domain.Caller, in NewClub) (domain.Club, error) {
	if !domain.Can(caller, domain.ActionCreateClub, nil) {
		return domain.Club{}, ErrForbidden
	}
	l := slogx.FromContext(ctx)
	now := s.Clock.now()

	admins := dedupe(append([]string{caller.UserID}, in.Admins...))
	club := domain.Club{
		ID:          idx.NewAt(now).String(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		LogoURL:     strings.TrimSpace(in.LogoURL),
		Admins:      admins,
		Members:     dedupe(append(slices.Clone(admins), in.Members...)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := club.Validate(); err != nil {
		return domain.Club{}, err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, id := range club.Members {
			if _, err := loadUser(ctx, tx, id); err != nil {
				return err
			}
		}
		if err := tx.Clubs().CreateClub(ctx, club); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrClubNameTaken
			}
			return fmt.Errorf("create club: %w", err)
		}
		for _, id := range club.Admins {
			if err := grantRole(ctx, tx, id, domain.RoleClubAdmin); err != nil {
				return fmt.Errorf("grant club admin: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.Club{}, err
	}

	l.Info("club created", slog.String("club_id", club.ID), slog.Int("admins", len(club.Admins)))
	return loadClub(ctx, s.Store, club.ID)
}

// Update applies a partial update to the club's own fields.
func (s *ClubService) Update(ctx context.Context, caller domain.Caller, id string, upd domain.ClubUpdate) (domain.Club, error) {
	club, err := loadClub(ctx, s.Store, id)
	if err != nil {
		return domain.Club{}, err
	}
	if !domain.Can(caller, domain.ActionUpdateClub, &club) {
		return domain.Club{}, ErrForbidden
	}
	if upd.IsEmpty() {
		return domain.Club{}, ErrEmptyUpdate
	}

	upd.Apply(&club)
	if err := club.Validate(); err != nil {
		return domain.Club{}, err
	}
	club.UpdatedAt = s.Clock.now()

	if err := s.Store.Clubs().UpdateClub(ctx, club); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Club{}, ErrClubNameTaken
		case errors.Is(err, store.ErrNotFound):
			return domain.Club{}, ErrClubNotFound
		}
		return domain.Club{}, fmt.Errorf("update club: %w", err)
	}
	return club, nil
}

// Delete removes the club together with its elections and their ballots in a
// single transaction.
func (s *ClubService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if !domain.Can(caller, domain.ActionDeleteClub, nil) {
		return ErrForbidden
	}
	l := slogx.FromContext(ctx)

	var ballots, elections int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := loadClub(ctx, tx, id); err != nil {
			return err
		}
		var err error
		if ballots, err = tx.Ballots().DeleteBallotsByClub(ctx, id); err != nil {
			return fmt.Errorf("delete ballots: %w", err)
		}
		if elections, err = tx.Elections().DeleteElectionsByClub(ctx, id); err != nil {
			return fmt.Errorf("delete elections: %w", err)
		}
		if err := tx.Clubs().DeleteClub(ctx, id); err != nil {
			return fmt.Errorf("delete club: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.Info("club deleted",
		slog.String("club_id", id),
		slog.Int64("elections", elections),
		slog.Int64("ballots", ballots),
	)
	return nil
}

// AddMember adds userID to the club's member set. Adding an existing member
// is a no-op.
func (s *ClubService) AddMember(ctx context.Context, caller domain.Caller, clubID, userID string) (domain.Club, error) {
	club, err := s.authorizeMembership(ctx, caller, clubID)
	if err != nil {
		return domain.Club{}, err
	}
	if _, err := loadUser(ctx, s.Store, userID); err != nil {
		return domain.Club{}, err
	}
	if err := s.Store.Clubs().AddMember(ctx, club.ID, userID); err != nil {
		return domain.Club{}, fmt.Errorf("add member: %w", err)
	}
	return loadClub(ctx, s.Store, club.ID)
}

// RemoveMember drops userID from the club, including its admin set. The last
// admin cannot be removed.
func (s *ClubService) RemoveMember(ctx context.Context, caller domain.Caller, clubID, userID string) (domain.Club, error) {
	club, err := s.authorizeMembership(ctx, caller, clubID)
	if err != nil {
		return domain.Club{}, err
	}
	if !club.IsMember(userID) && !club.IsAdmin(userID) {
		return domain.Club{}, ErrNotMember
	}
	if club.IsAdmin(userID) && len(club.Admins) == 1 {
		return domain.Club{}, ErrLastAdmin
	}
	if err := s.Store.Clubs().RemoveMember(ctx, club.ID, userID); err != nil {
		return domain.Club{}, fmt.Errorf("remove member: %w", err)
	}
	return loadClub(ctx, s.Store, club.ID)
}

// AddAdmin promotes userID to club admin. The user also becomes a member and
// gains the clubAdmin role.
func (s *ClubService) AddAdmin(ctx context.Context, caller domain.Caller, clubID, userID string) (domain.Club, error) {
	club, err := s.authorizeMembership(ctx, caller, clubID)
	if err != nil {
		return domain.Club{}, err
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := loadUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := tx.Clubs().AddMember(ctx, club.ID, userID); err != nil {
			return fmt.Errorf("add member: %w", err)
		}
		if err := tx.Clubs().AddAdmin(ctx, club.ID, userID); err != nil {
			return fmt.Errorf("add admin: %w", err)
		}
		return grantRole(ctx, tx, userID, domain.RoleClubAdmin)
	})
	if err != nil {
		return domain.Club{}, err
	}
	return loadClub(ctx, s.Store, club.ID)
}

func (s *ClubService) authorizeMembership(ctx context.Context, caller domain.Caller, clubID string) (domain.Club, error) {
	club, err := loadClub(ctx, s.Store, clubID)
	if err != nil {
		return domain.Club{}, err
	}
	if !domain.Can(caller, domain.ActionManageMembers, &club) {
		return domain.Club{}, ErrForbidden
	}
	return club, nil
}

// dedupe drops blanks and repeats, keeping first-seen order.
func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
