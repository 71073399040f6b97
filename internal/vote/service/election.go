package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store"
	"github.com/aussiebroadwan/ballotbox/pkg/idx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

type ElectionService struct {
	Store store.Store
	Clock Clock
}

// Create validates in and stores it as a new election of in.ClubID.
// Positions without an id are given one.
func (s *ElectionService) Create(ctx context.Context, caller domain.Caller, in domain.Election) (domain.Election, error) {
	l := slogx.FromContext(ctx)
	now := s.Clock.now()

	e := in
	e.ID = idx.NewAt(now).String()
	e.CreatedAt = now
	e.UpdatedAt = now
	e.Normalize()
	assignPositionIDs(&e, now)
	if err := e.Validate(); err != nil {
		return domain.Election{}, err
	}

	club, err := loadClub(ctx, s.Store, e.ClubID)
	if err != nil {
		return domain.Election{}, err
	}
	if !domain.Can(caller, domain.ActionManageElections, &club) {
		return domain.Election{}, ErrForbidden
	}
	if err := s.checkCandidates(ctx, e); err != nil {
		return domain.Election{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Elections().CreateElection(ctx, e)
	})
	if err != nil {
		return domain.Election{}, fmt.Errorf("create election: %w", err)
	}

	l.Info("election created", slog.String("election_id", e.ID), slog.String("club_id", e.ClubID))
	return loadElection(ctx, s.Store, e.ID)
}

// ListActive returns elections that are active and within their voting
// window, soonest end first.
func (s *ElectionService) ListActive(ctx context.Context) ([]domain.Election, error) {
	all, err := s.Store.Elections().ListElectionsByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, err
	}
	now := s.Clock.now()
	out := make([]domain.Election, 0, len(all))
	for _, e := range all {
		if e.IsRunning(now) {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListByClub returns the club's elections, newest start first.
func (s *ElectionService) ListByClub(ctx context.Context, clubID string) ([]domain.Election, error) {
	return s.Store.Elections().ListElectionsByClub(ctx, clubID)
}

func (s *ElectionService) Get(ctx context.Context, id string) (domain.Election, error) {
	return loadElection(ctx, s.Store, id)
}

// Update applies upd and re-validates the merged election. The owning club
// never changes. Positions are locked once a ballot has been cast.
func (s *ElectionService) Update(ctx context.Context, caller domain.Caller, id string, upd domain.ElectionUpdate) (domain.Election, error) {
	e, _, err := s.authorize(ctx, caller, id, domain.ActionManageElections)
	if err != nil {
		return domain.Election{}, err
	}
	if upd.IsEmpty() {
		return domain.Election{}, ErrEmptyUpdate
	}

	now := s.Clock.now()
	upd.Apply(&e)
	e.Normalize()
	assignPositionIDs(&e, now)
	e.UpdatedAt = now
	if err := e.Validate(); err != nil {
		return domain.Election{}, err
	}
	if upd.Positions != nil {
		if err := s.checkCandidates(ctx, e); err != nil {
			return domain.Election{}, err
		}
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if upd.Positions != nil {
			n, err := tx.Ballots().CountBallots(ctx, e.ID)
			if err != nil {
				return fmt.Errorf("count ballots: %w", err)
			}
			if n > 0 {
				return ErrBallotsCast
			}
		}
		if err := tx.Elections().UpdateElection(ctx, e); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrElectionNotFound
			}
			return fmt.Errorf("update election: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Election{}, err
	}
	return loadElection(ctx, s.Store, e.ID)
}

// Delete removes the election and its ballots in one transaction.
func (s *ElectionService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	e, _, err := s.authorize(ctx, caller, id, domain.ActionManageElections)
	if err != nil {
		return err
	}

	var ballots int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if ballots, err = tx.Ballots().DeleteBallotsByElection(ctx, e.ID); err != nil {
			return fmt.Errorf("delete ballots: %w", err)
		}
		if err := tx.Elections().DeleteElection(ctx, e.ID); err != nil {
			return fmt.Errorf("delete election: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("election deleted",
		slog.String("election_id", e.ID),
		slog.Int64("ballots", ballots),
	)
	return nil
}

// Analytics reports turnout for the election. Eligible voters are the
// owning club's members.
func (s *ElectionService) Analytics(ctx context.Context, caller domain.Caller, id string) (domain.Analytics, error) {
	e, club, err := s.authorize(ctx, caller, id, domain.ActionViewAnalytics)
	if err != nil {
		return domain.Analytics{}, err
	}
	eligible, err := s.Store.Clubs().CountMembers(ctx, club.ID)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("count members: %w", err)
	}
	faculties, err := s.Store.Ballots().VoterFaculties(ctx, e.ID)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("voter faculties: %w", err)
	}
	return domain.NewAnalytics(e.ID, eligible, faculties), nil
}

func (s *ElectionService) authorize(
	ctx context.Context,
	caller domain.Caller,
	electionID string,
	action domain.Action,
) (domain.Election, domain.Club, error) {
	e, err := loadElection(ctx, s.Store, electionID)
	if err != nil {
		return domain.Election{}, domain.Club{}, err
	}
	club, err := loadClub(ctx, s.Store, e.ClubID)
	if err != nil {
		return domain.Election{}, domain.Club{}, err
	}
	if !domain.Can(caller, action, &club) {
		return domain.Election{}, domain.Club{}, ErrForbidden
	}
	return e, club, nil
}

// checkCandidates reports candidates that do not refer to a known user.
func (s *ElectionService) checkCandidates(ctx context.Context, e domain.Election) error {
	fields := map[string]string{}
	for i, p := range e.Positions {
		for j, c := range p.Candidates {
			_, err := s.Store.Users().GetUserByID(ctx, c.UserID)
			if errors.Is(err, store.ErrNotFound) {
				fields[fmt.Sprintf("positions[%d].candidates[%d].candidateId", i, j)] = "does not refer to a user"
				continue
			}
			if err != nil {
				return fmt.Errorf("load candidate: %w", err)
			}
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func assignPositionIDs(e *domain.Election, now time.Time) {
	for i := range e.Positions {
		if e.Positions[i].ID == "" {
			e.Positions[i].ID = idx.NewAt(now).String()
		}
	}
}
