package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store"
	"github.com/aussiebroadwan/ballotbox/pkg/idx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

type VoteService struct {
	Store store.Store
	Clock Clock
}

// CastVote records an anonymous ballot for caller in electionID.
//
// Eligibility is checked in a fixed order before anything is written: the
// election exists, it is open, the selections are well formed, the caller
// belongs to the owning club, and the caller has not voted yet. The ballot
// and the voted-set entry are then written in one transaction. A concurrent
// second submission loses on the voted-set primary key and reports
// ErrAlreadyVoted; any other write failure reports ErrVoteNotRecorded.
func (s *VoteService) CastVote(
	ctx context.Context,
	caller domain.Caller,
	electionID string,
	selections []domain.Selection,
) error {
	l := slogx.FromContext(ctx)
	now := s.Clock.now()

	// 1. Election exists
	e, err := loadElection(ctx, s.Store, electionID)
	if err != nil {
		return err
	}

	// 2. Election is accepting ballots
	if !e.IsOpen(now) {
		return ErrElectionNotActive
	}

	// 3. Selections present and well formed
	if len(selections) == 0 {
		return ErrNoSelections
	}
	if err := e.CheckSelections(selections); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}

	// 4. Caller belongs to the owning club
	club, err := loadClub(ctx, s.Store, e.ClubID)
	if err != nil {
		return err
	}
	if !club.IsMember(caller.UserID) {
		return ErrNotEligible
	}

	// 5. Caller has not voted yet
	voted, err := s.Store.Ballots().HasVoted(ctx, caller.UserID, e.ID)
	if err != nil {
		return fmt.Errorf("check voted set: %w", err)
	}
	if voted {
		return ErrAlreadyVoted
	}

	ballot := domain.Ballot{
		ID:         idx.NewAt(now).String(),
		ElectionID: e.ID,
		Selections: selections,
		CreatedAt:  now,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Positions may have been replaced since the checks above ran.
		current, err := loadElection(ctx, tx, e.ID)
		if err != nil {
			return err
		}
		if !current.IsOpen(now) {
			return ErrElectionNotActive
		}
		if err := current.CheckSelections(selections); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSelection, err)
		}

		if err := tx.Ballots().CreateBallot(ctx, ballot); err != nil {
			return fmt.Errorf("create ballot: %w", err)
		}
		if err := tx.Ballots().RecordVote(ctx, caller.UserID, e.ID, now); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyVoted
			}
			return fmt.Errorf("record vote: %w", err)
		}
		return nil
	})
	switch {
	case errors.Is(err, ErrAlreadyVoted):
		l.Warn("concurrent vote rejected", slog.String("election_id", e.ID))
		return ErrAlreadyVoted
	case errors.Is(err, ErrElectionNotFound), errors.Is(err, ErrElectionNotActive), errors.Is(err, ErrInvalidSelection):
		l.Warn("election changed while voting", slog.String("election_id", e.ID), slog.Any("error", err))
		return err
	case err != nil:
		l.Error("vote transaction failed", slog.String("election_id", e.ID), slog.Any("error", err))
		return ErrVoteNotRecorded
	}

	l.Info("vote cast", slog.String("election_id", e.ID), slog.Int("selections", len(selections)))
	return nil
}

// Results tallies a finished election. While the election is still open the
// call fails with ErrResultsNotAvailable.
func (s *VoteService) Results(ctx context.Context, electionID string) (domain.Results, error) {
	e, err := loadElection(ctx, s.Store, electionID)
	if err != nil {
		return domain.Results{}, err
	}
	if e.IsOpen(s.Clock.now()) {
		return domain.Results{}, ErrResultsNotAvailable
	}

	counts, err := s.Store.Ballots().Tally(ctx, e.ID)
	if err != nil {
		return domain.Results{}, fmt.Errorf("tally: %w", err)
	}
	total, err := s.Store.Ballots().CountBallots(ctx, e.ID)
	if err != nil {
		return domain.Results{}, fmt.Errorf("count ballots: %w", err)
	}

	var clubName string
	if club, err := loadClub(ctx, s.Store, e.ClubID); err == nil {
		clubName = club.Name
	} else if !errors.Is(err, ErrClubNotFound) {
		return domain.Results{}, err
	}

	return domain.BuildResults(e, clubName, counts, total), nil
}
