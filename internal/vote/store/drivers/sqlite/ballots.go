package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store/drivers/sqlite/gen"
)

type ballotsRepo struct {
	q *gen.Queries
}

func (r *ballotsRepo) CreateBallot(ctx context.Context, b domain.Ballot) error {
	if err := r.q.CreateBallot(ctx, gen.CreateBallotParams{
		ID:         b.ID,
		ElectionID: b.ElectionID,
		CreatedAt:  b.CreatedAt.UTC(),
	}); err != nil {
		return mapConstraint(err)
	}
	for _, s := range b.Selections {
		if err := r.q.CreateBallotSelection(ctx, gen.CreateBallotSelectionParams{
			BallotID:    b.ID,
			PositionID:  s.PositionID,
			CandidateID: s.CandidateID,
		}); err != nil {
			return mapConstraint(err)
		}
	}
	return nil
}

func (r *ballotsRepo) RecordVote(ctx context.Context, userID, electionID string, at time.Time) error {
	return mapConstraint(r.q.CreateUserVote(ctx, gen.CreateUserVoteParams{
		UserID:     userID,
		ElectionID: electionID,
		VotedAt:    at.UTC(),
	}))
}

func (r *ballotsRepo) HasVoted(ctx context.Context, userID, electionID string) (bool, error) {
	n, err := r.q.CountUserVote(ctx, gen.CountUserVoteParams{UserID: userID, ElectionID: electionID})
	return n > 0, err
}

func (r *ballotsRepo) VotedElections(ctx context.Context, userID string) ([]string, error) {
	return r.q.ListVotedElections(ctx, userID)
}

func (r *ballotsRepo) CountBallots(ctx context.Context, electionID string) (int, error) {
	n, err := r.q.CountBallotsByElection(ctx, electionID)
	return int(n), err
}

func (r *ballotsRepo) Tally(ctx context.Context, electionID string) ([]domain.TallyCount, error) {
	rows, err := r.q.TallyElection(ctx, electionID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TallyCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.TallyCount{
			PositionID:  row.PositionID,
			CandidateID: row.CandidateID,
			Count:       int(row.Votes),
		})
	}
	return out, nil
}

func (r *ballotsRepo) VoterFaculties(ctx context.Context, electionID string) ([]string, error) {
	return r.q.ListVoterFaculties(ctx, electionID)
}

func (r *ballotsRepo) DeleteBallotsByElection(ctx context.Context, electionID string) (int64, error) {
	return r.q.DeleteBallotsByElection(ctx, electionID)
}

func (r *ballotsRepo) DeleteBallotsByClub(ctx context.Context, clubID string) (int64, error) {
	return r.q.DeleteBallotsByClub(ctx, clubID)
}
