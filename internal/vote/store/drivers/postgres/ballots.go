package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
)

type ballotsRepo struct {
	db dbtx
}

func (r *ballotsRepo) CreateBallot(ctx context.Context, b domain.Ballot) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO ballots (id, election_id, created_at) VALUES ($1, $2, $3)`,
		b.ID, b.ElectionID, b.CreatedAt.UTC(),
	); err != nil {
		return mapConstraint(err)
	}
	for _, s := range b.Selections {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO ballot_selections (ballot_id, position_id, candidate_id) VALUES ($1, $2, $3)`,
			b.ID, s.PositionID, s.CandidateID,
		); err != nil {
			return mapConstraint(err)
		}
	}
	return nil
}

func (r *ballotsRepo) RecordVote(ctx context.Context, userID, electionID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_votes (user_id, election_id, voted_at) VALUES ($1, $2, $3)`,
		userID, electionID, at.UTC(),
	)
	return mapConstraint(err)
}

func (r *ballotsRepo) HasVoted(ctx context.Context, userID, electionID string) (bool, error) {
	var voted bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_votes WHERE user_id = $1 AND election_id = $2)`,
		userID, electionID,
	).Scan(&voted)
	return voted, err
}

func (r *ballotsRepo) VotedElections(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT election_id FROM user_votes WHERE user_id = $1 ORDER BY voted_at, election_id`, userID)
	if err != nil {
		return nil, err
	}
	return collectStrings(rows)
}

func (r *ballotsRepo) CountBallots(ctx context.Context, electionID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ballots WHERE election_id = $1`, electionID).Scan(&n)
	return n, err
}

func (r *ballotsRepo) Tally(ctx context.Context, electionID string) ([]domain.TallyCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.position_id, s.candidate_id, COUNT(*)
		 FROM ballot_selections s
		 JOIN ballots b ON b.id = s.ballot_id
		 WHERE b.election_id = $1
		 GROUP BY s.position_id, s.candidate_id`, electionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.TallyCount{}
	for rows.Next() {
		var c domain.TallyCount
		if err := rows.Scan(&c.PositionID, &c.CandidateID, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ballotsRepo) VoterFaculties(ctx context.Context, electionID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.faculty FROM user_votes v
		 JOIN users u ON u.id = v.user_id
		 WHERE v.election_id = $1`, electionID)
	if err != nil {
		return nil, err
	}
	return collectStrings(rows)
}

func (r *ballotsRepo) DeleteBallotsByElection(ctx context.Context, electionID string) (int64, error) {
	return rowsAffected(r.db.ExecContext(ctx, `DELETE FROM ballots WHERE election_id = $1`, electionID))
}

func (r *ballotsRepo) DeleteBallotsByClub(ctx context.Context, clubID string) (int64, error) {
	return rowsAffected(r.db.ExecContext(ctx,
		`DELETE FROM ballots WHERE election_id IN (SELECT id FROM elections WHERE club_id = $1)`, clubID))
}
