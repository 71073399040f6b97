package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
)

const electionColumns = `id, club_id, title, description, status, start_time, end_time, created_at, updated_at`

type electionsRepo struct {
	db dbtx
}

func (r *electionsRepo) CreateElection(ctx context.Context, e domain.Election) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO elections (`+electionColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.ClubID, e.Title, e.Description, string(e.Status),
		e.StartTime.UTC(), e.EndTime.UTC(), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return r.insertPositions(ctx, e)
}

func (r *electionsRepo) insertPositions(ctx context.Context, e domain.Election) error {
	for i, p := range e.Positions {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO positions (id, election_id, title, max_selections, sort_order)
			 VALUES ($1, $2, $3, $4, $5)`,
			p.ID, e.ID, p.Title, p.MaxSelections, i,
		); err != nil {
			return mapConstraint(err)
		}
		for j, c := range p.Candidates {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO candidates (position_id, user_id, statement, sort_order)
				 VALUES ($1, $2, $3, $4)`,
				p.ID, c.UserID, c.Statement, j,
			); err != nil {
				return mapConstraint(err)
			}
		}
	}
	return nil
}

func (r *electionsRepo) GetElectionByID(ctx context.Context, id string) (domain.Election, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+electionColumns+` FROM elections WHERE id = $1`, id)
	e, err := scanElection(row)
	if err != nil {
		return domain.Election{}, mapNotFound(err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, max_selections FROM positions WHERE election_id = $1 ORDER BY sort_order`, id)
	if err != nil {
		return domain.Election{}, err
	}
	e.Positions = []domain.Position{}
	index := map[string]int{}
	for rows.Next() {
		var p domain.Position
		if err := rows.Scan(&p.ID, &p.Title, &p.MaxSelections); err != nil {
			_ = rows.Close()
			return domain.Election{}, err
		}
		index[p.ID] = len(e.Positions)
		e.Positions = append(e.Positions, p)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return domain.Election{}, err
	}
	_ = rows.Close()

	rows, err = r.db.QueryContext(ctx,
		`SELECT c.position_id, c.user_id, c.statement, u.name
		 FROM candidates c
		 JOIN positions p ON p.id = c.position_id
		 LEFT JOIN users u ON u.id = c.user_id
		 WHERE p.election_id = $1
		 ORDER BY p.sort_order, c.sort_order`, id)
	if err != nil {
		return domain.Election{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			positionID string
			c          domain.Candidate
			name       sql.NullString
		)
		if err := rows.Scan(&positionID, &c.UserID, &c.Statement, &name); err != nil {
			return domain.Election{}, err
		}
		c.Name = name.String
		if i, ok := index[positionID]; ok {
			e.Positions[i].Candidates = append(e.Positions[i].Candidates, c)
		}
	}
	return e, rows.Err()
}

func (r *electionsRepo) ListElectionsByStatus(ctx context.Context, status domain.Status) ([]domain.Election, error) {
	return r.list(ctx,
		`SELECT `+electionColumns+` FROM elections WHERE status = $1 ORDER BY end_time, id`, string(status))
}

func (r *electionsRepo) ListElectionsByClub(ctx context.Context, clubID string) ([]domain.Election, error) {
	return r.list(ctx,
		`SELECT `+electionColumns+` FROM elections WHERE club_id = $1 ORDER BY start_time DESC, id DESC`, clubID)
}

func (r *electionsRepo) UpdateElection(ctx context.Context, e domain.Election) error {
	err := affected(r.db.ExecContext(ctx,
		`UPDATE elections
		 SET title = $1, description = $2, status = $3, start_time = $4, end_time = $5, updated_at = $6
		 WHERE id = $7`,
		e.Title, e.Description, string(e.Status), e.StartTime.UTC(), e.EndTime.UTC(), e.UpdatedAt, e.ID,
	))
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM positions WHERE election_id = $1`, e.ID); err != nil {
		return err
	}
	return r.insertPositions(ctx, e)
}

func (r *electionsRepo) DeleteElection(ctx context.Context, id string) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM elections WHERE id = $1`, id))
}

func (r *electionsRepo) DeleteElectionsByClub(ctx context.Context, clubID string) (int64, error) {
	return rowsAffected(r.db.ExecContext(ctx, `DELETE FROM elections WHERE club_id = $1`, clubID))
}

func (r *electionsRepo) CloseElapsed(ctx context.Context, now time.Time) (int64, error) {
	return rowsAffected(r.db.ExecContext(ctx,
		`UPDATE elections SET status = 'closed', updated_at = $1
		 WHERE status = 'active' AND end_time <= $1`,
		now.UTC(),
	))
}

func (r *electionsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Election, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Election{}
	for rows.Next() {
		e, err := scanElection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanElection(s scanner) (domain.Election, error) {
	var (
		e      domain.Election
		status string
	)
	err := s.Scan(&e.ID, &e.ClubID, &e.Title, &e.Description, &status,
		&e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Election{}, err
	}
	e.Status = domain.Status(status)
	e.StartTime = e.StartTime.UTC()
	e.EndTime = e.EndTime.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return e, nil
}
