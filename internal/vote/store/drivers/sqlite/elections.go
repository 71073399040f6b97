package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store/drivers/sqlite/gen"
)

type electionsRepo struct {
	q *gen.Queries
}

func (r *electionsRepo) CreateElection(ctx context.Context, e domain.Election) error {
	err := r.q.CreateElection(ctx, gen.CreateElectionParams{
		ID:          e.ID,
		ClubID:      e.ClubID,
		Title:       e.Title,
		Description: e.Description,
		Status:      string(e.Status),
		StartTime:   e.StartTime.UTC(),
		EndTime:     e.EndTime.UTC(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	})
	if err != nil {
		return mapConstraint(err)
	}
	return r.insertPositions(ctx, e)
}

func (r *electionsRepo) insertPositions(ctx context.Context, e domain.Election) error {
	for i, p := range e.Positions {
		err := r.q.CreatePosition(ctx, gen.CreatePositionParams{
			ID:            p.ID,
			ElectionID:    e.ID,
			Title:         p.Title,
			MaxSelections: int64(p.MaxSelections),
			SortOrder:     int64(i),
		})
		if err != nil {
			return mapConstraint(err)
		}
		for j, c := range p.Candidates {
			err := r.q.CreateCandidate(ctx, gen.CreateCandidateParams{
				PositionID: p.ID,
				UserID:     c.UserID,
				Statement:  c.Statement,
				SortOrder:  int64(j),
			})
			if err != nil {
				return mapConstraint(err)
			}
		}
	}
	return nil
}

func (r *electionsRepo) GetElectionByID(ctx context.Context, id string) (domain.Election, error) {
	row, err := r.q.GetElectionByID(ctx, id)
	if err != nil {
		return domain.Election{}, mapNotFound(err)
	}
	e := mapElection(row)

	positions, err := r.q.ListPositionsByElection(ctx, id)
	if err != nil {
		return domain.Election{}, err
	}
	candidates, err := r.q.ListCandidatesByElection(ctx, id)
	if err != nil {
		return domain.Election{}, err
	}

	byPosition := make(map[string][]domain.Candidate, len(positions))
	for _, c := range candidates {
		byPosition[c.PositionID] = append(byPosition[c.PositionID], domain.Candidate{
			UserID:    c.UserID,
			Name:      c.Name.String,
			Statement: c.Statement,
		})
	}
	e.Positions = make([]domain.Position, 0, len(positions))
	for _, p := range positions {
		e.Positions = append(e.Positions, domain.Position{
			ID:            p.ID,
			Title:         p.Title,
			MaxSelections: int(p.MaxSelections),
			Candidates:    byPosition[p.ID],
		})
	}
	return e, nil
}

// The list queries return election metadata only; positions are loaded by
// GetElectionByID.

func (r *electionsRepo) ListElectionsByStatus(ctx context.Context, status domain.Status) ([]domain.Election, error) {
	rows, err := r.q.ListElectionsByStatus(ctx, string(status))
	if err != nil {
		return nil, err
	}
	return mapElections(rows), nil
}

func (r *electionsRepo) ListElectionsByClub(ctx context.Context, clubID string) ([]domain.Election, error) {
	rows, err := r.q.ListElectionsByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	return mapElections(rows), nil
}

func (r *electionsRepo) UpdateElection(ctx context.Context, e domain.Election) error {
	err := affected(r.q.UpdateElection(ctx, gen.UpdateElectionParams{
		Title:       e.Title,
		Description: e.Description,
		Status:      string(e.Status),
		StartTime:   e.StartTime.UTC(),
		EndTime:     e.EndTime.UTC(),
		UpdatedAt:   e.UpdatedAt,
		ID:          e.ID,
	}))
	if err != nil {
		return err
	}
	if err := r.q.DeletePositionsByElection(ctx, e.ID); err != nil {
		return err
	}
	return r.insertPositions(ctx, e)
}

func (r *electionsRepo) DeleteElection(ctx context.Context, id string) error {
	return affected(r.q.DeleteElection(ctx, id))
}

func (r *electionsRepo) DeleteElectionsByClub(ctx context.Context, clubID string) (int64, error) {
	return r.q.DeleteElectionsByClub(ctx, clubID)
}

// CloseElapsed compares end times in Go so the result does not depend on how
// the driver serialises timestamps.
func (r *electionsRepo) CloseElapsed(ctx context.Context, now time.Time) (int64, error) {
	active, err := r.q.ListElectionsByStatus(ctx, string(domain.StatusActive))
	if err != nil {
		return 0, err
	}
	var closed int64
	for _, e := range active {
		if now.Before(e.EndTime) {
			continue
		}
		n, err := r.q.CloseElection(ctx, gen.CloseElectionParams{UpdatedAt: now.UTC(), ID: e.ID})
		if err != nil {
			return closed, err
		}
		closed += n
	}
	return closed, nil
}

func mapElection(row gen.Election) domain.Election {
	return domain.Election{
		ID:          row.ID,
		ClubID:      row.ClubID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.Status(row.Status),
		StartTime:   row.StartTime.UTC(),
		EndTime:     row.EndTime.UTC(),
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}

func mapElections(rows []gen.Election) []domain.Election {
	out := make([]domain.Election, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapElection(row))
	}
	return out
}
