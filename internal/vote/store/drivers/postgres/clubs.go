package postgres

import (
	"context"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
)

const clubColumns = `id, name, description, logo_url, created_at, updated_at`

type clubsRepo struct {
	db dbtx
}

func (r *clubsRepo) CreateClub(ctx context.Context, c domain.Club) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clubs (`+clubColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Description, c.LogoURL, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return mapConstraint(err)
	}
	for _, id := range c.Admins {
		if err := r.AddAdmin(ctx, c.ID, id); err != nil {
			return err
		}
	}
	for _, id := range c.Members {
		if err := r.AddMember(ctx, c.ID, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *clubsRepo) GetClubByID(ctx context.Context, id string) (domain.Club, error) {
	var c domain.Club
	err := r.db.QueryRowContext(ctx, `SELECT `+clubColumns+` FROM clubs WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.LogoURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Club{}, mapNotFound(err)
	}
	return r.withMembership(ctx, c)
}

func (r *clubsRepo) ListClubs(ctx context.Context) ([]domain.Club, error) {
	return r.list(ctx, `SELECT `+clubColumns+` FROM clubs ORDER BY name`)
}

func (r *clubsRepo) ListClubsByAdmin(ctx context.Context, userID string) ([]domain.Club, error) {
	return r.list(ctx,
		`SELECT c.id, c.name, c.description, c.logo_url, c.created_at, c.updated_at FROM clubs c
		 JOIN club_admins a ON a.club_id = c.id
		 WHERE a.user_id = $1
		 ORDER BY c.name`,
		userID,
	)
}

func (r *clubsRepo) UpdateClub(ctx context.Context, c domain.Club) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE clubs SET name = $1, description = $2, logo_url = $3, updated_at = $4 WHERE id = $5`,
		c.Name, c.Description, c.LogoURL, c.UpdatedAt, c.ID,
	)
	return affected(res, mapConstraint(err))
}

func (r *clubsRepo) DeleteClub(ctx context.Context, id string) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM clubs WHERE id = $1`, id))
}

func (r *clubsRepo) AddMember(ctx context.Context, clubID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO club_members (club_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		clubID, userID)
	return err
}

func (r *clubsRepo) AddAdmin(ctx context.Context, clubID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO club_admins (club_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		clubID, userID)
	return err
}

func (r *clubsRepo) RemoveMember(ctx context.Context, clubID, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM club_admins WHERE club_id = $1 AND user_id = $2`, clubID, userID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM club_members WHERE club_id = $1 AND user_id = $2`, clubID, userID)
	return err
}

func (r *clubsRepo) CountMembers(ctx context.Context, clubID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM club_members WHERE club_id = $1`, clubID).Scan(&n)
	return n, err
}

func (r *clubsRepo) SoleAdminClubs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.club_id FROM club_admins a
		 WHERE a.user_id = $1
		   AND (SELECT COUNT(*) FROM club_admins o WHERE o.club_id = a.club_id) = 1
		 ORDER BY a.club_id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return collectStrings(rows)
}

func (r *clubsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Club, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	var clubs []domain.Club
	for rows.Next() {
		var c domain.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.LogoURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			_ = rows.Close()
			return nil, err
		}
		clubs = append(clubs, c)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	// Release the connection before the membership queries; inside a
	// transaction there is only one.
	_ = rows.Close()

	out := make([]domain.Club, 0, len(clubs))
	for _, c := range clubs {
		full, err := r.withMembership(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, full)
	}
	return out, nil
}

func (r *clubsRepo) withMembership(ctx context.Context, c domain.Club) (domain.Club, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id FROM club_admins WHERE club_id = $1 ORDER BY user_id`, c.ID)
	if err != nil {
		return domain.Club{}, err
	}
	if c.Admins, err = collectStrings(rows); err != nil {
		return domain.Club{}, err
	}

	rows, err = r.db.QueryContext(ctx, `SELECT user_id FROM club_members WHERE club_id = $1 ORDER BY user_id`, c.ID)
	if err != nil {
		return domain.Club{}, err
	}
	if c.Members, err = collectStrings(rows); err != nil {
		return domain.Club{}, err
	}

	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}
