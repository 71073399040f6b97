package sqlite

import (
	"context"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store/drivers/sqlite/gen"
)

type clubsRepo struct {
	q *gen.Queries
}

func (r *clubsRepo) CreateClub(ctx context.Context, c domain.Club) error {
	err := r.q.CreateClub(ctx, gen.CreateClubParams{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		LogoUrl:     c.LogoURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	})
	if err != nil {
		return mapConstraint(err)
	}

	for _, id := range c.Admins {
		if err := r.q.AddClubAdmin(ctx, gen.AddClubAdminParams{ClubID: c.ID, UserID: id}); err != nil {
			return err
		}
	}
	for _, id := range c.Members {
		if err := r.q.AddClubMember(ctx, gen.AddClubMemberParams{ClubID: c.ID, UserID: id}); err != nil {
			return err
		}
	}
	return nil
}

func (r *clubsRepo) GetClubByID(ctx context.Context, id string) (domain.Club, error) {
	row, err := r.q.GetClubByID(ctx, id)
	if err != nil {
		return domain.Club{}, mapNotFound(err)
	}
	return r.withMembership(ctx, row)
}

func (r *clubsRepo) ListClubs(ctx context.Context) ([]domain.Club, error) {
	rows, err := r.q.ListClubs(ctx)
	if err != nil {
		return nil, err
	}
	return r.withMemberships(ctx, rows)
}

func (r *clubsRepo) ListClubsByAdmin(ctx context.Context, userID string) ([]domain.Club, error) {
	rows, err := r.q.ListClubsByAdmin(ctx, userID)
	if err != nil {
		return nil, err
	}
	return r.withMemberships(ctx, rows)
}

func (r *clubsRepo) UpdateClub(ctx context.Context, c domain.Club) error {
	n, err := r.q.UpdateClub(ctx, gen.UpdateClubParams{
		Name:        c.Name,
		Description: c.Description,
		LogoUrl:     c.LogoURL,
		UpdatedAt:   c.UpdatedAt,
		ID:          c.ID,
	})
	return affected(n, mapConstraint(err))
}

func (r *clubsRepo) DeleteClub(ctx context.Context, id string) error {
	return affected(r.q.DeleteClub(ctx, id))
}

func (r *clubsRepo) AddMember(ctx context.Context, clubID, userID string) error {
	return r.q.AddClubMember(ctx, gen.AddClubMemberParams{ClubID: clubID, UserID: userID})
}

func (r *clubsRepo) AddAdmin(ctx context.Context, clubID, userID string) error {
	return r.q.AddClubAdmin(ctx, gen.AddClubAdminParams{ClubID: clubID, UserID: userID})
}

func (r *clubsRepo) RemoveMember(ctx context.Context, clubID, userID string) error {
	if err := r.q.RemoveClubAdmin(ctx, gen.RemoveClubAdminParams{ClubID: clubID, UserID: userID}); err != nil {
		return err
	}
	return r.q.RemoveClubMember(ctx, gen.RemoveClubMemberParams{ClubID: clubID, UserID: userID})
}

func (r *clubsRepo) CountMembers(ctx context.Context, clubID string) (int, error) {
	n, err := r.q.CountClubMembers(ctx, clubID)
	return int(n), err
}

func (r *clubsRepo) SoleAdminClubs(ctx context.Context, userID string) ([]string, error) {
	return r.q.ListSoleAdminClubs(ctx, userID)
}

func (r *clubsRepo) withMembership(ctx context.Context, row gen.Club) (domain.Club, error) {
	admins, err := r.q.ListClubAdmins(ctx, row.ID)
	if err != nil {
		return domain.Club{}, err
	}
	members, err := r.q.ListClubMembers(ctx, row.ID)
	if err != nil {
		return domain.Club{}, err
	}
	return domain.Club{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		LogoURL:     row.LogoUrl,
		Admins:      admins,
		Members:     members,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}, nil
}

func (r *clubsRepo) withMemberships(ctx context.Context, rows []gen.Club) ([]domain.Club, error) {
	out := make([]domain.Club, 0, len(rows))
	for _, row := range rows {
		c, err := r.withMembership(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
