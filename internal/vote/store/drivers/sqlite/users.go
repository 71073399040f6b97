package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		StudentID:    u.StudentID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Faculty:      u.Faculty,
		Gender:       u.Gender,
		YearOfStudy:  int64(u.YearOfStudy),
		Roles:        domain.FormatRoles(u.Roles),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	})
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByStudentID(ctx context.Context, studentID string) (domain.User, error) {
	row, err := r.q.GetUserByStudentID(ctx, studentID)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return mapUsers(rows), nil
}

func (r *usersRepo) SearchUsers(ctx context.Context, q string, limit int) ([]domain.User, error) {
	rows, err := r.q.SearchUsers(ctx, gen.SearchUsersParams{
		Pattern: "%" + escapeLike(strings.ToLower(q)) + "%",
		Limit:   int64(limit),
	})
	if err != nil {
		return nil, err
	}
	return mapUsers(rows), nil
}

func (r *usersRepo) UpdateUserProfile(ctx context.Context, u domain.User) error {
	return affected(r.q.UpdateUserProfile(ctx, gen.UpdateUserProfileParams{
		Name:        u.Name,
		Faculty:     u.Faculty,
		Gender:      u.Gender,
		YearOfStudy: int64(u.YearOfStudy),
		UpdatedAt:   time.Now().UTC(),
		ID:          u.ID,
	}))
}

func (r *usersRepo) UpdateUserRoles(ctx context.Context, userID string, roles []domain.Role) error {
	return affected(r.q.UpdateUserRoles(ctx, gen.UpdateUserRolesParams{
		Roles:     domain.FormatRoles(roles),
		UpdatedAt: time.Now().UTC(),
		ID:        userID,
	}))
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return affected(r.q.DeleteUser(ctx, userID))
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.q.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:           row.ID,
		StudentID:    row.StudentID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		Faculty:      row.Faculty,
		Gender:       row.Gender,
		YearOfStudy:  int(row.YearOfStudy),
		Roles:        domain.ParseRoles(row.Roles),
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}

func mapUsers(rows []gen.User) []domain.User {
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapUser(row))
	}
	return out
}

// escapeLike drops LIKE wildcards from user input.
func escapeLike(s string) string {
	return strings.NewReplacer("%", "", "_", "").Replace(s)
}
