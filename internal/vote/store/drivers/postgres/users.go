package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
)

const userColumns = `id, student_id, email, name, password_hash, faculty, gender, year_of_study, roles, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID, u.StudentID, u.Email, u.Name, u.PasswordHash,
		u.Faculty, u.Gender, u.YearOfStudy, domain.FormatRoles(u.Roles),
		u.CreatedAt, u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	return u, mapNotFound(err)
}

func (r *usersRepo) GetUserByStudentID(ctx context.Context, studentID string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE student_id = $1`, studentID)
	u, err := scanUser(row)
	return u, mapNotFound(err)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

func (r *usersRepo) SearchUsers(ctx context.Context, q string, limit int) ([]domain.User, error) {
	pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE lower(name) LIKE $1 OR lower(student_id) LIKE $1
		 ORDER BY name, id
		 LIMIT $2`,
		pattern, limit,
	)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

func (r *usersRepo) UpdateUserProfile(ctx context.Context, u domain.User) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE users SET name = $1, faculty = $2, gender = $3, year_of_study = $4, updated_at = $5
		 WHERE id = $6`,
		u.Name, u.Faculty, u.Gender, u.YearOfStudy, time.Now().UTC(), u.ID,
	))
}

func (r *usersRepo) UpdateUserRoles(ctx context.Context, userID string, roles []domain.Role) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE users SET roles = $1, updated_at = $2 WHERE id = $3`,
		domain.FormatRoles(roles), time.Now().UTC(), userID,
	))
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID))
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (domain.User, error) {
	var (
		u     domain.User
		roles string
	)
	err := s.Scan(&u.ID, &u.StudentID, &u.Email, &u.Name, &u.PasswordHash,
		&u.Faculty, &u.Gender, &u.YearOfStudy, &roles, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.Roles = domain.ParseRoles(roles)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func collectUsers(rows *sql.Rows) ([]domain.User, error) {
	defer rows.Close()
	out := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// collectStrings drains a single text column.
func collectStrings(rows *sql.Rows) ([]string, error) {
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer("%", "", "_", "").Replace(s)
}
