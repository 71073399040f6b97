package domain

import (
	"net/mail"
	"slices"
	"strings"
	"time"
)

// User is a registered account. PasswordHash is an argon2id PHC string.
type User struct {
	ID           string
	StudentID    string
	Email        string
	Name         string
	PasswordHash string
	Faculty      string
	Gender       string
	YearOfStudy  int
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user holds r.
func (u User) HasRole(r Role) bool {
	return slices.Contains(u.Roles, r)
}

// Caller returns the user as a request identity.
func (u User) Caller() Caller {
	return Caller{UserID: u.ID, Roles: u.Roles}
}

// Registration is the input to account creation.
type Registration struct {
	StudentID   string
	Email       string
	Password    string
	Name        string
	Faculty     string
	Gender      string
	YearOfStudy int
}

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// Normalize trims whitespace and lowercases the email.
func (r *Registration) Normalize() {
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	r.Faculty = strings.TrimSpace(r.Faculty)
	r.Gender = strings.TrimSpace(r.Gender)
}

// Validate checks required fields and formats.
func (r Registration) Validate() error {
	v := validator{}
	v.check(r.StudentID != "", "studentId", "is required")
	v.check(r.Name != "", "name", "is required")
	v.check(r.Email != "", "email", "is required")
	if r.Email != "" {
		_, err := mail.ParseAddress(r.Email)
		v.check(err == nil, "email", "is not a valid address")
	}
	v.check(r.Password != "", "password", "is required")
	v.check(r.Password == "" || len(r.Password) >= MinPasswordLength, "password", "must be at least 8 characters")
	v.check(r.YearOfStudy >= 0 && r.YearOfStudy <= 10, "yearOfStudy", "must be between 0 and 10")
	return v.err()
}

// UserUpdate is a partial profile update; nil fields are left alone.
type UserUpdate struct {
	Name        *string
	Faculty     *string
	Gender      *string
	YearOfStudy *int
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Faculty == nil && u.Gender == nil && u.YearOfStudy == nil
}

// Validate checks each present field.
func (u UserUpdate) Validate() error {
	v := validator{}
	if u.Name != nil {
		v.check(strings.TrimSpace(*u.Name) != "", "name", "cannot be empty")
	}
	if u.YearOfStudy != nil {
		v.check(*u.YearOfStudy >= 0 && *u.YearOfStudy <= 10, "yearOfStudy", "must be between 0 and 10")
	}
	return v.err()
}

// Apply copies the present fields onto user.
func (u UserUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = strings.TrimSpace(*u.Name)
	}
	if u.Faculty != nil {
		user.Faculty = strings.TrimSpace(*u.Faculty)
	}
	if u.Gender != nil {
		user.Gender = strings.TrimSpace(*u.Gender)
	}
	if u.YearOfStudy != nil {
		user.YearOfStudy = *u.YearOfStudy
	}
}
