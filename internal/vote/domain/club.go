package domain

import (
	"slices"
	"strings"
	"time"
)

// Club owns elections. Admins is never empty and every admin is a member.
type Club struct {
	ID          string
	Name        string
	Description string
	LogoURL     string
	Admins      []string
	Members     []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Club) IsAdmin(userID string) bool  { return slices.Contains(c.Admins, userID) }
func (c Club) IsMember(userID string) bool { return slices.Contains(c.Members, userID) }

const (
	maxClubNameLen        = 100
	maxClubDescriptionLen = 1000
)

// Validate checks the club's own fields.
func (c Club) Validate() error {
	v := validator{}
	v.check(strings.TrimSpace(c.Name) != "", "name", "Club name is required.")
	v.check(len(c.Name) <= maxClubNameLen, "name", "must be at most 100 characters")
	v.check(len(c.Description) <= maxClubDescriptionLen, "description", "must be at most 1000 characters")
	v.check(len(c.Admins) > 0, "admins", "A club must have at least one admin.")
	return v.err()
}

// ClubUpdate is a partial club update; nil fields are left alone.
type ClubUpdate struct {
	Name        *string
	Description *string
	LogoURL     *string
}

// IsEmpty reports whether the update changes nothing.
func (u ClubUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.LogoURL == nil
}

// Apply copies the present fields onto c.
func (u ClubUpdate) Apply(c *Club) {
	if u.Name != nil {
		c.Name = strings.TrimSpace(*u.Name)
	}
	if u.Description != nil {
		c.Description = strings.TrimSpace(*u.Description)
	}
	if u.LogoURL != nil {
		c.LogoURL = strings.TrimSpace(*u.LogoURL)
	}
}
