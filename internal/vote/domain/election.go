package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status is an election's lifecycle state.
type Status string

const (
	StatusDraft  Status = "draft"
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusActive || s == StatusClosed
}

// Candidate stands for a position. UserID doubles as the candidate id in
// ballots and results.
type Candidate struct {
	UserID    string
	Name      string
	Statement string
}

// Position is one office on the ballot.
type Position struct {
	ID            string
	Title         string
	MaxSelections int
	Candidates    []Candidate
}

// HasCandidate reports whether userID is a candidate for p.
func (p Position) HasCandidate(userID string) bool {
	for _, c := range p.Candidates {
		if c.UserID == userID {
			return true
		}
	}
	return false
}

// Election belongs to a club. ClubID never changes after creation.
type Election struct {
	ID          string
	ClubID      string
	Title       string
	Description string
	Status      Status
	StartTime   time.Time
	EndTime     time.Time
	Positions   []Position
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOpen reports whether ballots are accepted at now: the election is active
// and now is strictly before EndTime. Results are withheld while open.
func (e Election) IsOpen(now time.Time) bool {
	return e.Status == StatusActive && now.Before(e.EndTime)
}

// IsRunning reports whether the election is active and now falls within
// [StartTime, EndTime].
func (e Election) IsRunning(now time.Time) bool {
	return e.Status == StatusActive && !now.Before(e.StartTime) && !now.After(e.EndTime)
}

// Position returns the position with id.
func (e Election) Position(id string) (Position, bool) {
	for _, p := range e.Positions {
		if p.ID == id {
			return p, true
		}
	}
	return Position{}, false
}

const maxStatementLen = 500

// Normalize trims text fields and applies defaults.
func (e *Election) Normalize() {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	if e.Status == "" {
		e.Status = StatusDraft
	}
	for i := range e.Positions {
		p := &e.Positions[i]
		p.Title = strings.TrimSpace(p.Title)
		if p.MaxSelections == 0 {
			p.MaxSelections = 1
		}
		for j := range p.Candidates {
			p.Candidates[j].Statement = strings.TrimSpace(p.Candidates[j].Statement)
		}
	}
}

// Validate checks the election and its ballot layout.
func (e Election) Validate() error {
	v := validator{}
	v.check(e.ClubID != "", "clubId", "is required")
	v.check(e.Title != "", "title", "Election title is required.")
	v.check(e.Status.Valid(), "status", "must be one of draft, active, closed")
	v.check(!e.StartTime.IsZero(), "startTime", "Start time is required.")
	v.check(!e.EndTime.IsZero(), "endTime", "End time is required.")
	if !e.StartTime.IsZero() && !e.EndTime.IsZero() {
		v.check(e.StartTime.Before(e.EndTime), "endTime", "End time must be after start time.")
	}
	v.check(len(e.Positions) > 0, "positions", "at least one position is required")

	for i, p := range e.Positions {
		field := fmt.Sprintf("positions[%d]", i)
		v.check(p.Title != "", field+".title", "Position title is required.")
		v.check(p.MaxSelections >= 1, field+".maxSelections", "must be at least 1")
		v.check(len(p.Candidates) > 0, field+".candidates", "A position must have at least one candidate.")

		seen := make(map[string]bool, len(p.Candidates))
		for j, c := range p.Candidates {
			cf := fmt.Sprintf("%s.candidates[%d]", field, j)
			v.check(c.UserID != "", cf+".candidateId", "is required")
			v.check(!seen[c.UserID], cf+".candidateId", "is listed twice")
			v.check(len(c.Statement) <= maxStatementLen, cf+".statement", "must be at most 500 characters")
			seen[c.UserID] = true
		}
	}
	return v.err()
}

// CheckSelections validates the shape of a ballot against the election:
// every pair names a configured position and one of its candidates, no pair
// repeats, and no position gets more than MaxSelections picks.
func (e Election) CheckSelections(sels []Selection) error {
	type pair struct{ pos, cand string }
	seen := make(map[pair]bool, len(sels))
	perPosition := make(map[string]int)

	for _, s := range sels {
		p, ok := e.Position(s.PositionID)
		if !ok {
			return fmt.Errorf("unknown position %q", s.PositionID)
		}
		if !p.HasCandidate(s.CandidateID) {
			return fmt.Errorf("candidate %q is not standing for position %q", s.CandidateID, p.Title)
		}
		k := pair{s.PositionID, s.CandidateID}
		if seen[k] {
			return fmt.Errorf("candidate %q selected twice for position %q", s.CandidateID, p.Title)
		}
		seen[k] = true

		perPosition[s.PositionID]++
		if perPosition[s.PositionID] > p.MaxSelections {
			return fmt.Errorf("position %q allows at most %d selection(s)", p.Title, p.MaxSelections)
		}
	}
	return nil
}

// ElectionUpdate is a partial election update; nil fields are left alone.
// ClubID is not updatable.
type ElectionUpdate struct {
	Title       *string
	Description *string
	Status      *Status
	StartTime   *time.Time
	EndTime     *time.Time
	Positions   *[]Position
}

// IsEmpty reports whether the update changes nothing.
func (u ElectionUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil &&
		u.StartTime == nil && u.EndTime == nil && u.Positions == nil
}

// Apply copies the present fields onto e. The result should be normalised
// and validated as a whole afterwards.
func (u ElectionUpdate) Apply(e *Election) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Status != nil {
		e.Status = *u.Status
	}
	if u.StartTime != nil {
		e.StartTime = u.StartTime.UTC()
	}
	if u.EndTime != nil {
		e.EndTime = u.EndTime.UTC()
	}
	if u.Positions != nil {
		e.Positions = *u.Positions
	}
}
