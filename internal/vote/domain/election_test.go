package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/stretchr/testify/require"
)

func sampleElection() domain.Election {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return domain.Election{
		ID:        "e1",
		ClubID:    "c1",
		Title:     "Club President 2025",
		Status:    domain.StatusActive,
		StartTime: start,
		EndTime:   start.Add(48 * time.Hour),
		Positions: []domain.Position{
			{ID: "pres", Title: "President", MaxSelections: 1, Candidates: []domain.Candidate{{UserID: "x"}, {UserID: "y"}}},
			{ID: "comm", Title: "Committee", MaxSelections: 2, Candidates: []domain.Candidate{{UserID: "a"}, {UserID: "b"}, {UserID: "c"}}},
		},
	}
}

func TestElectionIsOpen(t *testing.T) {
	t.Parallel()
	e := sampleElection()

	require.True(t, e.IsOpen(e.EndTime.Add(-time.Nanosecond)))
	require.False(t, e.IsOpen(e.EndTime), "endTime itself is closed")

	e.Status = domain.StatusClosed
	require.False(t, e.IsOpen(e.StartTime))
}

func TestElectionIsRunning(t *testing.T) {
	t.Parallel()
	e := sampleElection()

	require.False(t, e.IsRunning(e.StartTime.Add(-time.Second)))
	require.True(t, e.IsRunning(e.StartTime))
	require.True(t, e.IsRunning(e.EndTime))
	require.False(t, e.IsRunning(e.EndTime.Add(time.Second)))
}

func TestElectionValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid election", func(t *testing.T) {
		require.NoError(t, sampleElection().Validate())
	})

	t.Run("end before start", func(t *testing.T) {
		e := sampleElection()
		e.EndTime = e.StartTime
		var verr *domain.ValidationError
		require.ErrorAs(t, e.Validate(), &verr)
		require.Contains(t, verr.Fields, "endTime")
	})

	t.Run("position without candidates", func(t *testing.T) {
		e := sampleElection()
		e.Positions[0].Candidates = nil
		var verr *domain.ValidationError
		require.ErrorAs(t, e.Validate(), &verr)
		require.Contains(t, verr.Fields, "positions[0].candidates")
	})

	t.Run("normalize defaults", func(t *testing.T) {
		e := sampleElection()
		e.Status = ""
		e.Positions[0].MaxSelections = 0
		e.Normalize()
		require.Equal(t, domain.StatusDraft, e.Status)
		require.Equal(t, 1, e.Positions[0].MaxSelections)
		require.NoError(t, e.Validate())
	})
}

func TestCheckSelections(t *testing.T) {
	t.Parallel()
	e := sampleElection()

	ok := []domain.Selection{{PositionID: "pres", CandidateID: "x"}, {PositionID: "comm", CandidateID: "a"}, {PositionID: "comm", CandidateID: "c"}}
	require.NoError(t, e.CheckSelections(ok))

	for name, sels := range map[string][]domain.Selection{
		"unknown position":  {{PositionID: "treasurer", CandidateID: "x"}},
		"wrong candidate":   {{PositionID: "pres", CandidateID: "a"}},
		"duplicate pair":    {{PositionID: "comm", CandidateID: "a"}, {PositionID: "comm", CandidateID: "a"}},
		"too many for slot": {{PositionID: "pres", CandidateID: "x"}, {PositionID: "pres", CandidateID: "y"}},
	} {
		require.Error(t, e.CheckSelections(sels), name)
	}
}

func TestElectionUpdateApply(t *testing.T) {
	t.Parallel()
	e := sampleElection()
	title := "Club President 2026"
	status := domain.StatusClosed

	u := domain.ElectionUpdate{Title: &title, Status: &status}
	require.False(t, u.IsEmpty())
	u.Apply(&e)

	require.Equal(t, title, e.Title)
	require.Equal(t, domain.StatusClosed, e.Status)
	require.Equal(t, "c1", e.ClubID)
	require.True(t, domain.ElectionUpdate{}.IsEmpty())
}
