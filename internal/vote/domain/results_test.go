package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/stretchr/testify/require"
)

func TestBuildResults(t *testing.T) {
	t.Parallel()

	t.Run("club president scenario", func(t *testing.T) {
		e := sampleElection()
		e.Positions = e.Positions[:1]
		e.Positions[0].Candidates = []domain.Candidate{{UserID: "y", Name: "Y"}, {UserID: "x", Name: "X"}}

		res := domain.BuildResults(e, "Chess Club", []domain.TallyCount{
			{PositionID: "pres", CandidateID: "x", Count: 2},
			{PositionID: "pres", CandidateID: "y", Count: 1},
		}, 3)

		require.Equal(t, "Club President 2025", res.ElectionTitle)
		require.Equal(t, "Chess Club", res.ClubName)
		require.Equal(t, 3, res.TotalBallotsCast)
		require.Len(t, res.Positions, 1)
		require.Equal(t, []domain.CandidateResult{
			{CandidateID: "x", Name: "X", Votes: 2},
			{CandidateID: "y", Name: "Y", Votes: 1},
		}, res.Positions[0].Candidates)
	})

	t.Run("zero fill keeps ballot order on ties", func(t *testing.T) {
		res := domain.BuildResults(sampleElection(), "", []domain.TallyCount{
			{PositionID: "comm", CandidateID: "c", Count: 4},
		}, 4)

		require.Len(t, res.Positions, 2)
		pres := res.Positions[0].Candidates
		require.Equal(t, "x", pres[0].CandidateID)
		require.Equal(t, "y", pres[1].CandidateID)
		require.Zero(t, pres[0].Votes+pres[1].Votes)

		comm := res.Positions[1].Candidates
		require.Equal(t, []string{"c", "a", "b"}, []string{comm[0].CandidateID, comm[1].CandidateID, comm[2].CandidateID})
	})

	t.Run("counts for unconfigured pairs are ignored", func(t *testing.T) {
		res := domain.BuildResults(sampleElection(), "", []domain.TallyCount{
			{PositionID: "ghost", CandidateID: "x", Count: 9},
		}, 9)
		for _, p := range res.Positions {
			for _, c := range p.Candidates {
				require.Zero(t, c.Votes)
			}
		}
	})
}

func TestNewAnalytics(t *testing.T) {
	t.Parallel()

	t.Run("no eligible voters gives zero rate", func(t *testing.T) {
		a := domain.NewAnalytics("e1", 0, nil)
		require.Zero(t, a.ParticipationRate)
		require.Zero(t, a.TotalVotersWhoVoted)
		require.Empty(t, a.VotesByFaculty)
	})

	t.Run("groups by faculty", func(t *testing.T) {
		a := domain.NewAnalytics("e1", 3, []string{"Science", "", "Science"})
		require.Equal(t, 3, a.TotalVotersWhoVoted)
		require.Equal(t, 100.0, a.ParticipationRate)
		require.Equal(t, map[string]int{"Science": 2, domain.UnknownFaculty: 1}, a.VotesByFaculty)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		require.Equal(t, 33.33, domain.ParticipationRate(1, 3))
	})
}
