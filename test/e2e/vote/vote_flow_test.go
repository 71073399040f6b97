package vote_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

// TestElectionLifecycle runs an election from club creation to published
// results against a real container, including the background closer.
func TestElectionLifecycle(t *testing.T) {
	baseURL, cleanup := setupVoteContainer(t)
	defer cleanup()

	ctx := t.Context()
	admin, _ := bootstrapAdmin(t, baseURL)

	alice, aliceUser := registerMember(t, baseURL, "z1000001", "Science")
	bob, bobUser := registerMember(t, baseURL, "z1000002", "Arts")
	carol, carolUser := registerMember(t, baseURL, "z1000003", "")
	outsider, _ := registerMember(t, baseURL, "z1000004", "Law")

	club, err := admin.CreateClub(ctx, votesdk.CreateClubRequest{
		Name:    "Chess Club",
		Admins:  []string{aliceUser.ID},
		Members: []string{bobUser.ID},
	})
	require.NoError(t, err)

	// Club admins manage membership without admin scopes.
	club, err = alice.AddMember(ctx, club.ID, carolUser.ID)
	require.NoError(t, err)
	require.Contains(t, club.Members, carolUser.ID)

	_, err = bob.AddMember(ctx, club.ID, bobUser.ID)
	assertStatus(t, err, http.StatusForbidden)

	_, err = alice.CreateClub(ctx, votesdk.CreateClubRequest{Name: "Go Club"})
	assertAPIError(t, err, http.StatusForbidden, votesdk.ErrorCodeInsufficientScope)

	// Short voting window so the closer has something to close.
	now := time.Now().UTC()
	election, err := alice.CreateElection(ctx, votesdk.CreateElectionRequest{
		ClubID:    club.ID,
		Title:     "Club President 2025",
		Status:    "active",
		StartTime: now.Add(-time.Minute),
		EndTime:   now.Add(8 * time.Second),
		Positions: []votesdk.PositionRequest{{
			Title: "President",
			Candidates: []votesdk.CandidateRequest{
				{CandidateID: aliceUser.ID, Statement: "Four more years"},
				{CandidateID: bobUser.ID},
			},
		}},
	})
	require.NoError(t, err)
	president := election.Positions[0].ID

	ballot := func(candidateID string) votesdk.CastVoteRequest {
		return votesdk.CastVoteRequest{Selections: []votesdk.SelectionRequest{{PositionID: president, CandidateID: candidateID}}}
	}

	require.NoError(t, alice.CastVote(ctx, election.ID, ballot(aliceUser.ID)))
	require.NoError(t, bob.CastVote(ctx, election.ID, ballot(aliceUser.ID)))
	require.NoError(t, carol.CastVote(ctx, election.ID, ballot(bobUser.ID)))

	err = bob.CastVote(ctx, election.ID, ballot(bobUser.ID))
	assertAPIError(t, err, http.StatusConflict, votesdk.ErrorCodeAlreadyVoted)

	err = outsider.CastVote(ctx, election.ID, ballot(aliceUser.ID))
	assertStatus(t, err, http.StatusForbidden)

	_, err = bob.GetResults(ctx, election.ID)
	assertStatus(t, err, http.StatusForbidden)

	analytics, err := alice.GetAnalytics(ctx, election.ID)
	require.NoError(t, err)
	require.Equal(t, 4, analytics.TotalEligibleVoters)
	require.Equal(t, 3, analytics.TotalVotersWhoVoted)
	require.InDelta(t, 75.0, analytics.ParticipationRate, 0.001)

	require.Eventually(t, func() bool {
		e, err := outsider.GetElection(ctx, election.ID)
		return err == nil && e.Status == "closed"
	}, 30*time.Second, 500*time.Millisecond, "closer should close the election after its end time")

	results, err := outsider.GetResults(ctx, election.ID)
	require.NoError(t, err)
	require.Equal(t, 3, results.TotalBallotsCast)
	require.Equal(t, "Chess Club", results.ClubName)
	require.Len(t, results.Results, 1)
	require.Equal(t, aliceUser.ID, results.Results[0].Candidates[0].CandidateID)
	require.Equal(t, 2, results.Results[0].Candidates[0].VoteCount)
	require.Equal(t, 1, results.Results[0].Candidates[1].VoteCount)

	require.NoError(t, admin.DeleteClub(ctx, club.ID))

	_, err = admin.GetElection(ctx, election.ID)
	assertAPIError(t, err, http.StatusNotFound, votesdk.ErrorCodeNotFound)
}

// TestAccountEndpoints covers profile and admin user management.
func TestAccountEndpoints(t *testing.T) {
	baseURL, cleanup := setupVoteContainer(t)
	defer cleanup()

	ctx := t.Context()
	admin, _ := bootstrapAdmin(t, baseURL)
	alice, aliceUser := registerMember(t, baseURL, "z2000001", "Engineering")

	name := "Alice Liddell"
	profile, err := alice.UpdateProfile(ctx, votesdk.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, name, profile.Name)

	found, err := alice.SearchUsers(ctx, "liddell")
	require.NoError(t, err)
	require.Len(t, found.Users, 1)

	_, err = alice.ListUsers(ctx)
	assertAPIError(t, err, http.StatusForbidden, votesdk.ErrorCodeInsufficientScope)

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users.Users, 2)

	require.NoError(t, admin.DeleteUser(ctx, aliceUser.ID))

	_, err = votesdk.NewClient(baseURL).Login(ctx, votesdk.LoginRequest{StudentID: "z2000001", Password: memberPassword})
	assertStatus(t, err, http.StatusUnauthorized)
}
