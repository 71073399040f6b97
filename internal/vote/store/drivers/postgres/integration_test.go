package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store/drivers/postgres"
	"github.com/aussiebroadwan/ballotbox/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres runs a throwaway PostgreSQL container and returns a migrated store.
func startPostgres(t *testing.T) *postgres.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "vote",
			"POSTGRES_PASSWORD": "vote",
			"POSTGRES_DB":       "vote",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	s, err := postgres.NewStore(fmt.Sprintf("postgres://vote:vote@%s:%s/vote?sslmode=disable", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.Eventually(t, func() bool { return s.Ping(ctx) == nil }, 10*time.Second, 200*time.Millisecond)
	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestPostgresVoteLifecycle(t *testing.T) {
	s := startPostgres(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	newUser := func(studentID, faculty string) domain.User {
		u := domain.User{
			ID:           idx.New().String(),
			StudentID:    studentID,
			Email:        studentID + "@uni.test",
			Name:         "Student " + studentID,
			PasswordHash: "x",
			Faculty:      faculty,
			Roles:        []domain.Role{domain.RoleVoter},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		require.NoError(t, s.Users().CreateUser(ctx, u))
		return u
	}

	admin := newUser("s1", "Science")
	alice := newUser("s2", "Arts")
	bob := newUser("s3", "")

	club := domain.Club{
		ID:        idx.New().String(),
		Name:      "Chess Club",
		Admins:    []string{admin.ID},
		Members:   []string{admin.ID, alice.ID, bob.ID},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Clubs().CreateClub(ctx, club))

	election := domain.Election{
		ID:        idx.New().String(),
		ClubID:    club.ID,
		Title:     "Club President 2025",
		Status:    domain.StatusActive,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
		Positions: []domain.Position{{
			ID:            "pres-" + idx.New().String(),
			Title:         "President",
			MaxSelections: 1,
			Candidates: []domain.Candidate{
				{UserID: alice.ID, Statement: "more chess"},
				{UserID: bob.ID},
			},
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Elections().CreateElection(ctx, election))
	positionID := election.Positions[0].ID

	t.Run("election loads with candidate names", func(t *testing.T) {
		got, err := s.Elections().GetElectionByID(ctx, election.ID)
		require.NoError(t, err)
		require.Len(t, got.Positions, 1)
		require.Equal(t, alice.Name, got.Positions[0].Candidates[0].Name)
		require.True(t, got.EndTime.Equal(election.EndTime))
	})

	cast := func(voter domain.User, candidate string) error {
		return s.WithTx(ctx, func(tx store.Tx) error {
			b := domain.Ballot{
				ID:         idx.New().String(),
				ElectionID: election.ID,
				Selections: []domain.Selection{{PositionID: positionID, CandidateID: candidate}},
				CreatedAt:  now,
			}
			if err := tx.Ballots().CreateBallot(ctx, b); err != nil {
				return err
			}
			return tx.Ballots().RecordVote(ctx, voter.ID, election.ID, now)
		})
	}

	t.Run("second vote is rejected and leaves no ballot", func(t *testing.T) {
		require.NoError(t, cast(admin, alice.ID))
		require.NoError(t, cast(alice, alice.ID))
		require.ErrorIs(t, cast(alice, bob.ID), store.ErrAlreadyExists)

		n, err := s.Ballots().CountBallots(ctx, election.ID)
		require.NoError(t, err)
		require.Equal(t, 2, n)

		counts, err := s.Ballots().Tally(ctx, election.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.TallyCount{{PositionID: positionID, CandidateID: alice.ID, Count: 2}}, counts)

		faculties, err := s.Ballots().VoterFaculties(ctx, election.ID)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"Science", "Arts"}, faculties)
	})

	t.Run("elapsed elections close", func(t *testing.T) {
		n, err := s.Elections().CloseElapsed(ctx, now.Add(2*time.Hour))
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		got, err := s.Elections().GetElectionByID(ctx, election.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusClosed, got.Status)
	})

	t.Run("club delete cascades in order", func(t *testing.T) {
		require.Error(t, s.Clubs().DeleteClub(ctx, club.ID), "elections still reference the club")

		require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
			if _, err := tx.Ballots().DeleteBallotsByClub(ctx, club.ID); err != nil {
				return err
			}
			if _, err := tx.Elections().DeleteElectionsByClub(ctx, club.ID); err != nil {
				return err
			}
			return tx.Clubs().DeleteClub(ctx, club.ID)
		}))

		_, err := s.Elections().GetElectionByID(ctx, election.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		voted, err := s.Ballots().HasVoted(ctx, alice.ID, election.ID)
		require.NoError(t, err)
		require.False(t, voted)
	})
}
