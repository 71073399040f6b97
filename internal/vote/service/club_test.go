package service

import (
	"testing"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestClubCreate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	root := f.sysadmin()
	helper := f.user("s1", "")
	member := f.user("s2", "")

	t.Run("requires system admin", func(t *testing.T) {
		_, err := f.clubs.Create(f.ctx, helper.Caller(), NewClub{Name: "Chess"})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("creator and extra admins become members", func(t *testing.T) {
		club, err := f.clubs.Create(f.ctx, root.Caller(), NewClub{
			Name:    "  Chess Club ",
			Admins:  []string{helper.ID, root.ID},
			Members: []string{member.ID},
		})
		require.NoError(t, err)
		require.Equal(t, "Chess Club", club.Name)
		require.ElementsMatch(t, []string{root.ID, helper.ID}, club.Admins)
		require.ElementsMatch(t, []string{root.ID, helper.ID, member.ID}, club.Members)

		promoted, err := f.users.Profile(f.ctx, helper.ID)
		require.NoError(t, err)
		require.True(t, promoted.HasRole(domain.RoleClubAdmin))
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := f.clubs.Create(f.ctx, root.Caller(), NewClub{Name: "Chess Club"})
		require.ErrorIs(t, err, ErrClubNameTaken)
	})

	t.Run("unknown admin", func(t *testing.T) {
		_, err := f.clubs.Create(f.ctx, root.Caller(), NewClub{Name: "Go Club", Admins: []string{"ghost"}})
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := f.clubs.Create(f.ctx, root.Caller(), NewClub{Name: "   "})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestClubUpdate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	admin := f.user("s1", "")
	other := f.user("s2", "")
	club := f.club(admin, other)
	taken := f.club(admin)

	t.Run("club admin may update", func(t *testing.T) {
		got, err := f.clubs.Update(f.ctx, admin.Caller(), club.ID, domain.ClubUpdate{Description: ptr("Weekly games")})
		require.NoError(t, err)
		require.Equal(t, "Weekly games", got.Description)
		require.Equal(t, club.Name, got.Name)
	})

	t.Run("members may not", func(t *testing.T) {
		_, err := f.clubs.Update(f.ctx, other.Caller(), club.ID, domain.ClubUpdate{Name: ptr("Mine")})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("empty update", func(t *testing.T) {
		_, err := f.clubs.Update(f.ctx, admin.Caller(), club.ID, domain.ClubUpdate{})
		require.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("name clash", func(t *testing.T) {
		_, err := f.clubs.Update(f.ctx, admin.Caller(), club.ID, domain.ClubUpdate{Name: ptr(taken.Name)})
		require.ErrorIs(t, err, ErrClubNameTaken)
	})

	t.Run("unknown club", func(t *testing.T) {
		_, err := f.clubs.Update(f.ctx, admin.Caller(), "missing", domain.ClubUpdate{Name: ptr("x")})
		require.ErrorIs(t, err, ErrClubNotFound)
	})
}

func TestClubDeleteCascades(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	root := f.sysadmin()
	admin := f.user("s1", "")
	voter := f.user("s2", "")
	club := f.club(admin, voter)
	e := f.election(club, []domain.User{admin, voter})

	require.NoError(t, f.votes.CastVote(f.ctx, admin.Caller(), e.ID, pick(e.Positions[0], admin)))
	require.NoError(t, f.votes.CastVote(f.ctx, voter.Caller(), e.ID, pick(e.Positions[0], admin)))
	require.Equal(t, 2, f.ballotCount(e.ID))

	require.ErrorIs(t, f.clubs.Delete(f.ctx, admin.Caller(), club.ID), ErrForbidden)
	require.NoError(t, f.clubs.Delete(f.ctx, root.Caller(), club.ID))

	_, err := f.clubs.Get(f.ctx, club.ID)
	require.ErrorIs(t, err, ErrClubNotFound)
	_, err = f.elections.Get(f.ctx, e.ID)
	require.ErrorIs(t, err, ErrElectionNotFound)
	require.Zero(t, f.ballotCount(e.ID))

	voted, err := f.store.Ballots().HasVoted(f.ctx, voter.ID, e.ID)
	require.NoError(t, err)
	require.False(t, voted)

	require.ErrorIs(t, f.clubs.Delete(f.ctx, root.Caller(), club.ID), ErrClubNotFound)
}

func TestClubMembership(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	admin := f.user("s1", "")
	member := f.user("s2", "")
	stranger := f.user("s3", "")
	club := f.club(admin)

	t.Run("add member is idempotent", func(t *testing.T) {
		for range 2 {
			got, err := f.clubs.AddMember(f.ctx, admin.Caller(), club.ID, member.ID)
			require.NoError(t, err)
			require.ElementsMatch(t, []string{admin.ID, member.ID}, got.Members)
		}
	})

	t.Run("only admins manage members", func(t *testing.T) {
		_, err := f.clubs.AddMember(f.ctx, member.Caller(), club.ID, stranger.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.clubs.AddMember(f.ctx, admin.Caller(), club.ID, "ghost")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("last admin cannot be removed", func(t *testing.T) {
		_, err := f.clubs.RemoveMember(f.ctx, admin.Caller(), club.ID, admin.ID)
		require.ErrorIs(t, err, ErrLastAdmin)
	})

	t.Run("removing a stranger", func(t *testing.T) {
		_, err := f.clubs.RemoveMember(f.ctx, admin.Caller(), club.ID, stranger.ID)
		require.ErrorIs(t, err, ErrNotMember)
	})

	t.Run("promote then step down", func(t *testing.T) {
		got, err := f.clubs.AddAdmin(f.ctx, admin.Caller(), club.ID, member.ID)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{admin.ID, member.ID}, got.Admins)

		promoted, err := f.users.Profile(f.ctx, member.ID)
		require.NoError(t, err)
		require.True(t, promoted.HasRole(domain.RoleClubAdmin))

		got, err = f.clubs.RemoveMember(f.ctx, member.Caller(), club.ID, admin.ID)
		require.NoError(t, err)
		require.Equal(t, []string{member.ID}, got.Admins)
		require.Equal(t, []string{member.ID}, got.Members)
	})

	t.Run("managed clubs", func(t *testing.T) {
		managed, err := f.clubs.Managed(f.ctx, member.Caller())
		require.NoError(t, err)
		require.Len(t, managed, 1)
		require.Equal(t, club.ID, managed[0].ID)

		managed, err = f.clubs.Managed(f.ctx, admin.Caller())
		require.NoError(t, err)
		require.Empty(t, managed)
	})
}
