package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/stretchr/testify/require"
)

func registration(studentID string) domain.Registration {
	return domain.Registration{
		StudentID:   studentID,
		Email:       " " + studentID + "@Uni.Test ",
		Password:    "correct horse",
		Name:        "Ada " + studentID,
		Faculty:     "Science",
		YearOfStudy: 2,
	}
}

func TestUserRegisterAndLogin(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.now = time.Now().UTC()

	sess, err := f.users.Register(f.ctx, registration("z100"))
	require.NoError(t, err)
	require.Equal(t, "z100@uni.test", sess.User.Email)
	require.Equal(t, []domain.Role{domain.RoleVoter}, sess.User.Roles)
	require.NotEqual(t, "correct horse", sess.User.PasswordHash)
	require.Equal(t, "Bearer", sess.Token.TokenType)

	t.Run("token carries identity and voter scopes", func(t *testing.T) {
		claims, err := f.keys.Verifier.Verify(sess.Token.Token)
		require.NoError(t, err)
		require.Equal(t, sess.User.ID, claims.Subject)
		require.Equal(t, "z100", claims.StudentID)
		require.True(t, claims.HasScope(domain.ScopeVoteCast))
		require.False(t, claims.HasScope(domain.ScopeAdminWrite))
	})

	t.Run("duplicate student id", func(t *testing.T) {
		_, err := f.users.Register(f.ctx, registration("z100"))
		require.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("invalid registration", func(t *testing.T) {
		reg := registration("z101")
		reg.Password = "short"
		reg.Email = "nope"
		_, err := f.users.Register(f.ctx, reg)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "password")
		require.Contains(t, verr.Fields, "email")
	})

	t.Run("login", func(t *testing.T) {
		got, err := f.users.Login(f.ctx, " z100 ", "correct horse")
		require.NoError(t, err)
		require.Equal(t, sess.User.ID, got.User.ID)
		require.NotEmpty(t, got.Token.Token)
	})

	t.Run("wrong password and unknown user look the same", func(t *testing.T) {
		_, err := f.users.Login(f.ctx, "z100", "wrong password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = f.users.Login(f.ctx, "nobody", "correct horse")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = f.users.Login(f.ctx, "", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserProfile(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	u := f.user("s1", "Arts")

	t.Run("partial update", func(t *testing.T) {
		got, err := f.users.UpdateProfile(f.ctx, u.ID, domain.UserUpdate{Faculty: ptr(" Engineering "), YearOfStudy: ptr(3)})
		require.NoError(t, err)
		require.Equal(t, "Engineering", got.Faculty)
		require.Equal(t, 3, got.YearOfStudy)
		require.Equal(t, u.Name, got.Name)
	})

	t.Run("empty update", func(t *testing.T) {
		_, err := f.users.UpdateProfile(f.ctx, u.ID, domain.UserUpdate{})
		require.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := f.users.UpdateProfile(f.ctx, u.ID, domain.UserUpdate{Name: ptr("  ")})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.users.Profile(f.ctx, "missing")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserSearch(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.user("z5001", "")
	f.user("z5002", "")
	f.user("x9000", "")

	got, err := f.users.Search(f.ctx, "z50")
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = f.users.Search(f.ctx, " z ")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestUserAdministration(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	root := f.sysadmin()
	admin := f.user("s1", "")
	member := f.user("s2", "")
	club := f.club(admin, member)

	t.Run("list requires system admin", func(t *testing.T) {
		_, err := f.users.List(f.ctx, admin.Caller())
		require.ErrorIs(t, err, ErrForbidden)

		all, err := f.users.List(f.ctx, root.Caller())
		require.NoError(t, err)
		require.Len(t, all, 3)
	})

	t.Run("delete requires system admin", func(t *testing.T) {
		require.ErrorIs(t, f.users.Delete(f.ctx, admin.Caller(), member.ID), ErrForbidden)
	})

	t.Run("sole club admin cannot be deleted", func(t *testing.T) {
		err := f.users.Delete(f.ctx, root.Caller(), admin.ID)
		require.ErrorIs(t, err, ErrSoleClubAdmin)
		require.ErrorContains(t, err, club.ID)
	})

	t.Run("member is removed from clubs", func(t *testing.T) {
		require.NoError(t, f.users.Delete(f.ctx, root.Caller(), member.ID))

		got, err := f.clubs.Get(f.ctx, club.ID)
		require.NoError(t, err)
		require.Equal(t, []string{admin.ID}, got.Members)

		require.ErrorIs(t, f.users.Delete(f.ctx, root.Caller(), member.ID), ErrUserNotFound)
	})
}
