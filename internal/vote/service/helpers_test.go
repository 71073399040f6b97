package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store/drivers/sqlite"
	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
	"github.com/aussiebroadwan/ballotbox/pkg/idx"
	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "ballotbox-test"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "vote-service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))
	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// fixture wires every service to one in-memory store and a settable clock.
type fixture struct {
	t     *testing.T
	ctx   context.Context
	store *sqlite.Store
	now   time.Time
	keys  *jwtx.KeyManager

	votes     *VoteService
	clubs     *ClubService
	elections *ElectionService
	users     *UserService
	tokens    *TokenService
	bootstrap *BootstrapService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	keys, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer})
	require.NoError(t, err)

	f := &fixture{
		t:     t,
		ctx:   context.Background(),
		store: s,
		now:   time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		keys:  keys,
	}
	clock := Clock(func() time.Time { return f.now })

	f.tokens = &TokenService{KeyManager: keys, Issuer: testIssuer, AccessTTL: time.Hour, Clock: clock}
	f.votes = &VoteService{Store: s, Clock: clock}
	f.clubs = &ClubService{Store: s, Clock: clock}
	f.elections = &ElectionService{Store: s, Clock: clock}
	f.users = &UserService{Store: s, Tokens: f.tokens, Clock: clock}
	f.bootstrap = &BootstrapService{Store: s, Tokens: f.tokens, Clock: clock, Token: "bootstrap-secret"}
	return f
}

// user inserts an account directly, bypassing registration.
func (f *fixture) user(studentID, faculty string, roles ...domain.Role) domain.User {
	f.t.Helper()
	if len(roles) == 0 {
		roles = []domain.Role{domain.RoleVoter}
	}
	u := domain.User{
		ID:           idx.New().String(),
		StudentID:    studentID,
		Email:        studentID + "@uni.test",
		Name:         "Student " + studentID,
		PasswordHash: "x",
		Faculty:      faculty,
		Roles:        roles,
		CreatedAt:    f.now,
		UpdatedAt:    f.now,
	}
	require.NoError(f.t, f.store.Users().CreateUser(f.ctx, u))
	return u
}

func (f *fixture) sysadmin() domain.User {
	f.t.Helper()
	return f.user("admin-"+idx.New().String(), "", domain.RoleVoter, domain.RoleSystemAdmin)
}

// club inserts a club administered by admin with the given extra members.
func (f *fixture) club(admin domain.User, members ...domain.User) domain.Club {
	f.t.Helper()
	ids := []string{admin.ID}
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	c := domain.Club{
		ID:        idx.New().String(),
		Name:      "Club " + idx.New().String(),
		Admins:    []string{admin.ID},
		Members:   ids,
		CreatedAt: f.now,
		UpdatedAt: f.now,
	}
	require.NoError(f.t, f.store.Clubs().CreateClub(f.ctx, c))
	return c
}

// election inserts an active election running one hour either side of now,
// with one position per entry of candidates.
func (f *fixture) election(club domain.Club, candidates ...[]domain.User) domain.Election {
	f.t.Helper()
	e := domain.Election{
		ID:        idx.New().String(),
		ClubID:    club.ID,
		Title:     "Club President 2025",
		Status:    domain.StatusActive,
		StartTime: f.now.Add(-time.Hour),
		EndTime:   f.now.Add(time.Hour),
		CreatedAt: f.now,
		UpdatedAt: f.now,
	}
	for i, cands := range candidates {
		p := domain.Position{ID: idx.New().String(), Title: "Position " + string(rune('A'+i)), MaxSelections: 1}
		for _, c := range cands {
			p.Candidates = append(p.Candidates, domain.Candidate{UserID: c.ID})
		}
		e.Positions = append(e.Positions, p)
	}
	require.NoError(f.t, f.store.Elections().CreateElection(f.ctx, e))

	got, err := f.store.Elections().GetElectionByID(f.ctx, e.ID)
	require.NoError(f.t, err)
	return got
}

func (f *fixture) ballotCount(electionID string) int {
	f.t.Helper()
	n, err := f.store.Ballots().CountBallots(f.ctx, electionID)
	require.NoError(f.t, err)
	return n
}

func pick(p domain.Position, candidates ...domain.User) []domain.Selection {
	out := make([]domain.Selection, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, domain.Selection{PositionID: p.ID, CandidateID: c.ID})
	}
	return out
}

// faultyStore wraps a real store to simulate a stale voted-set read, a
// failing voted-set write, or a concurrent change committed just before the
// cast transaction opens.
type faultyStore struct {
	store.Store
	hideVotes bool
	recordErr error
	beforeTx  func()
}

func (s faultyStore) Ballots() store.Ballots {
	return faultyBallots{Ballots: s.Store.Ballots(), f: s}
}

func (s faultyStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	if s.beforeTx != nil {
		s.beforeTx()
	}
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(faultyTx{txBase: tx, f: s})
	})
}

// txBase renames the embedded field; a field called Tx would shadow the
// Tx method every store.Tx carries.
type txBase = store.Tx

type faultyTx struct {
	txBase
	f faultyStore
}

func (t faultyTx) Ballots() store.Ballots {
	return faultyBallots{Ballots: t.txBase.Ballots(), f: t.f}
}

type faultyBallots struct {
	store.Ballots
	f faultyStore
}

func (b faultyBallots) HasVoted(ctx context.Context, userID, electionID string) (bool, error) {
	if b.f.hideVotes {
		return false, nil
	}
	return b.Ballots.HasVoted(ctx, userID, electionID)
}

func (b faultyBallots) RecordVote(ctx context.Context, userID, electionID string, at time.Time) error {
	if b.f.recordErr != nil {
		return b.f.recordErr
	}
	return b.Ballots.RecordVote(ctx, userID, electionID, at)
}
