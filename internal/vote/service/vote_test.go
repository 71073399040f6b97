package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestCastVote(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	admin := f.user("s1", "Science")
	voter := f.user("s2", "Arts")
	outsider := f.user("s3", "Law")
	x := f.user("x1", "Science")
	y := f.user("y1", "Arts")
	club := f.club(admin, voter, x, y)
	e := f.election(club, []domain.User{x, y})
	pres := e.Positions[0]

	t.Run("unknown election", func(t *testing.T) {
		err := f.votes.CastVote(f.ctx, voter.Caller(), "missing", pick(pres, x))
		require.ErrorIs(t, err, ErrElectionNotFound)
	})

	t.Run("not active beats every later check", func(t *testing.T) {
		draft := f.election(club, []domain.User{x})
		draft.Status = domain.StatusDraft
		require.NoError(t, f.store.Elections().UpdateElection(f.ctx, draft))

		err := f.votes.CastVote(f.ctx, outsider.Caller(), draft.ID, nil)
		require.ErrorIs(t, err, ErrElectionNotActive)
	})

	t.Run("empty selections are checked before membership", func(t *testing.T) {
		err := f.votes.CastVote(f.ctx, outsider.Caller(), e.ID, nil)
		require.ErrorIs(t, err, ErrNoSelections)
	})

	t.Run("selection shape", func(t *testing.T) {
		err := f.votes.CastVote(f.ctx, voter.Caller(), e.ID, []domain.Selection{{PositionID: pres.ID, CandidateID: outsider.ID}})
		require.ErrorIs(t, err, ErrInvalidSelection)

		err = f.votes.CastVote(f.ctx, voter.Caller(), e.ID, pick(pres, x, y))
		require.ErrorIs(t, err, ErrInvalidSelection, "president allows one pick")

		err = f.votes.CastVote(f.ctx, voter.Caller(), e.ID, []domain.Selection{{PositionID: "ghost", CandidateID: x.ID}})
		require.ErrorIs(t, err, ErrInvalidSelection)
		require.Zero(t, f.ballotCount(e.ID))
	})

	t.Run("non-member is not eligible and leaves no ballot", func(t *testing.T) {
		err := f.votes.CastVote(f.ctx, outsider.Caller(), e.ID, pick(pres, x))
		require.ErrorIs(t, err, ErrNotEligible)
		require.Zero(t, f.ballotCount(e.ID))
	})

	t.Run("double vote conflicts and keeps one ballot", func(t *testing.T) {
		require.NoError(t, f.votes.CastVote(f.ctx, voter.Caller(), e.ID, pick(pres, x)))
		err := f.votes.CastVote(f.ctx, voter.Caller(), e.ID, pick(pres, y))
		require.ErrorIs(t, err, ErrAlreadyVoted)
		require.Equal(t, 1, f.ballotCount(e.ID))

		voted, err := f.store.Ballots().VotedElections(f.ctx, voter.ID)
		require.NoError(t, err)
		require.Equal(t, []string{e.ID}, voted)
	})

	t.Run("cast at exactly end time is rejected", func(t *testing.T) {
		saved := f.now
		defer func() { f.now = saved }()

		f.now = e.EndTime
		err := f.votes.CastVote(f.ctx, admin.Caller(), e.ID, pick(pres, x))
		require.ErrorIs(t, err, ErrElectionNotActive)
	})
}

func TestCastVoteConcurrentSubmissions(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	admin := f.user("s1", "Science")
	x := f.user("x1", "Science")
	club := f.club(admin, x)
	e := f.election(club, []domain.User{x})

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- f.votes.CastVote(f.ctx, admin.Caller(), e.ID, pick(e.Positions[0], x))
		}()
	}
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrAlreadyVoted):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, attempts-1, conflicts)
	require.Equal(t, 1, f.ballotCount(e.ID))
}

func TestCastVoteRollsBack(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	admin := f.user("s1", "Science")
	x := f.user("x1", "Science")
	club := f.club(admin, x)
	e := f.election(club, []domain.User{x})

	t.Run("voted-set primary key wins a stale read", func(t *testing.T) {
		require.NoError(t, f.store.Ballots().RecordVote(f.ctx, admin.ID, e.ID, f.now))

		svc := &VoteService{Store: faultyStore{Store: f.store, hideVotes: true}, Clock: f.votes.Clock}
		err := svc.CastVote(f.ctx, admin.Caller(), e.ID, pick(e.Positions[0], x))
		require.ErrorIs(t, err, ErrAlreadyVoted)
		require.Zero(t, f.ballotCount(e.ID), "ballot insert must roll back")
	})

	t.Run("other write failures are not recorded", func(t *testing.T) {
		svc := &VoteService{Store: faultyStore{Store: f.store, recordErr: errors.New("disk I/O error")}, Clock: f.votes.Clock}
		err := svc.CastVote(f.ctx, x.Caller(), e.ID, pick(e.Positions[0], x))
		require.ErrorIs(t, err, ErrVoteNotRecorded)
		require.Zero(t, f.ballotCount(e.ID))

		voted, err := f.store.Ballots().HasVoted(f.ctx, x.ID, e.ID)
		require.NoError(t, err)
		require.False(t, voted)
	})

	t.Run("positions replaced before the transaction", func(t *testing.T) {
		ballot := f.election(club, []domain.User{x})
		stale := pick(ballot.Positions[0], x)

		replaced := ballot
		replaced.Positions = []domain.Position{{
			ID:            idx.New().String(),
			Title:         "Treasurer",
			MaxSelections: 1,
			Candidates:    []domain.Candidate{{UserID: x.ID}},
		}}
		racing := faultyStore{Store: f.store, beforeTx: func() {
			require.NoError(t, f.store.Elections().UpdateElection(f.ctx, replaced))
		}}

		svc := &VoteService{Store: racing, Clock: f.votes.Clock}
		err := svc.CastVote(f.ctx, x.Caller(), ballot.ID, stale)
		require.ErrorIs(t, err, ErrInvalidSelection)
		require.Zero(t, f.ballotCount(ballot.ID))

		voted, err := f.store.Ballots().HasVoted(f.ctx, x.ID, ballot.ID)
		require.NoError(t, err)
		require.False(t, voted)
	})
}

func TestResults(t *testing.T) {
	t.Parallel()

	t.Run("club president scenario", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		admin := f.user("s1", "Science")
		v1 := f.user("s2", "Arts")
		v2 := f.user("s3", "Law")
		x := f.user("x1", "Science")
		y := f.user("y1", "Arts")
		club := f.club(admin, v1, v2, x, y)
		e := f.election(club, []domain.User{y, x})
		pres := e.Positions[0]

		require.NoError(t, f.votes.CastVote(f.ctx, v1.Caller(), e.ID, pick(pres, x)))
		require.NoError(t, f.votes.CastVote(f.ctx, v2.Caller(), e.ID, pick(pres, x)))
		require.NoError(t, f.votes.CastVote(f.ctx, admin.Caller(), e.ID, pick(pres, y)))

		_, err := f.votes.Results(f.ctx, e.ID)
		require.ErrorIs(t, err, ErrResultsNotAvailable)

		f.now = e.EndTime
		res, err := f.votes.Results(f.ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, "Club President 2025", res.ElectionTitle)
		require.Equal(t, club.Name, res.ClubName)
		require.Equal(t, 3, res.TotalBallotsCast)
		require.Len(t, res.Positions, 1)
		require.Equal(t, []domain.CandidateResult{
			{CandidateID: x.ID, Name: x.Name, Votes: 2},
			{CandidateID: y.ID, Name: y.Name, Votes: 1},
		}, res.Positions[0].Candidates)

		again, err := f.votes.Results(f.ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, res, again)
	})

	t.Run("per-position sums match ballots choosing that position", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		admin := f.user("s1", "Science")
		a := f.user("a1", "")
		b := f.user("b1", "")
		c := f.user("c1", "")
		club := f.club(admin, a, b, c)
		e := f.election(club, []domain.User{a, b}, []domain.User{b, c})
		first, second := e.Positions[0], e.Positions[1]

		require.NoError(t, f.votes.CastVote(f.ctx, a.Caller(), e.ID, pick(first, a)))
		require.NoError(t, f.votes.CastVote(f.ctx, b.Caller(), e.ID, append(pick(first, b), pick(second, c)...)))
		require.NoError(t, f.votes.CastVote(f.ctx, c.Caller(), e.ID, pick(second, b)))

		closed := e
		closed.Status = domain.StatusClosed
		require.NoError(t, f.store.Elections().UpdateElection(f.ctx, closed))

		res, err := f.votes.Results(f.ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, 3, res.TotalBallotsCast)

		sum := func(p domain.PositionResult) int {
			total := 0
			for _, c := range p.Candidates {
				total += c.Votes
			}
			return total
		}
		require.Equal(t, 2, sum(res.Positions[0]))
		require.Equal(t, 2, sum(res.Positions[1]))
	})

	t.Run("unknown election", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		_, err := f.votes.Results(f.ctx, "missing")
		require.ErrorIs(t, err, ErrElectionNotFound)
	})
}
