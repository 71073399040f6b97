package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Repositories hang off it so the same code runs inside
// and outside a transaction.
type Store interface {
	Users() Users
	Clubs() Clubs
	Elections() Elections
	Ballots() Ballots

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser fails with ErrAlreadyExists on a duplicate student id or email.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByStudentID(ctx context.Context, studentID string) (domain.User, error)

	// ListUsers returns every user ordered by name.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// SearchUsers matches q case-insensitively against name or student id.
	SearchUsers(ctx context.Context, q string, limit int) ([]domain.User, error)

	// UpdateUserProfile writes name, faculty, gender and year of study.
	UpdateUserProfile(ctx context.Context, u domain.User) error

	UpdateUserRoles(ctx context.Context, userID string, roles []domain.Role) error

	// DeleteUser cascades to club admin/member rows and the voted-set.
	DeleteUser(ctx context.Context, userID string) error

	IsEmpty(ctx context.Context) (bool, error)
}

type Clubs interface {
	// CreateClub inserts the club together with its admin and member sets.
	CreateClub(ctx context.Context, c domain.Club) error

	GetClubByID(ctx context.Context, id string) (domain.Club, error)

	// ListClubs returns every club ordered by name.
	ListClubs(ctx context.Context) ([]domain.Club, error)

	// ListClubsByAdmin returns the clubs userID administers, ordered by name.
	ListClubsByAdmin(ctx context.Context, userID string) ([]domain.Club, error)

	// UpdateClub writes name, description and logo url.
	UpdateClub(ctx context.Context, c domain.Club) error

	// DeleteClub fails while elections still reference the club.
	DeleteClub(ctx context.Context, id string) error

	// AddMember and AddAdmin are idempotent.
	AddMember(ctx context.Context, clubID, userID string) error
	AddAdmin(ctx context.Context, clubID, userID string) error

	// RemoveMember drops the user from both the member and admin sets.
	RemoveMember(ctx context.Context, clubID, userID string) error

	CountMembers(ctx context.Context, clubID string) (int, error)

	// SoleAdminClubs lists clubs where userID is the only admin.
	SoleAdminClubs(ctx context.Context, userID string) ([]string, error)
}

type Elections interface {
	// CreateElection inserts the election with its positions and candidates.
	CreateElection(ctx context.Context, e domain.Election) error

	// GetElectionByID loads the election with positions and candidates in
	// ballot order, candidate names resolved from users.
	GetElectionByID(ctx context.Context, id string) (domain.Election, error)

	// ListElectionsByStatus orders by end time, soonest first.
	ListElectionsByStatus(ctx context.Context, status domain.Status) ([]domain.Election, error)

	// ListElectionsByClub orders by start time, newest first.
	ListElectionsByClub(ctx context.Context, clubID string) ([]domain.Election, error)

	// UpdateElection writes metadata and replaces positions and candidates.
	UpdateElection(ctx context.Context, e domain.Election) error

	// DeleteElection fails while ballots still reference the election.
	DeleteElection(ctx context.Context, id string) error

	// DeleteElectionsByClub removes every election of clubID.
	DeleteElectionsByClub(ctx context.Context, clubID string) (int64, error)

	// CloseElapsed flips active elections whose end time is at or before now
	// to closed and returns how many changed.
	CloseElapsed(ctx context.Context, now time.Time) (int64, error)
}

type Ballots interface {
	// CreateBallot inserts the ballot and its selections.
	CreateBallot(ctx context.Context, b domain.Ballot) error

	// RecordVote adds electionID to the user's voted-set. A second record
	// for the same pair fails with ErrAlreadyExists.
	RecordVote(ctx context.Context, userID, electionID string, at time.Time) error

	HasVoted(ctx context.Context, userID, electionID string) (bool, error)

	// VotedElections lists the elections userID has voted in.
	VotedElections(ctx context.Context, userID string) ([]string, error)

	CountBallots(ctx context.Context, electionID string) (int, error)

	// Tally counts selections grouped by (position, candidate).
	Tally(ctx context.Context, electionID string) ([]domain.TallyCount, error)

	// VoterFaculties returns the faculty of every user who voted.
	VoterFaculties(ctx context.Context, electionID string) ([]string, error)

	DeleteBallotsByElection(ctx context.Context, electionID string) (int64, error)
	DeleteBallotsByClub(ctx context.Context, clubID string) (int64, error)
}
