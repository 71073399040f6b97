package votesdk

import (
	"time"

	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
)

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-validation error response.
type ErrorResponse struct {
	// Error is a machine-readable code (e.g., "not_found", "already_voted")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned when request fields fail validation.
type ValidationErrorResponse struct {
	// Code is always "validation_error"
	Code string `json:"code"`

	Message string `json:"message"`

	// Details maps field names to problems (e.g., "positions[0].title")
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// User Types
// ============================================================================

// RegisterRequest creates a voter account.
type RegisterRequest struct {
	StudentID   string `json:"studentId"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Faculty     string `json:"faculty,omitempty"`
	Gender      string `json:"gender,omitempty"`
	YearOfStudy int    `json:"yearOfStudy,omitempty"`
}

type LoginRequest struct {
	StudentID string `json:"studentId"`
	Password  string `json:"password"`
}

// AuthResponse is returned by register, login and bootstrap.
type AuthResponse struct {
	// Token is a signed EdDSA JWT to send as "Authorization: Bearer {token}"
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresIn int64     `json:"expiresIn"` // seconds
	ExpiresAt time.Time `json:"expiresAt"`

	User UserResponse `json:"user"`
}

// UserResponse is a user's public profile. Password hashes never leave the
// server.
type UserResponse struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Faculty     string    `json:"faculty,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	YearOfStudy int       `json:"yearOfStudy,omitempty"`
	Roles       []string  `json:"roles"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UpdateProfileRequest is a partial update; omitted fields are unchanged.
type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	Faculty     *string `json:"faculty,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	YearOfStudy *int    `json:"yearOfStudy,omitempty"`
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ============================================================================
// Club Types
// ============================================================================

type ClubResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	Admins      []string  `json:"admins"`
	Members     []string  `json:"members"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ListClubsResponse struct {
	Clubs []ClubResponse `json:"clubs"`
}

// CreateClubRequest creates a club. The caller becomes its first admin;
// admins are always members too.
type CreateClubRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	LogoURL     string   `json:"logoUrl,omitempty"`
	Admins      []string `json:"admins,omitempty"`
	Members     []string `json:"members,omitempty"`
}

// UpdateClubRequest is a partial update; omitted fields are unchanged.
type UpdateClubRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logoUrl,omitempty"`
}

// MemberRequest names the user to add as a member or admin.
type MemberRequest struct {
	UserID string `json:"userId"`
}

// ============================================================================
// Election Types
// ============================================================================

type CandidateRequest struct {
	CandidateID string `json:"candidateId"`
	Statement   string `json:"statement,omitempty"`
}

// PositionRequest is one office on the ballot. ID may be set to keep a
// position's identity across updates.
type PositionRequest struct {
	ID            string             `json:"id,omitempty"`
	Title         string             `json:"title"`
	MaxSelections int                `json:"maxSelections,omitempty"`
	Candidates    []CandidateRequest `json:"candidates"`
}

// CreateElectionRequest creates an election. Status defaults to draft.
type CreateElectionRequest struct {
	ClubID      string            `json:"clubId"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Status      string            `json:"status,omitempty"`
	StartTime   time.Time         `json:"startTime"`
	EndTime     time.Time         `json:"endTime"`
	Positions   []PositionRequest `json:"positions"`
}

// UpdateElectionRequest is a partial update. The owning club cannot change.
type UpdateElectionRequest struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Status      *string            `json:"status,omitempty"`
	StartTime   *time.Time         `json:"startTime,omitempty"`
	EndTime     *time.Time         `json:"endTime,omitempty"`
	Positions   *[]PositionRequest `json:"positions,omitempty"`
}

type CandidateResponse struct {
	CandidateID string `json:"candidateId"`
	Name        string `json:"name"`
	Statement   string `json:"statement,omitempty"`
}

type PositionResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	MaxSelections int                 `json:"maxSelections"`
	Candidates    []CandidateResponse `json:"candidates"`
}

type ElectionResponse struct {
	ID          string             `json:"id"`
	ClubID      string             `json:"clubId"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Status      string             `json:"status"`
	StartTime   time.Time          `json:"startTime"`
	EndTime     time.Time          `json:"endTime"`
	Positions   []PositionResponse `json:"positions"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type ListElectionsResponse struct {
	Elections []ElectionResponse `json:"elections"`
}

// AnalyticsResponse reports turnout. ParticipationRate is a percentage and
// is 0 when the club has no members.
type AnalyticsResponse struct {
	ElectionID          string         `json:"electionId"`
	TotalEligibleVoters int            `json:"totalEligibleVoters"`
	TotalVotersWhoVoted int            `json:"totalVotersWhoVoted"`
	ParticipationRate   float64        `json:"participationRate"`
	VotesByFaculty      map[string]int `json:"votesByFaculty"`
}

// ============================================================================
// Vote Types
// ============================================================================

type SelectionRequest struct {
	PositionID  string `json:"positionId"`
	CandidateID string `json:"candidateId"`
}

type CastVoteRequest struct {
	Selections []SelectionRequest `json:"selections"`
}

type CastVoteResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CandidateResult struct {
	CandidateID string `json:"candidateId"`
	Name        string `json:"name"`
	VoteCount   int    `json:"voteCount"`
}

type PositionResult struct {
	PositionID    string            `json:"positionId"`
	PositionTitle string            `json:"positionTitle"`
	Candidates    []CandidateResult `json:"candidates"`
}

// ResultsResponse is the tally of a finished election. Candidates within a
// position are ordered by vote count, highest first.
type ResultsResponse struct {
	ElectionID       string           `json:"electionId"`
	ElectionTitle    string           `json:"electionTitle"`
	ClubName         string           `json:"clubName"`
	TotalBallotsCast int              `json:"totalBallotsCast"`
	Results          []PositionResult `json:"results"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// JWKSResponse contains the public keys used to verify access tokens.
type JWKSResponse jwtx.JWKS
