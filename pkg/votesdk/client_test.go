package votesdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientTokenHandling(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/login":
			var req LoginRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(AuthResponse{Token: "tok-" + req.StudentID, TokenType: "Bearer"})
		case "/api/users/me":
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(UserResponse{ID: "u1", StudentID: "z1"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL + "/")
	ctx := context.Background()

	_, err := c.GetProfile(ctx)
	require.ErrorIs(t, err, errNoToken)

	auth, err := c.Login(ctx, LoginRequest{StudentID: "z1", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "tok-z1", auth.Token)
	require.Equal(t, "tok-z1", c.Token())

	me, err := c.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "u1", me.ID)
	require.Equal(t, "Bearer tok-z1", gotAuth)

	other := c.WithToken("other")
	require.Equal(t, "other", other.Token())
	require.Equal(t, "tok-z1", c.Token())
}

func TestClientErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/vote/election/e1/cast":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: ErrorCodeAlreadyVoted, ErrorDescription: "already voted in this election"})
		case "/api/elections":
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ValidationErrorResponse{
				Code:    ErrorCodeValidation,
				Message: "validation failed for some fields",
				Details: map[string]string{"title": "Election title is required."},
			})
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL).WithToken("t")
	ctx := context.Background()

	t.Run("error body", func(t *testing.T) {
		err := c.CastVote(ctx, "e1", CastVoteRequest{})
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusConflict, apiErr.StatusCode)
		require.Equal(t, ErrorCodeAlreadyVoted, apiErr.Code)
	})

	t.Run("validation body", func(t *testing.T) {
		_, err := c.CreateElection(ctx, CreateElectionRequest{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, ErrorCodeValidation, apiErr.Code)
		require.Equal(t, "Election title is required.", apiErr.Details["title"])
	})

	t.Run("empty body falls back to status", func(t *testing.T) {
		_, err := c.GetResults(ctx, "e2")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		require.Equal(t, ErrorCodeServerError, apiErr.Code)
	})
}
