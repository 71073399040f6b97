package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("results keep server order and show shares", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		renderResults(&buf, &votesdk.ResultsResponse{
			ElectionTitle:    "Club President 2025",
			ClubName:         "Chess",
			TotalBallotsCast: 3,
			Results: []votesdk.PositionResult{{
				PositionTitle: "President",
				Candidates: []votesdk.CandidateResult{
					{Name: "Xavier", VoteCount: 2},
					{Name: "Yvonne", VoteCount: 1},
				},
			}},
		})

		out := buf.String()
		require.Contains(t, out, "Club President 2025 (Chess), 3 ballot(s) cast")
		require.Contains(t, out, "66.7%")
		require.Less(t, strings.Index(out, "Xavier"), strings.Index(out, "Yvonne"))
	})

	t.Run("analytics sorts faculties by voters", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		renderAnalytics(&buf, &votesdk.AnalyticsResponse{
			TotalEligibleVoters: 4,
			TotalVotersWhoVoted: 3,
			ParticipationRate:   75,
			VotesByFaculty:      map[string]int{"Unknown": 1, "Science": 2},
		})

		out := buf.String()
		require.Contains(t, out, "Turnout: 3 of 4 eligible voters (75.00%)")
		require.Less(t, strings.Index(out, "Science"), strings.Index(out, "Unknown"))
	})

	t.Run("empty election list", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		renderElections(&buf, nil)
		require.Equal(t, "no elections\n", buf.String())
	})

	t.Run("share without ballots", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "-", share(0, 0))
	})
}

func TestRun(t *testing.T) {
	var gotAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/elections/active":
			_ = json.NewEncoder(w).Encode(votesdk.ListElectionsResponse{
				Elections: []votesdk.ElectionResponse{{ID: "e1", Title: "Treasurer", Status: "active"}},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(votesdk.ErrorResponse{Error: "not_found", ErrorDescription: "election not found"})
		}
	}))
	defer srv.Close()

	t.Setenv("VOTECTL_URL", srv.URL)
	t.Setenv("VOTECTL_TOKEN", "tok")

	t.Run("lists active elections", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(t.Context(), []string{"elections"}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())
		require.Contains(t, stdout.String(), "Treasurer")
		require.Equal(t, "Bearer tok", gotAuth.Load())
	})

	t.Run("reports api errors", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(t.Context(), []string{"results", "missing"}, &stdout, &stderr)
		require.Equal(t, 1, code)
		require.Contains(t, stderr.String(), "votectl results:")
	})

	t.Run("requires an election id", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(t.Context(), []string{"analytics"}, &stdout, &stderr)
		require.Equal(t, 1, code)
		require.Contains(t, stderr.String(), errElectionID.Error())
	})

	t.Run("unknown command", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.Equal(t, 2, run(t.Context(), []string{"frobnicate"}, &stdout, &stderr))
		require.Contains(t, stderr.String(), "usage: votectl")
	})

	t.Run("keygen is idempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "signing.pem")

		var first, second, stderr bytes.Buffer
		require.Equal(t, 0, run(t.Context(), []string{"keygen", "-out", path}, &first, &stderr))
		require.Contains(t, first.String(), "wrote new signing key")

		require.Equal(t, 0, run(t.Context(), []string{"keygen", "-out", path}, &second, &stderr))
		require.Contains(t, second.String(), "already holds a signing key")
	})
}
