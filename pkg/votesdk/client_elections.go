package votesdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) CreateElection(ctx context.Context, req CreateElectionRequest) (*ElectionResponse, error) {
	return call[ElectionResponse](ctx, c, http.MethodPost, "/api/elections", req, true, http.StatusCreated)
}

// ListActiveElections returns elections currently accepting ballots.
func (c *Client) ListActiveElections(ctx context.Context) (*ListElectionsResponse, error) {
	return call[ListElectionsResponse](ctx, c, http.MethodGet, "/api/elections/active", nil, true, http.StatusOK)
}

func (c *Client) ListClubElections(ctx context.Context, clubID string) (*ListElectionsResponse, error) {
	path := "/api/elections/club/" + url.PathEscape(clubID)
	return call[ListElectionsResponse](ctx, c, http.MethodGet, path, nil, true, http.StatusOK)
}

func (c *Client) GetElection(ctx context.Context, id string) (*ElectionResponse, error) {
	return call[ElectionResponse](ctx, c, http.MethodGet, "/api/elections/"+url.PathEscape(id), nil, true, http.StatusOK)
}

func (c *Client) UpdateElection(ctx context.Context, id string, req UpdateElectionRequest) (*ElectionResponse, error) {
	return call[ElectionResponse](ctx, c, http.MethodPut, "/api/elections/"+url.PathEscape(id), req, true, http.StatusOK)
}

func (c *Client) DeleteElection(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/elections/"+url.PathEscape(id), nil, true, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (c *Client) GetAnalytics(ctx context.Context, electionID string) (*AnalyticsResponse, error) {
	path := "/api/elections/" + url.PathEscape(electionID) + "/analytics"
	return call[AnalyticsResponse](ctx, c, http.MethodGet, path, nil, true, http.StatusOK)
}

// CastVote submits an anonymous ballot. A second ballot for the same
// election fails with a 409 *APIError.
func (c *Client) CastVote(ctx context.Context, electionID string, req CastVoteRequest) error {
	path := "/api/vote/election/" + url.PathEscape(electionID) + "/cast"
	_, err := call[CastVoteResponse](ctx, c, http.MethodPost, path, req, true, http.StatusCreated)
	return err
}

// GetResults returns the tally once voting has ended.
func (c *Client) GetResults(ctx context.Context, electionID string) (*ResultsResponse, error) {
	path := "/api/vote/election/" + url.PathEscape(electionID) + "/results"
	return call[ResultsResponse](ctx, c, http.MethodGet, path, nil, true, http.StatusOK)
}
