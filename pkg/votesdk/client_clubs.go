package votesdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListClubs(ctx context.Context) (*ListClubsResponse, error) {
	return call[ListClubsResponse](ctx, c, http.MethodGet, "/api/clubs", nil, false, http.StatusOK)
}

// ListManagedClubs lists the clubs the caller administers.
func (c *Client) ListManagedClubs(ctx context.Context) (*ListClubsResponse, error) {
	return call[ListClubsResponse](ctx, c, http.MethodGet, "/api/clubs/managed", nil, true, http.StatusOK)
}

func (c *Client) GetClub(ctx context.Context, id string) (*ClubResponse, error) {
	return call[ClubResponse](ctx, c, http.MethodGet, "/api/clubs/"+url.PathEscape(id), nil, false, http.StatusOK)
}

// CreateClub requires the admin:write scope.
func (c *Client) CreateClub(ctx context.Context, req CreateClubRequest) (*ClubResponse, error) {
	return call[ClubResponse](ctx, c, http.MethodPost, "/api/clubs", req, true, http.StatusCreated)
}

func (c *Client) UpdateClub(ctx context.Context, id string, req UpdateClubRequest) (*ClubResponse, error) {
	return call[ClubResponse](ctx, c, http.MethodPut, "/api/clubs/"+url.PathEscape(id), req, true, http.StatusOK)
}

// DeleteClub removes the club with its elections and ballots.
func (c *Client) DeleteClub(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/clubs/"+url.PathEscape(id), nil, true, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (c *Client) AddMember(ctx context.Context, clubID, userID string) (*ClubResponse, error) {
	path := "/api/clubs/" + url.PathEscape(clubID) + "/members"
	return call[ClubResponse](ctx, c, http.MethodPost, path, MemberRequest{UserID: userID}, true, http.StatusOK)
}

func (c *Client) RemoveMember(ctx context.Context, clubID, userID string) (*ClubResponse, error) {
	path := "/api/clubs/" + url.PathEscape(clubID) + "/members/" + url.PathEscape(userID)
	return call[ClubResponse](ctx, c, http.MethodDelete, path, nil, true, http.StatusOK)
}

// AddAdmin promotes userID to club admin, adding them as a member if needed.
func (c *Client) AddAdmin(ctx context.Context, clubID, userID string) (*ClubResponse, error) {
	path := "/api/clubs/" + url.PathEscape(clubID) + "/admins"
	return call[ClubResponse](ctx, c, http.MethodPost, path, MemberRequest{UserID: userID}, true, http.StatusOK)
}
