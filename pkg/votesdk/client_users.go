package votesdk

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates a voter account and keeps the returned token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	out, err := call[AuthResponse](ctx, c, http.MethodPost, "/api/users/register", req, false, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	c.setToken(out.Token)
	return out, nil
}

// Login authenticates with a student id and password and keeps the returned
// token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	out, err := call[AuthResponse](ctx, c, http.MethodPost, "/api/users/login", req, false, http.StatusOK)
	if err != nil {
		return nil, err
	}
	c.setToken(out.Token)
	return out, nil
}

func (c *Client) GetProfile(ctx context.Context) (*UserResponse, error) {
	return call[UserResponse](ctx, c, http.MethodGet, "/api/users/me", nil, true, http.StatusOK)
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*UserResponse, error) {
	return call[UserResponse](ctx, c, http.MethodPut, "/api/users/me", req, true, http.StatusOK)
}

// SearchUsers matches q against names and student ids.
func (c *Client) SearchUsers(ctx context.Context, q string) (*ListUsersResponse, error) {
	path := "/api/users/search?q=" + url.QueryEscape(q)
	return call[ListUsersResponse](ctx, c, http.MethodGet, path, nil, true, http.StatusOK)
}

// ListUsers requires the admin:read scope.
func (c *Client) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	return call[ListUsersResponse](ctx, c, http.MethodGet, "/api/users", nil, true, http.StatusOK)
}

// DeleteUser requires the admin:write scope.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(userID), nil, true, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Bootstrap creates the first system administrator and keeps the returned
// token. It only succeeds once, on an empty server.
func (c *Client) Bootstrap(ctx context.Context, bootstrapToken string, req RegisterRequest) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/bootstrap", req, false,
		map[string]string{"X-Bootstrap-Token": bootstrapToken})
	if err != nil {
		return nil, err
	}
	var out AuthResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	c.setToken(out.Token)
	return &out, nil
}
