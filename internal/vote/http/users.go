package http

import (
	"net/http"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/service"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

// UsersHandler serves account registration, login and profile endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleRegister handles POST /api/users/register
//
//	@Summary		Register
//	@Description	Creates a voter account and returns an access token.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		votesdk.RegisterRequest			true	"Account details"
//	@Success		201		{object}	votesdk.AuthResponse			"Token and profile"
//	@Failure		400		{object}	votesdk.ValidationErrorResponse	"Missing or malformed fields"
//	@Failure		409		{object}	votesdk.ErrorResponse			"Student id or email already registered"
//	@Router			/api/users/register [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req votesdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.UserService.Register(r.Context(), toRegistration(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAuthResponse(sess))
}

// HandleLogin handles POST /api/users/login
//
//	@Summary		Log in
//	@Description	Exchanges a student id and password for an access token.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		votesdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	votesdk.AuthResponse	"Token and profile"
//	@Failure		401		{object}	votesdk.ErrorResponse	"Invalid student id or password"
//	@Router			/api/users/login [post].
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req votesdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.UserService.Login(r.Context(), req.StudentID, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAuthResponse(sess))
}

// HandleMe handles GET /api/users/me
//
//	@Summary		Get own profile
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	votesdk.UserResponse
//	@Failure		401	{object}	votesdk.ErrorResponse
//	@Failure		404	{object}	votesdk.ErrorResponse	"Account no longer exists"
//	@Router			/api/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	u, err := h.UserService.Profile(r.Context(), caller.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandleUpdateMe handles PUT /api/users/me
//
//	@Summary		Update own profile
//	@Description	Partial update of name, faculty, gender and year of study.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		votesdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	votesdk.UserResponse
//	@Failure		400		{object}	votesdk.ErrorResponse	"Empty or invalid update"
//	@Router			/api/users/me [put].
func (h *UsersHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req votesdk.UpdateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.UserService.UpdateProfile(r.Context(), caller.UserID, domain.UserUpdate{
		Name:        req.Name,
		Faculty:     req.Faculty,
		Gender:      req.Gender,
		YearOfStudy: req.YearOfStudy,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandleSearch handles GET /api/users/search
//
//	@Summary		Search users
//	@Description	Case-insensitive match on name or student id. Queries under two characters return nothing.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			q	query		string	true	"Search text"
//	@Success		200	{object}	votesdk.ListUsersResponse
//	@Router			/api/users/search [get].
func (h *UsersHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUsersResponse(users))
}

// HandleList handles GET /api/users
//
//	@Summary		List users
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	votesdk.ListUsersResponse
//	@Failure		403	{object}	votesdk.ErrorResponse	"Requires admin:read"
//	@Router			/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	users, err := h.UserService.List(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUsersResponse(users))
}

// HandleDelete handles DELETE /api/users/{id}
//
//	@Summary		Delete user
//	@Tags			Users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID"
//	@Success		204
//	@Failure		404	{object}	votesdk.ErrorResponse
//	@Failure		409	{object}	votesdk.ErrorResponse	"User is the only admin of a club"
//	@Router			/api/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	if err := h.UserService.Delete(r.Context(), caller, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
