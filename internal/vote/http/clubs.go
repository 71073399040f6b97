package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/service"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

// ClubsHandler handles all club management endpoints.
type ClubsHandler struct {
	ClubService *service.ClubService
}

// HandleList handles GET /api/clubs
//
//	@Summary		List clubs
//	@Tags			Clubs
//	@Produce		json
//	@Success		200	{object}	votesdk.ListClubsResponse
//	@Router			/api/clubs [get].
func (h *ClubsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.ClubService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClubsResponse(clubs))
}

// HandleManaged handles GET /api/clubs/managed
//
//	@Summary		List managed clubs
//	@Description	Clubs the caller administers.
//	@Tags			Clubs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	votesdk.ListClubsResponse
//	@Router			/api/clubs/managed [get].
func (h *ClubsHandler) HandleManaged(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	clubs, err := h.ClubService.Managed(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClubsResponse(clubs))
}

// HandleGet handles GET /api/clubs/{id}
//
//	@Summary		Get club
//	@Tags			Clubs
//	@Produce		json
//	@Param			id	path		string	true	"Club ID"
//	@Success		200	{object}	votesdk.ClubResponse
//	@Failure		404	{object}	votesdk.ErrorResponse
//	@Router			/api/clubs/{id} [get].
func (h *ClubsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	club, err := h.ClubService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClubResponse(club))
}

// HandleCreate handles POST /api/clubs
//
//	@Summary		Create club
//	@Description	The caller becomes the first admin. Admins are always members.
//	@Tags			Clubs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		votesdk.CreateClubRequest	true	"Club details"
//	@Success		201		{object}	votesdk.ClubResponse
//	@Failure		400		{object}	votesdk.ValidationErrorResponse
//	@Failure		403		{object}	votesdk.ErrorResponse	"Requires admin:write"
//	@Failure		409		{object}	votesdk.ErrorResponse	"Club name already taken"
//	@Router			/api/clubs [post].
func (h *ClubsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req votesdk.CreateClubRequest
	if !decodeBody(w, r, &req) {
		return
	}

	club, err := h.ClubService.Create(r.Context(), caller, service.NewClub{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		Admins:      req.Admins,
		Members:     req.Members,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toClubResponse(club))
}

// HandleUpdate handles PUT /api/clubs/{id}
//
//	@Summary		Update club
//	@Tags			Clubs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Club ID"
//	@Param			request	body		votesdk.UpdateClubRequest	true	"Fields to change"
//	@Success		200		{object}	votesdk.ClubResponse
//	@Failure		403		{object}	votesdk.ErrorResponse	"Not an admin of this club"
//	@Failure		404		{object}	votesdk.ErrorResponse
//	@Failure		409		{object}	votesdk.ErrorResponse	"Club name already taken"
//	@Router			/api/clubs/{id} [put].
func (h *ClubsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req votesdk.UpdateClubRequest
	if !decodeBody(w, r, &req) {
		return
	}

	club, err := h.ClubService.Update(r.Context(), caller, r.PathValue("id"), domain.ClubUpdate{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClubResponse(club))
}

// HandleDelete handles DELETE /api/clubs/{id}
//
//	@Summary		Delete club
//	@Description	Removes the club together with its elections and their ballots.
//	@Tags			Clubs
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Club ID"
//	@Success		204
//	@Failure		404	{object}	votesdk.ErrorResponse
//	@Router			/api/clubs/{id} [delete].
func (h *ClubsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	if err := h.ClubService.Delete(r.Context(), caller, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAddMember handles POST /api/clubs/{clubId}/members
//
//	@Summary		Add member
//	@Tags			Clubs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			clubId	path		string					true	"Club ID"
//	@Param			request	body		votesdk.MemberRequest	true	"User to add"
//	@Success		200		{object}	votesdk.ClubResponse
//	@Failure		403		{object}	votesdk.ErrorResponse
//	@Failure		404		{object}	votesdk.ErrorResponse	"Unknown club or user"
//	@Router			/api/clubs/{clubId}/members [post].
func (h *ClubsHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, h.ClubService.AddMember)
}

// HandleAddAdmin handles POST /api/clubs/{clubId}/admins
//
//	@Summary		Add admin
//	@Description	Promotes a user to club admin, adding them as a member if needed.
//	@Tags			Clubs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			clubId	path		string					true	"Club ID"
//	@Param			request	body		votesdk.MemberRequest	true	"User to promote"
//	@Success		200		{object}	votesdk.ClubResponse
//	@Failure		403		{object}	votesdk.ErrorResponse
//	@Failure		404		{object}	votesdk.ErrorResponse
//	@Router			/api/clubs/{clubId}/admins [post].
func (h *ClubsHandler) HandleAddAdmin(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, h.ClubService.AddAdmin)
}

type membershipFunc func(ctx context.Context, caller domain.Caller, clubID, userID string) (domain.Club, error)

func (h *ClubsHandler) membership(w http.ResponseWriter, r *http.Request, fn membershipFunc) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req votesdk.MemberRequest
	if !decodeBody(w, r, &req) {
		return
	}
	club, err := fn(r.Context(), caller, r.PathValue("clubId"), req.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClubResponse(club))
}

// HandleRemoveMember handles DELETE /api/clubs/{clubId}/members/{memberId}
//
//	@Summary		Remove member
//	@Description	Removes the user from the club's members and admins. The last admin cannot be removed.
//	@Tags			Clubs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			clubId		path		string	true	"Club ID"
//	@Param			memberId	path		string	true	"User ID"
//	@Success		200			{object}	votesdk.ClubResponse
//	@Failure		404			{object}	votesdk.ErrorResponse	"Unknown club or not a member"
//	@Failure		409			{object}	votesdk.ErrorResponse	"Last admin"
//	@Router			/api/clubs/{clubId}/members/{memberId} [delete].
func (h *ClubsHandler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	club, err := h.ClubService.RemoveMember(r.Context(), caller, r.PathValue("clubId"), r.PathValue("memberId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClubResponse(club))
}
