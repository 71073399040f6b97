package http

import (
	"net/http"

	"github.com/aussiebroadwan/ballotbox/internal/vote/service"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

// ElectionsHandler handles election administration and listing.
type ElectionsHandler struct {
	ElectionService *service.ElectionService
}

// HandleCreate handles POST /api/elections
//
//	@Summary		Create election
//	@Description	Creates an election for a club the caller administers. Status defaults to draft.
//	@Tags			Elections
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		votesdk.CreateElectionRequest	true	"Election and ballot layout"
//	@Success		201		{object}	votesdk.ElectionResponse
//	@Failure		400		{object}	votesdk.ValidationErrorResponse
//	@Failure		403		{object}	votesdk.ErrorResponse	"Not an admin of the club"
//	@Failure		404		{object}	votesdk.ErrorResponse	"Club not found"
//	@Router			/api/elections [post].
func (h *ElectionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req votesdk.CreateElectionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	e, err := h.ElectionService.Create(r.Context(), caller, toElection(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toElectionResponse(e))
}

// HandleActive handles GET /api/elections/active
//
//	@Summary		List active elections
//	@Description	Elections accepting ballots right now, soonest end first.
//	@Tags			Elections
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	votesdk.ListElectionsResponse
//	@Router			/api/elections/active [get].
func (h *ElectionsHandler) HandleActive(w http.ResponseWriter, r *http.Request) {
	list, err := h.ElectionService.ListActive(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toElectionsResponse(list))
}

// HandleByClub handles GET /api/elections/club/{clubId}
//
//	@Summary		List club elections
//	@Description	Newest start first.
//	@Tags			Elections
//	@Security		BearerAuth
//	@Produce		json
//	@Param			clubId	path		string	true	"Club ID"
//	@Success		200		{object}	votesdk.ListElectionsResponse
//	@Router			/api/elections/club/{clubId} [get].
func (h *ElectionsHandler) HandleByClub(w http.ResponseWriter, r *http.Request) {
	list, err := h.ElectionService.ListByClub(r.Context(), r.PathValue("clubId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toElectionsResponse(list))
}

// HandleGet handles GET /api/elections/{id}
//
//	@Summary		Get election
//	@Tags			Elections
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Election ID"
//	@Success		200	{object}	votesdk.ElectionResponse
//	@Failure		404	{object}	votesdk.ErrorResponse
//	@Router			/api/elections/{id} [get].
func (h *ElectionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.ElectionService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toElectionResponse(e))
}

// HandleUpdate handles PUT /api/elections/{id}
//
//	@Summary		Update election
//	@Description	Partial update. The owning club cannot change and positions are locked once ballots exist.
//	@Tags			Elections
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Election ID"
//	@Param			request	body		votesdk.UpdateElectionRequest	true	"Fields to change"
//	@Success		200		{object}	votesdk.ElectionResponse
//	@Failure		400		{object}	votesdk.ValidationErrorResponse
//	@Failure		403		{object}	votesdk.ErrorResponse
//	@Failure		404		{object}	votesdk.ErrorResponse
//	@Failure		409		{object}	votesdk.ErrorResponse	"Ballots already cast"
//	@Router			/api/elections/{id} [put].
func (h *ElectionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req votesdk.UpdateElectionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	e, err := h.ElectionService.Update(r.Context(), caller, r.PathValue("id"), toElectionUpdate(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toElectionResponse(e))
}

// HandleDelete handles DELETE /api/elections/{id}
//
//	@Summary		Delete election
//	@Description	Removes the election and its ballots.
//	@Tags			Elections
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Election ID"
//	@Success		204
//	@Failure		403	{object}	votesdk.ErrorResponse
//	@Failure		404	{object}	votesdk.ErrorResponse
//	@Router			/api/elections/{id} [delete].
func (h *ElectionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	if err := h.ElectionService.Delete(r.Context(), caller, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAnalytics handles GET /api/elections/{id}/analytics
//
//	@Summary		Election analytics
//	@Description	Turnout and votes by faculty. Participation rate is 0 for a club without members.
//	@Tags			Elections
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Election ID"
//	@Success		200	{object}	votesdk.AnalyticsResponse
//	@Failure		403	{object}	votesdk.ErrorResponse
//	@Failure		404	{object}	votesdk.ErrorResponse
//	@Router			/api/elections/{id}/analytics [get].
func (h *ElectionsHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	a, err := h.ElectionService.Analytics(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAnalyticsResponse(a))
}
