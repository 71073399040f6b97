package http

import (
	"net/http"

	"github.com/aussiebroadwan/ballotbox/internal/vote/service"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

type VoteHandler struct {
	VoteService *service.VoteService
}

// HandleCast handles POST /api/vote/election/{electionId}/cast
//
//	@Summary		Cast a vote
//	@Description	Records an anonymous ballot. Each member may vote once per election while it is open.
//	@Tags			Vote
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			electionId	path		string					true	"Election ID"
//	@Param			request		body		votesdk.CastVoteRequest	true	"Selections"
//	@Success		201			{object}	votesdk.CastVoteResponse
//	@Failure		400			{object}	votesdk.ErrorResponse	"Missing or invalid selections"
//	@Failure		403			{object}	votesdk.ErrorResponse	"Election not active or caller not a member"
//	@Failure		404			{object}	votesdk.ErrorResponse	"Election not found"
//	@Failure		409			{object}	votesdk.ErrorResponse	"Already voted"
//	@Failure		500			{object}	votesdk.ErrorResponse	"Vote not recorded"
//	@Router			/api/vote/election/{electionId}/cast [post].
func (h *VoteHandler) HandleCast(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req votesdk.CastVoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.VoteService.CastVote(r.Context(), caller, r.PathValue("electionId"), toSelections(req.Selections))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, votesdk.CastVoteResponse{
		Status:  "success",
		Message: "Your vote has been successfully and anonymously cast!",
	})
}

// HandleResults handles GET /api/vote/election/{electionId}/results
//
//	@Summary		Election results
//	@Description	Tally per position. Withheld until voting has ended.
//	@Tags			Vote
//	@Security		BearerAuth
//	@Produce		json
//	@Param			electionId	path		string	true	"Election ID"
//	@Success		200			{object}	votesdk.ResultsResponse
//	@Failure		403			{object}	votesdk.ErrorResponse	"Voting still open"
//	@Failure		404			{object}	votesdk.ErrorResponse
//	@Router			/api/vote/election/{electionId}/results [get].
func (h *VoteHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	res, err := h.VoteService.Results(r.Context(), r.PathValue("electionId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResultsResponse(res))
}
