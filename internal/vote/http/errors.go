package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/service"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

// writeServiceError maps a service error to its HTTP status. Unexpected
// errors are logged and reported without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeValidationError(w, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, service.ErrNoSelections),
		errors.Is(err, service.ErrInvalidSelection),
		errors.Is(err, service.ErrEmptyUpdate):
		httpx.WriteError(w, http.StatusBadRequest, votesdk.ErrorCodeInvalidRequest, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrBootstrapUnauthorized),
		errors.Is(err, service.ErrBootstrapAlready):
		httpx.WriteError(w, http.StatusUnauthorized, votesdk.ErrorCodeUnauthorized, err.Error())

	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrNotEligible),
		errors.Is(err, service.ErrElectionNotActive),
		errors.Is(err, service.ErrResultsNotAvailable):
		httpx.WriteError(w, http.StatusForbidden, votesdk.ErrorCodeForbidden, err.Error())

	case errors.Is(err, service.ErrElectionNotFound),
		errors.Is(err, service.ErrClubNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNotMember),
		errors.Is(err, service.ErrBootstrapDisabled):
		httpx.WriteError(w, http.StatusNotFound, votesdk.ErrorCodeNotFound, err.Error())

	case errors.Is(err, service.ErrAlreadyVoted):
		httpx.WriteError(w, http.StatusConflict, votesdk.ErrorCodeAlreadyVoted, err.Error())

	case errors.Is(err, service.ErrClubNameTaken),
		errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrLastAdmin),
		errors.Is(err, service.ErrBallotsCast),
		errors.Is(err, service.ErrSoleClubAdmin):
		httpx.WriteError(w, http.StatusConflict, votesdk.ErrorCodeConflict, err.Error())

	case errors.Is(err, service.ErrVoteNotRecorded):
		httpx.WriteError(w, http.StatusInternalServerError, votesdk.ErrorCodeServerError,
			"A critical error occurred while casting your vote. The vote was not recorded. Please try again.")

	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, votesdk.ErrorCodeServerError, "An internal error occurred")
	}
}

func writeValidationError(w http.ResponseWriter, fields map[string]string) {
	httpx.WriteJSON(w, http.StatusBadRequest, votesdk.ValidationErrorResponse{
		Code:    votesdk.ErrorCodeValidation,
		Message: "validation failed for some fields",
		Details: fields,
	})
}

// decodeBody decodes the JSON body into v, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, votesdk.ErrorCodeInvalidRequest, err.Error())
		return false
	}
	return true
}

// callerFrom builds the request identity from the verified token claims.
// Roles come from the token; club-level rights are checked against the
// club itself.
func callerFrom(r *http.Request) (domain.Caller, bool) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok || claims.Subject == "" {
		return domain.Caller{}, false
	}
	roles := make([]domain.Role, 0, len(claims.Roles))
	for _, s := range claims.Roles {
		if role, err := domain.ParseRole(s); err == nil {
			roles = append(roles, role)
		}
	}
	return domain.Caller{UserID: claims.Subject, Roles: roles}, true
}

// requireCaller writes a 401 and returns false when the request carries no
// identity. Routes behind AuthnMiddleware always have one.
func requireCaller(w http.ResponseWriter, r *http.Request) (domain.Caller, bool) {
	caller, ok := callerFrom(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, votesdk.ErrorCodeInvalidToken, "the access token is missing or invalid")
	}
	return caller, ok
}
