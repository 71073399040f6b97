package http

import (
	"net/http"

	"github.com/aussiebroadwan/ballotbox/internal/vote/service"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles the bootstrap endpoint for initial system setup.
//
//	@Summary		Bootstrap the voting service
//	@Description	Creates the first system administrator. Only available when a bootstrap token is configured and no user exists yet.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string							true	"Bootstrap token for authorization"
//	@Param			request				body		votesdk.RegisterRequest			true	"Administrator account"
//	@Success		201					{object}	votesdk.AuthResponse			"Administrator and access token"
//	@Failure		400					{object}	votesdk.ValidationErrorResponse	"Invalid request body or validation failed"
//	@Failure		401					{object}	votesdk.ErrorResponse			"Missing or invalid bootstrap token, or system already bootstrapped"
//	@Failure		404					{object}	votesdk.ErrorResponse			"Bootstrap not enabled (no token configured)"
//	@Router			/api/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())
	l.Info("Starting to bootstrap")

	// 1. Check if enabled
	if h.BootstrapService.Token == "" {
		httpx.WriteError(w, http.StatusNotFound, votesdk.ErrorCodeNotFound, "Bootstrap endpoint is not enabled")
		return
	}

	// 2. Require bootstrap token header
	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		httpx.WriteError(w, http.StatusUnauthorized, votesdk.ErrorCodeUnauthorized,
			"Bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	// 3. Parse request body
	var req votesdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// 4. Perform bootstrap
	sess, err := h.BootstrapService.Bootstrap(r.Context(), token, toRegistration(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAuthResponse(sess))
}
