package session

import (
	"net/http"

	"github.com/google/uuid"

	"sharebook/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// ListSessions handles GET /v1/me/sessions
// @Summary List active sessions
// @Description Devices currently holding a refresh token for the authenticated user, newest first
// @Tags sessions
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse{data=[]Session}
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/me/sessions [get]
func (h *HTTPHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	sessions, err := h.service.ListByUserID(r.Context(), userID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []Session{}
	}
	httpx.JSONSuccess(w, r, sessions, map[string]any{"total": len(sessions)})
}

// DeleteSession handles DELETE /v1/me/sessions/{id}
// @Summary Revoke a session
// @Description Sign a device out. Sessions of other users are reported as not found.
// @Tags sessions
// @Produce json
// @Security Bearer
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/me/sessions/{id} [delete]
func (h *HTTPHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	sessionID := r.PathValue("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid session ID", nil)
		return
	}

	if err := h.service.DeleteForUser(r.Context(), sessionID, userID); err != nil {
		httpx.WriteError(w, r, err, httpx.ErrorMapping{
			Target: ErrNotFound, Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "Session not found",
		})
		return
	}
	httpx.JSONSuccessNoContent(w)
}
