package bookstate

import (
	"net/http"

	"sharebook/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /v1/book-states
// @Summary List book states
// @Tags books
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /v1/book-states [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	states, err := h.service.List(r.Context())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if states == nil {
		states = []State{}
	}
	httpx.JSONSuccess(w, r, states, nil)
}
