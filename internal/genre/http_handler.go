package genre

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

// List handles GET /v1/genres
// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/genres [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.List(r.Context())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if genres == nil {
		genres = []Genre{}
	}
	httpx.JSONSuccess(w, r, genres, map[string]any{"total": len(genres)})
}
