package rescue

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

var errorMappings = []httpx.ErrorMapping{
	{Target: ErrBookNotFound, Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "Book not found"},
	{Target: ErrOwnBook, Status: http.StatusUnprocessableEntity, Code: "OWN_BOOK", Message: "You cannot request your own book"},
	{Target: ErrAlreadyRequested, Status: http.StatusConflict, Code: "ALREADY_EXISTS", Message: "You already requested this book"},
}

// Create handles POST /v1/books/{id}/rescues
// @Summary Request a book
// @Description Ask the owner of a book to hand it over
// @Tags rescues
// @Produce json
// @Security Bearer
// @Param id path string true "Book ID"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Router /v1/books/{id}/rescues [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	bookID := r.PathValue("id")
	if _, err := uuid.Parse(bookID); err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}

	res, err := h.service.Create(r.Context(), bookID, userID)
	if err != nil {
		httpx.WriteError(w, r, err, errorMappings...)
		return
	}

	httpx.JSONSuccessCreated(w, r, res)
}

// ListMine handles GET /v1/me/rescues
// @Summary List my requests
// @Tags rescues
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Router /v1/me/rescues [get]
func (h *HTTPHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	rescues, err := h.service.ListByRequester(r.Context(), userID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if rescues == nil {
		rescues = []Rescue{}
	}

	httpx.JSONSuccess(w, r, rescues, map[string]any{"total": len(rescues)})
}
