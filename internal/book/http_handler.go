package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"sharebook/internal/httpx"
	"sharebook/internal/user"
)

const defaultMaxUploadBytes = 20 << 20

type HTTPHandler struct {
	service        *Service
	maxUploadBytes int64
}

func NewHTTPHandler(service *Service, maxUploadBytes int64) *HTTPHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &HTTPHandler{service: service, maxUploadBytes: maxUploadBytes}
}

var errorMappings = []httpx.ErrorMapping{
	{Target: ErrNotFound, Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "Book not found"},
	{Target: ErrForbidden, Status: http.StatusForbidden, Code: "FORBIDDEN", Message: "You do not own this book"},
	{Target: ErrRequested, Status: http.StatusConflict, Code: "BOOK_REQUESTED", Message: "This book has already been requested and cannot be changed"},
	{Target: ErrInvalidReference, Status: http.StatusBadRequest, Code: "VALIDATION_ERROR", Message: "Unknown book state or genre"},
	{Target: user.ErrNotFound, Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "User not found"},
}

func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return "", false
	}
	return userID, true
}

func bookID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return "", false
	}
	return id, true
}

// FindAll handles GET /v1/books
// @Summary List books of other users
// @Description Returns every book not owned by the caller, plus the subsets matching the caller's favourite genres and region
// @Tags books
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/books [get]
func (h *HTTPHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	partitions, err := h.service.FindAll(r.Context(), userID)
	if err != nil {
		httpx.WriteError(w, r, err, errorMappings...)
		return
	}

	httpx.JSONSuccess(w, r, partitions, map[string]any{"total": len(partitions.Available)})
}

// FindMyBooks handles GET /v1/me/books
// @Summary List my books
// @Tags books
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Router /v1/me/books [get]
func (h *HTTPHandler) FindMyBooks(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	books, err := h.service.FindMyBooks(r.Context(), userID)
	if err != nil {
		httpx.WriteError(w, r, err, errorMappings...)
		return
	}

	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}

// FindOne handles GET /v1/books/{id}
// @Summary Get book details
// @Description Owners also receive the requests made for the book
// @Tags books
// @Produce json
// @Security Bearer
// @Param id path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/{id} [get]
func (h *HTTPHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	view, err := h.service.FindOne(r.Context(), id, userID)
	if err != nil {
		httpx.WriteError(w, r, err, errorMappings...)
		return
	}

	httpx.JSONSuccess(w, r, view, nil)
}

// GetByISBN handles GET /v1/books/isbn/{isbn}
// @Summary Find a book by ISBN
// @Tags books
// @Produce json
// @Security Bearer
// @Param isbn path string true "ISBN"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/isbn/{isbn} [get]
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	if isbn == "" {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "ISBN not found", nil)
		return
	}

	b, err := h.service.GetByISBN(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "ISBN not found", nil)
			return
		}
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Create handles POST /v1/books
// @Summary Publish a book
// @Description Multipart form with a `book` JSON field, one `cover` file and any number of `images`
// @Tags books
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param book formData string true "Book JSON"
// @Param cover formData file true "Cover image"
// @Param images formData file false "Additional images"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	if !h.parseForm(w, r) {
		return
	}

	var in CreateInput
	if !decodeBookField(w, r, &in) {
		return
	}

	cover, err := readFiles(r.MultipartForm, "cover")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Could not read cover", nil)
		return
	}
	if len(cover) != 1 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "cover", Message: "exactly one cover is required"},
		})
		return
	}
	images, err := readFiles(r.MultipartForm, "images")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Could not read images", nil)
		return
	}

	b, err := h.service.Create(r.Context(), userID, in, cover[0], images)
	if err != nil {
		httpx.WriteError(w, r, err, errorMappings...)
		return
	}

	httpx.JSONSuccessCreated(w, r, b)
}

// Update handles PUT /v1/books/{id}
// @Summary Edit a book
// @Description Multipart form with a `book` JSON field and an optional new `cover`
// @Tags books
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param id path string true "Book ID"
// @Param book formData string true "Book JSON"
// @Param cover formData file false "New cover image"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /v1/books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	if !h.parseForm(w, r) {
		return
	}

	var in Fields
	if !decodeBookField(w, r, &in) {
		return
	}

	covers, err := readFiles(r.MultipartForm, "cover")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Could not read cover", nil)
		return
	}
	var cover *Upload
	if len(covers) > 0 {
		cover = &covers[0]
	}

	b, err := h.service.Update(r.Context(), userID, id, in, cover)
	if err != nil {
		httpx.WriteError(w, r, err, errorMappings...)
		return
	}

	httpx.JSONSuccess(w, r, b, nil)
}

// Delete handles DELETE /v1/books/{id}
// @Summary Delete a book
// @Tags books
// @Security Bearer
// @Param id path string true "Book ID"
// @Success 204 "No Content"
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /v1/books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		httpx.WriteError(w, r, err, errorMappings...)
		return
	}

	httpx.JSONSuccessNoContent(w)
}

func (h *HTTPHandler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
			return false
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid multipart body", nil)
		return false
	}
	return true
}

// decodeBookField reads the `book` JSON form field into dst and validates it.
func decodeBookField(w http.ResponseWriter, r *http.Request, dst any) bool {
	raw := r.FormValue("book")
	if raw == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "book", Message: "book is required"},
		})
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book JSON", nil)
		return false
	}
	if details := httpx.ValidateStruct(dst); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return false
	}
	return true
}

func readFiles(form *multipart.Form, field string) ([]Upload, error) {
	if form == nil {
		return nil, nil
	}
	headers := form.File[field]
	out := make([]Upload, 0, len(headers))
	for _, fh := range headers {
		data, err := readFile(fh)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", field, fh.Filename, err)
		}
		out = append(out, Upload{Data: data, ContentType: fh.Header.Get("Content-Type")})
	}
	return out, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
