package user

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"sharebook/internal/httpx"
)

const maxPhotoBytes = 5 << 20

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type meResponse struct {
	User
	ProfilePhotoURL string `json:"profile_photo_url,omitempty"`
}

// Register handles POST /v1/auth/register
// @Summary Register a new user
// @Description Create a new account with city, postal code and favourite genres
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterInput true "Registration request"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/auth/register [post]
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	u, err := h.service.Register(r.Context(), req)
	if errors.Is(err, ErrUnknownPostalCode) {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "postal_code", Message: "Postal code not found"},
		})
		return
	}
	if err != nil {
		httpx.WriteError(w, r, err, httpx.ErrorMapping{
			Target: ErrAlreadyExists, Status: http.StatusConflict, Code: "ALREADY_EXISTS", Message: "Email already exists",
		})
		return
	}

	httpx.JSONSuccessCreated(w, r, u)
}

// GetCurrentUser handles GET /v1/me
// @Summary Get current user
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /v1/me [get]
func (h *HTTPHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	u, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
			return
		}
		httpx.WriteError(w, r, err)
		return
	}

	photoURL, err := h.service.PhotoURL(r.Context(), u)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, meResponse{User: u, ProfilePhotoURL: photoURL}, nil)
}

// UpdatePhoto handles PUT /v1/me/photo
// @Summary Replace the profile photo
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param photo formData file true "Profile photo"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /v1/me/photo [put]
func (h *HTTPHandler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid multipart body", nil)
		return
	}
	file, _, err := r.FormFile("photo")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "photo", Message: "photo is required"},
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Could not read photo", nil)
		return
	}

	u, err := h.service.UpdatePhoto(r.Context(), userID, data)
	if err != nil {
		httpx.WriteError(w, r, err, httpx.ErrorMapping{
			Target: ErrNotFound, Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "User not found",
		})
		return
	}

	httpx.JSONSuccess(w, r, u, nil)
}
