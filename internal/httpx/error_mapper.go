package httpx

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"sharebook/internal/platform/objectstore"
	"sharebook/internal/platform/postalcode"
)

// ErrorMapping binds a sentinel error to the response sent for it.
type ErrorMapping struct {
	Target  error
	Status  int
	Code    string
	Message string
}

var platformMappings = []ErrorMapping{
	{Target: objectstore.ErrStorage, Status: http.StatusInternalServerError, Code: "STORAGE_ERROR", Message: "Could not access file storage"},
	{Target: postalcode.ErrNotFound, Status: http.StatusBadGateway, Code: "LOCATION_ERROR", Message: "Postal code could not be resolved"},
	{Target: postalcode.ErrLookup, Status: http.StatusBadGateway, Code: "LOCATION_ERROR", Message: "Postal code lookup failed"},
}

// WriteError answers with the first mapping whose target matches err,
// falling back to platform failures and finally a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error, mappings ...ErrorMapping) {
	for _, m := range append(mappings, platformMappings...) {
		if errors.Is(err, m.Target) {
			if m.Status >= http.StatusInternalServerError {
				logServerError(r, err)
			}
			JSONError(w, r, m.Status, m.Code, m.Message, nil)
			return
		}
	}
	logServerError(r, err)
	JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}

func logServerError(r *http.Request, err error) {
	log.Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", RequestIDFrom(r)).
		Msg("request failed")
}
