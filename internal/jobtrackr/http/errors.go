package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/service"
	"github.com/aussiebroadwan/jobtrackr/pkg/httpx"
	"github.com/aussiebroadwan/jobtrackr/pkg/slogx"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// writeError maps a service error to its status code. Store failures are
// logged with their cause; the client only sees the generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	msg := service.MessageOf(err)

	switch service.KindOf(err) {
	case service.KindValidation:
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrCodeValidation, msg)
	case service.KindConflict:
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrCodeConflict, msg)
	case service.KindAuth:
		httpx.WriteError(w, http.StatusUnauthorized, httpx.ErrCodeUnauthorized, msg)
	case service.KindNotFound:
		httpx.WriteError(w, http.StatusNotFound, httpx.ErrCodeNotFound, msg)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, httpx.ErrCodeServer, msg)
	}
}

// decodeBody reads a JSON body into dst. On failure it writes a 400 and
// returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		msg := "Invalid JSON in request body"
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			msg = "Request body too large"
		case errors.Is(err, io.EOF):
			msg = "Request body is required"
		}
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrCodeValidation, msg)
		return false
	}
	return true
}

// userID returns the authenticated user. AuthnMiddleware guarantees it is
// set; a missing value is answered with 401.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.UserIDFromContext(r.Context())
	if !ok || id == "" {
		httpx.WriteError(w, http.StatusUnauthorized, httpx.ErrCodeUnauthorized, "Not authorized, no token")
		return "", false
	}
	return id, true
}
