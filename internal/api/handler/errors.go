package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Rrens/jusoor-api/internal/api/response"
	"github.com/Rrens/jusoor-api/internal/domain"
)

// businessErrors maps domain sentinels to HTTP statuses. Order matters only
// when an error wraps several sentinels.
var businessErrors = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidInput, http.StatusBadRequest},
	{domain.ErrUnsupportedPair, http.StatusBadRequest},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
}

// writeError answers with the status matching err. Anything that is not a
// business failure is logged and reported as an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, b := range businessErrors {
		if errors.Is(err, b.err) {
			response.Error(w, b.status, publicMessage(err, b.err))
			return
		}
	}

	log.Error().
		Err(err).
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	response.InternalError(w, "internal server error")
}

// publicMessage returns the detail attached right after the sentinel, or the
// sentinel text itself. Context added by outer layers is dropped.
func publicMessage(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return sentinel.Error()
}
