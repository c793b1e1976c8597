package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ledgerbook/backend/internal/middleware"
	"github.com/ledgerbook/backend/internal/services"
	"go.uber.org/zap"
)

const maxBodyBytes = 1_048_576 // 1 MB

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Server-assigned fields that clients may echo back. They are dropped before
// decoding instead of being rejected as unknown.
var (
	customerReadOnly = []string{"id", "created_at", "updated_at"}
	entryReadOnly    = []string{"id", "type_display", "entry_date", "created_at", "updated_at"}
)

// decodeJSON reads exactly one JSON object into dst and writes a 400 on
// failure. Keys in readOnly are ignored; any other unknown key is rejected
// and named in the error details. It reports whether the handler should continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, readOnly ...string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return false
	}

	for _, key := range readOnly {
		delete(fields, key)
	}
	body, err := json.Marshal(fields)
	if err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return false
	}

	strict := json.NewDecoder(bytes.NewReader(body))
	strict.DisallowUnknownFields()
	if err := strict.Decode(dst); err != nil {
		var details error
		if field, ok := unknownField(err); ok {
			details = services.NewValidationError("Invalid request body", field, "Unknown field.")
		}
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, details)
		return false
	}
	return true
}

// unknownField extracts the key from encoding/json's unknown field error.
func unknownField(err error) (string, bool) {
	rest, ok := strings.CutPrefix(err.Error(), "json: unknown field ")
	if !ok {
		return "", false
	}
	field, err := strconv.Unquote(rest)
	if err != nil {
		return "", false
	}
	return field, true
}

// writeError maps service errors onto HTTP statuses. Unexpected errors are
// logged and hidden behind a generic 500.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var (
		ve *services.ValidationError
		nf *services.NotFoundError
		ae *services.AuthenticationError
	)
	switch {
	case errors.Is(err, services.ErrInvalidPage):
		services.SendErrorResponse(w, "Invalid page.", http.StatusNotFound, nil)
	case errors.As(err, &ve):
		services.SendErrorResponse(w, ve.Message, http.StatusBadRequest, ve)
	case errors.As(err, &nf):
		services.SendErrorResponse(w, "Not found.", http.StatusNotFound, nil)
	case errors.As(err, &ae):
		services.SendErrorResponse(w, ae.Message, http.StatusUnauthorized, nil)
	default:
		logger.Error("request failed", zap.Error(err))
		services.SendErrorResponse(w, "An Internal Error Occurred", http.StatusInternalServerError, nil)
	}
}

// callerID returns the authenticated user id or writes a 401.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Authentication credentials were not provided.", http.StatusUnauthorized, nil)
		return 0, false
	}
	return userID, true
}

// pathID parses the {id} URL parameter. Anything but a positive integer is a 404.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		services.SendErrorResponse(w, "Not found.", http.StatusNotFound, nil)
		return 0, false
	}
	return id, true
}
