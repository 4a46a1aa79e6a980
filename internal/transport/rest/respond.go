package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

// maxBodyBytes bounds request bodies. A full material usage replacement is
// the largest payload.
const maxBodyBytes = 1 << 20

// retryAfterSeconds is sent with 503 responses for transient store failures.
const retryAfterSeconds = 2

type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps domain errors onto HTTP statuses. Anything unrecognised
// is logged and reported as 500 without leaking the cause.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation error"}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrTransient):
		log.WarnContext(r.Context(), "transient store failure", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
		writeError(w, http.StatusServiceUnavailable, "temporarily unavailable, retry later")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a size-limited JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", fmt.Sprintf("max %d bytes", tooLarge.Limit))
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// pathUUID parses the {name} path segment.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// queryDate parses an optional YYYY-MM-DD query parameter as a calendar day
// in loc. A missing parameter yields nil.
func queryDate(r *http.Request, name string, loc *time.Location) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a date (YYYY-MM-DD)")
	}
	return &day, nil
}

// requiredQueryDate is queryDate for parameters that must be present.
func requiredQueryDate(r *http.Request, name string, loc *time.Location) (time.Time, error) {
	day, err := queryDate(r, name, loc)
	if err != nil {
		return time.Time{}, err
	}
	if day == nil {
		return time.Time{}, domain.NewValidationError(name, "required")
	}
	return *day, nil
}

// queryProcess parses the optional ?process= station number.
func queryProcess(r *http.Request) (*int, error) {
	raw := r.URL.Query().Get("process")
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, domain.NewValidationError("process", "must be a non-negative integer")
	}
	return &n, nil
}
