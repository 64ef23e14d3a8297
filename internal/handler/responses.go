package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/degenfarm/internal/domain"
	"github.com/osse101/degenfarm/internal/logger"
)

// ErrorResponse represents an error response. Reason is the machine-readable
// rejection code when the failure maps to one.
type ErrorResponse struct {
	Error  string        `json:"error"`
	Reason domain.Reason `json:"reason,omitempty"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a farm service error to a status code and logs it
// at a level matching its severity.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message, reason := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err, "status", status)
	} else {
		log.Info(opName+" rejected", "reason", reason, "status", status)
	}

	respondJSON(w, status, ErrorResponse{Error: message, Reason: reason})
}

// mapServiceErrorToUserMessage maps domain errors to user-facing HTTP responses.
func mapServiceErrorToUserMessage(err error) (int, string, domain.Reason) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError, domain.ReasonUnknown
	}

	reason := domain.ReasonOf(err)
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError, reason
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError, reason
	case errors.Is(err, domain.ErrUpgradeNotFound):
		return http.StatusNotFound, ErrMsgUpgradeNotFoundError, reason
	case errors.Is(err, domain.ErrInvalidUsername):
		return http.StatusBadRequest, ErrMsgInvalidUsernameError, reason
	case errors.Is(err, domain.ErrUnknownCharacter):
		return http.StatusBadRequest, ErrMsgUnknownCharacterError, reason
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgInsufficientFundsError, reason
	case errors.Is(err, domain.ErrUpgradeLocked):
		return http.StatusBadRequest, ErrMsgUpgradeLockedError, reason
	case errors.Is(err, domain.ErrUpgradeAlreadyOwned):
		return http.StatusBadRequest, ErrMsgUpgradeOwnedError, reason
	case errors.Is(err, domain.ErrValidationRejected):
		return http.StatusBadRequest, ErrMsgInvalidRequestError, reason
	case errors.Is(err, domain.ErrSyncFailure), errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError, reason
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError, domain.ReasonUnknown
}
