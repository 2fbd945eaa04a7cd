package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON encodes payload into a pooled buffer, then writes it with status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

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

// respondServiceError maps err to a status and message, logs it and responds.
// Client errors log at debug, everything else at error.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", op, "error", err)
	} else {
		log.Debug(LogMsgServiceRejected, "op", op, "status", status, "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceError maps domain errors to HTTP status codes and player-facing
// messages. Insufficient resources and blocked actions carry their detail
// (resource names, gate reason) through to the player.
func mapServiceError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnknownAction):
		return http.StatusNotFound, ErrMsgActionNotFoundError
	case errors.Is(err, domain.ErrUnknownJob):
		return http.StatusNotFound, ErrMsgJobNotFoundError
	case errors.Is(err, domain.ErrUnknownBuilding):
		return http.StatusNotFound, ErrMsgBuildingNotFoundError
	case errors.Is(err, domain.ErrUnknownStory):
		return http.StatusNotFound, ErrMsgStoryNotFoundError

	case errors.Is(err, domain.ErrActionLocked):
		return http.StatusForbidden, ErrMsgActionLockedError
	case errors.Is(err, domain.ErrJobLocked):
		return http.StatusForbidden, ErrMsgJobLockedError
	case errors.Is(err, domain.ErrBuildingLocked):
		return http.StatusForbidden, ErrMsgBuildingLockedError

	case errors.Is(err, domain.ErrInsufficientResources):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrActionBlocked):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrActionFinished):
		return http.StatusConflict, ErrMsgActionFinishedError
	case errors.Is(err, domain.ErrActionInProgress):
		return http.StatusConflict, ErrMsgActionInProgressError
	case errors.Is(err, domain.ErrNoActiveAction):
		return http.StatusConflict, ErrMsgNoActiveActionError
	case errors.Is(err, domain.ErrNotCancelable):
		return http.StatusConflict, ErrMsgNotCancelableError
	case errors.Is(err, domain.ErrNoFreeSlots):
		return http.StatusConflict, ErrMsgNoFreeSlotsError
	case errors.Is(err, domain.ErrNoIdleCrew):
		return http.StatusConflict, ErrMsgNoIdleCrewError
	case errors.Is(err, domain.ErrNotAssigned):
		return http.StatusConflict, ErrMsgNotAssignedError
	case errors.Is(err, domain.ErrBuildingMaxed):
		return http.StatusConflict, ErrMsgBuildingMaxedError

	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
