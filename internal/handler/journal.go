package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/osse101/CrashSite_Go/internal/eventlog"
	"github.com/osse101/CrashSite_Go/internal/logger"
)

// JournalSource reads the persisted event journal
type JournalSource interface {
	Recent(ctx context.Context, limit int) ([]eventlog.Entry, error)
}

// JournalHandler serves the event journal
type JournalHandler struct {
	journal JournalSource
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journal JournalSource) *JournalHandler {
	return &JournalHandler{journal: journal}
}

// HandleRecent returns the newest journaled events
// @Summary Recent journaled events
// @Description Completions, unlocks, flags and construction, newest first. Only available with the Postgres save backend.
// @Tags game
// @Produce json
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /journal [get]
func (h *JournalHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get(QueryParamLimit); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}
		limit = n
	}

	entries, err := h.journal.Recent(r.Context(), limit)
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgJournalFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}
	if entries == nil {
		entries = []eventlog.Entry{}
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: entries})
}
