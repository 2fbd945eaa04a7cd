package handler

import (
	"net/http"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/game"
	"github.com/osse101/CrashSite_Go/internal/logger"
	"github.com/osse101/CrashSite_Go/internal/runner"
	"github.com/osse101/CrashSite_Go/internal/save"
)

// GameHandler serves game state, actions, stories and saves
type GameHandler struct {
	manager *game.Manager
	runner  runner.Service
	saver   save.Service
	rewards RewardSource
}

// NewGameHandler creates a game handler. saver may be nil when saving is
// disabled; rewards may be nil to omit bonus labels.
func NewGameHandler(manager *game.Manager, run runner.Service, saver save.Service, rewards RewardSource) *GameHandler {
	return &GameHandler{
		manager: manager,
		runner:  run,
		saver:   saver,
		rewards: rewards,
	}
}

// StoryResponse is a story popup
type StoryResponse struct {
	Key   domain.StoryKey    `json:"key"`
	Pages []domain.StoryPage `json:"pages"`
}

// CancelResponse reports whether the cancel armed or confirmed
type CancelResponse struct {
	Message string `json:"message"`
	runner.CancelResult
}

// HandleGetState returns the player-visible game state
// @Summary Get game state
// @Description Discovered resources, unlocked actions and buildings, flags, the running action and the message log
// @Tags game
// @Produce json
// @Success 200 {object} StateResponse
// @Router /state [get]
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	var resp StateResponse
	h.manager.View(func(s *game.State) {
		resp = StateResponse{
			Resources: resourceViews(s),
			Actions:   actionViews(s, h.rewards),
			Buildings: buildingViews(s),
			Flags:     flagList(s.Flags),
			Active:    activeView(s),
			Log:       append([]domain.LogEntry(nil), s.Log...),
		}
	})
	respondJSON(w, http.StatusOK, resp)
}

// HandleListActions returns unlocked actions with blocked and affordable status
// @Summary List actions
// @Tags actions
// @Produce json
// @Success 200 {object} DataResponse
// @Router /actions [get]
func (h *GameHandler) HandleListActions(w http.ResponseWriter, r *http.Request) {
	var views []ActionView
	h.manager.View(func(s *game.State) {
		views = actionViews(s, h.rewards)
	})
	respondJSON(w, http.StatusOK, DataResponse{Data: views})
}

// HandleStartAction starts an action
// @Summary Start an action
// @Tags actions
// @Produce json
// @Param id path string true "Action id"
// @Success 202 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /actions/{id}/start [post]
func (h *GameHandler) HandleStartAction(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, "id")
	if !ok {
		return
	}
	logger.FromContext(r.Context()).Debug(LogMsgActionStartCalled, "action", id)

	if err := h.runner.Start(r.Context(), domain.ActionID(id)); err != nil {
		respondServiceError(w, r, "Start action", err)
		return
	}

	var active *ActiveView
	h.manager.View(func(s *game.State) {
		active = activeView(s)
	})
	respondJSON(w, http.StatusAccepted, DataResponse{Message: MsgActionStarted, Data: active})
}

// HandleCancelAction arms or confirms cancellation of the running action
// @Summary Cancel the running action
// @Description The first call arms a confirmation window; a second call inside it cancels with a partial refund
// @Tags actions
// @Produce json
// @Success 200 {object} CancelResponse
// @Failure 409 {object} ErrorResponse
// @Router /actions/cancel [post]
func (h *GameHandler) HandleCancelAction(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).Debug(LogMsgCancelCalled)

	res, err := h.runner.RequestCancel(r.Context())
	if err != nil {
		respondServiceError(w, r, "Cancel action", err)
		return
	}

	msg := MsgCancelPending
	if res.Confirmed {
		msg = MsgActionCancelled
	}
	respondJSON(w, http.StatusOK, CancelResponse{Message: msg, CancelResult: res})
}

// HandleGetStory returns the pages of a story
// @Summary Get story pages
// @Tags game
// @Produce json
// @Param key path string true "Story key"
// @Success 200 {object} StoryResponse
// @Failure 404 {object} ErrorResponse
// @Router /story/{key} [get]
func (h *GameHandler) HandleGetStory(w http.ResponseWriter, r *http.Request) {
	key, ok := GetIDParam(r, w, "key")
	if !ok {
		return
	}

	var (
		pages []domain.StoryPage
		err   error
	)
	h.manager.View(func(s *game.State) {
		pages, err = s.Catalog.Story(domain.StoryKey(key))
	})
	if err != nil {
		respondServiceError(w, r, "Get story", err)
		return
	}
	respondJSON(w, http.StatusOK, StoryResponse{Key: domain.StoryKey(key), Pages: pages})
}

// HandleSave saves the game now
// @Summary Save the game
// @Tags game
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /save [post]
func (h *GameHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if h.saver == nil {
		respondError(w, http.StatusServiceUnavailable, ErrMsgSaveDisabled)
		return
	}
	if err := h.saver.Save(r.Context()); err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgSaveFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgSaveFailed)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGameSaved})
}
