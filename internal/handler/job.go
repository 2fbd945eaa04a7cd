package handler

import (
	"context"
	"net/http"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/job"
	"github.com/osse101/CrashSite_Go/internal/logger"
)

type JobHandler struct {
	service job.Service
}

func NewJobHandler(service job.Service) *JobHandler {
	return &JobHandler{
		service: service,
	}
}

// AssignCrewRequest moves Count crew into or out of a job
type AssignCrewRequest struct {
	Count int `json:"count" validate:"required,min=1,max=1000"`
}

// HandleListJobs returns unlocked jobs with slot limits and rate bonuses
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Success 200 {object} DataResponse
// @Router /jobs [get]
func (h *JobHandler) HandleListJobs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DataResponse{Data: h.service.List(r.Context())})
}

// HandleAssign assigns idle crew to a job
// @Summary Assign crew
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param request body AssignCrewRequest true "Crew count"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /jobs/{id}/assign [post]
func (h *JobHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	h.handleCrew(w, r, "Assign crew", MsgCrewAssigned, h.service.Assign)
}

// HandleUnassign returns crew from a job to idle
// @Summary Unassign crew
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param request body AssignCrewRequest true "Crew count"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /jobs/{id}/unassign [post]
func (h *JobHandler) HandleUnassign(w http.ResponseWriter, r *http.Request) {
	h.handleCrew(w, r, "Unassign crew", MsgCrewUnassigned, h.service.Unassign)
}

func (h *JobHandler) handleCrew(
	w http.ResponseWriter,
	r *http.Request,
	op, okMsg string,
	apply func(ctx context.Context, id domain.JobID, n int) error,
) {
	id, ok := GetIDParam(r, w, "id")
	if !ok {
		return
	}

	var req AssignCrewRequest
	if err := DecodeAndValidateRequest(r, w, &req, op); err != nil {
		return
	}
	logger.FromContext(r.Context()).Debug(LogMsgAssignCalled, "op", op, "job", id, "count", req.Count)

	if err := apply(r.Context(), domain.JobID(id), req.Count); err != nil {
		respondServiceError(w, r, op, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Message: okMsg, Data: h.service.List(r.Context())})
}
