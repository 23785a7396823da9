package http

import (
	"encoding/json"
	"net/http"

	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/internal/utils"
	"github.com/etorres/go-api-scaffold/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) enqueueTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.EnqueueTask(ctx, request)
	if err != nil {
		log.Err(err).Str("task_name", request.Name).Msg("error occurred during enqueueing task")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.TaskEnqueuedResponse{ID: task.ID.String()}, http.StatusAccepted)
}

func (h *Handler) getTaskResult(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	result, err := h.services.TaskService.GetTaskResult(ctx, taskID)
	if err != nil {
		log.Err(err).Str("task_id", taskID.String()).Msg("error occurred during getting task result")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
