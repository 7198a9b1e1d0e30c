// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Kovalyov

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekovalyov/taskward/internal/logger"
	"github.com/ekovalyov/taskward/internal/service"
	"github.com/ekovalyov/taskward/internal/store"
	"github.com/ekovalyov/taskward/internal/utils"
	"github.com/ekovalyov/taskward/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONMessage(w, "Server Error", http.StatusInternalServerError)
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(ctx, userID, req.Title, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONMessage(w, "Title and Description are required.", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task creation")
			utils.WriteJSONMessage(w, "Server Error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONMessage(w, "Server Error", http.StatusInternalServerError)
		return
	}

	tasks, err := h.services.TaskService.ListTasks(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during task listing")
		utils.WriteJSONMessage(w, "Server Error", http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONMessage(w, "Server Error", http.StatusInternalServerError)
		return
	}

	taskID := chi.URLParam(r, "id")

	task, err := h.services.TaskService.GetTask(ctx, taskID, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTaskNotFound):
			log.Err(err).Str("task_id", taskID).Msg("task not found")
			utils.WriteJSONMessage(w, "Task not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task retrieval")
			utils.WriteJSONMessage(w, "Server Error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONMessage(w, "Server Error", http.StatusInternalServerError)
		return
	}

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	update := models.TaskUpdate{
		TaskID:      chi.URLParam(r, "id"),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}

	task, err := h.services.TaskService.UpdateTask(ctx, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTaskNotFound):
			log.Err(err).Str("task_id", update.TaskID).Msg("task not found")
			utils.WriteJSONMessage(w, "Task not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task update")
			utils.WriteJSONMessage(w, "Server Error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONMessage(w, "Server Error", http.StatusInternalServerError)
		return
	}

	taskID := chi.URLParam(r, "id")

	if err := h.services.TaskService.DeleteTask(ctx, taskID, userID); err != nil {
		switch {
		case errors.Is(err, store.ErrTaskNotFound):
			log.Err(err).Str("task_id", taskID).Msg("task not found")
			utils.WriteJSONMessage(w, "Task not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task deletion")
			utils.WriteJSONMessage(w, "Server Error", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONMessage(w, "Task deleted successfully", http.StatusOK)
}
