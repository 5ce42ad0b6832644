package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/lifehub/lifehub/internal/error_values"
	"github.com/lifehub/lifehub/internal/service"
	"github.com/lifehub/lifehub/pkg/httputil"
)

const defaultTasksLimit = 100

type CreateTaskRequest struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

type UpdateTaskRequest struct {
	Completed bool `json:"completed"`
}

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	limit := limitParam(r, defaultTasksLimit)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	tasks, err := s.tasksService.List(ctx, user.ID, limit)
	if err != nil {
		logger.Error("getting tasks list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load tasks")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tasks)
	logger.Info("tasks provided")
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	var req CreateTaskRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	task, err := s.tasksService.Create(ctx, user.ID, &service.CreateTaskRequest{
		Title:    req.Title,
		Priority: req.Priority,
	})
	if err != nil {
		if writeIfValidationErr(w, err) {
			logger.Error("create task error: invalid fields")
			return
		}
		logger.Error("create task error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create task")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task created")
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, ok := idParam(r, "id")
	if !ok {
		logger.Error("task update error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "Task not found")
		return
	}
	var req UpdateTaskRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("task update error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	task, err := s.tasksService.SetCompleted(ctx, id, user.ID, req.Completed)
	if err != nil {
		if notFoundOrOwner(err, errorvalues.ErrTaskNotFound) {
			logger.Error("task update error: missing or foreign task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Task not found")
			return
		}
		logger.Error("task update error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update task")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task updated")
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, ok := idParam(r, "id")
	if !ok {
		logger.Error("task deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "Task not found")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.tasksService.Delete(ctx, id, user.ID)
	if err != nil {
		if notFoundOrOwner(err, errorvalues.ErrTaskNotFound) {
			logger.Error("task deletion error: missing or foreign task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Task not found")
			return
		}
		logger.Error("task deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete task")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SuccessResponse{Success: true})
	logger.Info("task deleted")
}
