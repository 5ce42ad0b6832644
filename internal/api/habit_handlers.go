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

type CreateHabitRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateHabitLogRequest struct {
	Date string `json:"date"`
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	habits, err := s.habitsService.List(ctx, user.ID)
	if err != nil {
		logger.Error("getting habits list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load habits")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
	logger.Info("habits provided")
}

// GetHabitsToday backs the daily check-off view. Same list as GetHabits,
// kept as its own route for the client.
func (s *Server) GetHabitsToday(w http.ResponseWriter, r *http.Request) {
	s.GetHabits(w, r)
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	var req CreateHabitRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.Create(ctx, user.ID, &service.CreateHabitRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if writeIfValidationErr(w, err) {
			logger.Error("create habit error: invalid fields")
			return
		}
		logger.Error("create habit error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create habit")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit created")
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, ok := idParam(r, "id")
	if !ok {
		logger.Error("habit deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "Habit not found")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.habitsService.Delete(ctx, id, user.ID)
	if err != nil {
		if notFoundOrOwner(err, errorvalues.ErrHabitNotFound) {
			logger.Error("habit deletion error: missing or foreign habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Habit not found")
			return
		}
		logger.Error("habit deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete habit")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SuccessResponse{Success: true})
	logger.Info("habit deleted")
}

func (s *Server) GetHabitLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	habitID, ok := idParam(r, "id")
	if !ok {
		logger.Error("habit logs error: invalid habit id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "Habit not found")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	logs, err := s.habitLogsService.List(ctx, habitID, user.ID)
	if err != nil {
		if notFoundOrOwner(err, errorvalues.ErrHabitNotFound) {
			logger.Error("habit logs error: missing or foreign habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Habit not found")
			return
		}
		logger.Error("habit logs error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load habit logs")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, logs)
	logger.Info("habit logs provided")
}

func (s *Server) CreateHabitLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	habitID, ok := idParam(r, "id")
	if !ok {
		logger.Error("create habit log error: invalid habit id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "Habit not found")
		return
	}
	var req CreateHabitLogRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create habit log error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habitLog, err := s.habitLogsService.Create(ctx, habitID, user.ID, &service.CreateHabitLogRequest{
		Date: req.Date,
	})
	if err != nil {
		if writeIfValidationErr(w, err) {
			logger.Error("create habit log error: invalid fields")
			return
		}
		if notFoundOrOwner(err, errorvalues.ErrHabitNotFound) {
			logger.Error("create habit log error: missing or foreign habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Habit not found")
			return
		}
		logger.Error("create habit log error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create habit log")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habitLog)
	logger.Info("habit log created")
}

func (s *Server) DeleteHabitLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	habitID, ok := idParam(r, "id")
	if !ok {
		logger.Error("habit log deletion error: invalid habit id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "Habit not found")
		return
	}
	logID, ok := idParam(r, "logId")
	if !ok {
		logger.Error("habit log deletion error: invalid log id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "Habit log not found")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.habitLogsService.Delete(ctx, habitID, logID, user.ID)
	if err != nil {
		if notFoundOrOwner(err, errorvalues.ErrHabitNotFound) {
			logger.Error("habit log deletion error: missing or foreign habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Habit not found")
			return
		}
		if notFoundOrOwner(err, errorvalues.ErrHabitLogNotFound) {
			logger.Error("habit log deletion error: missing log")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Habit log not found")
			return
		}
		logger.Error("habit log deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete habit log")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SuccessResponse{Success: true})
	logger.Info("habit log deleted")
}
