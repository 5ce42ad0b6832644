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

const defaultExpensesLimit = 50

type CreateExpenseRequest struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Notes    *string `json:"notes"`
}

func (s *Server) GetExpenses(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	limit := limitParam(r, defaultExpensesLimit)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	expenses, err := s.expensesService.List(ctx, user.ID, limit)
	if err != nil {
		logger.Error("getting expenses list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load expenses")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, expenses)
	logger.Info("expenses provided")
}

func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	var req CreateExpenseRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create expense error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	expense, err := s.expensesService.Create(ctx, user.ID, &service.CreateExpenseRequest{
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
		Notes:    req.Notes,
	})
	if err != nil {
		if writeIfValidationErr(w, err) {
			logger.Error("create expense error: invalid fields")
			return
		}
		logger.Error("create expense error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create expense")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, expense)
	logger.Info("expense created")
}

func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, ok := idParam(r, "id")
	if !ok {
		logger.Error("expense deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "Expense not found")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.expensesService.Delete(ctx, id, user.ID)
	if err != nil {
		if notFoundOrOwner(err, errorvalues.ErrExpenseNotFound) {
			logger.Error("expense deletion error: missing or foreign expense")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Expense not found")
			return
		}
		logger.Error("expense deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete expense")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SuccessResponse{Success: true})
	logger.Info("expense deleted")
}
