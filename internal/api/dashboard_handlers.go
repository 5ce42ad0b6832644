package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/lifehub/lifehub/pkg/httputil"
)

func (s *Server) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	stats, err := s.dashboardService.Stats(ctx, user.ID)
	if err != nil {
		logger.Error("dashboard stats error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("dashboard stats provided")
}
