package handlers

import (
	"net/http"

	"talentboard/internal/common"
	"talentboard/internal/dashboard"
	"talentboard/internal/http/middleware"
	"talentboard/internal/http/response"
)

type DashboardHandler struct {
	stats *dashboard.Service
}

func NewDashboardHandler(stats *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, common.NewError(common.CodeUnauthorized, "not authenticated", nil))
		return
	}
	stats, err := h.stats.Stats(r.Context(), sess)
	if err != nil {
		response.Error(w, common.NewError(common.CodeUnavailable, "failed to load dashboard data", err))
		return
	}
	response.JSON(w, http.StatusOK, stats)
}
