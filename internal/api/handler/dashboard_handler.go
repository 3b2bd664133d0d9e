package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jobdash/jobsearch-api/internal/api/metrics"
	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

type DashboardHandler struct {
	dashboard ports.DashboardReader
}

func NewDashboardHandler(dashboard ports.DashboardReader) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats handles GET /dashboard/stats: the per-user aggregated dashboard.
func (h *DashboardHandler) Stats(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.DashboardComputeDuration)
	stats, err := h.dashboard.Stats(c.Request().Context(), user)
	timer.ObserveDuration()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
