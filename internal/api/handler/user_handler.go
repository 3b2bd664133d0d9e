package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdash/jobsearch-api/internal/api/metrics"
	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// ReportGenerator renders a user's performance report as a PDF document.
type ReportGenerator interface {
	Generate(ctx context.Context, user *domain.User) ([]byte, error)
}

type UserHandler struct {
	reports ReportGenerator
}

func NewUserHandler(reports ReportGenerator) *UserHandler {
	return &UserHandler{reports: reports}
}

// Me handles GET /users/me: echoes the resolved principal.
func (h *UserHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Report handles GET /users/me/report: renders the principal's dashboard
// stats as a downloadable PDF.
func (h *UserHandler) Report(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	pdf, err := h.reports.Generate(c.Request().Context(), user)
	if err != nil {
		return err
	}

	metrics.ReportsGeneratedTotal.Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "performance_report.pdf"))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
