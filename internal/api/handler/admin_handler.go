package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// AdminService serves the admin overview read models.
type AdminService interface {
	GlobalStats(ctx context.Context) *domain.GlobalStats
	Users(ctx context.Context) ([]*domain.UserOverview, error)
}

type AdminHandler struct {
	service AdminService
}

func NewAdminHandler(service AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Stats handles GET /admin/stats: platform-wide counts. Never fails; pieces
// degrade to zero when storage is unavailable.
func (h *AdminHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.GlobalStats(c.Request().Context()))
}

// Users handles GET /admin/users: the user listing with per-user record
// counts.
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.service.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
