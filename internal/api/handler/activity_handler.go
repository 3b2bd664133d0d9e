package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// ActivityService covers the owner-scoped LinkedIn-activity use cases.
type ActivityService interface {
	Create(ctx context.Context, userID string, activity *domain.LinkedInActivity) (*domain.LinkedInActivity, error)
	List(ctx context.Context, userID string) ([]*domain.LinkedInActivity, error)
	Update(ctx context.Context, id, userID string, activity *domain.LinkedInActivity) (*domain.LinkedInActivity, error)
	Delete(ctx context.Context, id, userID string) error
}

type ActivityHandler struct {
	service ActivityService
}

func NewActivityHandler(service ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

type activityRequest struct {
	ActivityDate domain.Date `json:"activity_date"`
	ActivityType string      `json:"activity_type" validate:"required"`
	Description  string      `json:"description"`
	Link         string      `json:"link"`
}

func (r activityRequest) toDomain() *domain.LinkedInActivity {
	return &domain.LinkedInActivity{
		ActivityDate: r.ActivityDate,
		ActivityType: r.ActivityType,
		Description:  r.Description,
		Link:         r.Link,
	}
}

// Create handles POST /linkedin_activities.
func (h *ActivityHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	activity, err := h.service.Create(c.Request().Context(), user.ID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, activity)
}

// List handles GET /linkedin_activities. Owner-scoped.
func (h *ActivityHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	activities, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

// Update handles PUT /linkedin_activities/:id.
func (h *ActivityHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	activity, err := h.service.Update(c.Request().Context(), c.Param("id"), user.ID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// Delete handles DELETE /linkedin_activities/:id.
func (h *ActivityHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
