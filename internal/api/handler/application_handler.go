package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// ApplicationService covers the owner-scoped application use cases, including
// the offer-board synchronisation on create.
type ApplicationService interface {
	Create(ctx context.Context, userID string, app *domain.Application) (*domain.Application, error)
	List(ctx context.Context, userID string) ([]*domain.Application, error)
	Update(ctx context.Context, id, userID string, app *domain.Application) (*domain.Application, error)
	Delete(ctx context.Context, id, userID string) error
}

type ApplicationHandler struct {
	service ApplicationService
}

func NewApplicationHandler(service ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type applicationRequest struct {
	Company       string      `json:"company" validate:"required"`
	Position      string      `json:"position" validate:"required"`
	CompanyLink   string      `json:"company_link"`
	OfferLink     string      `json:"offer_link"`
	RecruiterName string      `json:"recruiter_name"`
	DMSentDate    domain.Date `json:"dm_sent_date"`
	FollowUp5     domain.Date `json:"follow_up_5_date"`
	FollowUp15    domain.Date `json:"follow_up_15_date"`
	FollowUp30    domain.Date `json:"follow_up_30_date"`
	FinalStatus   string      `json:"final_status"`
	Notes         string      `json:"notes"`
}

func (r applicationRequest) toDomain() *domain.Application {
	return &domain.Application{
		Company:       r.Company,
		Position:      r.Position,
		CompanyLink:   r.CompanyLink,
		OfferLink:     r.OfferLink,
		RecruiterName: r.RecruiterName,
		DMSentDate:    r.DMSentDate,
		FollowUp5:     r.FollowUp5,
		FollowUp15:    r.FollowUp15,
		FollowUp30:    r.FollowUp30,
		FinalStatus:   r.FinalStatus,
		Notes:         r.Notes,
	}
}

// Create handles POST /applications.
func (h *ApplicationHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req applicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Create(c.Request().Context(), user.ID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, app)
}

// List handles GET /applications. Owner-scoped.
func (h *ApplicationHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	apps, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// Update handles PUT /applications/:id.
func (h *ApplicationHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req applicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Update(c.Request().Context(), c.Param("id"), user.ID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// Delete handles DELETE /applications/:id.
func (h *ApplicationHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
