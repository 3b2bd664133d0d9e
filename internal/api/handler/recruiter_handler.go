package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// RecruiterService covers the owner-scoped recruiter-contact use cases.
type RecruiterService interface {
	Create(ctx context.Context, userID string, recruiter *domain.Recruiter) (*domain.Recruiter, error)
	List(ctx context.Context, userID string) ([]*domain.Recruiter, error)
	Update(ctx context.Context, id, userID string, recruiter *domain.Recruiter) (*domain.Recruiter, error)
	Delete(ctx context.Context, id, userID string) error
}

type RecruiterHandler struct {
	service RecruiterService
}

func NewRecruiterHandler(service RecruiterService) *RecruiterHandler {
	return &RecruiterHandler{service: service}
}

type recruiterRequest struct {
	Name                  string      `json:"name" validate:"required"`
	Company               string      `json:"company" validate:"required"`
	LinkedinProfile       string      `json:"linkedin_profile"`
	Sector                string      `json:"sector"`
	ConnectionRequestSent bool        `json:"connection_request_sent"`
	RequestDate           domain.Date `json:"request_date"`
	ConnectionStatus      string      `json:"connection_status"`
	DMSent                bool        `json:"dm_sent"`
	DMDate                domain.Date `json:"dm_date"`
	MessageType           string      `json:"message_type"`
	ResponseReceived      bool        `json:"response_received"`
	Notes                 string      `json:"notes"`
}

func (r recruiterRequest) toDomain() *domain.Recruiter {
	return &domain.Recruiter{
		Name:                  r.Name,
		Company:               r.Company,
		LinkedinProfile:       r.LinkedinProfile,
		Sector:                r.Sector,
		ConnectionRequestSent: r.ConnectionRequestSent,
		RequestDate:           r.RequestDate,
		ConnectionStatus:      r.ConnectionStatus,
		DMSent:                r.DMSent,
		DMDate:                r.DMDate,
		MessageType:           r.MessageType,
		ResponseReceived:      r.ResponseReceived,
		Notes:                 r.Notes,
	}
}

// Create handles POST /recruiters.
func (h *RecruiterHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req recruiterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recruiter, err := h.service.Create(c.Request().Context(), user.ID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, recruiter)
}

// List handles GET /recruiters. Owner-scoped.
func (h *RecruiterHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	recruiters, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recruiters)
}

// Update handles PUT /recruiters/:id.
func (h *RecruiterHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req recruiterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recruiter, err := h.service.Update(c.Request().Context(), c.Param("id"), user.ID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recruiter)
}

// Delete handles DELETE /recruiters/:id.
func (h *RecruiterHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
