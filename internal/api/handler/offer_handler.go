package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// JobOfferService covers the shared offer-board use cases.
type JobOfferService interface {
	Create(ctx context.Context, userID string, offer *domain.JobOffer) (*domain.JobOffer, error)
	List(ctx context.Context, skip, limit int64) ([]*domain.JobOffer, error)
	Update(ctx context.Context, id, userID string, offer *domain.JobOffer) (*domain.JobOffer, error)
	Delete(ctx context.Context, id, userID string) error
}

type JobOfferHandler struct {
	service JobOfferService
}

func NewJobOfferHandler(service JobOfferService) *JobOfferHandler {
	return &JobOfferHandler{service: service}
}

type offerRequest struct {
	Platform         string      `json:"platform" validate:"required"`
	Type             string      `json:"type"`
	RegistrationDone bool        `json:"registration_done"`
	RegistrationDate domain.Date `json:"registration_date"`
	ProfileLink      string      `json:"profile_link"`
	OfferTitle       string      `json:"offer_title" validate:"required"`
	OfferLink        string      `json:"offer_link"`
	SaveDate         domain.Date `json:"save_date"`
	ApplicationSent  bool        `json:"application_sent"`
	ApplicationDate  domain.Date `json:"application_date"`
	Status           string      `json:"status"`
}

func (r offerRequest) toDomain() *domain.JobOffer {
	return &domain.JobOffer{
		Platform:         r.Platform,
		Type:             r.Type,
		RegistrationDone: r.RegistrationDone,
		RegistrationDate: r.RegistrationDate,
		ProfileLink:      r.ProfileLink,
		OfferTitle:       r.OfferTitle,
		OfferLink:        r.OfferLink,
		SaveDate:         r.SaveDate,
		ApplicationSent:  r.ApplicationSent,
		ApplicationDate:  r.ApplicationDate,
		Status:           r.Status,
	}
}

// Create handles POST /job_offers.
func (h *JobOfferHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offer, err := h.service.Create(c.Request().Context(), user.ID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, offer)
}

// List handles GET /job_offers. The board is shared: every authenticated user
// sees every offer, paginated with skip/limit query parameters.
func (h *JobOfferHandler) List(c echo.Context) error {
	if _, err := ctxUser(c); err != nil {
		return err
	}

	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)

	offers, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offers)
}

// Update handles PUT /job_offers/:id. Owner-scoped.
func (h *JobOfferHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offer, err := h.service.Update(c.Request().Context(), c.Param("id"), user.ID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offer)
}

// Delete handles DELETE /job_offers/:id. Owner-scoped.
func (h *JobOfferHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
