package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

// ApplicationService implements the application use cases plus the offer
// synchronisation step. Invariant: an application with a non-empty offer link
// has at most one corresponding job offer on the shared board.
type ApplicationService struct {
	repo   ports.ApplicationRepository
	offers ports.JobOfferRepository
	log    zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, offers ports.JobOfferRepository, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, offers: offers, log: log}
}

func (s *ApplicationService) Create(ctx context.Context, userID string, app *domain.Application) (*domain.Application, error) {
	app.UserID = userID
	if app.FinalStatus == "" {
		app.FinalStatus = "Pending"
	}

	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	s.syncOffer(ctx, created)
	return created, nil
}

func (s *ApplicationService) List(ctx context.Context, userID string) ([]*domain.Application, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *ApplicationService) Update(ctx context.Context, id, userID string, app *domain.Application) (*domain.Application, error) {
	return s.repo.Update(ctx, id, userID, app)
}

func (s *ApplicationService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}

// syncOffer mirrors a freshly created application onto the shared offer
// board, matched by offer link. Failures are logged, not surfaced: the
// application write already committed.
func (s *ApplicationService) syncOffer(ctx context.Context, app *domain.Application) {
	if app.OfferLink == "" {
		return
	}

	exists, err := s.offers.ExistsByOfferLink(ctx, app.OfferLink)
	if err != nil {
		s.log.Warn().Err(err).Str("offer_link", app.OfferLink).Msg("offer sync lookup failed")
		return
	}
	if exists {
		return
	}

	offer := &domain.JobOffer{
		UserID:          app.UserID,
		Platform:        domain.ClassifyPlatform(app.OfferLink, app.CompanyLink),
		OfferTitle:      app.Position + " - " + app.Company,
		OfferLink:       app.OfferLink,
		ApplicationSent: true,
		ApplicationDate: app.DMSentDate,
		Status:          app.FinalStatus,
	}
	if _, err := s.offers.Create(ctx, offer); err != nil {
		s.log.Warn().Err(err).Str("offer_link", app.OfferLink).Msg("offer sync write failed")
	}
}
