package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

const maxPageSize = 100

// JobOfferService implements the shared offer-board use cases. Listing is
// global across users; mutation and deletion stay owner-scoped.
type JobOfferService struct {
	repo ports.JobOfferRepository
	log  zerolog.Logger
}

func NewJobOfferService(repo ports.JobOfferRepository, log zerolog.Logger) *JobOfferService {
	return &JobOfferService{repo: repo, log: log}
}

func (s *JobOfferService) Create(ctx context.Context, userID string, offer *domain.JobOffer) (*domain.JobOffer, error) {
	offer.UserID = userID
	if offer.Status == "" {
		offer.Status = "Pending"
	}
	return s.repo.Create(ctx, offer)
}

func (s *JobOfferService) List(ctx context.Context, skip, limit int64) ([]*domain.JobOffer, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	return s.repo.ListAll(ctx, skip, limit)
}

func (s *JobOfferService) Update(ctx context.Context, id, userID string, offer *domain.JobOffer) (*domain.JobOffer, error) {
	return s.repo.Update(ctx, id, userID, offer)
}

func (s *JobOfferService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
