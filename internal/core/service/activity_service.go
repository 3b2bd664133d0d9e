package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

// ActivityService implements the LinkedIn-activity use cases, all
// owner-scoped.
type ActivityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, log: log}
}

func (s *ActivityService) Create(ctx context.Context, userID string, activity *domain.LinkedInActivity) (*domain.LinkedInActivity, error) {
	activity.UserID = userID
	return s.repo.Create(ctx, activity)
}

func (s *ActivityService) List(ctx context.Context, userID string) ([]*domain.LinkedInActivity, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *ActivityService) Update(ctx context.Context, id, userID string, activity *domain.LinkedInActivity) (*domain.LinkedInActivity, error) {
	return s.repo.Update(ctx, id, userID, activity)
}

func (s *ActivityService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
