package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

// RecruiterService implements the recruiter-contact use cases, all
// owner-scoped.
type RecruiterService struct {
	repo ports.RecruiterRepository
	log  zerolog.Logger
}

func NewRecruiterService(repo ports.RecruiterRepository, log zerolog.Logger) *RecruiterService {
	return &RecruiterService{repo: repo, log: log}
}

func (s *RecruiterService) Create(ctx context.Context, userID string, recruiter *domain.Recruiter) (*domain.Recruiter, error) {
	recruiter.UserID = userID
	if recruiter.ConnectionStatus == "" {
		recruiter.ConnectionStatus = "Pending"
	}
	return s.repo.Create(ctx, recruiter)
}

func (s *RecruiterService) List(ctx context.Context, userID string) ([]*domain.Recruiter, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *RecruiterService) Update(ctx context.Context, id, userID string, recruiter *domain.Recruiter) (*domain.Recruiter, error) {
	return s.repo.Update(ctx, id, userID, recruiter)
}

func (s *RecruiterService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
