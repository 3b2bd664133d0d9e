package ports

import (
	"context"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// RecruiterRepository defines persistence operations for recruiter contacts.
// All reads and writes are owner-scoped.
type RecruiterRepository interface {
	Create(ctx context.Context, recruiter *domain.Recruiter) (*domain.Recruiter, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Recruiter, error)
	Update(ctx context.Context, id, userID string, recruiter *domain.Recruiter) (*domain.Recruiter, error)
	Delete(ctx context.Context, id, userID string) error
}
