package ports

import (
	"context"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// ActivityRepository defines persistence operations for LinkedIn activities.
// All reads and writes are owner-scoped.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.LinkedInActivity) (*domain.LinkedInActivity, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.LinkedInActivity, error)
	Update(ctx context.Context, id, userID string, activity *domain.LinkedInActivity) (*domain.LinkedInActivity, error)
	Delete(ctx context.Context, id, userID string) error
}
