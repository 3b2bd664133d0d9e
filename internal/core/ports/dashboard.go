package ports

import (
	"context"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// DashboardReader computes the dashboard read model for a principal.
type DashboardReader interface {
	Stats(ctx context.Context, user *domain.User) (*domain.DashboardStats, error)
}
