package ports

import (
	"context"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// ApplicationRepository defines persistence operations for applications.
// Owned reads and writes are owner-scoped; ListAll serves the admin overview.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) (*domain.Application, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Application, error)
	ListAll(ctx context.Context) ([]*domain.Application, error)
	Update(ctx context.Context, id, userID string, application *domain.Application) (*domain.Application, error)
	Delete(ctx context.Context, id, userID string) error
	CountByOwner(ctx context.Context, userID string) (int64, error)
}
