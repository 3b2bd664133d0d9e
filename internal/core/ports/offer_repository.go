package ports

import (
	"context"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// JobOfferRepository defines persistence operations for the shared offer
// board. Listing is global; mutation and deletion are always owner-filtered,
// so a miss is indistinguishable from "exists but not yours".
type JobOfferRepository interface {
	Create(ctx context.Context, offer *domain.JobOffer) (*domain.JobOffer, error)
	ListAll(ctx context.Context, skip, limit int64) ([]*domain.JobOffer, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.JobOffer, error)
	ExistsByOfferLink(ctx context.Context, offerLink string) (bool, error)
	Update(ctx context.Context, id, userID string, offer *domain.JobOffer) (*domain.JobOffer, error)
	Delete(ctx context.Context, id, userID string) error
	Count(ctx context.Context) (int64, error)
	CountByOwner(ctx context.Context, userID string) (int64, error)
}
