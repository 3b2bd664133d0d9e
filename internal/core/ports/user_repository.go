package ports

import (
	"context"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// UserRepository defines persistence operations for local user accounts.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create returns domain.ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) error
	UpdateAvatar(ctx context.Context, id, avatarURL string) error
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
