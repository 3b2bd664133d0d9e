package ports

import (
	"context"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// IdentityResolver turns an opaque bearer credential into a local principal,
// provisioning an account on first sight.
type IdentityResolver interface {
	Resolve(ctx context.Context, rawToken string) (*domain.User, error)
}

// AdminAuthorizer decides administrative access for a resolved principal.
// A grant may promote the stored role as a side effect.
type AdminAuthorizer interface {
	AuthorizeAdmin(ctx context.Context, user *domain.User) (*domain.User, error)
}

// ProviderProfile is the subset of identity-provider profile data the
// resolver cares about.
type ProviderProfile struct {
	Email     string
	AvatarURL string
}

// ProviderClient fetches profile data from the external identity provider
// when the credential does not embed the needed claims.
type ProviderClient interface {
	ProfileBySubject(ctx context.Context, subject string) (*ProviderProfile, error)
}
