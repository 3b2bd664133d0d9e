package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

// AdminPolicy is one strategy in the ordered admin-resolution chain.
type AdminPolicy interface {
	// Name identifies the policy in logs.
	Name() string
	// Evaluate reports whether the user is granted admin access and whether
	// the stored role should be promoted as a side effect.
	Evaluate(user *domain.User) (granted, promote bool)
}

// RolePolicy grants when the stored role is already admin. No write happens.
type RolePolicy struct{}

func (RolePolicy) Name() string { return "role" }

func (RolePolicy) Evaluate(u *domain.User) (bool, bool) {
	return u.Role == domain.RoleAdmin, false
}

// EmailPolicy grants when the user's email matches a configured address and
// promotes the stored role so the grant persists. An empty address disables
// the policy.
type EmailPolicy struct {
	name  string
	email string
}

func NewEmailPolicy(name, email string) EmailPolicy {
	return EmailPolicy{name: name, email: strings.ToLower(strings.TrimSpace(email))}
}

func (p EmailPolicy) Name() string { return p.name }

func (p EmailPolicy) Evaluate(u *domain.User) (bool, bool) {
	if p.email == "" {
		return false, false
	}
	match := strings.ToLower(strings.TrimSpace(u.Email)) == p.email
	return match, match
}

// DefaultAdminPolicies returns the production chain: stored role, then the
// break-glass address, then the configured admin address. Break-glass comes
// before configuration on purpose: it must keep working when configuration
// is missing or wrong.
func DefaultAdminPolicies(breakGlassEmail, adminEmail string) []AdminPolicy {
	return []AdminPolicy{
		RolePolicy{},
		NewEmailPolicy("break_glass", breakGlassEmail),
		NewEmailPolicy("configured_admin", adminEmail),
	}
}

// PrivilegeService walks the admin policy chain in order; the first grant
// wins. A promoting grant persists role=admin best-effort: a failed write is
// logged but never blocks the request.
type PrivilegeService struct {
	users    ports.UserRepository
	policies []AdminPolicy
	log      zerolog.Logger
}

func NewPrivilegeService(users ports.UserRepository, policies []AdminPolicy, log zerolog.Logger) *PrivilegeService {
	return &PrivilegeService{users: users, policies: policies, log: log}
}

// AuthorizeAdmin grants or denies administrative access. Denials carry the
// evaluated email for operator troubleshooting.
func (s *PrivilegeService) AuthorizeAdmin(ctx context.Context, user *domain.User) (*domain.User, error) {
	for _, policy := range s.policies {
		granted, promote := policy.Evaluate(user)
		if !granted {
			continue
		}
		if promote {
			if err := s.users.UpdateRole(ctx, user.ID, domain.RoleAdmin); err != nil {
				s.log.Warn().Err(err).
					Str("email", user.Email).
					Str("policy", policy.Name()).
					Msg("admin promotion not persisted, allowing request anyway")
			}
			user.Role = domain.RoleAdmin
		}
		s.log.Debug().Str("email", user.Email).Str("policy", policy.Name()).Msg("admin access granted")
		return user, nil
	}

	return nil, fmt.Errorf("user %s is not authorized: %w", user.Email, domain.ErrForbidden)
}
