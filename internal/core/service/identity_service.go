package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

// IdentityService resolves bearer credentials to local users, lazily
// provisioning an account on first sight. Email is the join key: two external
// identities carrying the same email collapse to one local user.
type IdentityService struct {
	users    ports.UserRepository
	provider ports.ProviderClient
	keyfunc  jwt.Keyfunc
	log      zerolog.Logger
}

// NewIdentityService wires the resolver. keyfunc verifies the credential's
// signature against the provider's signing-key set.
func NewIdentityService(users ports.UserRepository, provider ports.ProviderClient, keyfunc jwt.Keyfunc, log zerolog.Logger) *IdentityService {
	return &IdentityService{users: users, provider: provider, keyfunc: keyfunc, log: log}
}

// Resolve verifies the credential, extracts or looks up the principal's
// email, and returns the matching local user, creating it when absent.
func (s *IdentityService) Resolve(ctx context.Context, rawToken string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	// Audience is deliberately not enforced: the provider issues session
	// tokens to varying audiences.
	token, err := jwt.ParseWithClaims(rawToken, claims, s.keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil || !token.Valid {
		s.log.Debug().Err(err).Msg("token verification failed")
		return nil, domain.ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)

	var avatar string
	if email == "" && subject != "" {
		profile, err := s.provider.ProfileBySubject(ctx, subject)
		if err != nil {
			s.log.Warn().Err(err).Str("subject", subject).Msg("provider profile lookup failed")
		} else {
			email = profile.Email
			avatar = profile.AvatarURL
		}
	}
	if email == "" {
		return nil, domain.ErrIdentityUnresolved
	}
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		if avatar != "" && avatar != user.AvatarURL {
			if err := s.users.UpdateAvatar(ctx, user.ID, avatar); err != nil {
				s.log.Warn().Err(err).Str("email", email).Msg("avatar update failed")
			} else {
				user.AvatarURL = avatar
			}
		}
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	return s.provision(ctx, email, avatar)
}

func (s *IdentityService) provision(ctx context.Context, email, avatar string) (*domain.User, error) {
	// The local password is never used for provider-authenticated users; an
	// opaque random placeholder keeps the column populated.
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "New User",
		Role:         domain.RoleContributor,
		AuthProvider: "clerk",
		AvatarURL:    avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// Two requests can race on first sight; the loser re-reads by email.
		if errors.Is(err, domain.ErrUserExists) {
			return s.users.FindByEmail(ctx, email)
		}
		return nil, fmt.Errorf("provision user: %w", err)
	}

	s.log.Info().Str("email", email).Msg("provisioned new user")
	return created, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
