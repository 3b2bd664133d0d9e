package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

// AuthService implements local registration, password login, and the locally
// issued HS256 admin token. Provider-authenticated users never touch this
// path; it exists for password accounts and the admin console.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 60 * time.Minute
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a local password account. Role defaults to contributor.
func (s *AuthService) Register(ctx context.Context, email, password, fullName, role string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleContributor
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
		AuthProvider: "local",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.users.Create(ctx, user)
}

// Login authenticates a local account and returns a signed token. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// AdminLogin is the admin-console login variant: same credential check, but
// the account must already hold the admin role.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error) {
	token, user, err := s.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	if user.Role != domain.RoleAdmin {
		return "", nil, fmt.Errorf("user %s is not authorized: %w", user.Email, domain.ErrForbidden)
	}
	return token, user, nil
}

// VerifyAdminToken checks a locally issued HS256 token and requires the admin
// role claim. Used as the legacy fallback when a bearer credential is not a
// provider token.
func (s *AuthService) VerifyAdminToken(rawToken string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if role, _ := claims["role"].(string); role != domain.RoleAdmin {
		email, _ := claims["sub"].(string)
		return nil, fmt.Errorf("user %s is not authorized: %w", email, domain.ErrForbidden)
	}

	email, _ := claims["sub"].(string)
	return &domain.User{Email: email, Role: domain.RoleAdmin}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": user.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
