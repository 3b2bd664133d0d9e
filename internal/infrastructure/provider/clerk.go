// Package provider implements the HTTP client for the external identity
// provider's backend API (Clerk-style user endpoint).
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

const (
	requestTimeout = 10 * time.Second
	maxRetries     = 3
)

// ProfileCache caches subject → profile lookups (Redis in production),
// sparing a provider round trip on every request that lacks an email claim.
type ProfileCache interface {
	Get(ctx context.Context, subject string) (*ports.ProviderProfile, bool)
	Set(ctx context.Context, subject string, profile *ports.ProviderProfile)
}

// Client fetches user profiles from the provider using the server-held secret
// key. Lookups are retried with bounded exponential backoff: this is the only
// network dependency with another party's availability in the loop.
type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
	cache     ProfileCache
	log       zerolog.Logger
}

// NewClient creates a provider client. cache may be nil.
func NewClient(baseURL, secretKey string, cache ProfileCache, log zerolog.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		http:      &http.Client{Timeout: requestTimeout},
		cache:     cache,
		log:       log,
	}
}

type providerUser struct {
	ImageURL       string `json:"image_url"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// ProfileBySubject resolves an external subject ID to a profile carrying the
// first listed email address.
func (c *Client) ProfileBySubject(ctx context.Context, subject string) (*ports.ProviderProfile, error) {
	if c.cache != nil {
		if profile, ok := c.cache.Get(ctx, subject); ok {
			return profile, nil
		}
	}

	var user providerUser
	op := func() error {
		return c.fetchUser(ctx, subject, &user)
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, fmt.Errorf("provider lookup: %w", err)
	}

	profile := &ports.ProviderProfile{AvatarURL: user.ImageURL}
	if len(user.EmailAddresses) > 0 {
		profile.Email = user.EmailAddresses[0].EmailAddress
	}
	if c.cache != nil && profile.Email != "" {
		c.cache.Set(ctx, subject, profile)
	}
	return profile, nil
}

func (c *Client) fetchUser(ctx context.Context, subject string, out *providerUser) error {
	endpoint := fmt.Sprintf("%s/v1/users/%s", c.baseURL, url.PathEscape(subject))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusOK:
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode provider response: %w", err))
		}
		return nil
	case res.StatusCode >= 500:
		// Server-side trouble is worth a retry; client errors are not.
		return fmt.Errorf("provider returned %d", res.StatusCode)
	default:
		return backoff.Permanent(fmt.Errorf("provider returned %d", res.StatusCode))
	}
}
