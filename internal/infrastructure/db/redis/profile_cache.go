package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

const profileTTL = time.Hour

// ProfileCache stores provider profile lookups in Redis.
// Key format: provider_profile:<subject>
type ProfileCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
func NewProfileCache(client *redis.Client, log zerolog.Logger) *ProfileCache {
	return &ProfileCache{client: client, log: log}
}

type cachedProfile struct {
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Get returns the cached profile for a subject, if present. Cache failures
// are logged and treated as misses so auth never depends on Redis.
func (p *ProfileCache) Get(ctx context.Context, subject string) (*ports.ProviderProfile, bool) {
	raw, err := p.client.Get(ctx, p.key(subject)).Result()
	if err != nil {
		if err != redis.Nil {
			p.log.Warn().Err(err).Str("subject", subject).Msg("profile cache read failed")
		}
		return nil, false
	}

	var cached cachedProfile
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		p.log.Warn().Err(err).Str("subject", subject).Msg("profile cache entry corrupt")
		return nil, false
	}
	return &ports.ProviderProfile{Email: cached.Email, AvatarURL: cached.AvatarURL}, true
}

// Set caches a profile for profileTTL. Write failures are logged and ignored.
func (p *ProfileCache) Set(ctx context.Context, subject string, profile *ports.ProviderProfile) {
	raw, err := json.Marshal(cachedProfile{Email: profile.Email, AvatarURL: profile.AvatarURL})
	if err != nil {
		return
	}
	if err := p.client.Set(ctx, p.key(subject), raw, profileTTL).Err(); err != nil {
		p.log.Warn().Err(err).Str("subject", subject).Msg("profile cache write failed")
	}
}

func (p *ProfileCache) key(subject string) string {
	return fmt.Sprintf("provider_profile:%s", subject)
}
