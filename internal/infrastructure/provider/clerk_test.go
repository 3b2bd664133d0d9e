package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

type memoryCache struct {
	profiles map[string]*ports.ProviderProfile
}

func (c *memoryCache) Get(_ context.Context, subject string) (*ports.ProviderProfile, bool) {
	p, ok := c.profiles[subject]
	return p, ok
}

func (c *memoryCache) Set(_ context.Context, subject string, profile *ports.ProviderProfile) {
	c.profiles[subject] = profile
}

func TestClient_ProfileBySubject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/users/user_abc" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk_test" {
			t.Fatalf("missing secret key header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"image_url":"https://img.example.com/a.png","email_addresses":[{"email_address":"amy@example.com"},{"email_address":"second@example.com"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test", nil, zerolog.Nop())
	profile, err := client.ProfileBySubject(context.Background(), "user_abc")
	if err != nil {
		t.Fatalf("ProfileBySubject returned error: %v", err)
	}
	if profile.Email != "amy@example.com" {
		t.Fatalf("expected first listed email, got %q", profile.Email)
	}
	if profile.AvatarURL != "https://img.example.com/a.png" {
		t.Fatalf("unexpected avatar %q", profile.AvatarURL)
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"email_addresses":[{"email_address":"amy@example.com"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test", nil, zerolog.Nop())
	profile, err := client.ProfileBySubject(context.Background(), "user_abc")
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if profile.Email != "amy@example.com" {
		t.Fatalf("unexpected email %q", profile.Email)
	}
	if hits.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", hits.Load())
	}
}

func TestClient_ClientErrorsArePermanent(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test", nil, zerolog.Nop())
	if _, err := client.ProfileBySubject(context.Background(), "user_gone"); err == nil {
		t.Fatalf("expected error for 404")
	}
	if hits.Load() != 1 {
		t.Fatalf("a 404 must not be retried, got %d attempts", hits.Load())
	}
}

func TestClient_CacheShortCircuits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("cached subject must not hit the provider")
	}))
	defer srv.Close()

	cache := &memoryCache{profiles: map[string]*ports.ProviderProfile{
		"user_abc": {Email: "amy@example.com"},
	}}
	client := NewClient(srv.URL, "sk_test", cache, zerolog.Nop())

	profile, err := client.ProfileBySubject(context.Background(), "user_abc")
	if err != nil {
		t.Fatalf("ProfileBySubject returned error: %v", err)
	}
	if profile.Email != "amy@example.com" {
		t.Fatalf("unexpected email %q", profile.Email)
	}
}

func TestClient_CachesSuccessfulLookups(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"email_addresses":[{"email_address":"amy@example.com"}]}`))
	}))
	defer srv.Close()

	cache := &memoryCache{profiles: map[string]*ports.ProviderProfile{}}
	client := NewClient(srv.URL, "sk_test", cache, zerolog.Nop())

	for i := 0; i < 2; i++ {
		if _, err := client.ProfileBySubject(context.Background(), "user_abc"); err != nil {
			t.Fatalf("lookup %d failed: %v", i, err)
		}
	}
	if hits.Load() != 1 {
		t.Fatalf("second lookup should come from cache, got %d provider hits", hits.Load())
	}
}
