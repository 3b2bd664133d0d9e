package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

func TestAdminService_GlobalStats(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "a@example.com", domain.RoleContributor)
	seedUser(t, users, "b@example.com", domain.RoleContributor)

	offers := &stubOfferRepo{offers: []*domain.JobOffer{
		{ID: "o1", UserID: "user_1"},
	}}
	apps := &stubApplicationRepo{applications: []*domain.Application{
		{UserID: "user_1", Company: "Acme", OfferLink: "https://indeed.com/1"},
		{UserID: "user_1", Company: "Acme", OfferLink: "https://indeed.com/2"},
		{UserID: "user_2", Company: "Globex"},
	}}

	svc := NewAdminService(users, offers, apps, zerolog.Nop())
	stats := svc.GlobalStats(context.Background())

	if stats.TotalUsers != 2 || stats.TotalOffers != 1 || stats.TotalApplications != 3 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.TotalCompanies != 2 {
		t.Fatalf("expected 2 distinct companies, got %d", stats.TotalCompanies)
	}

	byPlatform := map[string]int{}
	for _, p := range stats.ApplicationsByPlatform {
		byPlatform[p.Name] = p.Value
	}
	if byPlatform["Indeed"] != 2 || byPlatform["Web"] != 1 {
		t.Fatalf("unexpected platform split: %v", byPlatform)
	}
}

func TestAdminService_GlobalStatsDegradesPiecewise(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "a@example.com", domain.RoleContributor)

	offers := &stubOfferRepo{listErr: errors.New("offers down")}
	apps := &stubApplicationRepo{listErr: errors.New("applications down")}

	svc := NewAdminService(users, offers, apps, zerolog.Nop())
	stats := svc.GlobalStats(context.Background())

	// Failing pieces zero out; the healthy user count still comes through.
	if stats.TotalUsers != 1 {
		t.Fatalf("expected user count 1, got %d", stats.TotalUsers)
	}
	if stats.TotalOffers != 0 || stats.TotalApplications != 0 || stats.TotalCompanies != 0 {
		t.Fatalf("expected zeroed placeholders, got %+v", stats)
	}
	if stats.ApplicationsByPlatform == nil {
		t.Fatalf("platform slice must be present even when empty")
	}
}

func TestAdminService_Users(t *testing.T) {
	users := newStubUserRepo()
	u := seedUser(t, users, "a@example.com", domain.RoleContributor)

	offers := &stubOfferRepo{offers: []*domain.JobOffer{
		{ID: "o1", UserID: u.ID},
		{ID: "o2", UserID: u.ID},
	}}
	apps := &stubApplicationRepo{applications: []*domain.Application{
		{UserID: u.ID},
	}}

	svc := NewAdminService(users, offers, apps, zerolog.Nop())
	overviews, err := svc.Users(context.Background())
	if err != nil {
		t.Fatalf("Users returned error: %v", err)
	}
	if len(overviews) != 1 {
		t.Fatalf("expected 1 overview, got %d", len(overviews))
	}
	if overviews[0].ApplicationsCount != 1 || overviews[0].OffersCount != 2 {
		t.Fatalf("unexpected counts: %+v", overviews[0])
	}
}

func TestAdminService_UsersErrorPropagates(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "a@example.com", domain.RoleContributor)

	offers := &stubOfferRepo{listErr: errors.New("offers down")}
	apps := &stubApplicationRepo{}

	svc := NewAdminService(users, offers, apps, zerolog.Nop())
	if _, err := svc.Users(context.Background()); err == nil {
		t.Fatalf("expected error from failing count")
	}
}
