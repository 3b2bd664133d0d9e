package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

func TestApplicationService_CreateSyncsOffer(t *testing.T) {
	apps := &stubApplicationRepo{}
	offers := &stubOfferRepo{}
	svc := NewApplicationService(apps, offers, zerolog.Nop())

	created, err := svc.Create(context.Background(), "user_1", &domain.Application{
		Company:    "Acme",
		Position:   "Backend Engineer",
		OfferLink:  "https://www.linkedin.com/jobs/view/42",
		DMSentDate: domain.NewDate(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.FinalStatus != "Pending" {
		t.Fatalf("expected default status Pending, got %q", created.FinalStatus)
	}

	if offers.createCalls != 1 {
		t.Fatalf("expected one mirrored offer, got %d", offers.createCalls)
	}
	offer := offers.offers[0]
	if offer.Platform != "LinkedIn" {
		t.Fatalf("expected platform LinkedIn, got %q", offer.Platform)
	}
	if offer.OfferTitle != "Backend Engineer - Acme" {
		t.Fatalf("unexpected offer title %q", offer.OfferTitle)
	}
	if !offer.ApplicationSent {
		t.Fatalf("mirrored offer must be marked as applied")
	}
	if offer.ApplicationDate.String() != "2026-02-10" {
		t.Fatalf("expected application date 2026-02-10, got %q", offer.ApplicationDate)
	}
	if offer.UserID != "user_1" {
		t.Fatalf("mirrored offer must belong to the applicant, got %q", offer.UserID)
	}
}

func TestApplicationService_CreateDoesNotDuplicateOffer(t *testing.T) {
	apps := &stubApplicationRepo{}
	offers := &stubOfferRepo{}
	svc := NewApplicationService(apps, offers, zerolog.Nop())

	link := "https://www.linkedin.com/jobs/view/42"
	for i := 0; i < 2; i++ {
		if _, err := svc.Create(context.Background(), "user_1", &domain.Application{
			Company:   "Acme",
			Position:  "Backend Engineer",
			OfferLink: link,
		}); err != nil {
			t.Fatalf("Create %d returned error: %v", i, err)
		}
	}

	if offers.createCalls != 1 {
		t.Fatalf("expected exactly one offer for the link, got %d", offers.createCalls)
	}
	if len(apps.applications) != 2 {
		t.Fatalf("both applications should persist, got %d", len(apps.applications))
	}
}

func TestApplicationService_CreateWithoutLinkSkipsSync(t *testing.T) {
	apps := &stubApplicationRepo{}
	offers := &stubOfferRepo{}
	svc := NewApplicationService(apps, offers, zerolog.Nop())

	if _, err := svc.Create(context.Background(), "user_1", &domain.Application{
		Company:  "Acme",
		Position: "Backend Engineer",
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if offers.createCalls != 0 {
		t.Fatalf("no offer expected without a link, got %d", offers.createCalls)
	}
}

func TestApplicationService_SyncFailureDoesNotSurface(t *testing.T) {
	apps := &stubApplicationRepo{}
	offers := &stubOfferRepo{listErr: errors.New("board unavailable")}
	svc := NewApplicationService(apps, offers, zerolog.Nop())

	// The application write already committed; a failed board sync is logged
	// and swallowed.
	if _, err := svc.Create(context.Background(), "user_1", &domain.Application{
		Company:   "Acme",
		Position:  "Backend Engineer",
		OfferLink: "https://example.com/jobs/1",
	}); err != nil {
		t.Fatalf("sync failure must not fail the create: %v", err)
	}
	if len(apps.applications) != 1 {
		t.Fatalf("application should persist, got %d", len(apps.applications))
	}
}
