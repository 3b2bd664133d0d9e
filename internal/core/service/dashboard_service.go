package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

// DashboardService derives the dashboard read model from a principal's full
// record set. Pure read: nothing is persisted.
type DashboardService struct {
	recruiters   ports.RecruiterRepository
	offers       ports.JobOfferRepository
	activities   ports.ActivityRepository
	applications ports.ApplicationRepository
	log          zerolog.Logger
	now          func() time.Time
}

func NewDashboardService(
	recruiters ports.RecruiterRepository,
	offers ports.JobOfferRepository,
	activities ports.ActivityRepository,
	applications ports.ApplicationRepository,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		recruiters:   recruiters,
		offers:       offers,
		activities:   activities,
		applications: applications,
		log:          log,
		now:          time.Now,
	}
}

// Stats loads the principal's collections and computes every metric in one
// pass per collection. Storage failures propagate: no result beats a silently
// wrong one.
func (s *DashboardService) Stats(ctx context.Context, user *domain.User) (*domain.DashboardStats, error) {
	recruiters, err := s.recruiters.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load recruiters: %w", err)
	}
	offers, err := s.offers.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load offers: %w", err)
	}
	activities, err := s.activities.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}
	applications, err := s.applications.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load applications: %w", err)
	}

	today := domain.NewDate(s.now().UTC())
	return computeStats(recruiters, offers, activities, applications, today), nil
}

// computeStats is the pure aggregation core. offers and activities are
// collected for parity with the stored model but do not yet feed any output
// field.
func computeStats(
	recruiters []*domain.Recruiter,
	offers []*domain.JobOffer,
	activities []*domain.LinkedInActivity,
	applications []*domain.Application,
	today domain.Date,
) *domain.DashboardStats {
	_ = offers
	_ = activities

	stats := &domain.DashboardStats{
		TotalApplications: len(applications),
		Evolution:         []domain.EvolutionPoint{},
		Platforms:         []domain.PlatformCount{},
		UpcomingFollowUps: []domain.FollowUpReminder{},
	}

	for _, r := range recruiters {
		if r.DMSent {
			stats.TotalDMSent++
		}
		if r.ResponseReceived {
			stats.TotalResponses++
		}
	}
	// Zero when no DMs were sent; a rate of NaN helps nobody.
	if stats.TotalDMSent > 0 {
		stats.ResponseRate = float64(stats.TotalResponses) / float64(stats.TotalDMSent) * 100
	}

	weekly := make(map[string]int)
	platformIdx := make(map[string]int)
	windowEnd := domain.NewDate(today.AddDate(0, 0, 7))

	for _, app := range applications {
		if app.FinalStatus == domain.StatusInterview {
			stats.Interviews++
		}

		if !app.DMSentDate.IsZero() {
			weekly[weekKey(app.DMSentDate.Time)]++
		}

		platform := domain.ClassifyPlatform(app.OfferLink, app.CompanyLink)
		if i, ok := platformIdx[platform]; ok {
			stats.Platforms[i].Value++
		} else {
			platformIdx[platform] = len(stats.Platforms)
			stats.Platforms = append(stats.Platforms, domain.PlatformCount{Name: platform, Value: 1})
		}

		for _, f := range []struct {
			kind string
			date domain.Date
		}{
			{"J+5", app.FollowUp5},
			{"J+15", app.FollowUp15},
			{"J+30", app.FollowUp30},
		} {
			if f.date.IsZero() {
				continue
			}
			// Inclusive window [today, today+7].
			if !f.date.Before(today.Time) && !f.date.After(windowEnd.Time) {
				stats.UpcomingFollowUps = append(stats.UpcomingFollowUps, domain.FollowUpReminder{
					Company:  app.Company,
					Position: app.Position,
					Date:     f.date.String(),
					Type:     f.kind,
				})
			}
		}
	}

	keys := make([]string, 0, len(weekly))
	for k := range weekly {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 5 {
		keys = keys[len(keys)-5:]
	}
	for _, k := range keys {
		stats.Evolution = append(stats.Evolution, domain.EvolutionPoint{Name: k, Applications: weekly[k]})
	}

	sort.SliceStable(stats.UpcomingFollowUps, func(i, j int) bool {
		return stats.UpcomingFollowUps[i].Date < stats.UpcomingFollowUps[j].Date
	})

	return stats
}

// weekKey buckets a date by ISO 8601 week, e.g. "2026-W05". Early-January
// dates may land in the last week of the previous year.
func weekKey(d time.Time) string {
	year, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
