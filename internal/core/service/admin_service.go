package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

// AdminService serves the admin overview read models.
type AdminService struct {
	users        ports.UserRepository
	offers       ports.JobOfferRepository
	applications ports.ApplicationRepository
	log          zerolog.Logger
}

func NewAdminService(users ports.UserRepository, offers ports.JobOfferRepository, applications ports.ApplicationRepository, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, offers: offers, applications: applications, log: log}
}

// GlobalStats aggregates platform-wide counts. Unlike the user dashboard,
// this view degrades piecewise to zeroed values on storage failure: the admin
// overview must render even when a collection is unavailable.
func (s *AdminService) GlobalStats(ctx context.Context) *domain.GlobalStats {
	stats := &domain.GlobalStats{ApplicationsByPlatform: []domain.PlatformCount{}}

	if n, err := s.users.Count(ctx); err != nil {
		s.log.Warn().Err(err).Msg("global stats: user count failed")
	} else {
		stats.TotalUsers = n
	}

	if n, err := s.offers.Count(ctx); err != nil {
		s.log.Warn().Err(err).Msg("global stats: offer count failed")
	} else {
		stats.TotalOffers = n
	}

	apps, err := s.applications.ListAll(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("global stats: application listing failed")
		return stats
	}
	stats.TotalApplications = int64(len(apps))

	companies := make(map[string]struct{})
	platformIdx := make(map[string]int)
	for _, app := range apps {
		if app.Company != "" {
			companies[app.Company] = struct{}{}
		}
		platform := domain.ClassifyPlatform(app.OfferLink, app.CompanyLink)
		if i, ok := platformIdx[platform]; ok {
			stats.ApplicationsByPlatform[i].Value++
		} else {
			platformIdx[platform] = len(stats.ApplicationsByPlatform)
			stats.ApplicationsByPlatform = append(stats.ApplicationsByPlatform, domain.PlatformCount{Name: platform, Value: 1})
		}
	}
	stats.TotalCompanies = int64(len(companies))

	return stats
}

// Users returns the admin user listing with per-user record counts. Errors
// propagate: only GlobalStats is the zero-placeholder variant.
func (s *AdminService) Users(ctx context.Context) ([]*domain.UserOverview, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	overviews := make([]*domain.UserOverview, 0, len(users))
	for _, u := range users {
		apps, err := s.applications.CountByOwner(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("count applications for %s: %w", u.Email, err)
		}
		offers, err := s.offers.CountByOwner(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("count offers for %s: %w", u.Email, err)
		}
		overviews = append(overviews, &domain.UserOverview{
			ID:                u.ID,
			Email:             u.Email,
			FullName:          u.FullName,
			Role:              u.Role,
			ApplicationsCount: apps,
			OffersCount:       offers,
		})
	}
	return overviews, nil
}
