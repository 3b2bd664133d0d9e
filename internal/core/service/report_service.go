package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
	"github.com/jobdash/jobsearch-api/internal/core/ports"
)

// ReportService renders a principal's dashboard stats as a fixed-layout PDF.
type ReportService struct {
	dashboard ports.DashboardReader
}

func NewReportService(dashboard ports.DashboardReader) *ReportService {
	return &ReportService{dashboard: dashboard}
}

// Generate computes the stats and dumps them onto a single A4 page.
func (s *ReportService) Generate(ctx context.Context, user *domain.User) ([]byte, error) {
	stats, err := s.dashboard.Stats(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("report stats: %w", err)
	}

	name := user.FullName
	if name == "" {
		name = user.Email
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Performance Report for %s", name))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	line := func(format string, args ...interface{}) {
		pdf.Cell(0, 8, fmt.Sprintf(format, args...))
		pdf.Ln(8)
	}

	line("DMs sent: %d", stats.TotalDMSent)
	line("Responses: %d", stats.TotalResponses)
	line("Response rate: %.1f%%", stats.ResponseRate)
	line("Applications: %d", stats.TotalApplications)
	line("Interviews: %d", stats.Interviews)

	pdf.Ln(4)
	line("Weekly applications:")
	for _, p := range stats.Evolution {
		line("  %s: %d", p.Name, p.Applications)
	}

	pdf.Ln(4)
	line("Platforms:")
	for _, p := range stats.Platforms {
		line("  %s: %d", p.Name, p.Value)
	}

	pdf.Ln(4)
	line("Upcoming follow-ups:")
	for _, f := range stats.UpcomingFollowUps {
		line("  %s - %s (%s, %s)", f.Company, f.Position, f.Type, f.Date)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
