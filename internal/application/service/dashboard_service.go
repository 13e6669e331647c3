package service

import (
	"context"
	"time"

	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
	"github.com/deepshiftai/invoicer-api/internal/domain/repository"
)

// DashboardService computes summary metrics over the document registry
type DashboardService struct {
	registry repository.DocumentRegistry
	now      func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(registry repository.DocumentRegistry) *DashboardService {
	return &DashboardService{registry: registry, now: time.Now}
}

// DashboardMetrics represents the dashboard summary
type DashboardMetrics struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	Outstanding   float64 `json:"outstanding"`
	OverdueAmount float64 `json:"overdueAmount"`
	DraftCount    int     `json:"draftCount"`
	DocumentCount int     `json:"documentCount"`
}

// Metrics sums paid revenue, outstanding unpaid amounts and the overdue
// portion of them, plus document counts.
func (s *DashboardService) Metrics(ctx context.Context) DashboardMetrics {
	today := s.now()
	var m DashboardMetrics
	for _, doc := range s.registry.All() {
		m.DocumentCount++
		total := doc.Totals().GrandTotal
		switch doc.Status {
		case enum.DocumentStatusPaid:
			m.TotalRevenue += total
		case enum.DocumentStatusUnpaid:
			m.Outstanding += total
			if doc.IsOverdue(today) {
				m.OverdueAmount += total
			}
		case enum.DocumentStatusDraft:
			m.DraftCount++
		}
	}
	return m
}
