package entity

import (
	"sort"
	"strings"
	"time"

	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
)

// QueryCriteria describes a dashboard listing: free-text search, a display
// status filter, an inclusive issue-date range and a sort key. Zero values
// mean "not filtered".
type QueryCriteria struct {
	Search    string
	Status    string // all, paid, unpaid, overdue, draft
	DateStart string
	DateEnd   string
	Sort      enum.SortKey
}

// Query filters and sorts a document snapshot. All criteria are conjunctive.
// The search term matches case-insensitively against the customer name or the
// document number; the status filter compares against the derived display
// status, so "overdue" is reachable even though it is never stored. Ties under
// any sort key keep their original relative order. The input slice is never
// mutated; a new slice is returned on every call.
func Query(docs []Document, criteria QueryCriteria, today time.Time) []Document {
	out := make([]Document, 0, len(docs))

	search := strings.ToLower(strings.TrimSpace(criteria.Search))
	start := parseDay(criteria.DateStart)
	end := parseDay(criteria.DateEnd)

	for _, doc := range docs {
		if search != "" {
			name := strings.ToLower(doc.Customer.Name)
			number := strings.ToLower(doc.Number)
			if !strings.Contains(name, search) && !strings.Contains(number, search) {
				continue
			}
		}

		if criteria.Status != "" && criteria.Status != "all" {
			display := strings.ToLower(string(doc.DisplayStatus(today)))
			if display != criteria.Status {
				continue
			}
		}

		issued := doc.IssuedAt()
		if !start.IsZero() && issued.Before(start) {
			continue
		}
		if !end.IsZero() && issued.After(end) {
			continue
		}

		out = append(out, doc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch criteria.Sort {
		case enum.SortDateAsc:
			return out[i].IssuedAt().Before(out[j].IssuedAt())
		case enum.SortAmountDesc:
			return out[i].Totals().GrandTotal > out[j].Totals().GrandTotal
		case enum.SortAmountAsc:
			return out[i].Totals().GrandTotal < out[j].Totals().GrandTotal
		default: // date-desc
			return out[j].IssuedAt().Before(out[i].IssuedAt())
		}
	})

	return out
}

func parseDay(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
