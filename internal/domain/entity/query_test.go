package entity

import (
	"reflect"
	"testing"
	"time"

	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
)

func queryFixture() []Document {
	return []Document{
		{
			ID: "a", Number: "INV-2024-0001", Date: "2024-05-01", DueDate: "2024-05-10",
			Status:   enum.DocumentStatusUnpaid,
			Customer: Customer{Name: "Acme Corp"},
			Items:    []LineItem{{Quantity: 1, UnitPrice: 100}},
		},
		{
			ID: "b", Number: "INV-2024-0002", Date: "2024-05-03",
			Status:   enum.DocumentStatusPaid,
			Customer: Customer{Name: "Beta LLC"},
			Items:    []LineItem{{Quantity: 2, UnitPrice: 25}},
		},
		{
			ID: "c", Number: "REC-2024-0001", Date: "2024-05-03",
			Status:   enum.DocumentStatusDraft,
			DueDate:  "2024-01-01",
			Customer: Customer{Name: "Gamma GmbH"},
			Items:    []LineItem{{Quantity: 1, UnitPrice: 75}},
		},
	}
}

func ids(docs []Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID
	}
	return out
}

func TestQueryFilters(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	docs := queryFixture()

	cases := []struct {
		name     string
		criteria QueryCriteria
		want     []string
	}{
		{"empty criteria matches everything newest first", QueryCriteria{}, []string{"b", "c", "a"}},
		{"search by customer name is case-insensitive", QueryCriteria{Search: "acme"}, []string{"a"}},
		{"search by number", QueryCriteria{Search: "rec-2024"}, []string{"c"}},
		{"overdue filter uses derived status", QueryCriteria{Status: "overdue"}, []string{"a"}},
		{"overdue never matches drafts despite past due date", QueryCriteria{Status: "draft"}, []string{"c"}},
		{"paid filter", QueryCriteria{Status: "paid"}, []string{"b"}},
		{"all status passes everything", QueryCriteria{Status: "all"}, []string{"b", "c", "a"}},
		{"date range is inclusive", QueryCriteria{DateStart: "2024-05-03", DateEnd: "2024-05-03"}, []string{"b", "c"}},
		{"start date only", QueryCriteria{DateStart: "2024-05-02"}, []string{"b", "c"}},
		{"conjunctive search and status", QueryCriteria{Search: "2024", Status: "paid"}, []string{"b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Query(docs, tc.criteria, today))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Query() order = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestQuerySorting(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	docs := queryFixture()

	cases := []struct {
		sort enum.SortKey
		want []string
	}{
		{enum.SortDateDesc, []string{"b", "c", "a"}}, // b and c share a date, input order kept
		{enum.SortDateAsc, []string{"a", "b", "c"}},
		{enum.SortAmountDesc, []string{"a", "c", "b"}},
		{enum.SortAmountAsc, []string{"b", "c", "a"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.sort), func(t *testing.T) {
			got := ids(Query(docs, QueryCriteria{Sort: tc.sort}, today))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("sort %s = %v, want %v", tc.sort, got, tc.want)
			}
		})
	}
}

func TestQueryIsPure(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	docs := queryFixture()
	criteria := QueryCriteria{Sort: enum.SortAmountDesc}

	first := ids(Query(docs, criteria, today))
	second := ids(Query(docs, criteria, today))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated query differed: %v vs %v", first, second)
	}

	// The input snapshot keeps its original order.
	if got := ids(docs); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("input mutated: %v", got)
	}
}

func TestQueryEmptyInput(t *testing.T) {
	got := Query(nil, QueryCriteria{Search: "x"}, time.Now())
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d items", len(got))
	}
}
