package service

import (
	"context"
	"testing"
	"time"

	"github.com/deepshiftai/invoicer-api/internal/config"
	"github.com/deepshiftai/invoicer-api/internal/domain/entity"
	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
)

type stubKV struct {
	data map[string]string
}

func newStubKV() *stubKV {
	return &stubKV{data: make(map[string]string)}
}

func (s *stubKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *stubKV) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func (s *stubKV) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func testCompany() config.CompanyConfig {
	return config.CompanyConfig{
		Name:          "Deep Shift AI",
		Address:       "123 AI Avenue, Tech City, 10101",
		Email:         "contact@deepshiftai.com",
		VerifyBaseURL: "https://deepshiftai.com",
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newTestDocumentService(reg *memRegistry, kv *stubKV) *DocumentService {
	svc := NewDocumentService(reg, NewBrandingService(kv))
	svc.now = fixedNow
	return svc
}

func TestNewDraft(t *testing.T) {
	reg := &memRegistry{docs: []entity.Document{
		{ID: "x", Type: enum.DocumentTypeInvoice, Number: "INV-2024-0003"},
	}}
	kv := newStubKV()
	kv.data[signatureKey] = "data:image/png;base64,abc"
	svc := newTestDocumentService(reg, kv)

	doc, err := svc.NewDraft(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if doc.Number != "INV-2024-0004" {
		t.Errorf("number = %q, want INV-2024-0004", doc.Number)
	}
	if doc.Status != enum.DocumentStatusDraft || doc.Type != enum.DocumentTypeInvoice {
		t.Errorf("unexpected defaults: %q %q", doc.Status, doc.Type)
	}
	if doc.TaxRate != 5 || len(doc.Items) != 1 || doc.Items[0].Quantity != 1 {
		t.Errorf("editor defaults not applied: %+v", doc)
	}
	if doc.DueDate != "2024-07-15" {
		t.Errorf("due date = %q, want 30 days out", doc.DueDate)
	}
	if doc.SignatureURL != "data:image/png;base64,abc" {
		t.Errorf("stored signature not applied: %q", doc.SignatureURL)
	}
	if len(reg.docs) != 1 {
		t.Error("NewDraft must not store the document")
	}
}

func TestSaveDraft(t *testing.T) {
	reg := &memRegistry{}
	svc := newTestDocumentService(reg, newStubKV())

	saved, err := svc.SaveDraft(context.Background(), entity.Document{
		Type:     enum.DocumentTypeInvoice,
		Status:   enum.DocumentStatusPaid,
		Template: "sparkly",
		Number:   "INV-2024-0001",
	})
	if err != nil {
		t.Fatal(err)
	}
	if saved.ID == "" {
		t.Error("SaveDraft should assign an id")
	}
	if saved.Status != enum.DocumentStatusDraft {
		t.Errorf("status = %q, drafts are always stored as draft", saved.Status)
	}
	if saved.Template != enum.TemplateModern {
		t.Errorf("unknown template should fall back to modern, got %q", saved.Template)
	}
	if _, ok := reg.Find(saved.ID); !ok {
		t.Error("SaveDraft should store the document")
	}

	if _, err := svc.SaveDraft(context.Background(), entity.Document{Type: "MEMO"}); err == nil {
		t.Error("unknown type should be rejected")
	}
}

func TestFinalize(t *testing.T) {
	reg := &memRegistry{docs: []entity.Document{
		{ID: "a", Type: enum.DocumentTypeInvoice, Number: "INV-2024-0005", Status: enum.DocumentStatusDraft},
	}}
	svc := newTestDocumentService(reg, newStubKV())

	// An already stored document keeps the number it carries.
	doc, err := svc.Finalize(context.Background(), entity.Document{
		ID: "a", Type: enum.DocumentTypeInvoice, Number: "INV-2024-0005", Template: enum.TemplateModern,
	})
	if err != nil {
		t.Fatal(err)
	}
	if doc.Number != "INV-2024-0005" {
		t.Errorf("existing document number changed to %q", doc.Number)
	}
	if doc.Status != enum.DocumentStatusUnpaid {
		t.Errorf("finalized invoice status = %q, want unpaid", doc.Status)
	}

	// A new document gets a fresh number for its type.
	doc, err = svc.Finalize(context.Background(), entity.Document{
		Type: enum.DocumentTypeReceipt, Number: "REC-0000-9999", Template: enum.TemplateModern,
	})
	if err != nil {
		t.Fatal(err)
	}
	if doc.Number != "REC-2024-0001" {
		t.Errorf("new receipt number = %q, want REC-2024-0001", doc.Number)
	}
	if doc.Status != enum.DocumentStatusPaid {
		t.Errorf("finalized receipt status = %q, want paid", doc.Status)
	}
}

func TestMarkPaid(t *testing.T) {
	reg := &memRegistry{docs: []entity.Document{
		{ID: "a", Type: enum.DocumentTypeInvoice, Status: enum.DocumentStatusUnpaid},
		{ID: "b", Type: enum.DocumentTypeInvoice, Status: enum.DocumentStatusDraft},
	}}
	svc := newTestDocumentService(reg, newStubKV())

	doc, err := svc.MarkPaid(context.Background(), "a")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Status != enum.DocumentStatusPaid {
		t.Errorf("status = %q, want paid", doc.Status)
	}

	if _, err := svc.MarkPaid(context.Background(), "b"); err == nil {
		t.Error("drafts cannot be marked paid")
	}
	if _, err := svc.MarkPaid(context.Background(), "missing"); err == nil {
		t.Error("unknown id should error")
	}
}

func TestDeleteNeverReissuesNumbers(t *testing.T) {
	reg := &memRegistry{docs: []entity.Document{
		{ID: "a", Type: enum.DocumentTypeInvoice, Number: "INV-2024-0001"},
		{ID: "b", Type: enum.DocumentTypeInvoice, Number: "INV-2024-0002"},
	}}
	svc := newTestDocumentService(reg, newStubKV())

	if err := svc.Delete(context.Background(), "a"); err != nil {
		t.Fatal(err)
	}

	doc, err := svc.NewDraft(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if doc.Number != "INV-2024-0003" {
		t.Errorf("number = %q, deleted numbers must not be refilled", doc.Number)
	}

	if err := svc.Delete(context.Background(), "missing"); err == nil {
		t.Error("deleting an unknown id should error")
	}
}

func TestListAppliesCriteria(t *testing.T) {
	reg := &memRegistry{docs: []entity.Document{
		{ID: "a", Type: enum.DocumentTypeInvoice, Status: enum.DocumentStatusUnpaid, Number: "INV-2024-0001",
			Date: "2024-05-01", DueDate: "2024-05-15", Customer: entity.Customer{Name: "Acme"}},
		{ID: "b", Type: enum.DocumentTypeInvoice, Status: enum.DocumentStatusPaid, Number: "INV-2024-0002",
			Date: "2024-06-01", Customer: entity.Customer{Name: "Globex"}},
	}}
	svc := newTestDocumentService(reg, newStubKV())

	got := svc.List(context.Background(), entity.QueryCriteria{Status: "overdue"})
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("overdue filter returned %v", got)
	}

	got = svc.List(context.Background(), entity.QueryCriteria{Search: "glo"})
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("search filter returned %v", got)
	}
}

func TestDashboardMetrics(t *testing.T) {
	reg := &memRegistry{docs: []entity.Document{
		{ID: "a", Status: enum.DocumentStatusPaid,
			Items: []entity.LineItem{{Quantity: 1, UnitPrice: 100}}},
		{ID: "b", Status: enum.DocumentStatusUnpaid, DueDate: "2024-05-01",
			Items: []entity.LineItem{{Quantity: 1, UnitPrice: 50}}},
		{ID: "c", Status: enum.DocumentStatusUnpaid, DueDate: "2024-07-01",
			Items: []entity.LineItem{{Quantity: 1, UnitPrice: 30}}},
		{ID: "d", Status: enum.DocumentStatusDraft,
			Items: []entity.LineItem{{Quantity: 1, UnitPrice: 999}}},
	}}
	svc := NewDashboardService(reg)
	svc.now = fixedNow

	m := svc.Metrics(context.Background())
	if m.TotalRevenue != 100 {
		t.Errorf("revenue = %v, want 100", m.TotalRevenue)
	}
	if m.Outstanding != 80 {
		t.Errorf("outstanding = %v, want 80", m.Outstanding)
	}
	if m.OverdueAmount != 50 {
		t.Errorf("overdue = %v, want 50", m.OverdueAmount)
	}
	if m.DraftCount != 1 || m.DocumentCount != 4 {
		t.Errorf("counts = %d drafts, %d documents", m.DraftCount, m.DocumentCount)
	}
}
