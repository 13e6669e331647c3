package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/deepshiftai/invoicer-api/internal/domain/entity"
	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
)

type memRegistry struct {
	docs []entity.Document
}

func (m *memRegistry) All() []entity.Document {
	out := make([]entity.Document, len(m.docs))
	copy(out, m.docs)
	return out
}

func (m *memRegistry) Find(id string) (entity.Document, bool) {
	for _, d := range m.docs {
		if d.ID == id {
			return d, true
		}
	}
	return entity.Document{}, false
}

func (m *memRegistry) Upsert(doc entity.Document) {
	for i, d := range m.docs {
		if d.ID == doc.ID {
			m.docs[i] = doc
			return
		}
	}
	m.docs = append(m.docs, doc)
}

func (m *memRegistry) Remove(id string) {
	for i, d := range m.docs {
		if d.ID == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return
		}
	}
}

func testInvoice() entity.Document {
	return entity.Document{
		ID:       "doc-1",
		Type:     enum.DocumentTypeInvoice,
		Status:   enum.DocumentStatusUnpaid,
		Template: enum.TemplateModern,
		Number:   "INV-2024-0007",
		Date:     "2024-03-01",
		DueDate:  "2024-03-31",
		Customer: entity.Customer{Name: "Acme Corp", Email: "billing@acme.test"},
		Items: []entity.LineItem{
			{ID: "i1", Description: "Consulting", Quantity: 2, UnitPrice: 100},
		},
		TaxRate: 10,
	}
}

func TestVerificationPayload(t *testing.T) {
	doc := testInvoice()
	svc := NewVerificationService(&memRegistry{}, "https://deepshiftai.com/")

	p := svc.Payload(&doc)
	if p.Type != "INVOICE" || p.Number != "INV-2024-0007" || p.Date != "2024-03-01" {
		t.Errorf("unexpected payload fields: %+v", p)
	}
	if p.Total != 220 {
		t.Errorf("payload total = %v, want 220", p.Total)
	}
	if p.VerificationURL != "https://deepshiftai.com/verify/doc-1" {
		t.Errorf("verification URL = %q", p.VerificationURL)
	}
}

func TestDocumentIDFromPayload(t *testing.T) {
	doc := testInvoice()
	svc := NewVerificationService(&memRegistry{}, "https://deepshiftai.com")

	raw, err := json.Marshal(svc.Payload(&doc))
	if err != nil {
		t.Fatal(err)
	}

	id, err := DocumentIDFromPayload(string(raw))
	if err != nil {
		t.Fatal(err)
	}
	if id != "doc-1" {
		t.Errorf("extracted id = %q, want doc-1", id)
	}

	if _, err := DocumentIDFromPayload("{not json"); err == nil {
		t.Error("malformed payload should error")
	}
	if _, err := DocumentIDFromPayload(`{"verificationUrl":""}`); err == nil {
		t.Error("payload without URL should error")
	}
}

func TestVerify(t *testing.T) {
	doc := testInvoice()
	reg := &memRegistry{docs: []entity.Document{doc}}
	svc := NewVerificationService(reg, "https://deepshiftai.com")
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC) }

	res, err := svc.Verify(context.Background(), "doc-1")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Valid || res.Number != "INV-2024-0007" || res.Customer != "Acme Corp" {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.Status != enum.DisplayStatusUnpaid {
		t.Errorf("status = %q, want Unpaid before due date", res.Status)
	}

	res, err = svc.Verify(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	if res.Valid {
		t.Error("unknown id must yield an invalid result")
	}
}

func TestQRCodePNG(t *testing.T) {
	doc := testInvoice()
	svc := NewVerificationService(&memRegistry{}, "https://deepshiftai.com")

	png, err := svc.QRCodePNG(&doc, 256)
	if err != nil {
		t.Fatal(err)
	}
	if len(png) == 0 {
		t.Fatal("empty PNG output")
	}
	// PNG magic bytes
	if png[0] != 0x89 || string(png[1:4]) != "PNG" {
		t.Error("output is not a PNG")
	}
}
