package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used throughout the document store.
const DateLayout = "2006-01-02"

// Customer is the billed party, embedded in its document. All fields are free text.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// LineItem is a single billable row owned by its parent document.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// NewLineItem returns a blank line item with the default quantity of 1.
func NewLineItem() LineItem {
	return LineItem{ID: uuid.New().String(), Quantity: 1, UnitPrice: 0}
}

// Document is an invoice or receipt. Negative quantities, prices and tax rates
// are deliberately accepted and flow through the totals (credit-note style
// entries); no validation is applied to them.
type Document struct {
	ID               string              `json:"id"`
	Type             enum.DocumentType   `json:"type"`
	Status           enum.DocumentStatus `json:"status"`
	Template         enum.Template       `json:"template"`
	Number           string              `json:"number"`
	Date             string              `json:"date"`
	DueDate          string              `json:"dueDate,omitempty"`
	Customer         Customer            `json:"customer"`
	Items            []LineItem          `json:"items"`
	TaxRate          float64             `json:"taxRate"`
	Notes            string              `json:"notes"`
	PaymentMethod    string              `json:"paymentMethod,omitempty"`
	SignatureURL     string              `json:"signatureUrl,omitempty"`
	LogoURL          string              `json:"logoUrl,omitempty"`
	LastReminderSent string              `json:"lastReminderSent,omitempty"`
}

// NewDocument returns a fresh editable document with the same defaults the
// editor starts from: one blank line item, 5% tax, a due date 30 days out and
// a pre-assigned invoice number scoped to the current year.
func NewDocument(existing []Document, signatureURL string, now time.Time) *Document {
	return &Document{
		ID:            uuid.New().String(),
		Type:          enum.DocumentTypeInvoice,
		Status:        enum.DocumentStatusDraft,
		Template:      enum.TemplateModern,
		Number:        NextDocumentNumber(existing, enum.DocumentTypeInvoice, now.Year()),
		Date:          now.Format(DateLayout),
		DueDate:       now.AddDate(0, 0, 30).Format(DateLayout),
		Customer:      Customer{},
		Items:         []LineItem{NewLineItem()},
		TaxRate:       5,
		Notes:         "Thank you for your business!",
		PaymentMethod: "Credit Card",
		SignatureURL:  signatureURL,
	}
}

// Totals holds the computed amounts for a document.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxAmount  float64 `json:"taxAmount"`
	GrandTotal float64 `json:"grandTotal"`
}

// Totals computes subtotal, tax and grand total from the line items.
func (d *Document) Totals() Totals {
	var subtotal float64
	for _, item := range d.Items {
		subtotal += float64(item.Quantity) * item.UnitPrice
	}
	taxAmount := subtotal * (d.TaxRate / 100)
	return Totals{
		Subtotal:   subtotal,
		TaxAmount:  taxAmount,
		GrandTotal: subtotal + taxAmount,
	}
}

// IssuedAt parses the document date. Malformed dates yield the zero time.
func (d *Document) IssuedAt() time.Time {
	t, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DueAt parses the due date. Absent or malformed due dates yield the zero time.
func (d *Document) DueAt() time.Time {
	if d.DueDate == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, d.DueDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsOverdue reports whether an unpaid document's due date has passed.
func (d *Document) IsOverdue(today time.Time) bool {
	if d.Status != enum.DocumentStatusUnpaid || d.DueDate == "" {
		return false
	}
	due := d.DueAt()
	return !due.IsZero() && due.Before(today)
}

// DisplayStatus derives the status shown to users. Overdue takes precedence
// over the stored unpaid label; unrecognized stored values map to Unknown.
func (d *Document) DisplayStatus(today time.Time) enum.DisplayStatus {
	if d.IsOverdue(today) {
		return enum.DisplayStatusOverdue
	}
	switch d.Status {
	case enum.DocumentStatusPaid:
		return enum.DisplayStatusPaid
	case enum.DocumentStatusUnpaid:
		return enum.DisplayStatusUnpaid
	case enum.DocumentStatusDraft:
		return enum.DisplayStatusDraft
	default:
		return enum.DisplayStatusUnknown
	}
}

// NextDocumentNumber allocates the next sequential number for a document type,
// scoped to the given year. It scans existing numbers with a matching
// "{prefix}-{year}" scope, takes the highest sequence and increments it, so
// gaps left by deleted documents are never refilled. Numbers whose third
// segment is missing or non-numeric count as 0. Callers must allocate before
// inserting; the result is never recomputed for an already stored document.
func NextDocumentNumber(docs []Document, docType enum.DocumentType, year int) string {
	prefix := docType.Prefix()
	scope := fmt.Sprintf("%s-%d", prefix, year)

	max := 0
	for _, doc := range docs {
		if !strings.HasPrefix(doc.Number, scope) {
			continue
		}
		parts := strings.Split(doc.Number, "-")
		if len(parts) < 3 {
			continue
		}
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s-%d-%04d", prefix, year, max+1)
}
