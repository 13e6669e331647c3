package service

import (
	"context"
	"time"

	"github.com/deepshiftai/invoicer-api/internal/domain/entity"
	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
	"github.com/deepshiftai/invoicer-api/internal/domain/repository"
	"github.com/deepshiftai/invoicer-api/pkg/apperror"
	"github.com/deepshiftai/invoicer-api/pkg/utils"
)

// DocumentService handles document lifecycle and listing logic
type DocumentService struct {
	registry repository.DocumentRegistry
	branding *BrandingService
	now      func() time.Time
}

// NewDocumentService creates a new document service
func NewDocumentService(registry repository.DocumentRegistry, branding *BrandingService) *DocumentService {
	return &DocumentService{
		registry: registry,
		branding: branding,
		now:      time.Now,
	}
}

// NewDraft builds a fresh editable document with editor defaults and a
// pre-assigned number. It is not stored until the caller saves it.
func (s *DocumentService) NewDraft(ctx context.Context) (*entity.Document, error) {
	signature := ""
	if s.branding != nil {
		sig, err := s.branding.Signature(ctx)
		if err == nil {
			signature = sig
		}
	}
	doc := entity.NewDocument(s.registry.All(), signature, s.now())
	return doc, nil
}

// SaveDraft stores a document as a draft. The id is assigned when absent and
// an unknown template falls back to modern; everything else is kept as sent,
// including negative quantities and rates.
func (s *DocumentService) SaveDraft(ctx context.Context, doc entity.Document) (*entity.Document, error) {
	if !doc.Type.Valid() {
		return nil, apperror.NewBadRequestError("Unknown document type")
	}
	if doc.ID == "" {
		doc.ID = utils.NewUUID().String()
	}
	if !doc.Template.Valid() {
		doc.Template = enum.TemplateModern
	}
	doc.Status = enum.DocumentStatusDraft
	s.registry.Upsert(doc)
	return &doc, nil
}

// Finalize issues a document. A document already in the registry keeps the
// number it was sent with; a new one is allocated the next number for its
// type in the current year. Receipts finalize as paid, invoices as unpaid.
func (s *DocumentService) Finalize(ctx context.Context, doc entity.Document) (*entity.Document, error) {
	if !doc.Type.Valid() {
		return nil, apperror.NewBadRequestError("Unknown document type")
	}
	if doc.ID == "" {
		doc.ID = utils.NewUUID().String()
	}
	if !doc.Template.Valid() {
		doc.Template = enum.TemplateModern
	}

	if _, exists := s.registry.Find(doc.ID); !exists {
		doc.Number = entity.NextDocumentNumber(s.registry.All(), doc.Type, s.now().Year())
	}

	if doc.Type == enum.DocumentTypeReceipt {
		doc.Status = enum.DocumentStatusPaid
	} else {
		doc.Status = enum.DocumentStatusUnpaid
	}

	s.registry.Upsert(doc)
	return &doc, nil
}

// MarkPaid transitions an issued invoice to paid.
func (s *DocumentService) MarkPaid(ctx context.Context, id string) (*entity.Document, error) {
	doc, ok := s.registry.Find(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Document")
	}
	if doc.Status == enum.DocumentStatusDraft {
		return nil, apperror.NewBadRequestError("Draft documents cannot be marked as paid")
	}
	doc.Status = enum.DocumentStatusPaid
	s.registry.Upsert(doc)
	return &doc, nil
}

// Get returns a document by id.
func (s *DocumentService) Get(ctx context.Context, id string) (*entity.Document, error) {
	doc, ok := s.registry.Find(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Document")
	}
	return &doc, nil
}

// Delete removes a document. The freed number is never reissued because
// allocation always increments past the highest surviving sequence.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	if _, ok := s.registry.Find(id); !ok {
		return apperror.NewNotFoundError("Document")
	}
	s.registry.Remove(id)
	return nil
}

// List filters and sorts the current documents.
func (s *DocumentService) List(ctx context.Context, criteria entity.QueryCriteria) []entity.Document {
	return entity.Query(s.registry.All(), criteria, s.now())
}
