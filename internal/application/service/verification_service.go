package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/deepshiftai/invoicer-api/internal/domain/entity"
	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
	"github.com/deepshiftai/invoicer-api/internal/domain/repository"
	"github.com/deepshiftai/invoicer-api/pkg/apperror"
	qrcode "github.com/skip2/go-qrcode"
)

// QRPayload is the JSON embedded in a document's QR code. Scanners resolve the
// verification URL; the remaining fields let them cross-check what the server
// returns.
type QRPayload struct {
	Type            string  `json:"type"`
	Number          string  `json:"number"`
	Date            string  `json:"date"`
	Total           float64 `json:"total"`
	VerificationURL string  `json:"verificationUrl"`
}

// VerificationResult is what a scanner sees when resolving a QR code.
type VerificationResult struct {
	Valid    bool               `json:"valid"`
	Type     enum.DocumentType  `json:"type,omitempty"`
	Number   string             `json:"number,omitempty"`
	Date     string             `json:"date,omitempty"`
	Total    float64            `json:"total,omitempty"`
	Status   enum.DisplayStatus `json:"status,omitempty"`
	Customer string             `json:"customer,omitempty"`
}

// VerificationService builds QR payloads and resolves them back to documents
type VerificationService struct {
	registry repository.DocumentRegistry
	baseURL  string
	now      func() time.Time
}

// NewVerificationService creates a new verification service
func NewVerificationService(registry repository.DocumentRegistry, baseURL string) *VerificationService {
	return &VerificationService{
		registry: registry,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
	}
}

// Payload builds the QR payload for a document.
func (s *VerificationService) Payload(doc *entity.Document) QRPayload {
	return QRPayload{
		Type:            string(doc.Type),
		Number:          doc.Number,
		Date:            doc.Date,
		Total:           doc.Totals().GrandTotal,
		VerificationURL: s.baseURL + "/verify/" + doc.ID,
	}
}

// QRCodePNG renders the payload as a PNG QR code of the given pixel size.
func (s *VerificationService) QRCodePNG(doc *entity.Document, size int) ([]byte, error) {
	payload, err := json.Marshal(s.Payload(doc))
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(payload), qrcode.Medium, size)
}

// Verify resolves a document id from a scanned QR code. Unknown ids return an
// invalid result along with a not-found error.
func (s *VerificationService) Verify(ctx context.Context, id string) (*VerificationResult, error) {
	doc, ok := s.registry.Find(id)
	if !ok {
		return &VerificationResult{Valid: false}, apperror.NewNotFoundError("Document")
	}
	return &VerificationResult{
		Valid:    true,
		Type:     doc.Type,
		Number:   doc.Number,
		Date:     doc.Date,
		Total:    doc.Totals().GrandTotal,
		Status:   doc.DisplayStatus(s.now()),
		Customer: doc.Customer.Name,
	}, nil
}

// DocumentIDFromPayload extracts the document id from scanned QR content. The
// id is the last path segment of the verification URL.
func DocumentIDFromPayload(content string) (string, error) {
	var payload QRPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return "", apperror.NewBadRequestError("QR payload is not valid JSON")
	}
	url := strings.TrimRight(payload.VerificationURL, "/")
	i := strings.LastIndex(url, "/")
	if i < 0 || i == len(url)-1 {
		return "", apperror.NewBadRequestError("QR payload has no verification URL")
	}
	return url[i+1:], nil
}
