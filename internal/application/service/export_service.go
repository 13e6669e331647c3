package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/deepshiftai/invoicer-api/internal/config"
	"github.com/deepshiftai/invoicer-api/internal/domain/entity"
	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
	"github.com/deepshiftai/invoicer-api/pkg/money"
	"github.com/deepshiftai/invoicer-api/pkg/numword"
	"github.com/jung-kurt/gofpdf"
)

// ExportService renders documents as PDF files
type ExportService struct {
	verification *VerificationService
	company      config.CompanyConfig
	now          func() time.Time
}

// NewExportService creates a new export service
func NewExportService(verification *VerificationService, company config.CompanyConfig) *ExportService {
	return &ExportService{
		verification: verification,
		company:      company,
		now:          time.Now,
	}
}

// pdfStyle is the per-template palette and typeface.
type pdfStyle struct {
	font      string
	accentR   int
	accentG   int
	accentB   int
	headerBar bool
}

func styleFor(template enum.Template) pdfStyle {
	switch template {
	case enum.TemplateClassic:
		return pdfStyle{font: "Times", accentR: 40, accentG: 40, accentB: 40}
	case enum.TemplateMinimalist:
		return pdfStyle{font: "Helvetica", accentR: 130, accentG: 130, accentB: 130}
	default:
		return pdfStyle{font: "Helvetica", accentR: 13, accentG: 148, accentB: 136, headerBar: true}
	}
}

// PDF renders the document and returns the file bytes plus the download
// filename, which is the document number with a .pdf extension.
func (s *ExportService) PDF(doc *entity.Document) ([]byte, string, error) {
	style := styleFor(doc.Template)
	totals := doc.Totals()

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()

	if style.headerBar {
		pdf.SetFillColor(style.accentR, style.accentG, style.accentB)
		pdf.Rect(0, 0, pageW, 8, "F")
		pdf.SetY(15)
	}

	s.drawWatermark(pdf, doc)

	// Header: logo or company name on the left, document title on the right.
	if img, kind, ok := decodeDataURL(doc.LogoURL); ok {
		name := "logo." + strings.ToLower(kind)
		pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: kind}, bytes.NewReader(img))
		pdf.ImageOptions(name, 15, pdf.GetY(), 40, 0, false, gofpdf.ImageOptions{ImageType: kind}, 0, "")
		pdf.SetY(pdf.GetY() + 22)
	} else {
		pdf.SetFont(style.font, "B", 20)
		pdf.SetTextColor(style.accentR, style.accentG, style.accentB)
		pdf.CellFormat(0, 10, s.company.Name, "", 1, "L", false, 0, "")
	}
	pdf.SetFont(style.font, "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 5, s.company.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, s.company.Email, "", 1, "L", false, 0, "")

	title := "INVOICE"
	if doc.Type == enum.DocumentTypeReceipt {
		title = "RECEIPT"
	}
	pdf.SetXY(110, 20)
	pdf.SetFont(style.font, "B", 24)
	pdf.SetTextColor(style.accentR, style.accentG, style.accentB)
	pdf.CellFormat(85, 10, title, "", 1, "R", false, 0, "")
	pdf.SetX(110)
	pdf.SetFont(style.font, "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(85, 5, doc.Number, "", 1, "R", false, 0, "")
	pdf.SetX(110)
	pdf.CellFormat(85, 5, "Date: "+doc.Date, "", 1, "R", false, 0, "")
	if doc.DueDate != "" && doc.Type == enum.DocumentTypeInvoice {
		pdf.SetX(110)
		pdf.CellFormat(85, 5, "Due: "+doc.DueDate, "", 1, "R", false, 0, "")
	}

	// Bill-to block.
	pdf.SetY(60)
	pdf.SetFont(style.font, "B", 10)
	pdf.SetTextColor(style.accentR, style.accentG, style.accentB)
	pdf.CellFormat(0, 6, "BILL TO", "", 1, "L", false, 0, "")
	pdf.SetFont(style.font, "", 10)
	pdf.SetTextColor(30, 30, 30)
	for _, line := range []string{doc.Customer.Name, doc.Customer.Address, doc.Customer.Email, doc.Customer.Phone} {
		if line != "" {
			pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
		}
	}

	s.drawItemsTable(pdf, doc, style)
	s.drawTotals(pdf, doc, totals, style)

	if doc.Status != enum.DocumentStatusDraft {
		pdf.Ln(4)
		pdf.SetFont(style.font, "I", 9)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(0, 5, "Amount in words: "+numword.AmountInWords(totals.GrandTotal), "", 1, "L", false, 0, "")
	}

	if doc.Type == enum.DocumentTypeReceipt && doc.PaymentMethod != "" {
		pdf.Ln(2)
		pdf.SetFont(style.font, "", 9)
		pdf.SetTextColor(30, 30, 30)
		pdf.CellFormat(0, 5, "Payment method: "+doc.PaymentMethod, "", 1, "L", false, 0, "")
	}

	if doc.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont(style.font, "B", 9)
		pdf.SetTextColor(style.accentR, style.accentG, style.accentB)
		pdf.CellFormat(0, 5, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont(style.font, "", 9)
		pdf.SetTextColor(60, 60, 60)
		pdf.MultiCell(0, 5, doc.Notes, "", "L", false)
	}

	s.drawFooter(pdf, doc, style)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), doc.Number + ".pdf", nil
}

// drawWatermark stamps PAID or OVERDUE diagonally across the page.
func (s *ExportService) drawWatermark(pdf *gofpdf.Fpdf, doc *entity.Document) {
	var text string
	switch doc.DisplayStatus(s.now()) {
	case enum.DisplayStatusPaid:
		text = "PAID"
	case enum.DisplayStatusOverdue:
		text = "OVERDUE"
	default:
		return
	}

	pageW, pageH := pdf.GetPageSize()
	pdf.SetFont("Helvetica", "B", 70)
	pdf.SetTextColor(225, 225, 225)
	pdf.TransformBegin()
	pdf.TransformRotate(45, pageW/2, pageH/2)
	pdf.SetXY(pageW/2-60, pageH/2-10)
	pdf.CellFormat(120, 20, text, "", 0, "C", false, 0, "")
	pdf.TransformEnd()
}

func (s *ExportService) drawItemsTable(pdf *gofpdf.Fpdf, doc *entity.Document, style pdfStyle) {
	pdf.Ln(8)
	pdf.SetFont(style.font, "B", 9)
	pdf.SetFillColor(style.accentR, style.accentG, style.accentB)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(100, 8, "Description", "", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Unit Price", "", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Amount", "", 1, "R", true, 0, "")

	pdf.SetFont(style.font, "", 9)
	pdf.SetTextColor(30, 30, 30)
	fill := false
	for _, item := range doc.Items {
		pdf.SetFillColor(245, 245, 245)
		amount := float64(item.Quantity) * item.UnitPrice
		pdf.CellFormat(100, 7, item.Description, "", 0, "L", fill, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", item.Quantity), "", 0, "R", fill, 0, "")
		pdf.CellFormat(30, 7, money.FormatUSD(item.UnitPrice), "", 0, "R", fill, 0, "")
		pdf.CellFormat(35, 7, money.FormatUSD(amount), "", 1, "R", fill, 0, "")
		fill = !fill
	}
}

func (s *ExportService) drawTotals(pdf *gofpdf.Fpdf, doc *entity.Document, totals entity.Totals, style pdfStyle) {
	pdf.Ln(3)
	pdf.SetFont(style.font, "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetX(110)
	pdf.CellFormat(50, 6, "Subtotal", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 6, money.FormatUSD(totals.Subtotal), "", 1, "R", false, 0, "")
	pdf.SetX(110)
	pdf.CellFormat(50, 6, fmt.Sprintf("Tax (%g%%)", doc.TaxRate), "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 6, money.FormatUSD(totals.TaxAmount), "", 1, "R", false, 0, "")
	pdf.SetX(110)
	pdf.SetFont(style.font, "B", 12)
	pdf.SetTextColor(style.accentR, style.accentG, style.accentB)
	pdf.CellFormat(50, 8, "Total", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, money.FormatUSD(totals.GrandTotal), "", 1, "R", false, 0, "")
}

// drawFooter places the signature and the verification QR code at the bottom.
func (s *ExportService) drawFooter(pdf *gofpdf.Fpdf, doc *entity.Document, style pdfStyle) {
	_, pageH := pdf.GetPageSize()
	y := pageH - 55

	if img, kind, ok := decodeDataURL(doc.SignatureURL); ok {
		name := "signature." + strings.ToLower(kind)
		pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: kind}, bytes.NewReader(img))
		pdf.ImageOptions(name, 15, y, 45, 0, false, gofpdf.ImageOptions{ImageType: kind}, 0, "")
		pdf.SetXY(15, y+18)
		pdf.SetFont(style.font, "", 8)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(45, 4, "Authorized signature", "T", 1, "L", false, 0, "")
	}

	if png, err := s.verification.QRCodePNG(doc, 256); err == nil {
		pdf.RegisterImageOptionsReader("verify-qr.png", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
		pdf.ImageOptions("verify-qr.png", 170, y, 25, 25, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.SetXY(160, y+26)
		pdf.SetFont(style.font, "", 7)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(45, 4, "Scan to verify", "", 1, "C", false, 0, "")
	}
}

// decodeDataURL decodes a base64 image data URL into raw bytes and the image
// type gofpdf expects ("PNG" or "JPG"). Anything else is rejected.
func decodeDataURL(dataURL string) ([]byte, string, bool) {
	if dataURL == "" {
		return nil, "", false
	}
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") {
		return nil, "", false
	}

	var kind string
	switch {
	case strings.HasPrefix(header, "data:image/png"):
		kind = "PNG"
	case strings.HasPrefix(header, "data:image/jpeg"), strings.HasPrefix(header, "data:image/jpg"):
		kind = "JPG"
	default:
		return nil, "", false
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", false
	}
	return raw, kind, true
}
