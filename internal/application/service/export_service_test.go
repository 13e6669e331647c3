package service

import (
	"encoding/base64"
	"testing"

	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
)

func TestDecodeDataURL(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

	raw, kind, ok := decodeDataURL(encoded)
	if !ok || kind != "PNG" {
		t.Fatalf("decodeDataURL = %q, %v", kind, ok)
	}
	if string(raw) != string(png) {
		t.Error("decoded bytes do not round-trip")
	}

	if _, kind, ok := decodeDataURL("data:image/jpeg;base64,/9j/4A=="); !ok || kind != "JPG" {
		t.Errorf("jpeg should decode as JPG, got %q, %v", kind, ok)
	}

	for _, bad := range []string{"", "not a data url", "data:text/plain;base64,aGk=", "data:image/png;base64,!!!"} {
		if _, _, ok := decodeDataURL(bad); ok {
			t.Errorf("decodeDataURL(%q) should fail", bad)
		}
	}
}

func TestStyleFor(t *testing.T) {
	if styleFor(enum.TemplateClassic).font != "Times" {
		t.Error("classic template should use Times")
	}
	if !styleFor(enum.TemplateModern).headerBar {
		t.Error("modern template should draw the header bar")
	}
	if styleFor(enum.TemplateMinimalist).headerBar {
		t.Error("minimalist template should not draw the header bar")
	}
}

func TestPDFOutput(t *testing.T) {
	doc := testInvoice()
	verification := NewVerificationService(&memRegistry{}, "https://deepshiftai.com")
	svc := NewExportService(verification, testCompany())

	for _, template := range []enum.Template{enum.TemplateModern, enum.TemplateClassic, enum.TemplateMinimalist} {
		doc.Template = template
		data, filename, err := svc.PDF(&doc)
		if err != nil {
			t.Fatalf("PDF(%s): %v", template, err)
		}
		if filename != "INV-2024-0007.pdf" {
			t.Errorf("filename = %q, want INV-2024-0007.pdf", filename)
		}
		if len(data) < 4 || string(data[:4]) != "%PDF" {
			t.Errorf("PDF(%s) did not produce a PDF header", template)
		}
	}
}
