package enum

// DocumentType distinguishes invoices from receipts.
type DocumentType string

const (
	DocumentTypeInvoice DocumentType = "INVOICE"
	DocumentTypeReceipt DocumentType = "RECEIPT"
)

// Prefix returns the document-number prefix for the type.
func (t DocumentType) Prefix() string {
	if t == DocumentTypeReceipt {
		return "REC"
	}
	return "INV"
}

// Valid reports whether the value is a known document type.
func (t DocumentType) Valid() bool {
	return t == DocumentTypeInvoice || t == DocumentTypeReceipt
}
