package enum

// DocumentStatus is the stored status of a document. The value shown to users
// is derived from this plus the due date; see entity.Document.DisplayStatus.
type DocumentStatus string

const (
	DocumentStatusDraft  DocumentStatus = "draft"
	DocumentStatusUnpaid DocumentStatus = "unpaid"
	DocumentStatusPaid   DocumentStatus = "paid"
)

// DisplayStatus is a computed, display-only status. It is never persisted.
type DisplayStatus string

const (
	DisplayStatusOverdue DisplayStatus = "Overdue"
	DisplayStatusPaid    DisplayStatus = "Paid"
	DisplayStatusUnpaid  DisplayStatus = "Unpaid"
	DisplayStatusDraft   DisplayStatus = "Draft"
	DisplayStatusUnknown DisplayStatus = "Unknown"
)
