package repository

import "github.com/deepshiftai/invoicer-api/internal/domain/entity"

// DocumentRegistry holds the authoritative collection of documents. All reads
// return copies so callers can mutate results freely.
type DocumentRegistry interface {
	// All returns every document in insertion order.
	All() []entity.Document
	// Find returns the document with the given id, or false when absent.
	Find(id string) (entity.Document, bool)
	// Upsert replaces the document with a matching id in place, or inserts
	// at the front when the id is new.
	Upsert(doc entity.Document)
	// Remove deletes the document with the given id. Unknown ids are a no-op.
	Remove(id string)
}
