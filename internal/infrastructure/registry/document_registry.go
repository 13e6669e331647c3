// Package registry keeps the document collection in memory and mirrors every
// mutation to the key/value store as a single JSON payload.
package registry

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/deepshiftai/invoicer-api/internal/domain/entity"
	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
	domainRepo "github.com/deepshiftai/invoicer-api/internal/domain/repository"
	"github.com/deepshiftai/invoicer-api/internal/logger"
)

// DocumentsKey is the KV store key the serialized registry lives under.
const DocumentsKey = "invoicer-documents"

type documentRegistry struct {
	mu    sync.RWMutex
	docs  []entity.Document
	index map[string]int
	kv    domainRepo.KVStore
}

// NewDocumentRegistry hydrates the registry from the KV store. A missing key
// yields an empty registry; a payload that fails to parse is treated the same
// way rather than blocking startup.
func NewDocumentRegistry(ctx context.Context, kv domainRepo.KVStore) (domainRepo.DocumentRegistry, error) {
	r := &documentRegistry{
		index: make(map[string]int),
		kv:    kv,
	}

	raw, ok, err := kv.Get(ctx, DocumentsKey)
	if err != nil {
		return nil, err
	}
	if ok {
		var docs []entity.Document
		if err := json.Unmarshal([]byte(raw), &docs); err != nil {
			lg := logger.WithComponent("registry")
			lg.Warn().Err(err).
				Msg("stored documents payload is malformed, starting empty")
		} else {
			for _, doc := range docs {
				if doc.ID == "" {
					continue
				}
				r.index[doc.ID] = len(r.docs)
				r.docs = append(r.docs, migrate(doc))
			}
		}
	}
	return r, nil
}

// migrate backfills fields that older payloads did not carry.
func migrate(doc entity.Document) entity.Document {
	if doc.Status == "" {
		if doc.Type == enum.DocumentTypeReceipt {
			doc.Status = enum.DocumentStatusPaid
		} else {
			doc.Status = enum.DocumentStatusUnpaid
		}
	}
	if doc.Template == "" {
		doc.Template = enum.TemplateModern
	}
	return doc
}

func (r *documentRegistry) All() []entity.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Document, len(r.docs))
	copy(out, r.docs)
	return out
}

func (r *documentRegistry) Find(id string) (entity.Document, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return entity.Document{}, false
	}
	return r.docs[i], true
}

func (r *documentRegistry) Upsert(doc entity.Document) {
	r.mu.Lock()
	if i, ok := r.index[doc.ID]; ok {
		r.docs[i] = doc
	} else {
		// New documents go to the front so listings show them first on ties.
		r.docs = append([]entity.Document{doc}, r.docs...)
		r.reindex()
	}
	snapshot := make([]entity.Document, len(r.docs))
	copy(snapshot, r.docs)
	r.mu.Unlock()

	r.persist(snapshot)
}

func (r *documentRegistry) reindex() {
	for i, doc := range r.docs {
		r.index[doc.ID] = i
	}
}

func (r *documentRegistry) Remove(id string) {
	r.mu.Lock()
	i, ok := r.index[id]
	if !ok {
		r.mu.Unlock()
		return
	}
	r.docs = append(r.docs[:i], r.docs[i+1:]...)
	delete(r.index, id)
	r.reindex()
	snapshot := make([]entity.Document, len(r.docs))
	copy(snapshot, r.docs)
	r.mu.Unlock()

	r.persist(snapshot)
}

// persist mirrors the snapshot to the KV store. Failures are logged, not
// returned; the in-memory state is already updated and stays authoritative.
func (r *documentRegistry) persist(snapshot []entity.Document) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		lg := logger.WithComponent("registry")
		lg.Error().Err(err).Msg("failed to serialize documents")
		return
	}
	if err := r.kv.Set(context.Background(), DocumentsKey, string(payload)); err != nil {
		lg := logger.WithComponent("registry")
		lg.Error().Err(err).Msg("failed to persist documents")
	}
}
