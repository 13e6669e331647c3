package registry

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/deepshiftai/invoicer-api/internal/domain/entity"
	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
)

type fakeKV struct {
	data map[string]string
	sets int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.data[key] = value
	f.sets++
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func TestRegistryStartsEmpty(t *testing.T) {
	reg, err := NewDocumentRegistry(context.Background(), newFakeKV())
	if err != nil {
		t.Fatal(err)
	}
	if got := reg.All(); len(got) != 0 {
		t.Errorf("expected empty registry, got %d documents", len(got))
	}
}

func TestRegistryMalformedPayloadStartsEmpty(t *testing.T) {
	kv := newFakeKV()
	kv.data[DocumentsKey] = "{not json"

	reg, err := NewDocumentRegistry(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}
	if got := reg.All(); len(got) != 0 {
		t.Errorf("expected empty registry, got %d documents", len(got))
	}
}

func TestRegistryHydratesAndMigrates(t *testing.T) {
	docs := []map[string]any{
		{"id": "a", "type": "INVOICE", "number": "INV-2024-0001", "date": "2024-01-01"},
		{"id": "b", "type": "RECEIPT", "number": "REC-2024-0001", "date": "2024-01-02"},
		{"id": "c", "type": "INVOICE", "status": "draft", "template": "classic", "number": "INV-2024-0002", "date": "2024-01-03"},
	}
	payload, _ := json.Marshal(docs)
	kv := newFakeKV()
	kv.data[DocumentsKey] = string(payload)

	reg, err := NewDocumentRegistry(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}

	all := reg.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(all))
	}
	if all[0].ID != "a" || all[1].ID != "b" || all[2].ID != "c" {
		t.Errorf("insertion order not preserved: %v %v %v", all[0].ID, all[1].ID, all[2].ID)
	}
	if all[0].Status != enum.DocumentStatusUnpaid {
		t.Errorf("invoice without status should backfill to unpaid, got %q", all[0].Status)
	}
	if all[1].Status != enum.DocumentStatusPaid {
		t.Errorf("receipt without status should backfill to paid, got %q", all[1].Status)
	}
	if all[0].Template != enum.TemplateModern {
		t.Errorf("missing template should backfill to modern, got %q", all[0].Template)
	}
	if all[2].Status != enum.DocumentStatusDraft || all[2].Template != enum.TemplateClassic {
		t.Errorf("existing fields must not be overwritten: %q %q", all[2].Status, all[2].Template)
	}
}

func TestRegistryUpsertAndFind(t *testing.T) {
	kv := newFakeKV()
	reg, err := NewDocumentRegistry(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}

	reg.Upsert(entity.Document{ID: "a", Number: "INV-2024-0001", Status: enum.DocumentStatusDraft})
	reg.Upsert(entity.Document{ID: "b", Number: "INV-2024-0002", Status: enum.DocumentStatusDraft})

	doc, ok := reg.Find("a")
	if !ok || doc.Number != "INV-2024-0001" {
		t.Fatalf("Find(a) = %v, %v", doc, ok)
	}
	if _, ok := reg.Find("missing"); ok {
		t.Error("Find on unknown id should report false")
	}

	// New documents are prepended.
	all := reg.All()
	if all[0].ID != "b" || all[1].ID != "a" {
		t.Fatalf("expected newest first, got %v %v", all[0].ID, all[1].ID)
	}

	// Updating an existing id replaces in place without reordering.
	reg.Upsert(entity.Document{ID: "a", Number: "INV-2024-0001", Status: enum.DocumentStatusUnpaid})
	all = reg.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 documents after update, got %d", len(all))
	}
	if all[1].ID != "a" || all[1].Status != enum.DocumentStatusUnpaid {
		t.Errorf("update should replace in place: %v", all[1])
	}

	if kv.sets != 3 {
		t.Errorf("expected one persist per mutation, got %d", kv.sets)
	}
}

func TestRegistryRemove(t *testing.T) {
	kv := newFakeKV()
	reg, err := NewDocumentRegistry(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}

	reg.Upsert(entity.Document{ID: "a"})
	reg.Upsert(entity.Document{ID: "b"})
	reg.Upsert(entity.Document{ID: "c"})

	reg.Remove("b")
	all := reg.All()
	if len(all) != 2 || all[0].ID != "c" || all[1].ID != "a" {
		t.Fatalf("unexpected state after remove: %v", all)
	}
	if doc, ok := reg.Find("a"); !ok || doc.ID != "a" {
		t.Error("index should be rebuilt after remove")
	}

	before := kv.sets
	reg.Remove("missing")
	if kv.sets != before {
		t.Error("removing an unknown id should not persist")
	}
}

func TestRegistryPersistsSnapshot(t *testing.T) {
	kv := newFakeKV()
	reg, err := NewDocumentRegistry(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}

	reg.Upsert(entity.Document{ID: "a", Type: enum.DocumentTypeInvoice, Status: enum.DocumentStatusDraft})

	var stored []entity.Document
	if err := json.Unmarshal([]byte(kv.data[DocumentsKey]), &stored); err != nil {
		t.Fatalf("persisted payload is not valid JSON: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != "a" {
		t.Errorf("unexpected persisted payload: %v", stored)
	}

	// A second registry hydrated from the same store sees the same documents.
	reg2, err := NewDocumentRegistry(context.Background(), kv)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reg2.Find("a"); !ok {
		t.Error("rehydrated registry should contain persisted document")
	}
}
