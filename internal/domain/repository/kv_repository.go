package repository

import "context"

// KVStore is a string key to string value store. Values are JSON or data URL
// payloads owned by the caller; the store does not inspect them.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
