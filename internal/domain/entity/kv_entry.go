package entity

import "time"

// KVEntry is a persisted key/value row. The document registry and branding
// assets are stored here as opaque string payloads.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the KVEntry entity
func (KVEntry) TableName() string {
	return "kv_entries"
}
