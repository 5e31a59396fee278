package store

import (
	"fmt"
	"maps"
)

// System-assigned record fields.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// Record is one schemaless item of a collection: a flat field name to scalar map.
type Record map[string]any

// ID returns the record's id, or "" when it has none.
func (r Record) ID() string {
	id, _ := r[FieldID].(string)
	return id
}

// Clone returns a shallow copy. Values are scalars so this is a full copy.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Matches reports whether every filter equals the record's value rendered as text.
// A missing or null field never matches.
func (r Record) Matches(filters map[string]string) bool {
	for field, want := range filters {
		v, ok := r[field]
		if !ok || v == nil {
			return false
		}
		if fmt.Sprint(v) != want {
			return false
		}
	}
	return true
}
