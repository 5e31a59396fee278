package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Collection names served by the API.
const (
	Projects      = "projects"
	People        = "people"
	Publications  = "publications"
	Achievements  = "achievements"
	News          = "news"
	Events        = "events"
	ResearchAreas = "research_areas"
	PhotoGallery  = "photo_gallery"
)

// Store owns every collection and the settings record. It is created once at
// startup and handed to whoever needs it.
//
// The mutex only keeps concurrent map access safe. There are no transactions:
// two writers updating the same record resolve as last-write-wins.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]Record
	settings    Record

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New builds a store holding a copy of the seed. A nil seed gives an empty store.
func New(seed *Seed, opts ...Option) *Store {
	s := &Store{
		collections: make(map[string][]Record),
		settings:    Record{},
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	if seed != nil {
		for name, records := range seed.Collections {
			items := make([]Record, 0, len(records))
			for _, r := range records {
				items = append(items, r.Clone())
			}
			s.collections[name] = items
		}
		if seed.Settings != nil {
			s.settings = seed.Settings.Clone()
		}
	}
	return s
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

// Read returns the records of a collection in insertion order, keeping only those
// whose fields equal every filter. Unknown collections read as empty.
func (s *Store) Read(collection string, filters map[string]string) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.collections[collection]
	out := make([]Record, 0, len(items))
	for _, r := range items {
		if r.Matches(filters) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Insert stores fields as a new record with a fresh id and created_at, and
// returns the stored record. Caller supplied id and created_at are replaced.
func (s *Store) Insert(collection string, fields Record) Record {
	rec := fields.Clone()
	if rec == nil {
		rec = Record{}
	}
	rec[FieldID] = s.newID()
	rec[FieldCreatedAt] = s.timestamp()

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], rec)
	s.mu.Unlock()

	return rec.Clone()
}

// Update merges fields into the record with the given id. Every supplied field
// overwrites the stored value, empty strings and nulls included; absent fields
// are left alone. The id itself never changes.
func (s *Store) Update(collection, id string, fields Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.collections[collection] {
		if rec.ID() != id {
			continue
		}
		for k, v := range fields {
			if k == FieldID {
				continue
			}
			rec[k] = v
		}
		rec[FieldUpdatedAt] = s.timestamp()
		return rec.Clone(), nil
	}
	return nil, fmt.Errorf("%s/%s: %w", collection, id, ErrNotFound)
}

// Delete removes the record with the given id. Deleting an unknown id is not an
// error; the return value only reports whether something was removed.
func (s *Store) Delete(collection, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.collections[collection]
	kept := items[:0]
	removed := false
	for _, rec := range items {
		if rec.ID() == id {
			removed = true
			continue
		}
		kept = append(kept, rec)
	}
	clear(items[len(kept):])
	s.collections[collection] = kept
	return removed
}

// Settings returns a copy of the site settings record.
func (s *Store) Settings() Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}
