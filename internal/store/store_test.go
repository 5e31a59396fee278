package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	seed, err := DefaultSeed()
	require.NoError(t, err)
	return New(seed)
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestStore_ReadSeededProjects(t *testing.T) {
	s := newTestStore(t)

	items := s.Read(Projects, nil)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID())
	assert.Equal(t, "2", items[1].ID())
	assert.Equal(t, 5, items[0]["total_members"])
	assert.Nil(t, items[1]["project_link"])

	assert.Empty(t, s.Read(People, nil))
	assert.NotNil(t, s.Read("does_not_exist", nil))
}

func TestStore_ReadFilters(t *testing.T) {
	s := newTestStore(t)

	t.Run("single equality filter", func(t *testing.T) {
		items := s.Read(Projects, map[string]string{"status": "completed"})
		require.Len(t, items, 1)
		assert.Equal(t, "2", items[0].ID())
	})

	t.Run("filters are ANDed", func(t *testing.T) {
		items := s.Read(Projects, map[string]string{"status": "ongoing", "team_leader": "Prof. Nasir Uddin"})
		assert.Empty(t, items)
	})

	t.Run("numeric field compared as text", func(t *testing.T) {
		items := s.Read(Projects, map[string]string{"total_members": "4"})
		require.Len(t, items, 1)
		assert.Equal(t, "2", items[0].ID())
	})

	t.Run("missing and null fields never match", func(t *testing.T) {
		assert.Empty(t, s.Read(Projects, map[string]string{"category": "grid"}))
		assert.Empty(t, s.Read(Projects, map[string]string{"project_link": "<nil>"}))
	})
}

func TestStore_InsertAssignsSystemFields(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := New(nil, WithClock(fixedClock(now)))

	rec := s.Insert(Projects, Record{"name": "Grid", "id": "spoofed", "created_at": "yesterday"})

	assert.NotEmpty(t, rec.ID())
	assert.NotEqual(t, "spoofed", rec.ID())
	assert.Equal(t, now.Format(time.RFC3339Nano), rec[FieldCreatedAt])
	assert.Equal(t, "Grid", rec["name"])
	assert.NotContains(t, rec, FieldUpdatedAt)

	items := s.Read(Projects, nil)
	require.Len(t, items, 1)
	assert.Equal(t, rec, items[0])
}

func TestStore_InsertIDsAreUnique(t *testing.T) {
	s := New(nil)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		rec := s.Insert(Projects, Record{"name": fmt.Sprintf("p%d", i)})
		require.NotEmpty(t, rec.ID())
		require.False(t, seen[rec.ID()], "duplicate id %s", rec.ID())
		seen[rec.ID()] = true
	}
}

func TestStore_InsertPreservesOrder(t *testing.T) {
	s := newTestStore(t)
	a := s.Insert(Projects, Record{"name": "A"})
	b := s.Insert(Projects, Record{"name": "B"})

	items := s.Read(Projects, nil)
	require.Len(t, items, 4)
	assert.Equal(t, []string{"1", "2", a.ID(), b.ID()}, []string{items[0].ID(), items[1].ID(), items[2].ID(), items[3].ID()})
}

func TestStore_UpdateMergesFields(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := New(nil, WithClock(fixedClock(now)))
	rec := s.Insert(Projects, Record{"name": "Grid", "team_leader": "Dr. X", "funded_by": "Agency"})

	updated, err := s.Update(Projects, rec.ID(), Record{"team_leader": "", "project_link": nil, "id": "other"})
	require.NoError(t, err)

	assert.Equal(t, rec.ID(), updated.ID())
	assert.Equal(t, "", updated["team_leader"])
	assert.Contains(t, updated, "project_link")
	assert.Nil(t, updated["project_link"])
	assert.Equal(t, "Agency", updated["funded_by"])
	assert.Equal(t, "Grid", updated["name"])
	assert.Equal(t, now.Format(time.RFC3339Nano), updated[FieldUpdatedAt])

	reread := s.Read(Projects, map[string]string{"id": rec.ID()})
	require.Len(t, reread, 1)
	assert.Equal(t, "", reread[0]["team_leader"])
}

func TestStore_UpdateUnknownID(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Update(Projects, "missing", Record{"name": "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.Delete(Projects, "1"))
	assert.False(t, s.Delete(Projects, "1"))

	items := s.Read(Projects, nil)
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID())

	assert.False(t, s.Delete("never_created", "x"))
}

func TestStore_ReturnedRecordsAreCopies(t *testing.T) {
	s := newTestStore(t)

	items := s.Read(Projects, nil)
	items[0]["name"] = "mutated"
	assert.NotEqual(t, "mutated", s.Read(Projects, nil)[0]["name"])

	settings := s.Settings()
	settings["site_title"] = "mutated"
	assert.NotEqual(t, "mutated", s.Settings()["site_title"])
}

func TestStore_SeparateStoresShareNothing(t *testing.T) {
	seed, err := DefaultSeed()
	require.NoError(t, err)

	a := New(seed)
	b := New(seed)
	a.Delete(Projects, "1")

	assert.Len(t, a.Read(Projects, nil), 1)
	assert.Len(t, b.Read(Projects, nil), 2)
}

func TestStore_ConcurrentWriters(t *testing.T) {
	s := New(nil)
	rec := s.Insert(Projects, Record{"name": "race"})

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				s.Insert(News, Record{"title": fmt.Sprintf("%d-%d", i, j)})
				_, _ = s.Update(Projects, rec.ID(), Record{"status": fmt.Sprint(i)})
				s.Read(Projects, nil)
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	assert.Len(t, s.Read(News, nil), 400)
	assert.Len(t, s.Read(Projects, nil), 1)
}
