package client

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicelog/internal/domain/servicerecord"
)

func newTestCache(t *testing.T) *SQLiteCache {
	t.Helper()

	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	return cache
}

func testRecord(id string, createdAt time.Time) servicerecord.ServiceRecord {
	return servicerecord.ServiceRecord{
		ID:            id,
		Date:          createdAt,
		ServiceType:   "Oil Change",
		ServiceTime:   1.5,
		EquipmentID:   "EXC-001",
		EquipmentType: "Excavator",
		Technician:    "Dana",
		ServiceNotes:  "Routine service",
		UserID:        "user-1",
		CreatedAt:     createdAt,
	}
}

func TestSQLiteCache_SaveAndGet(t *testing.T) {
	cache := newTestCache(t)

	rec := testRecord("rec-1", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, cache.Save(rec))

	got, err := cache.Get("rec-1")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Technician, got.Technician)
	assert.False(t, got.CachedAt.IsZero())
}

func TestSQLiteCache_GetMissing(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.Get("nope")
	assert.ErrorIs(t, err, ErrNotCached)
}

func TestSQLiteCache_SaveOverwrites(t *testing.T) {
	cache := newTestCache(t)

	rec := testRecord("rec-1", time.Now())
	require.NoError(t, cache.Save(rec))

	rec.Technician = "Riley"
	require.NoError(t, cache.Save(rec))

	got, err := cache.Get("rec-1")
	require.NoError(t, err)
	assert.Equal(t, "Riley", got.Technician)
}

func TestSQLiteCache_ReplaceAll(t *testing.T) {
	cache := newTestCache(t)

	require.NoError(t, cache.Save(testRecord("stale", time.Now())))

	fresh := []servicerecord.ServiceRecord{
		testRecord("rec-1", time.Now().Add(-time.Hour)),
		testRecord("rec-2", time.Now()),
	}
	require.NoError(t, cache.ReplaceAll(fresh))

	records, err := cache.List()
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first, stale entry gone.
	assert.Equal(t, "rec-2", records[0].ID)
	assert.Equal(t, "rec-1", records[1].ID)

	_, err = cache.Get("stale")
	assert.ErrorIs(t, err, ErrNotCached)
}

func TestSQLiteCache_Delete(t *testing.T) {
	cache := newTestCache(t)

	require.NoError(t, cache.Save(testRecord("rec-1", time.Now())))
	require.NoError(t, cache.Delete("rec-1"))

	_, err := cache.Get("rec-1")
	assert.ErrorIs(t, err, ErrNotCached)

	// Deleting a missing entry is a no-op.
	assert.NoError(t, cache.Delete("rec-1"))
}
