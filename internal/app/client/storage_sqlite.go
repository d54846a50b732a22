package client

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"servicelog/internal/domain/servicerecord"
)

var ErrNotCached = errors.New("record not in local cache")

// SQLiteCache keeps the last server responses on disk so list and get keep
// working while offline.
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	cache := &SQLiteCache{db: db}
	if err := cache.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache tables: %w", err)
	}

	return cache, nil
}

func (s *SQLiteCache) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS service_records (
			id TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			cached_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_service_records_created ON service_records(created_at);
	`)
	return err
}

// ReplaceAll swaps the cache contents for a fresh server listing.
func (s *SQLiteCache) ReplaceAll(records []servicerecord.ServiceRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM service_records`); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	now := time.Now()
	for i := range records {
		payload, err := json.Marshal(records[i])
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO service_records (id, payload, created_at, cached_at)
			VALUES (?, ?, ?, ?)`,
			records[i].ID, string(payload), records[i].CreatedAt, now)
		if err != nil {
			return fmt.Errorf("cache record: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteCache) Save(rec servicerecord.ServiceRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO service_records (id, payload, created_at, cached_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, cached_at = excluded.cached_at`,
		rec.ID, string(payload), rec.CreatedAt, time.Now())
	if err != nil {
		return fmt.Errorf("cache record: %w", err)
	}
	return nil
}

func (s *SQLiteCache) Get(id string) (CachedRecord, error) {
	var payload string
	var cachedAt time.Time

	err := s.db.QueryRow(`
		SELECT payload, cached_at FROM service_records WHERE id = ?`, id).
		Scan(&payload, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return CachedRecord{}, ErrNotCached
	}
	if err != nil {
		return CachedRecord{}, fmt.Errorf("read cache: %w", err)
	}

	return decodeCached(payload, cachedAt)
}

func (s *SQLiteCache) List() ([]CachedRecord, error) {
	rows, err := s.db.Query(`
		SELECT payload, cached_at FROM service_records ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	defer rows.Close()

	var records []CachedRecord
	for rows.Next() {
		var payload string
		var cachedAt time.Time
		if err := rows.Scan(&payload, &cachedAt); err != nil {
			return nil, fmt.Errorf("scan cache row: %w", err)
		}
		rec, err := decodeCached(payload, cachedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (s *SQLiteCache) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM service_records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("evict cached record: %w", err)
	}
	return nil
}

func (s *SQLiteCache) Close() error {
	return s.db.Close()
}

func decodeCached(payload string, cachedAt time.Time) (CachedRecord, error) {
	var rec CachedRecord
	if err := json.Unmarshal([]byte(payload), &rec.ServiceRecord); err != nil {
		return CachedRecord{}, fmt.Errorf("decode cached record: %w", err)
	}
	rec.CachedAt = cachedAt
	return rec, nil
}
