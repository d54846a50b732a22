package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"servicelog/internal/domain/servicerecord"
)

type RecordRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRecordRepository(pool *pgxpool.Pool, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		pool: pool,
		log:  log.With("component", "record_repository"),
	}
}

const recordColumns = `id, user_id, date, service_type, service_time,
	       equipment_id, equipment_type, technician, parts_used, service_notes,
	       created_at, updated_at`

func (r *RecordRepository) List(ctx context.Context, ownerID string) ([]servicerecord.ServiceRecord, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM service_records
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list records", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *RecordRepository) Get(ctx context.Context, recordID string) (*servicerecord.ServiceRecord, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM service_records
		WHERE id = $1`

	rec, err := scanRecord(r.pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, servicerecord.ErrNotFound
		}
		r.log.Error("failed to get record", "record_id", recordID, "error", err)
		return nil, fmt.Errorf("get record: %w", err)
	}

	return rec, nil
}

func (r *RecordRepository) Create(ctx context.Context, rec *servicerecord.ServiceRecord) error {
	const query = `
		INSERT INTO service_records
			(id, user_id, date, service_type, service_time,
			 equipment_id, equipment_type, technician, parts_used, service_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		rec.ID, rec.UserID, rec.Date, rec.ServiceType, rec.ServiceTime,
		rec.EquipmentID, rec.EquipmentType, rec.Technician, rec.PartsUsed, rec.ServiceNotes,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		r.log.Error("failed to create record", "user_id", rec.UserID, "error", err)
		return fmt.Errorf("create record: %w", err)
	}

	return nil
}

func (r *RecordRepository) Update(ctx context.Context, rec *servicerecord.ServiceRecord) error {
	const query = `
		UPDATE service_records
		SET date = $1, service_type = $2, service_time = $3,
			equipment_id = $4, equipment_type = $5, technician = $6,
			parts_used = $7, service_notes = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query,
		rec.Date, rec.ServiceType, rec.ServiceTime,
		rec.EquipmentID, rec.EquipmentType, rec.Technician,
		rec.PartsUsed, rec.ServiceNotes, rec.ID,
	).Scan(&rec.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return servicerecord.ErrNotFound
		}
		r.log.Error("failed to update record", "record_id", rec.ID, "error", err)
		return fmt.Errorf("update record: %w", err)
	}

	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, recordID string) error {
	const query = `DELETE FROM service_records WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, recordID)
	if err != nil {
		r.log.Error("failed to delete record", "record_id", recordID, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	if result.RowsAffected() == 0 {
		return servicerecord.ErrNotFound
	}

	return nil
}

func scanRecords(rows pgx.Rows) ([]servicerecord.ServiceRecord, error) {
	var records []servicerecord.ServiceRecord

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

func scanRecord(row pgx.Row) (*servicerecord.ServiceRecord, error) {
	var rec servicerecord.ServiceRecord

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.ServiceType, &rec.ServiceTime,
		&rec.EquipmentID, &rec.EquipmentType, &rec.Technician, &rec.PartsUsed, &rec.ServiceNotes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}
