package servicerecord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Servicer defines the business logic for service record operations.
//
// Every method trusts ownerID: callers must only pass an identity resolved by
// the authentication middleware. The service never re-verifies credentials.
type Servicer interface {
	List(ctx context.Context, ownerID string) ([]ServiceRecord, error)
	Get(ctx context.Context, ownerID, recordID string) (*ServiceRecord, error)
	Create(ctx context.Context, ownerID string, req CreateRequest) (*ServiceRecord, error)
	Update(ctx context.Context, ownerID, recordID string, req UpdateRequest) (*ServiceRecord, error)
	Delete(ctx context.Context, ownerID, recordID string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "servicerecord_service"),
	}
}

// List returns all records owned by ownerID, most recent first. No records is
// an empty slice, not an error.
func (s *Service) List(ctx context.Context, ownerID string) ([]ServiceRecord, error) {
	records, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list records", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	if records == nil {
		records = []ServiceRecord{}
	}
	return records, nil
}

// Get returns a single record. Existence is checked before ownership, so a
// missing record yields ErrNotFound and someone else's record ErrForbidden.
func (s *Service) Get(ctx context.Context, ownerID, recordID string) (*ServiceRecord, error) {
	rec, err := s.repo.Get(ctx, recordID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get record", "record_id", recordID, "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("get record: %w", err)
	}

	if rec.UserID != ownerID {
		return nil, ErrForbidden
	}

	return rec, nil
}

// Create validates the request and persists a new record owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID string, req CreateRequest) (*ServiceRecord, error) {
	if err := validateCreate(req); err != nil {
		s.log.Debug("create validation failed", "user_id", ownerID, "error", err)
		return nil, err
	}

	rec := &ServiceRecord{
		ID:            uuid.NewString(),
		Date:          *req.Date,
		ServiceType:   req.ServiceType,
		ServiceTime:   req.ServiceTime.Value(),
		EquipmentID:   req.EquipmentID,
		EquipmentType: req.EquipmentType,
		Technician:    req.Technician,
		PartsUsed:     normalizeParts(req.PartsUsed),
		ServiceNotes:  req.ServiceNotes,
		UserID:        ownerID,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.log.Error("failed to create record", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("create record: %w", err)
	}

	s.log.Info("record created", "record_id", rec.ID, "user_id", ownerID, "service_type", rec.ServiceType)
	return rec, nil
}

// Update applies only the fields present in req to an owned record and
// returns the stored result.
func (s *Service) Update(ctx context.Context, ownerID, recordID string, req UpdateRequest) (*ServiceRecord, error) {
	rec, err := s.Get(ctx, ownerID, recordID)
	if err != nil {
		return nil, err
	}

	if req.ServiceTime.IsSet() && (!req.ServiceTime.IsValid() || req.ServiceTime.Value() < 0) {
		return nil, &ValidationError{Message: "serviceTime must be a non-negative number"}
	}

	applyUpdate(rec, req)

	if err := s.repo.Update(ctx, rec); err != nil {
		if errors.Is(err, ErrNotFound) {
			// Deleted between the ownership check and the write.
			return nil, ErrNotFound
		}
		s.log.Error("failed to update record", "record_id", recordID, "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("update record: %w", err)
	}

	s.log.Info("record updated", "record_id", recordID, "user_id", ownerID)
	return rec, nil
}

// Delete permanently removes an owned record. A second delete of the same ID
// fails with ErrNotFound; that is the intended contract.
func (s *Service) Delete(ctx context.Context, ownerID, recordID string) error {
	if _, err := s.Get(ctx, ownerID, recordID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, recordID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete record", "record_id", recordID, "user_id", ownerID, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	s.log.Info("record deleted", "record_id", recordID, "user_id", ownerID)
	return nil
}

func validateCreate(req CreateRequest) error {
	missing := req.Date == nil || req.Date.IsZero() ||
		req.ServiceType == "" ||
		!req.ServiceTime.IsSet() ||
		req.EquipmentID == "" ||
		req.EquipmentType == "" ||
		req.Technician == "" ||
		req.ServiceNotes == ""

	if missing {
		return &ValidationError{
			Message:  "Missing required fields",
			Required: RequiredFields,
		}
	}

	if !req.ServiceTime.IsValid() || req.ServiceTime.Value() < 0 {
		return &ValidationError{Message: "serviceTime must be a non-negative number"}
	}

	return nil
}

func applyUpdate(rec *ServiceRecord, req UpdateRequest) {
	if req.Date != nil && !req.Date.IsZero() {
		rec.Date = *req.Date
	}
	if req.ServiceType != nil && *req.ServiceType != "" {
		rec.ServiceType = *req.ServiceType
	}
	if req.ServiceTime.IsSet() {
		rec.ServiceTime = req.ServiceTime.Value()
	}
	if req.EquipmentID != nil && *req.EquipmentID != "" {
		rec.EquipmentID = *req.EquipmentID
	}
	if req.EquipmentType != nil && *req.EquipmentType != "" {
		rec.EquipmentType = *req.EquipmentType
	}
	if req.Technician != nil && *req.Technician != "" {
		rec.Technician = *req.Technician
	}
	if req.PartsUsed.Set {
		rec.PartsUsed = normalizeParts(req.PartsUsed.Value)
	}
	if req.ServiceNotes != nil && *req.ServiceNotes != "" {
		rec.ServiceNotes = *req.ServiceNotes
	}
	rec.UpdatedAt = time.Now()
}

// normalizeParts stores an empty parts list as NULL rather than "".
func normalizeParts(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
