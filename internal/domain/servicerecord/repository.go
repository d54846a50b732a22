package servicerecord

import "context"

// Repository is the persistence boundary for service records.
//
// Get fetches by record ID alone: the service layer compares owners so that
// "no such record" and "not yours" stay distinguishable.
type Repository interface {
	List(ctx context.Context, ownerID string) ([]ServiceRecord, error)
	Get(ctx context.Context, recordID string) (*ServiceRecord, error)
	Create(ctx context.Context, rec *ServiceRecord) error
	Update(ctx context.Context, rec *ServiceRecord) error
	Delete(ctx context.Context, recordID string) error
}
