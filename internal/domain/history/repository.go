package history

import "context"

// Repository is an append-only writer plus ordered reads. Entries are never
// updated once written.
type Repository interface {
	Record(ctx context.Context, e *Entry) error
	// ListByApplication returns entries in insertion order (created_at asc,
	// id asc as tiebreak).
	ListByApplication(ctx context.Context, applicationID uint64) ([]Entry, error)
	ListByApplicationDesc(ctx context.Context, applicationID uint64) ([]Entry, error)

	// DeleteByApplication exists only for the application delete cascade.
	DeleteByApplication(ctx context.Context, applicationID uint64) error
}
