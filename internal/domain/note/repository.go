package note

import "context"

type Repository interface {
	Create(ctx context.Context, n *Note) error
	// ListByApplication returns notes newest-first; internal notes are
	// excluded unless includeInternal is set.
	ListByApplication(ctx context.Context, applicationID uint64, includeInternal bool) ([]Note, error)

	// DeleteByApplication exists only for the application delete cascade.
	DeleteByApplication(ctx context.Context, applicationID uint64) error
}
