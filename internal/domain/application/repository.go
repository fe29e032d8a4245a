package application

import (
	"context"
	"time"
)

// UserFilter narrows a user's own application listing.
type UserFilter struct {
	Status   string
	LoanType string
	Limit    int
	Offset   int
}

// AdminFilter narrows and orders the admin-wide listing.
type AdminFilter struct {
	Status    string
	Stage     string
	LoanType  string
	Bank      string
	Search    string
	FromDate  *time.Time
	ToDate    *time.Time
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// LoanTypeAgg is one row of the per-loan-type aggregation.
type LoanTypeAgg struct {
	LoanType    string  `json:"type"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	Save(ctx context.Context, a *Application) error
	Delete(ctx context.Context, a *Application) error

	GetByID(ctx context.Context, id uint64) (*Application, error)
	GetByApplicationID(ctx context.Context, appID string) (*Application, error)
	// GetByApplicationIDForUpdate locks the row for the duration of the
	// surrounding transaction.
	GetByApplicationIDForUpdate(ctx context.Context, appID string) (*Application, error)
	GetByNumber(ctx context.Context, number string) (*Application, error)

	ListByUser(ctx context.Context, userID string, f UserFilter) ([]Application, int64, error)
	List(ctx context.Context, f AdminFilter) ([]Application, int64, error)

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	AggregateByLoanType(ctx context.Context) ([]LoanTypeAgg, error)
	Recent(ctx context.Context, limit int) ([]Application, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
