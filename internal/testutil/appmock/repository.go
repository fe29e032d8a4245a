package appmock

import (
	"context"
	"time"

	domain "edulend-backend/internal/domain/application"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled ones return zero values
// or context.Canceled for lookups.
type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.Application) error
	SaveFn                        func(ctx context.Context, a *domain.Application) error
	DeleteFn                      func(ctx context.Context, a *domain.Application) error
	GetByIDFn                     func(ctx context.Context, id uint64) (*domain.Application, error)
	GetByApplicationIDFn          func(ctx context.Context, appID string) (*domain.Application, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, appID string) (*domain.Application, error)
	GetByNumberFn                 func(ctx context.Context, number string) (*domain.Application, error)
	ListByUserFn                  func(ctx context.Context, userID string, f domain.UserFilter) ([]domain.Application, int64, error)
	ListFn                        func(ctx context.Context, f domain.AdminFilter) ([]domain.Application, int64, error)
	CountFn                       func(ctx context.Context) (int64, error)
	CountByStatusFn               func(ctx context.Context) (map[string]int64, error)
	AggregateByLoanTypeFn         func(ctx context.Context) ([]domain.LoanTypeAgg, error)
	RecentFn                      func(ctx context.Context, limit int) ([]domain.Application, error)
	CountCreatedBetweenFn         func(ctx context.Context, from, to time.Time) (int64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, a *domain.Application) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByApplicationID(ctx context.Context, appID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, appID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByApplicationIDForUpdate(ctx context.Context, appID string) (*domain.Application, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, appID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByNumber(ctx context.Context, number string) (*domain.Application, error) {
	if m.GetByNumberFn != nil {
		return m.GetByNumberFn(ctx, number)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByUser(ctx context.Context, userID string, f domain.UserFilter) ([]domain.Application, int64, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID, f)
	}
	return nil, 0, nil
}

func (m *Repo) List(ctx context.Context, f domain.AdminFilter) ([]domain.Application, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx)
	}
	return map[string]int64{}, nil
}

func (m *Repo) AggregateByLoanType(ctx context.Context) ([]domain.LoanTypeAgg, error) {
	if m.AggregateByLoanTypeFn != nil {
		return m.AggregateByLoanTypeFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Recent(ctx context.Context, limit int) ([]domain.Application, error) {
	if m.RecentFn != nil {
		return m.RecentFn(ctx, limit)
	}
	return nil, nil
}

func (m *Repo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if m.CountCreatedBetweenFn != nil {
		return m.CountCreatedBetweenFn(ctx, from, to)
	}
	return 0, nil
}
