package reporting

import (
	"context"
	"math"
	"time"

	domain "edulend-backend/internal/domain/application"
)

// Usecase is the read-only query layer over the persisted application set.
type Usecase struct{ apps domain.Repository }

func NewUsecase(apps domain.Repository) *Usecase { return &Usecase{apps: apps} }

// List is the admin-wide paginated listing.
func (u *Usecase) List(ctx context.Context, f domain.AdminFilter) ([]domain.Application, int64, error) {
	return u.apps.List(ctx, f)
}

type MonthlyComparison struct {
	ThisMonth int64   `json:"thisMonth"`
	LastMonth int64   `json:"lastMonth"`
	Change    float64 `json:"change"`
}

type Stats struct {
	Total              int64                `json:"total"`
	StatusStats        map[string]int64     `json:"statusStats"`
	LoanTypeStats      []domain.LoanTypeAgg `json:"loanTypeStats"`
	RecentApplications []domain.Application `json:"recentApplications"`
	MonthlyComparison  MonthlyComparison    `json:"monthlyComparison"`
}

// Stats aggregates the admin dashboard numbers. The month-over-month change
// compares the current calendar month against the previous one and reports 0
// when the previous month had no applications.
func (u *Usecase) Stats(ctx context.Context) (*Stats, error) {
	total, err := u.apps.Count(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := u.apps.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := u.apps.AggregateByLoanType(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := u.apps.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevStart := monthStart.AddDate(0, -1, 0)

	thisMonth, err := u.apps.CountCreatedBetween(ctx, monthStart, now.Add(time.Second))
	if err != nil {
		return nil, err
	}
	lastMonth, err := u.apps.CountCreatedBetween(ctx, prevStart, monthStart)
	if err != nil {
		return nil, err
	}

	var change float64
	if lastMonth > 0 {
		change = float64(thisMonth-lastMonth) / float64(lastMonth) * 100
		change = math.Round(change*10) / 10
	}

	return &Stats{
		Total:              total,
		StatusStats:        byStatus,
		LoanTypeStats:      byType,
		RecentApplications: recent,
		MonthlyComparison: MonthlyComparison{
			ThisMonth: thisMonth,
			LastMonth: lastMonth,
			Change:    change,
		},
	}, nil
}
