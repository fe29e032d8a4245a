package reporting

import (
	"context"
	"testing"
	"time"

	domain "edulend-backend/internal/domain/application"
	"edulend-backend/internal/testutil/appmock"
)

func TestStats_MonthOverMonthChange(t *testing.T) {
	repo := &appmock.Repo{
		CountFn: func(ctx context.Context) (int64, error) { return 42, nil },
		CountByStatusFn: func(ctx context.Context) (map[string]int64, error) {
			return map[string]int64{"draft": 12, "submitted": 20, "approved": 10}, nil
		},
		AggregateByLoanTypeFn: func(ctx context.Context) ([]domain.LoanTypeAgg, error) {
			return []domain.LoanTypeAgg{{LoanType: "education", Count: 30, TotalAmount: 75_000_000}}, nil
		},
		RecentFn: func(ctx context.Context, limit int) ([]domain.Application, error) {
			if limit != 5 {
				t.Errorf("recent limit = %d, want 5", limit)
			}
			return []domain.Application{{ApplicationNumber: "EDU1"}}, nil
		},
		CountCreatedBetweenFn: func(ctx context.Context, from, to time.Time) (int64, error) {
			now := time.Now().UTC()
			monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
			if from.Equal(monthStart) {
				return 10, nil
			}
			return 8, nil
		},
	}

	s, err := NewUsecase(repo).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if s.Total != 42 {
		t.Errorf("total = %d", s.Total)
	}
	if s.StatusStats["submitted"] != 20 {
		t.Errorf("statusStats = %v", s.StatusStats)
	}
	if len(s.LoanTypeStats) != 1 || s.LoanTypeStats[0].Count != 30 {
		t.Errorf("loanTypeStats = %v", s.LoanTypeStats)
	}
	if len(s.RecentApplications) != 1 {
		t.Errorf("recent = %v", s.RecentApplications)
	}
	mc := s.MonthlyComparison
	if mc.ThisMonth != 10 || mc.LastMonth != 8 {
		t.Errorf("monthlyComparison = %+v", mc)
	}
	// (10-8)/8 * 100 = 25.0
	if mc.Change != 25.0 {
		t.Errorf("change = %v, want 25.0", mc.Change)
	}
}

func TestStats_ZeroChangeWhenLastMonthEmpty(t *testing.T) {
	repo := &appmock.Repo{
		CountCreatedBetweenFn: func(ctx context.Context, from, to time.Time) (int64, error) {
			now := time.Now().UTC()
			monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
			if from.Equal(monthStart) {
				return 7, nil
			}
			return 0, nil
		},
	}

	s, err := NewUsecase(repo).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if s.MonthlyComparison.Change != 0 {
		t.Errorf("change = %v, want 0 when the previous month is empty", s.MonthlyComparison.Change)
	}
}

func TestStats_ChangeIsRounded(t *testing.T) {
	repo := &appmock.Repo{
		CountCreatedBetweenFn: func(ctx context.Context, from, to time.Time) (int64, error) {
			now := time.Now().UTC()
			monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
			if from.Equal(monthStart) {
				return 1, nil
			}
			return 3, nil
		},
	}

	s, err := NewUsecase(repo).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	// (1-3)/3 * 100 = -66.666... rounds to -66.7
	if s.MonthlyComparison.Change != -66.7 {
		t.Errorf("change = %v, want -66.7", s.MonthlyComparison.Change)
	}
}
