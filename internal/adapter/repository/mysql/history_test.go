package mysql

import (
	"context"
	"testing"
	"time"

	histDomain "edulend-backend/internal/domain/history"
)

func TestHistoryRepository_RecordAndOrdering(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	entries := []*histDomain.Entry{
		{ApplicationID: 1, ToStatus: "draft", ToStage: "application_submitted", IsAutomatic: true, CreatedAt: base},
		{ApplicationID: 1, FromStatus: "draft", ToStatus: "submitted", IsAutomatic: true, CreatedAt: base.Add(time.Hour)},
		{ApplicationID: 1, FromStatus: "submitted", ToStatus: "under_review", ChangedBy: "admin-1", CreatedAt: base.Add(2 * time.Hour)},
		{ApplicationID: 2, ToStatus: "draft", CreatedAt: base},
	}
	for _, e := range entries {
		if err := repo.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	asc, err := repo.ListByApplication(ctx, 1)
	if err != nil {
		t.Fatalf("ListByApplication: %v", err)
	}
	if len(asc) != 3 {
		t.Fatalf("entries = %d, want 3", len(asc))
	}
	if asc[0].ToStatus != "draft" || asc[2].ToStatus != "under_review" {
		t.Errorf("ascending order broken: %v -> %v", asc[0].ToStatus, asc[2].ToStatus)
	}

	desc, err := repo.ListByApplicationDesc(ctx, 1)
	if err != nil {
		t.Fatalf("ListByApplicationDesc: %v", err)
	}
	if desc[0].ToStatus != "under_review" || desc[2].ToStatus != "draft" {
		t.Errorf("descending order broken: %v -> %v", desc[0].ToStatus, desc[2].ToStatus)
	}
}

func TestHistoryRepository_DeleteByApplication(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	if err := repo.Record(ctx, &histDomain.Entry{ApplicationID: 1, ToStatus: "draft"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := repo.Record(ctx, &histDomain.Entry{ApplicationID: 2, ToStatus: "draft"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	if err := repo.DeleteByApplication(ctx, 1); err != nil {
		t.Fatalf("DeleteByApplication: %v", err)
	}

	gone, err := repo.ListByApplication(ctx, 1)
	if err != nil {
		t.Fatalf("ListByApplication: %v", err)
	}
	if len(gone) != 0 {
		t.Errorf("entries left = %d, want 0", len(gone))
	}
	kept, err := repo.ListByApplication(ctx, 2)
	if err != nil {
		t.Fatalf("ListByApplication: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("other application's log was deleted")
	}
}
