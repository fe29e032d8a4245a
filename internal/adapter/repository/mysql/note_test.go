package mysql

import (
	"context"
	"testing"

	noteDomain "edulend-backend/internal/domain/note"
	"edulend-backend/pkg/id"
)

func makeNote(applicationID uint64, content string, internal bool) *noteDomain.Note {
	return &noteDomain.Note{
		NoteID:        id.NewID32(),
		ApplicationID: applicationID,
		AuthorID:      "admin-1",
		AuthorName:    "Priya Sharma",
		Content:       content,
		Type:          "general",
		IsInternal:    internal,
	}
}

func TestNoteRepository_InternalFiltering(t *testing.T) {
	db := openTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	for _, n := range []*noteDomain.Note{
		makeNote(1, "visible to applicant", false),
		makeNote(1, "internal risk assessment", true),
		makeNote(2, "other application", false),
	} {
		if err := repo.Create(ctx, n); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := repo.ListByApplication(ctx, 1, true)
	if err != nil {
		t.Fatalf("ListByApplication(internal): %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin view = %d notes, want 2", len(all))
	}

	visible, err := repo.ListByApplication(ctx, 1, false)
	if err != nil {
		t.Fatalf("ListByApplication(public): %v", err)
	}
	if len(visible) != 1 || visible[0].Content != "visible to applicant" {
		t.Fatalf("user view = %+v", visible)
	}
}

func TestNoteRepository_DeleteByApplication(t *testing.T) {
	db := openTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeNote(1, "a", false)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, makeNote(2, "b", false)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.DeleteByApplication(ctx, 1); err != nil {
		t.Fatalf("DeleteByApplication: %v", err)
	}
	gone, err := repo.ListByApplication(ctx, 1, true)
	if err != nil {
		t.Fatalf("ListByApplication: %v", err)
	}
	if len(gone) != 0 {
		t.Errorf("notes left = %d, want 0", len(gone))
	}
	kept, err := repo.ListByApplication(ctx, 2, true)
	if err != nil {
		t.Fatalf("ListByApplication: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("other application's notes were deleted")
	}
}
