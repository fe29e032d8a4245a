package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	docDomain "edulend-backend/internal/domain/document"
	"edulend-backend/pkg/id"

	"gorm.io/gorm"
)

func makeDoc(applicationID uint64, docType string, required bool) *docDomain.Document {
	return &docDomain.Document{
		DocumentID:    id.NewID32(),
		ApplicationID: applicationID,
		DocType:       docType,
		DocName:       docType,
		Status:        docDomain.StatusPending,
		IsRequired:    required,
	}
}

func TestDocumentRepository_CreateBatchAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	batch := []*docDomain.Document{
		makeDoc(1, "identity_proof", true),
		makeDoc(1, "address_proof", true),
		makeDoc(1, "photo", true),
	}
	if err := repo.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	if err := repo.Create(ctx, makeDoc(2, "identity_proof", true)); err != nil {
		t.Fatalf("Create other app: %v", err)
	}

	docs, err := repo.ListByApplication(ctx, 1)
	if err != nil {
		t.Fatalf("ListByApplication: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("docs = %d, want 3 (other application must not leak)", len(docs))
	}
}

func TestDocumentRepository_CreateBatch_Empty(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)

	if err := repo.CreateBatch(context.Background(), nil); err != nil {
		t.Fatalf("empty batch must be a no-op: %v", err)
	}
}

func TestDocumentRepository_FindByType(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	seed := makeDoc(1, "admission_letter", true)
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindByType(ctx, 1, "admission_letter")
	if err != nil {
		t.Fatalf("FindByType: %v", err)
	}
	if got.DocumentID != seed.DocumentID {
		t.Errorf("wrong row: %s", got.DocumentID)
	}

	if _, err := repo.FindByType(ctx, 1, "fee_structure"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing type: err = %v, want ErrRecordNotFound", err)
	}
	if _, err := repo.FindByType(ctx, 2, "admission_letter"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("wrong application: err = %v, want ErrRecordNotFound", err)
	}
}

func TestDocumentRepository_DuplicateSlotIsRejected(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeDoc(1, "identity_proof", true)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, makeDoc(1, "identity_proof", true)); err == nil {
		t.Fatal("second row for the same (application, docType) must violate the unique index")
	}
}

func TestDocumentRepository_SaveResetsSlot(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	d := makeDoc(1, "photo", true)
	now := time.Now().UTC()
	size := int64(999)
	d.FileName = "x.png"
	d.FilePath = "uploads/applications/x.png"
	d.FileSize = &size
	d.MimeType = "image/png"
	d.UploadedAt = &now
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	d.FileName = ""
	d.FilePath = ""
	d.FileSize = nil
	d.MimeType = ""
	if err := repo.Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByDocumentID(ctx, d.DocumentID)
	if err != nil {
		t.Fatalf("GetByDocumentID: %v", err)
	}
	if got.FilePath != "" || got.FileSize != nil {
		t.Errorf("reset not persisted: %+v", got)
	}
}

func TestDocumentRepository_DeleteByApplication(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	if err := repo.CreateBatch(ctx, []*docDomain.Document{
		makeDoc(1, "identity_proof", true),
		makeDoc(1, "photo", true),
	}); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	keep := makeDoc(2, "identity_proof", true)
	if err := repo.Create(ctx, keep); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.DeleteByApplication(ctx, 1); err != nil {
		t.Fatalf("DeleteByApplication: %v", err)
	}

	docs, err := repo.ListByApplication(ctx, 1)
	if err != nil {
		t.Fatalf("ListByApplication: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("docs left = %d, want 0", len(docs))
	}
	if _, err := repo.GetByDocumentID(ctx, keep.DocumentID); err != nil {
		t.Errorf("other application's document was deleted: %v", err)
	}
}
