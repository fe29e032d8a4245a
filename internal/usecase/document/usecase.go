package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	appDomain "edulend-backend/internal/domain/application"
	domain "edulend-backend/internal/domain/document"
	"edulend-backend/internal/domain/uow"
	"edulend-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	apps appDomain.Repository
	docs domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(apps appDomain.Repository, docs domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{apps: apps, docs: docs, uow: tx}
}

// UploadInput carries stored-file metadata; the file itself is already on
// disk when this is called.
type UploadInput struct {
	DocType  string
	DocName  string
	FileName string
	FilePath string
	FileSize int64
	MimeType string
}

// Upload attaches a stored file to an application. A matching checklist
// placeholder is updated in place so the required-slot identity survives;
// anything else becomes a new ad-hoc row.
func (u *Usecase) Upload(ctx context.Context, appID, userID string, in UploadInput) (*domain.Document, error) {
	if in.DocType == "" {
		return nil, fmt.Errorf("%w: docType is required", appDomain.ErrInvalidInput)
	}

	var out *domain.Document
	err := u.uow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *appDomain.Application) error {
		if a.UserID != userID {
			return fmt.Errorf("%w: not your application", appDomain.ErrUnauthorized)
		}

		now := time.Now().UTC()
		existing, err := r.Documents.FindByType(ctx, a.ID, in.DocType)
		switch {
		case err == nil:
			existing.DocName = in.DocName
			existing.FileName = in.FileName
			existing.FilePath = in.FilePath
			existing.FileSize = &in.FileSize
			existing.MimeType = in.MimeType
			existing.Status = domain.StatusPending
			existing.UploadedAt = &now
			if err := r.Documents.Save(ctx, existing); err != nil {
				return err
			}
			out = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			d := &domain.Document{
				DocumentID:    id.NewID32(),
				ApplicationID: a.ID,
				DocType:       in.DocType,
				DocName:       in.DocName,
				FileName:      in.FileName,
				FilePath:      in.FilePath,
				FileSize:      &in.FileSize,
				MimeType:      in.MimeType,
				Status:        domain.StatusPending,
				UploadedAt:    &now,
			}
			if err := r.Documents.Create(ctx, d); err != nil {
				return err
			}
			out = d
			return nil
		default:
			return err
		}
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// Grouped buckets documents the way the checklist UI consumes them.
type Grouped struct {
	Pending     []domain.Document `json:"pending"`
	Verified    []domain.Document `json:"verified"`
	Rejected    []domain.Document `json:"rejected"`
	NotUploaded []domain.Document `json:"notUploaded"`
}

type Summary struct {
	Total       int `json:"total"`
	Uploaded    int `json:"uploaded"`
	Pending     int `json:"pending"`
	Verified    int `json:"verified"`
	Rejected    int `json:"rejected"`
	NotUploaded int `json:"notUploaded"`
}

type ListResult struct {
	Documents []domain.Document `json:"documents"`
	Grouped   Grouped           `json:"grouped"`
	Summary   Summary           `json:"summary"`
}

// List returns all document rows plus derived groupings. An empty userID
// skips the ownership check (admin path).
func (u *Usecase) List(ctx context.Context, appID, userID string) (*ListResult, error) {
	a, err := u.apps.GetByApplicationID(ctx, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, err
	}
	if userID != "" && a.UserID != userID {
		return nil, fmt.Errorf("%w: not your application", appDomain.ErrUnauthorized)
	}

	docs, err := u.docs.ListByApplication(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	res := &ListResult{Documents: docs}
	for _, d := range docs {
		switch {
		case !d.Uploaded():
			res.Grouped.NotUploaded = append(res.Grouped.NotUploaded, d)
		case d.Status == domain.StatusVerified:
			res.Grouped.Verified = append(res.Grouped.Verified, d)
		case d.Status == domain.StatusRejected:
			res.Grouped.Rejected = append(res.Grouped.Rejected, d)
		default:
			res.Grouped.Pending = append(res.Grouped.Pending, d)
		}
		if d.Uploaded() {
			res.Summary.Uploaded++
		}
	}
	res.Summary.Total = len(docs)
	res.Summary.Pending = len(res.Grouped.Pending)
	res.Summary.Verified = len(res.Grouped.Verified)
	res.Summary.Rejected = len(res.Grouped.Rejected)
	res.Summary.NotUploaded = len(res.Grouped.NotUploaded)
	return res, nil
}

// Delete removes an uploaded document. Verified documents are immutable;
// required slots are reset to an empty placeholder instead of being removed.
// The previous file path is returned so the caller can clean up disk.
func (u *Usecase) Delete(ctx context.Context, documentID, userID string) (string, error) {
	d, err := u.docs.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound
		}
		return "", err
	}

	var oldPath string
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		doc, err := r.Documents.GetByDocumentID(ctx, d.DocumentID)
		if err != nil {
			return err
		}
		app, err := r.Applications.GetByID(ctx, doc.ApplicationID)
		if err != nil {
			return err
		}
		if app.UserID != userID {
			return fmt.Errorf("%w: not your document", appDomain.ErrUnauthorized)
		}
		if doc.Status == domain.StatusVerified {
			return fmt.Errorf("%w: verified documents cannot be deleted", appDomain.ErrConflict)
		}

		oldPath = doc.FilePath
		if doc.IsRequired {
			doc.FileName = ""
			doc.FilePath = ""
			doc.FileSize = nil
			doc.MimeType = ""
			doc.Status = domain.StatusPending
			return r.Documents.Save(ctx, doc)
		}
		return r.Documents.Delete(ctx, doc)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return oldPath, nil
}

// VerifyInput is the admin verdict on one document.
type VerifyInput struct {
	Status          string `json:"status" validate:"required,oneof=verified rejected"`
	RejectionReason string `json:"rejectionReason"`
}

// Verify records the admin verdict. Stage advancement stays an independent
// admin action; document completeness never gates it.
func (u *Usecase) Verify(ctx context.Context, documentID, adminID string, in VerifyInput) (*domain.Document, error) {
	status := domain.Status(in.Status)
	if status != domain.StatusVerified && status != domain.StatusRejected {
		return nil, fmt.Errorf("%w: status must be verified or rejected", appDomain.ErrInvalidInput)
	}

	d, err := u.docs.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	d.Status = status
	d.VerifiedBy = adminID
	d.RejectionReason = in.RejectionReason
	if status == domain.StatusVerified {
		now := time.Now().UTC()
		d.VerifiedAt = &now
	} else {
		d.VerifiedAt = nil
	}
	if err := u.docs.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
