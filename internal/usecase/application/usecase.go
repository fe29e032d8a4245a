package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	domain "edulend-backend/internal/domain/application"
	docDomain "edulend-backend/internal/domain/document"
	histDomain "edulend-backend/internal/domain/history"
	noteDomain "edulend-backend/internal/domain/note"
	"edulend-backend/internal/domain/uow"
	"edulend-backend/pkg/id"

	"gorm.io/gorm"
)

// estimatedProcessingDays feeds estimatedCompletionAt at creation.
const estimatedProcessingDays = 14

// submittedProgress is what submit() sets; it intentionally sits between the
// first two stage-table values.
const submittedProgress = 15

type Usecase struct {
	apps  domain.Repository
	docs  docDomain.Repository
	hist  histDomain.Repository
	notes noteDomain.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(apps domain.Repository, docs docDomain.Repository, hist histDomain.Repository, notes noteDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{apps: apps, docs: docs, hist: hist, notes: notes, uow: tx}
}

// Detail is an application plus its owned collections.
type Detail struct {
	domain.Application
	Documents     []docDomain.Document `json:"documents"`
	StatusHistory []histDomain.Entry   `json:"statusHistory"`
	Notes         []noteDomain.Note    `json:"notes"`
}

// Create validates the applicant snapshot, then inserts the application, its
// initial history entry and the checklist placeholders in one transaction.
func (u *Usecase) Create(ctx context.Context, userID string, in CreateInput) (*domain.Application, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	loanType := domain.LoanType(in.LoanType)
	if in.LoanType == "" {
		loanType = domain.LoanEducation
	}
	bank := in.Bank
	if bank == "" {
		bank = domain.DefaultBank
	}

	now := time.Now().UTC()
	eta := now.AddDate(0, 0, estimatedProcessingDays)

	a := &domain.Application{
		ApplicationID:     id.NewID32(),
		ApplicationNumber: id.NewApplicationNumber(domain.NumberPrefix(loanType)),
		UserID:            userID,

		Bank:     bank,
		LoanType: loanType,
		Amount:   in.Amount,
		Tenure:   in.Tenure,
		Purpose:  in.Purpose,

		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		DateOfBirth: parseDate(in.DateOfBirth),
		Gender:      in.Gender,
		Nationality: in.Nationality,

		Address: in.Address,
		City:    in.City,
		State:   in.State,
		Pincode: in.Pincode,
		Country: in.Country,

		EmploymentType: in.EmploymentType,
		EmployerName:   in.EmployerName,
		JobTitle:       in.JobTitle,
		AnnualIncome:   in.AnnualIncome,
		WorkExperience: in.WorkExperience,

		UniversityName:  in.UniversityName,
		CourseName:      in.CourseName,
		CourseDuration:  in.CourseDuration,
		CourseStartDate: parseDate(in.CourseStartDate),
		AdmissionStatus: in.AdmissionStatus,

		HasCoApplicant:      in.HasCoApplicant,
		CoApplicantName:     in.CoApplicantName,
		CoApplicantRelation: in.CoApplicantRelation,
		CoApplicantPhone:    in.CoApplicantPhone,
		CoApplicantEmail:    in.CoApplicantEmail,
		CoApplicantIncome:   in.CoApplicantIncome,

		FatherName:  in.FatherName,
		FatherPhone: in.FatherPhone,
		FatherEmail: in.FatherEmail,
		MotherName:  in.MotherName,
		MotherPhone: in.MotherPhone,
		MotherEmail: in.MotherEmail,

		HasCollateral:     in.HasCollateral,
		CollateralType:    in.CollateralType,
		CollateralValue:   in.CollateralValue,
		CollateralDetails: in.CollateralDetails,

		Status:                domain.StatusDraft,
		Stage:                 domain.StageApplicationSubmitted,
		Progress:              10,
		EstimatedCompletionAt: &eta,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		if err := r.History.Record(ctx, &histDomain.Entry{
			ApplicationID: a.ID,
			ToStatus:      string(a.Status),
			ToStage:       string(a.Stage),
			Notes:         "Application created",
			IsAutomatic:   true,
		}); err != nil {
			return err
		}

		checklist := domain.ChecklistFor(loanType)
		placeholders := make([]*docDomain.Document, 0, len(checklist))
		for _, item := range checklist {
			placeholders = append(placeholders, &docDomain.Document{
				DocumentID:    id.NewID32(),
				ApplicationID: a.ID,
				DocType:       item.DocType,
				DocName:       item.DocName,
				Status:        docDomain.StatusPending,
				IsRequired:    item.IsRequired,
			})
		}
		return r.Documents.CreateBatch(ctx, placeholders)
	})
	if err != nil {
		log.Printf("application create failed: %v", err)
		return nil, err
	}
	return a, nil
}

// Submit moves a draft to submitted and records the transition.
func (u *Usecase) Submit(ctx context.Context, appID, userID string) (*domain.Application, error) {
	var out *domain.Application
	err := u.uow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *domain.Application) error {
		if a.UserID != userID {
			return fmt.Errorf("%w: not your application", domain.ErrUnauthorized)
		}
		if a.Status != domain.StatusDraft {
			return fmt.Errorf("%w: only draft applications can be submitted", domain.ErrInvalidTransition)
		}

		now := time.Now().UTC()
		prev := a.Status
		a.Status = domain.StatusSubmitted
		a.SubmittedAt = &now
		a.Progress = submittedProgress
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		if err := r.History.Record(ctx, &histDomain.Entry{
			ApplicationID: a.ID,
			FromStatus:    string(prev),
			ToStatus:      string(a.Status),
			Notes:         "Application submitted for review",
			IsAutomatic:   true,
		}); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return out, nil
}

// Update shallow-merges a patch while the application is still editable.
// Draft editing is not a lifecycle transition, so no history is written.
func (u *Usecase) Update(ctx context.Context, appID, userID string, in UpdateInput) (*domain.Application, error) {
	var out *domain.Application
	err := u.uow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *domain.Application) error {
		if a.UserID != userID {
			return fmt.Errorf("%w: not your application", domain.ErrUnauthorized)
		}
		if !a.Modifiable() {
			return fmt.Errorf("%w: application cannot be modified in current status", domain.ErrInvalidTransition)
		}
		in.apply(a)
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return out, nil
}

// Cancel sets the cancelled status unless the application already reached a
// terminal good state.
func (u *Usecase) Cancel(ctx context.Context, appID, userID, reason string) (*domain.Application, error) {
	var out *domain.Application
	err := u.uow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *domain.Application) error {
		if a.UserID != userID {
			return fmt.Errorf("%w: not your application", domain.ErrUnauthorized)
		}
		if !a.Cancellable() {
			return fmt.Errorf("%w: application cannot be cancelled in current status", domain.ErrInvalidTransition)
		}

		prev := a.Status
		a.Status = domain.StatusCancelled
		a.Remarks = reason
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		notes := reason
		if notes == "" {
			notes = "Application cancelled by user"
		}
		if err := r.History.Record(ctx, &histDomain.Entry{
			ApplicationID: a.ID,
			FromStatus:    string(prev),
			ToStatus:      string(a.Status),
			Notes:         notes,
			IsAutomatic:   false,
		}); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return out, nil
}

// Delete hard-deletes the application and everything it owns. It returns the
// stored file paths of its documents so the caller can clean up disk.
func (u *Usecase) Delete(ctx context.Context, appID, userID string) ([]string, error) {
	var filePaths []string
	err := u.uow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *domain.Application) error {
		if a.UserID != userID {
			return fmt.Errorf("%w: not your application", domain.ErrUnauthorized)
		}

		docs, err := r.Documents.ListByApplication(ctx, a.ID)
		if err != nil {
			return err
		}
		for _, d := range docs {
			if d.FilePath != "" {
				filePaths = append(filePaths, d.FilePath)
			}
		}

		if err := r.Documents.DeleteByApplication(ctx, a.ID); err != nil {
			return err
		}
		if err := r.Notes.DeleteByApplication(ctx, a.ID); err != nil {
			return err
		}
		if err := r.History.DeleteByApplication(ctx, a.ID); err != nil {
			return err
		}
		return r.Applications.Delete(ctx, a)
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return filePaths, nil
}

// GetDetail loads an application with documents, history (newest first) and
// notes. Internal notes are included only for admin readers.
func (u *Usecase) GetDetail(ctx context.Context, appID string, includeInternalNotes bool) (*Detail, error) {
	a, err := u.apps.GetByApplicationID(ctx, appID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	docs, err := u.docs.ListByApplication(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	hist, err := u.hist.ListByApplicationDesc(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	notes, err := u.notes.ListByApplication(ctx, a.ID, includeInternalNotes)
	if err != nil {
		return nil, err
	}

	return &Detail{Application: *a, Documents: docs, StatusHistory: hist, Notes: notes}, nil
}

// ListMine returns the caller's applications plus the total for pagination.
func (u *Usecase) ListMine(ctx context.Context, userID string, f domain.UserFilter) ([]domain.Application, int64, error) {
	return u.apps.ListByUser(ctx, userID, f)
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
