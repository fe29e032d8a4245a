package application

import (
	"context"
	"strings"
	"time"

	domain "edulend-backend/internal/domain/application"
	histDomain "edulend-backend/internal/domain/history"
	noteDomain "edulend-backend/internal/domain/note"
	"edulend-backend/internal/domain/uow"
	"edulend-backend/pkg/id"
)

// AdminStatusInput is the admin override patch. Nil fields are untouched.
type AdminStatusInput struct {
	Status                 *string  `json:"status"`
	Stage                  *string  `json:"stage"`
	Progress               *int     `json:"progress"`
	Remarks                *string  `json:"remarks"`
	AssignedTo             *string  `json:"assignedTo"`
	SanctionAmount         *float64 `json:"sanctionAmount"`
	SanctionedInterestRate *float64 `json:"sanctionedInterestRate"`
	RejectionReason        *string  `json:"rejectionReason"`
}

// AdminUpdateStatus applies an unrestricted administrator override. Status
// changes stamp their matching timestamp; a stage change recomputes progress
// from the stage table unless progress is supplied explicitly. One combined
// history entry covers both deltas; no entry is written when neither changed.
func (u *Usecase) AdminUpdateStatus(ctx context.Context, appID, adminID, adminName string, in AdminStatusInput) (*domain.Application, error) {
	var out *domain.Application
	err := u.uow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *domain.Application) error {
		now := time.Now().UTC()
		entry := histDomain.Entry{
			ApplicationID: a.ID,
			ChangedBy:     adminID,
			ChangedByName: adminName,
			IsAutomatic:   false,
		}
		changed := false

		if in.Status != nil && domain.Status(*in.Status) != a.Status {
			entry.FromStatus = string(a.Status)
			entry.ToStatus = *in.Status
			a.Status = domain.Status(*in.Status)
			changed = true

			switch a.Status {
			case domain.StatusUnderReview:
				a.ReviewStartedAt = &now
			case domain.StatusApproved:
				a.ApprovedAt = &now
			case domain.StatusRejected:
				a.RejectedAt = &now
				if in.RejectionReason != nil {
					a.RejectionReason = *in.RejectionReason
				}
			case domain.StatusDisbursed:
				a.DisbursedAt = &now
			}
		}

		if in.Stage != nil && domain.Stage(*in.Stage) != a.Stage {
			entry.FromStage = string(a.Stage)
			entry.ToStage = *in.Stage
			a.Stage = domain.Stage(*in.Stage)
			changed = true
			if info, ok := domain.StageLookup(a.Stage); ok {
				a.Progress = info.Progress
			}
		}

		// explicit progress wins over the stage-table value
		if in.Progress != nil {
			a.Progress = *in.Progress
		}
		if in.Remarks != nil {
			a.Remarks = *in.Remarks
		}
		if in.AssignedTo != nil {
			a.AssignedTo = *in.AssignedTo
		}
		if in.SanctionAmount != nil {
			a.SanctionAmount = in.SanctionAmount
		}
		if in.SanctionedInterestRate != nil {
			a.SanctionedInterestRate = in.SanctionedInterestRate
		}

		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		if changed {
			if in.Remarks != nil {
				entry.Notes = *in.Remarks
			}
			if err := r.History.Record(ctx, &entry); err != nil {
				return err
			}
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return out, nil
}

// NoteInput is a new annotation on an application.
type NoteInput struct {
	Content    string `json:"content" validate:"required"`
	Type       string `json:"type"`
	IsInternal bool   `json:"isInternal"`
}

func (u *Usecase) AddNote(ctx context.Context, appID, authorID, authorName string, in NoteInput) (*noteDomain.Note, error) {
	a, err := u.apps.GetByApplicationID(ctx, appID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	noteType := strings.TrimSpace(in.Type)
	if noteType == "" {
		noteType = "general"
	}
	n := &noteDomain.Note{
		NoteID:        id.NewID32(),
		ApplicationID: a.ID,
		AuthorID:      authorID,
		AuthorName:    authorName,
		Content:       in.Content,
		Type:          noteType,
		IsInternal:    in.IsInternal,
	}
	if err := u.notes.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (u *Usecase) ListNotes(ctx context.Context, appID string, includeInternal bool) ([]noteDomain.Note, error) {
	a, err := u.apps.GetByApplicationID(ctx, appID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return u.notes.ListByApplication(ctx, a.ID, includeInternal)
}
