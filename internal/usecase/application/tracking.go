package application

import (
	"context"
	"fmt"
	"time"

	domain "edulend-backend/internal/domain/application"
	docDomain "edulend-backend/internal/domain/document"
	histDomain "edulend-backend/internal/domain/history"
)

// TrackingStage is one row of the derived timeline view.
type TrackingStage struct {
	Key         string     `json:"key"`
	Label       string     `json:"label"`
	Order       int        `json:"order"`
	IsCompleted bool       `json:"isCompleted"`
	IsCurrent   bool       `json:"isCurrent"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// DocumentsStatus summarizes the checklist state for the tracking view.
type DocumentsStatus struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Verified int `json:"verified"`
	Rejected int `json:"rejected"`
}

type Tracking struct {
	ApplicationID       string             `json:"applicationId"`
	ApplicationNumber   string             `json:"applicationNumber"`
	Status              domain.Status      `json:"status"`
	CurrentStage        domain.Stage       `json:"currentStage"`
	Progress            int                `json:"progress"`
	Stages              []TrackingStage    `json:"stages"`
	Timeline            []histDomain.Entry `json:"timeline"`
	Documents           DocumentsStatus    `json:"documents"`
	EstimatedCompletion *time.Time         `json:"estimatedCompletion"`
	SubmittedAt         *time.Time         `json:"submittedAt"`
	LastUpdated         time.Time          `json:"lastUpdated"`
}

// PublicTracking is the by-number projection: no timeline, no owner data.
type PublicTracking struct {
	ApplicationNumber     string          `json:"applicationNumber"`
	LoanType              domain.LoanType `json:"loanType"`
	Bank                  string          `json:"bank"`
	Amount                float64         `json:"amount"`
	Status                domain.Status   `json:"status"`
	Stage                 domain.Stage    `json:"stage"`
	Progress              int             `json:"progress"`
	SubmittedAt           *time.Time      `json:"submittedAt"`
	EstimatedCompletionAt *time.Time      `json:"estimatedCompletionAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
	Stages                []TrackingStage `json:"stages"`
}

// buildStages derives per-stage completion flags from the current stage. A
// stage's completedAt is the most recent history entry whose toStage matches;
// stages skipped by a direct admin stage set show completed with a nil
// completedAt, which callers must tolerate.
func buildStages(current domain.Stage, timeline []histDomain.Entry) []TrackingStage {
	currentOrder := 0
	if info, ok := domain.StageLookup(current); ok {
		currentOrder = info.Order
	}

	out := make([]TrackingStage, 0, len(domain.StageTable))
	for _, info := range domain.StageTable {
		s := TrackingStage{
			Key:         string(info.Key),
			Label:       info.Label,
			Order:       info.Order,
			IsCompleted: info.Order < currentOrder,
			IsCurrent:   info.Key == current,
		}
		if s.IsCompleted {
			// timeline is in insertion order; last match is the most recent
			for i := len(timeline) - 1; i >= 0; i-- {
				if timeline[i].ToStage == string(info.Key) {
					s.CompletedAt = &timeline[i].CreatedAt
					break
				}
			}
		}
		out = append(out, s)
	}
	return out
}

// Tracking builds the derived timeline view. An empty userID skips the
// ownership check (admin path).
func (u *Usecase) Tracking(ctx context.Context, appID, userID string) (*Tracking, error) {
	a, err := u.apps.GetByApplicationID(ctx, appID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if userID != "" && a.UserID != userID {
		return nil, fmt.Errorf("%w: not your application", domain.ErrUnauthorized)
	}

	timeline, err := u.hist.ListByApplication(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	docs, err := u.docs.ListByApplication(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	status := DocumentsStatus{Total: len(docs)}
	for _, d := range docs {
		switch d.Status {
		case docDomain.StatusPending:
			status.Pending++
		case docDomain.StatusVerified:
			status.Verified++
		case docDomain.StatusRejected:
			status.Rejected++
		}
	}

	return &Tracking{
		ApplicationID:       a.ApplicationID,
		ApplicationNumber:   a.ApplicationNumber,
		Status:              a.Status,
		CurrentStage:        a.Stage,
		Progress:            a.Progress,
		Stages:              buildStages(a.Stage, timeline),
		Timeline:            timeline,
		Documents:           status,
		EstimatedCompletion: a.EstimatedCompletionAt,
		SubmittedAt:         a.SubmittedAt,
		LastUpdated:         a.UpdatedAt,
	}, nil
}

// Track is the public by-number lookup.
func (u *Usecase) Track(ctx context.Context, number string) (*PublicTracking, error) {
	a, err := u.apps.GetByNumber(ctx, number)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &PublicTracking{
		ApplicationNumber:     a.ApplicationNumber,
		LoanType:              a.LoanType,
		Bank:                  a.Bank,
		Amount:                a.Amount,
		Status:                a.Status,
		Stage:                 a.Stage,
		Progress:              a.Progress,
		SubmittedAt:           a.SubmittedAt,
		EstimatedCompletionAt: a.EstimatedCompletionAt,
		UpdatedAt:             a.UpdatedAt,
		Stages:                buildStages(a.Stage, nil),
	}, nil
}
