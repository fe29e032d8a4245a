package application

import (
	"context"
	"testing"

	domain "edulend-backend/internal/domain/application"
	noteDomain "edulend-backend/internal/domain/note"
)

const (
	adminID   = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	adminName = "Priya Sharma"
)

func strp(s string) *string   { return &s }
func intp(n int) *int         { return &n }
func f64p(v float64) *float64 { return &v }

func TestAdminUpdateStatus_StampsStatusTimestamps(t *testing.T) {
	cases := []struct {
		status  string
		stamped func(a *domain.Application) bool
	}{
		{"under_review", func(a *domain.Application) bool { return a.ReviewStartedAt != nil }},
		{"approved", func(a *domain.Application) bool { return a.ApprovedAt != nil }},
		{"rejected", func(a *domain.Application) bool { return a.RejectedAt != nil }},
		{"disbursed", func(a *domain.Application) bool { return a.DisbursedAt != nil }},
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			f := newFixture(seedApp(domain.StatusSubmitted))

			a, err := f.uc.AdminUpdateStatus(context.Background(), seededID, adminID, adminName, AdminStatusInput{
				Status: strp(tc.status),
			})
			if err != nil {
				t.Fatalf("AdminUpdateStatus: %v", err)
			}
			if string(a.Status) != tc.status {
				t.Errorf("status = %s, want %s", a.Status, tc.status)
			}
			if !tc.stamped(a) {
				t.Errorf("timestamp for %s not stamped", tc.status)
			}
		})
	}
}

func TestAdminUpdateStatus_StageSetsProgressFromTable(t *testing.T) {
	f := newFixture(seedApp(domain.StatusUnderReview))

	a, err := f.uc.AdminUpdateStatus(context.Background(), seededID, adminID, adminName, AdminStatusInput{
		Stage: strp(string(domain.StageSanction)),
	})
	if err != nil {
		t.Fatalf("AdminUpdateStatus: %v", err)
	}
	if a.Stage != domain.StageSanction {
		t.Errorf("stage = %s", a.Stage)
	}
	if a.Progress != 90 {
		t.Errorf("progress = %d, want 90 from the stage table", a.Progress)
	}
}

func TestAdminUpdateStatus_ExplicitProgressWins(t *testing.T) {
	f := newFixture(seedApp(domain.StatusUnderReview))

	a, err := f.uc.AdminUpdateStatus(context.Background(), seededID, adminID, adminName, AdminStatusInput{
		Stage:    strp(string(domain.StageSanction)),
		Progress: intp(75),
	})
	if err != nil {
		t.Fatalf("AdminUpdateStatus: %v", err)
	}
	if a.Progress != 75 {
		t.Errorf("progress = %d, want the explicit 75", a.Progress)
	}
}

func TestAdminUpdateStatus_CombinedDeltaWritesOneEntry(t *testing.T) {
	f := newFixture(seedApp(domain.StatusSubmitted))

	_, err := f.uc.AdminUpdateStatus(context.Background(), seededID, adminID, adminName, AdminStatusInput{
		Status:  strp("under_review"),
		Stage:   strp(string(domain.StageDocumentVerification)),
		Remarks: strp("docs look complete"),
	})
	if err != nil {
		t.Fatalf("AdminUpdateStatus: %v", err)
	}
	if len(f.entries) != 1 {
		t.Fatalf("history entries = %d, want exactly 1 combined entry", len(f.entries))
	}
	e := f.entries[0]
	if e.FromStatus != "submitted" || e.ToStatus != "under_review" {
		t.Errorf("status delta = %s -> %s", e.FromStatus, e.ToStatus)
	}
	if e.FromStage != string(domain.StageApplicationSubmitted) || e.ToStage != string(domain.StageDocumentVerification) {
		t.Errorf("stage delta = %s -> %s", e.FromStage, e.ToStage)
	}
	if e.ChangedBy != adminID || e.ChangedByName != adminName {
		t.Errorf("attribution = %s/%s", e.ChangedBy, e.ChangedByName)
	}
	if e.Notes != "docs look complete" {
		t.Errorf("notes = %q", e.Notes)
	}
	if e.IsAutomatic {
		t.Error("admin overrides are not automatic")
	}
}

func TestAdminUpdateStatus_NoEntryWhenNothingChanged(t *testing.T) {
	f := newFixture(seedApp(domain.StatusSubmitted))

	a, err := f.uc.AdminUpdateStatus(context.Background(), seededID, adminID, adminName, AdminStatusInput{
		Status:     strp("submitted"), // same value
		Remarks:    strp("just a remark"),
		AssignedTo: strp("officer-17"),
	})
	if err != nil {
		t.Fatalf("AdminUpdateStatus: %v", err)
	}
	if a.Remarks != "just a remark" || a.AssignedTo != "officer-17" {
		t.Errorf("free-form fields not applied: %+v", a)
	}
	if len(f.entries) != 0 {
		t.Errorf("history entries = %d, want none when status and stage are unchanged", len(f.entries))
	}
	if f.saved == nil {
		t.Error("Save must still persist the free-form fields")
	}
}

func TestAdminUpdateStatus_RejectionFields(t *testing.T) {
	f := newFixture(seedApp(domain.StatusUnderReview))

	a, err := f.uc.AdminUpdateStatus(context.Background(), seededID, adminID, adminName, AdminStatusInput{
		Status:          strp("rejected"),
		RejectionReason: strp("income below threshold"),
	})
	if err != nil {
		t.Fatalf("AdminUpdateStatus: %v", err)
	}
	if a.RejectionReason != "income below threshold" {
		t.Errorf("rejectionReason = %q", a.RejectionReason)
	}
	if a.RejectedAt == nil {
		t.Error("rejectedAt not stamped")
	}
}

func TestAdminUpdateStatus_SanctionFields(t *testing.T) {
	f := newFixture(seedApp(domain.StatusUnderReview))

	a, err := f.uc.AdminUpdateStatus(context.Background(), seededID, adminID, adminName, AdminStatusInput{
		Status:                 strp("approved"),
		SanctionAmount:         f64p(2_000_000),
		SanctionedInterestRate: f64p(9.25),
	})
	if err != nil {
		t.Fatalf("AdminUpdateStatus: %v", err)
	}
	if a.SanctionAmount == nil || *a.SanctionAmount != 2_000_000 {
		t.Errorf("sanctionAmount = %v", a.SanctionAmount)
	}
	if a.SanctionedInterestRate == nil || *a.SanctionedInterestRate != 9.25 {
		t.Errorf("sanctionedInterestRate = %v", a.SanctionedInterestRate)
	}
}

// ----- notes -----

func TestAddNote_DefaultsTypeToGeneral(t *testing.T) {
	f := newFixture(seedApp(domain.StatusSubmitted))

	var created *noteDomain.Note
	f.notes.CreateFn = func(ctx context.Context, n *noteDomain.Note) error {
		created = n
		return nil
	}

	n, err := f.uc.AddNote(context.Background(), seededID, adminID, adminName, NoteInput{
		Content:    "called the applicant, awaiting fee structure",
		IsInternal: true,
	})
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if created == nil {
		t.Fatal("note not persisted")
	}
	if n.Type != "general" {
		t.Errorf("type = %q, want general", n.Type)
	}
	if !n.IsInternal || n.AuthorID != adminID || n.AuthorName != adminName {
		t.Errorf("note = %+v", n)
	}
	if len(n.NoteID) != 32 {
		t.Errorf("noteID length = %d, want 32", len(n.NoteID))
	}
}
