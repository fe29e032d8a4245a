package application

import (
	"errors"
	"time"
)

type Status string

const (
	StatusDraft            Status = "draft"
	StatusSubmitted        Status = "submitted"
	StatusUnderReview      Status = "under_review"
	StatusDocumentsPending Status = "documents_pending"
	StatusApproved         Status = "approved"
	StatusRejected         Status = "rejected"
	StatusDisbursed        Status = "disbursed"
	StatusCancelled        Status = "cancelled"
)

type LoanType string

const (
	LoanEducation LoanType = "education"
	LoanHome      LoanType = "home"
	LoanPersonal  LoanType = "personal"
	LoanBusiness  LoanType = "business"
	LoanVehicle   LoanType = "vehicle"
)

type Stage string

const (
	StageApplicationSubmitted Stage = "application_submitted"
	StageDocumentVerification Stage = "document_verification"
	StageCreditCheck          Stage = "credit_check"
	StageBankReview           Stage = "bank_review"
	StageSanction             Stage = "sanction"
	StageDisbursement         Stage = "disbursement"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
)

const DefaultBank = "HDFC Credila"

type Application struct {
	ID                uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID     string `gorm:"size:32;uniqueIndex:ux_applications_app_id" json:"id"`
	ApplicationNumber string `gorm:"size:24;uniqueIndex:ux_applications_number" json:"applicationNumber"`
	UserID            string `gorm:"size:32;index:idx_applications_user" json:"userId"`

	Bank     string   `gorm:"size:128" json:"bank"`
	LoanType LoanType `gorm:"size:16;index:idx_applications_loan_type" json:"loanType"`
	Amount   float64  `gorm:"type:decimal(18,2)" json:"amount"`
	Tenure   *int     `json:"tenure"`
	Purpose  string   `gorm:"type:text" json:"purpose"`

	// Applicant snapshot, denormalized at creation so the application keeps
	// the facts as submitted even if the profile changes later.
	FirstName   string     `gorm:"size:64" json:"firstName"`
	LastName    string     `gorm:"size:64" json:"lastName"`
	Email       string     `gorm:"size:255;index:idx_applications_email" json:"email"`
	Phone       string     `gorm:"size:20" json:"phone"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Gender      string     `gorm:"size:16" json:"gender"`
	Nationality string     `gorm:"size:64" json:"nationality"`

	Address string `gorm:"type:text" json:"address"`
	City    string `gorm:"size:64" json:"city"`
	State   string `gorm:"size:64" json:"state"`
	Pincode string `gorm:"size:16" json:"pincode"`
	Country string `gorm:"size:64" json:"country"`

	EmploymentType string   `gorm:"size:32" json:"employmentType"`
	EmployerName   string   `gorm:"size:128" json:"employerName"`
	JobTitle       string   `gorm:"size:128" json:"jobTitle"`
	AnnualIncome   *float64 `gorm:"type:decimal(18,2)" json:"annualIncome"`
	WorkExperience *int     `json:"workExperience"`

	UniversityName  string     `gorm:"size:255" json:"universityName"`
	CourseName      string     `gorm:"size:255" json:"courseName"`
	CourseDuration  *int       `json:"courseDuration"`
	CourseStartDate *time.Time `json:"courseStartDate"`
	AdmissionStatus string     `gorm:"size:32" json:"admissionStatus"`

	HasCoApplicant      bool     `json:"hasCoApplicant"`
	CoApplicantName     string   `gorm:"size:128" json:"coApplicantName"`
	CoApplicantRelation string   `gorm:"size:64" json:"coApplicantRelation"`
	CoApplicantPhone    string   `gorm:"size:20" json:"coApplicantPhone"`
	CoApplicantEmail    string   `gorm:"size:255" json:"coApplicantEmail"`
	CoApplicantIncome   *float64 `gorm:"type:decimal(18,2)" json:"coApplicantIncome"`

	FatherName  string `gorm:"size:128" json:"fatherName"`
	FatherPhone string `gorm:"size:20" json:"fatherPhone"`
	FatherEmail string `gorm:"size:255" json:"fatherEmail"`
	MotherName  string `gorm:"size:128" json:"motherName"`
	MotherPhone string `gorm:"size:20" json:"motherPhone"`
	MotherEmail string `gorm:"size:255" json:"motherEmail"`

	HasCollateral     bool     `json:"hasCollateral"`
	CollateralType    string   `gorm:"size:64" json:"collateralType"`
	CollateralValue   *float64 `gorm:"type:decimal(18,2)" json:"collateralValue"`
	CollateralDetails string   `gorm:"type:text" json:"collateralDetails"`

	Status   Status `gorm:"size:24;index:idx_applications_status" json:"status"`
	Stage    Stage  `gorm:"size:32;index:idx_applications_stage" json:"stage"`
	Progress int    `json:"progress"`

	EstimatedCompletionAt *time.Time `json:"estimatedCompletionAt"`
	SubmittedAt           *time.Time `json:"submittedAt"`
	ReviewStartedAt       *time.Time `json:"reviewStartedAt"`
	ApprovedAt            *time.Time `json:"approvedAt"`
	RejectedAt            *time.Time `json:"rejectedAt"`
	DisbursedAt           *time.Time `json:"disbursedAt"`

	RejectionReason        string   `gorm:"type:text" json:"rejectionReason"`
	Remarks                string   `gorm:"type:text" json:"remarks"`
	AssignedTo             string   `gorm:"size:128" json:"assignedTo"`
	SanctionAmount         *float64 `gorm:"type:decimal(18,2)" json:"sanctionAmount"`
	SanctionedInterestRate *float64 `gorm:"type:decimal(6,3)" json:"sanctionedInterestRate"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Application) TableName() string { return "loan_applications" }

// Modifiable reports whether the owner may still edit the application fields.
func (a *Application) Modifiable() bool {
	return a.Status == StatusDraft || a.Status == StatusDocumentsPending
}

// Cancellable reports whether the owner may still cancel the application.
func (a *Application) Cancellable() bool {
	switch a.Status {
	case StatusApproved, StatusDisbursed, StatusCancelled:
		return false
	}
	return true
}
