package application

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	domain "edulend-backend/internal/domain/application"
)

// CreateInput carries the full applicant snapshot. Dates come in as strings
// (YYYY-MM-DD or RFC3339) and are parsed on apply.
type CreateInput struct {
	LoanType string  `json:"loanType"`
	Bank     string  `json:"bank"`
	Amount   float64 `json:"amount"`
	Tenure   *int    `json:"tenure"`
	Purpose  string  `json:"purpose"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`

	EmploymentType string   `json:"employmentType"`
	EmployerName   string   `json:"employerName"`
	JobTitle       string   `json:"jobTitle"`
	AnnualIncome   *float64 `json:"annualIncome"`
	WorkExperience *int     `json:"workExperience"`

	UniversityName  string `json:"universityName"`
	CourseName      string `json:"courseName"`
	CourseDuration  *int   `json:"courseDuration"`
	CourseStartDate string `json:"courseStartDate"`
	AdmissionStatus string `json:"admissionStatus"`

	HasCoApplicant      bool     `json:"hasCoApplicant"`
	CoApplicantName     string   `json:"coApplicantName"`
	CoApplicantRelation string   `json:"coApplicantRelation"`
	CoApplicantPhone    string   `json:"coApplicantPhone"`
	CoApplicantEmail    string   `json:"coApplicantEmail"`
	CoApplicantIncome   *float64 `json:"coApplicantIncome"`

	FatherName  string `json:"fatherName"`
	FatherPhone string `json:"fatherPhone"`
	FatherEmail string `json:"fatherEmail"`
	MotherName  string `json:"motherName"`
	MotherPhone string `json:"motherPhone"`
	MotherEmail string `json:"motherEmail"`

	HasCollateral     bool     `json:"hasCollateral"`
	CollateralType    string   `json:"collateralType"`
	CollateralValue   *float64 `json:"collateralValue"`
	CollateralDetails string   `json:"collateralDetails"`
}

// validate is the creation gate: rules are checked in a fixed order and the
// first violation wins. Name lengths count characters, not bytes.
func (in *CreateInput) validate() error {
	if utf8.RuneCountInString(in.FirstName) < 3 {
		return fmt.Errorf("%w: first name must be at least 3 characters long", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(in.LastName) < 1 {
		return fmt.Errorf("%w: last name must be at least 1 character long", domain.ErrInvalidInput)
	}
	if len(stripNonDigits(in.Phone)) != 10 {
		return fmt.Errorf("%w: phone number must be exactly 10 digits", domain.ErrInvalidInput)
	}
	if in.FatherName != "" && utf8.RuneCountInString(in.FatherName) < 3 {
		return fmt.Errorf("%w: father's name must be at least 3 characters long", domain.ErrInvalidInput)
	}
	if in.FatherPhone != "" && len(stripNonDigits(in.FatherPhone)) != 10 {
		return fmt.Errorf("%w: father's phone number must be exactly 10 digits", domain.ErrInvalidInput)
	}
	if in.MotherName != "" && utf8.RuneCountInString(in.MotherName) < 3 {
		return fmt.Errorf("%w: mother's name must be at least 3 characters long", domain.ErrInvalidInput)
	}
	if in.MotherPhone != "" && len(stripNonDigits(in.MotherPhone)) != 10 {
		return fmt.Errorf("%w: mother's phone number must be exactly 10 digits", domain.ErrInvalidInput)
	}
	return nil
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseDate accepts YYYY-MM-DD or RFC3339; empty input yields nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}

// UpdateInput is a shallow patch: nil fields leave the stored value alone.
type UpdateInput struct {
	Bank    *string  `json:"bank"`
	Amount  *float64 `json:"amount"`
	Tenure  *int     `json:"tenure"`
	Purpose *string  `json:"purpose"`

	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth"`
	Gender      *string `json:"gender"`
	Nationality *string `json:"nationality"`

	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Pincode *string `json:"pincode"`
	Country *string `json:"country"`

	EmploymentType *string  `json:"employmentType"`
	EmployerName   *string  `json:"employerName"`
	JobTitle       *string  `json:"jobTitle"`
	AnnualIncome   *float64 `json:"annualIncome"`
	WorkExperience *int     `json:"workExperience"`

	UniversityName  *string `json:"universityName"`
	CourseName      *string `json:"courseName"`
	CourseDuration  *int    `json:"courseDuration"`
	CourseStartDate *string `json:"courseStartDate"`
	AdmissionStatus *string `json:"admissionStatus"`

	HasCoApplicant      *bool    `json:"hasCoApplicant"`
	CoApplicantName     *string  `json:"coApplicantName"`
	CoApplicantRelation *string  `json:"coApplicantRelation"`
	CoApplicantPhone    *string  `json:"coApplicantPhone"`
	CoApplicantEmail    *string  `json:"coApplicantEmail"`
	CoApplicantIncome   *float64 `json:"coApplicantIncome"`

	FatherName  *string `json:"fatherName"`
	FatherPhone *string `json:"fatherPhone"`
	FatherEmail *string `json:"fatherEmail"`
	MotherName  *string `json:"motherName"`
	MotherPhone *string `json:"motherPhone"`
	MotherEmail *string `json:"motherEmail"`

	HasCollateral     *bool    `json:"hasCollateral"`
	CollateralType    *string  `json:"collateralType"`
	CollateralValue   *float64 `json:"collateralValue"`
	CollateralDetails *string  `json:"collateralDetails"`
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func (in *UpdateInput) apply(a *domain.Application) {
	setStr(&a.Bank, in.Bank)
	if in.Amount != nil {
		a.Amount = *in.Amount
	}
	if in.Tenure != nil {
		a.Tenure = in.Tenure
	}
	setStr(&a.Purpose, in.Purpose)

	setStr(&a.FirstName, in.FirstName)
	setStr(&a.LastName, in.LastName)
	setStr(&a.Email, in.Email)
	setStr(&a.Phone, in.Phone)
	if in.DateOfBirth != nil {
		a.DateOfBirth = parseDate(*in.DateOfBirth)
	}
	setStr(&a.Gender, in.Gender)
	setStr(&a.Nationality, in.Nationality)

	setStr(&a.Address, in.Address)
	setStr(&a.City, in.City)
	setStr(&a.State, in.State)
	setStr(&a.Pincode, in.Pincode)
	setStr(&a.Country, in.Country)

	setStr(&a.EmploymentType, in.EmploymentType)
	setStr(&a.EmployerName, in.EmployerName)
	setStr(&a.JobTitle, in.JobTitle)
	if in.AnnualIncome != nil {
		a.AnnualIncome = in.AnnualIncome
	}
	if in.WorkExperience != nil {
		a.WorkExperience = in.WorkExperience
	}

	setStr(&a.UniversityName, in.UniversityName)
	setStr(&a.CourseName, in.CourseName)
	if in.CourseDuration != nil {
		a.CourseDuration = in.CourseDuration
	}
	if in.CourseStartDate != nil {
		a.CourseStartDate = parseDate(*in.CourseStartDate)
	}
	setStr(&a.AdmissionStatus, in.AdmissionStatus)

	if in.HasCoApplicant != nil {
		a.HasCoApplicant = *in.HasCoApplicant
	}
	setStr(&a.CoApplicantName, in.CoApplicantName)
	setStr(&a.CoApplicantRelation, in.CoApplicantRelation)
	setStr(&a.CoApplicantPhone, in.CoApplicantPhone)
	setStr(&a.CoApplicantEmail, in.CoApplicantEmail)
	if in.CoApplicantIncome != nil {
		a.CoApplicantIncome = in.CoApplicantIncome
	}

	setStr(&a.FatherName, in.FatherName)
	setStr(&a.FatherPhone, in.FatherPhone)
	setStr(&a.FatherEmail, in.FatherEmail)
	setStr(&a.MotherName, in.MotherName)
	setStr(&a.MotherPhone, in.MotherPhone)
	setStr(&a.MotherEmail, in.MotherEmail)

	if in.HasCollateral != nil {
		a.HasCollateral = *in.HasCollateral
	}
	setStr(&a.CollateralType, in.CollateralType)
	if in.CollateralValue != nil {
		a.CollateralValue = in.CollateralValue
	}
	setStr(&a.CollateralDetails, in.CollateralDetails)
}
