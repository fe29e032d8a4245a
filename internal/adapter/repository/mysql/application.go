package mysql

import (
	"context"
	"time"

	appDomain "edulend-backend/internal/domain/application"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// sortColumns maps every stored field's API name to its column so the admin
// listing can sort by any of them while arbitrary input never reaches ORDER BY.
var sortColumns = map[string]string{
	"id":                "application_id",
	"applicationNumber": "application_number",
	"userId":            "user_id",

	"bank":     "bank",
	"loanType": "loan_type",
	"amount":   "amount",
	"tenure":   "tenure",
	"purpose":  "purpose",

	"firstName":   "first_name",
	"lastName":    "last_name",
	"email":       "email",
	"phone":       "phone",
	"dateOfBirth": "date_of_birth",
	"gender":      "gender",
	"nationality": "nationality",

	"address": "address",
	"city":    "city",
	"state":   "state",
	"pincode": "pincode",
	"country": "country",

	"employmentType": "employment_type",
	"employerName":   "employer_name",
	"jobTitle":       "job_title",
	"annualIncome":   "annual_income",
	"workExperience": "work_experience",

	"universityName":  "university_name",
	"courseName":      "course_name",
	"courseDuration":  "course_duration",
	"courseStartDate": "course_start_date",
	"admissionStatus": "admission_status",

	"hasCoApplicant":      "has_co_applicant",
	"coApplicantName":     "co_applicant_name",
	"coApplicantRelation": "co_applicant_relation",
	"coApplicantPhone":    "co_applicant_phone",
	"coApplicantEmail":    "co_applicant_email",
	"coApplicantIncome":   "co_applicant_income",

	"fatherName":  "father_name",
	"fatherPhone": "father_phone",
	"fatherEmail": "father_email",
	"motherName":  "mother_name",
	"motherPhone": "mother_phone",
	"motherEmail": "mother_email",

	"hasCollateral":     "has_collateral",
	"collateralType":    "collateral_type",
	"collateralValue":   "collateral_value",
	"collateralDetails": "collateral_details",

	"status":   "status",
	"stage":    "stage",
	"progress": "progress",

	"estimatedCompletionAt": "estimated_completion_at",
	"submittedAt":           "submitted_at",
	"reviewStartedAt":       "review_started_at",
	"approvedAt":            "approved_at",
	"rejectedAt":            "rejected_at",
	"disbursedAt":           "disbursed_at",

	"rejectionReason":        "rejection_reason",
	"remarks":                "remarks",
	"assignedTo":             "assigned_to",
	"sanctionAmount":         "sanction_amount",
	"sanctionedInterestRate": "sanctioned_interest_rate",

	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) Delete(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Delete(a).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, appID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", appID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, appID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_id = ?", appID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByNumber(ctx context.Context, number string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("application_number = ?", number).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string, f appDomain.UserFilter) ([]appDomain.Application, int64, error) {
	q := r.db.WithContext(ctx).Model(&appDomain.Application{}).Where("user_id = ?", userID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.LoanType != "" {
		q = q.Where("loan_type = ?", f.LoanType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	var out []appDomain.Application
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&out).Error
	return out, total, err
}

func (r *ApplicationRepository) List(ctx context.Context, f appDomain.AdminFilter) ([]appDomain.Application, int64, error) {
	q := r.db.WithContext(ctx).Model(&appDomain.Application{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Stage != "" {
		q = q.Where("stage = ?", f.Stage)
	}
	if f.LoanType != "" {
		q = q.Where("loan_type = ?", f.LoanType)
	}
	if f.Bank != "" {
		q = q.Where("bank = ?", f.Bank)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(
			"application_number LIKE ? OR first_name LIKE ? OR last_name LIKE ? OR email LIKE ?",
			like, like, like, like,
		)
	}
	if f.FromDate != nil {
		q = q.Where("submitted_at >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("submitted_at <= ?", *f.ToDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := sortColumns[f.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if f.SortOrder == "asc" {
		dir = "ASC"
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}

	var out []appDomain.Application
	err := q.Order(col + " " + dir).Limit(limit).Offset(f.Offset).Find(&out).Error
	return out, total, err
}

func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).Count(&n).Error
	return n, err
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		N      int64
	}
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

func (r *ApplicationRepository) AggregateByLoanType(ctx context.Context) ([]appDomain.LoanTypeAgg, error) {
	var out []appDomain.LoanTypeAgg
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Select("loan_type AS loan_type, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount").
		Group("loan_type").
		Scan(&out).Error
	return out, err
}

func (r *ApplicationRepository) Recent(ctx context.Context, limit int) ([]appDomain.Application, error) {
	var out []appDomain.Application
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n).Error
	return n, err
}
