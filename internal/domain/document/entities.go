package document

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

var ErrNotFound = errors.New("document not found")

// Document is one checklist slot or ad-hoc upload attached to an application.
// Required slots are seeded as empty placeholders at application creation and
// keep their row for the life of the application.
type Document struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	DocumentID    string `gorm:"size:32;uniqueIndex:ux_documents_doc_id" json:"id"`
	ApplicationID uint64 `gorm:"not null;index;uniqueIndex:ux_documents_app_type,priority:1" json:"-"`

	DocType string `gorm:"size:64;uniqueIndex:ux_documents_app_type,priority:2" json:"docType"`
	DocName string `gorm:"size:255" json:"docName"`

	FileName string `gorm:"size:255" json:"fileName"`
	FilePath string `gorm:"size:512" json:"filePath"`
	FileSize *int64 `json:"fileSize"`
	MimeType string `gorm:"size:128" json:"mimeType"`

	Status     Status `gorm:"size:16" json:"status"`
	IsRequired bool   `json:"isRequired"`

	UploadedAt      *time.Time `json:"uploadedAt"`
	VerifiedAt      *time.Time `json:"verifiedAt"`
	VerifiedBy      string     `gorm:"size:32" json:"verifiedBy"`
	RejectionReason string     `gorm:"type:text" json:"rejectionReason"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Document) TableName() string { return "application_documents" }

// Uploaded reports whether an actual file backs this slot.
func (d *Document) Uploaded() bool { return d.FilePath != "" }
