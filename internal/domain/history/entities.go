package history

import "time"

// Entry is one immutable audit record of a status- or stage-affecting
// transition. Entries are never updated; the only delete path is the
// application delete cascade.
type Entry struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID uint64 `gorm:"not null;index:idx_status_history_app" json:"-"`

	FromStatus string `gorm:"size:24" json:"fromStatus,omitempty"`
	ToStatus   string `gorm:"size:24" json:"toStatus,omitempty"`
	FromStage  string `gorm:"size:32" json:"fromStage,omitempty"`
	ToStage    string `gorm:"size:32" json:"toStage,omitempty"`

	ChangedBy     string `gorm:"size:32" json:"changedBy,omitempty"`
	ChangedByName string `gorm:"size:128" json:"changedByName,omitempty"`
	Notes         string `gorm:"type:text" json:"notes,omitempty"`
	IsAutomatic   bool   `json:"isAutomatic"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Entry) TableName() string { return "application_status_history" }
