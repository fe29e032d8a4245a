package note

import "time"

// Note is a free-form annotation on an application. Internal notes are hidden
// from the owning user.
type Note struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	NoteID        string `gorm:"size:32;uniqueIndex:ux_notes_note_id" json:"id"`
	ApplicationID uint64 `gorm:"not null;index:idx_notes_app" json:"-"`

	AuthorID   string `gorm:"size:32" json:"authorId"`
	AuthorName string `gorm:"size:128" json:"authorName"`
	Content    string `gorm:"type:text" json:"content"`
	Type       string `gorm:"size:32" json:"type"`
	IsInternal bool   `json:"isInternal"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Note) TableName() string { return "application_notes" }
