package models

import "time"

const (
	StatusWantToRead = "WANT_TO_READ"
	StatusReading    = "READING"
	StatusRead       = "READ"
)

// ReadingStatus holds a user's progress through one book. One row per
// (user, book); updates mutate in place.
type ReadingStatus struct {
	ID              int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64      `gorm:"not null;uniqueIndex:idx_reading_status_user_book" json:"user_id"`
	BookID          int64      `gorm:"not null;uniqueIndex:idx_reading_status_user_book" json:"book_id"`
	Status          string     `gorm:"size:16;not null" json:"status"`
	ProgressPercent int        `gorm:"default:0" json:"progress_percent"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;" json:"book,omitempty"`
}

func (ReadingStatus) TableName() string {
	return "reading_status"
}

// ValidStatus reports whether s is one of the three lifecycle values.
func ValidStatus(s string) bool {
	return s == StatusWantToRead || s == StatusReading || s == StatusRead
}
