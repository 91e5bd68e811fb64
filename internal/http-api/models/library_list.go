package models

import "time"

const (
	VisibilityPublic        = "PUBLIC"
	VisibilityPrivate       = "PRIVATE"
	VisibilityFollowersOnly = "FOLLOWERS_ONLY"
)

type LibraryList struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"size:140;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Visibility  string    `gorm:"size:16;not null;default:'PUBLIC'" json:"visibility"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
}

func (LibraryList) TableName() string {
	return "library_lists"
}

// ValidVisibility reports whether v is a known list visibility.
func ValidVisibility(v string) bool {
	return v == VisibilityPublic || v == VisibilityPrivate || v == VisibilityFollowersOnly
}

// ListBook joins a list to a book. Position is caller supplied and never
// renumbered.
type ListBook struct {
	ListID   int64     `gorm:"primaryKey;autoIncrement:false" json:"list_id"`
	BookID   int64     `gorm:"primaryKey;autoIncrement:false" json:"book_id"`
	Position int       `gorm:"not null;default:1" json:"position"`
	Note     string    `gorm:"size:255" json:"note"`
	AddedAt  time.Time `gorm:"autoCreateTime" json:"added_at"`

	List *LibraryList `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE;" json:"list,omitempty"`
	Book *Book        `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;" json:"book,omitempty"`
}

func (ListBook) TableName() string {
	return "list_books"
}

type ListLike struct {
	ListID    int64     `gorm:"primaryKey;autoIncrement:false" json:"list_id"`
	UserID    int64     `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ListLike) TableName() string {
	return "list_likes"
}
