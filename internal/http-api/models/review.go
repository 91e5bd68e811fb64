package models

import "time"

// Review is a user's review of a book. Rows are soft deleted: IsDeleted
// excludes them from every read path but the row stays.
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	BookID    int64     `gorm:"not null;index" json:"book_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Title     string    `gorm:"size:255" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	IsDeleted bool      `gorm:"default:false;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;" json:"book,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

type ReviewLike struct {
	ReviewID  int64     `gorm:"primaryKey;autoIncrement:false" json:"review_id"`
	UserID    int64     `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ReviewLike) TableName() string {
	return "review_likes"
}

type ReviewComment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ReviewID  int64     `gorm:"not null;index" json:"review_id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	IsDeleted bool      `gorm:"default:false;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
}

func (ReviewComment) TableName() string {
	return "review_comments"
}
