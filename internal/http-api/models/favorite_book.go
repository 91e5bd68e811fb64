package models

import "time"

type FavoriteBook struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	BookID    int64     `gorm:"primaryKey;autoIncrement:false" json:"book_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Book *Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;" json:"book,omitempty"`
}

func (FavoriteBook) TableName() string {
	return "favorite_books"
}
