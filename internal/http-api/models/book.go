package models

import "time"

type Author struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255;not null;index" json:"name"`
}

func (Author) TableName() string {
	return "authors"
}

type Book struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string    `gorm:"size:512;not null;index" json:"title"`
	PublicationYear int       `gorm:"column:publication_year" json:"publication_year"`
	Genre           string    `gorm:"size:64;index" json:"genre"`
	CoverURL        string    `gorm:"size:512" json:"cover_url"`
	CreatedAt       time.Time `json:"created_at"`

	// Associations
	Authors []Author `gorm:"many2many:book_authors;" json:"authors,omitempty"`
}

func (Book) TableName() string {
	return "books"
}
