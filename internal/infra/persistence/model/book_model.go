package model

import "time"

// BookModel mirrors the 'books' table. AuthorID references authors.id.
type BookModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Title           string `gorm:"type:varchar(200);not null"`
	ISBN            string `gorm:"type:varchar(13);unique;not null"`
	PublicationYear int    `gorm:"not null"`
	Category        string `gorm:"type:varchar(50);not null"`
	Stock           int    `gorm:"not null"`
	AuthorID        int64  `gorm:"index;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Author *AuthorModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
