// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// AuthorModel mirrors the 'authors' table.
type AuthorModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	BirthDate time.Time `gorm:"type:date;not null"`
	Country   string    `gorm:"type:varchar(50);not null"`
	Biography string    `gorm:"type:text"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthorModel) TableName() string {
	return "authors"
}
