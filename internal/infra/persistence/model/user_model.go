package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"type:varchar(100);not null"`
	CPF          string    `gorm:"type:varchar(11);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Phone        string    `gorm:"type:varchar(20)"`
	BirthDate    time.Time `gorm:"type:date;not null"`
	GuardianCPF  string    `gorm:"type:varchar(11)"`
	RegisteredAt time.Time `gorm:"not null"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
