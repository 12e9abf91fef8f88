package model

import "time"

// LoanModel mirrors the 'loans' table. UserID and BookID reference their
// owning tables so open loans can be joined with book and author data.
type LoanModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     int64     `gorm:"index;not null"`
	BookID     int64     `gorm:"index;not null"`
	LoanDate   time.Time `gorm:"not null"`
	DueDate    time.Time `gorm:"not null"`
	ReturnDate *time.Time
	FineAmount float64 `gorm:"type:numeric(10,2);not null;default:0"`
	FinePaid   float64 `gorm:"type:numeric(10,2);not null;default:0"`
	Renewed    bool    `gorm:"not null;default:false"`
	Active     bool    `gorm:"index;not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
	Book *BookModel `gorm:"foreignKey:BookID"`
}

// TableName explicitly sets the table name for GORM.
func (LoanModel) TableName() string {
	return "loans"
}
