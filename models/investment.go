package models

import "time"

const (
	InvestmentActive    = "active"
	InvestmentCompleted = "completed"
)

type Investment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	ProjectID      uint      `gorm:"not null;index" json:"project_id"`
	Amount         float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	ExpectedReturn float64   `gorm:"type:decimal(15,2);not null" json:"expected_return"`
	PayoutDate     time.Time `gorm:"not null" json:"payout_date"`
	OrderID        string    `gorm:"type:varchar(191);not null;uniqueIndex" json:"order_id"`
	Status         string    `gorm:"type:enum('active','completed');default:'active'" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"-"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (Investment) TableName() string {
	return "investments"
}
