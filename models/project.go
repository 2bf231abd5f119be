package models

import "time"

// Project lifecycle statuses. Draft projects are hidden from the public
// catalog; Funded is reached automatically when funding hits the target.
const (
	ProjectDraft     = "Draft"
	ProjectOpen      = "Open"
	ProjectFunded    = "Funded"
	ProjectActive    = "Active"
	ProjectCompleted = "Completed"
)

const (
	TenorDays   = "days"
	TenorMonths = "months"
)

type Project struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	APY           float64   `gorm:"column:apy;type:decimal(5,2);not null" json:"apy"`
	Tenor         int       `gorm:"not null" json:"tenor"`
	TenorType     string    `gorm:"type:enum('days','months');default:'months'" json:"tenor_type"`
	MinInvestment float64   `gorm:"type:decimal(15,2);not null" json:"min_investment"`
	MaxInvestment float64   `gorm:"type:decimal(15,2);not null" json:"max_investment"`
	TargetAmount  float64   `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount float64   `gorm:"type:decimal(15,2);default:0" json:"current_amount"`
	Status        string    `gorm:"type:enum('Draft','Open','Funded','Active','Completed');default:'Draft'" json:"status"`
	Category      string    `gorm:"size:100" json:"category"`
	Image         string    `gorm:"size:255" json:"image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// RemainingQuota is the amount still fundable before the target is reached.
func (p *Project) RemainingQuota() float64 {
	return p.TargetAmount - p.CurrentAmount
}
