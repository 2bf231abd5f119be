package models

import "time"

// Transaction kinds. Amounts are signed: outflows (investments) are stored
// negative, inflows (top-ups, payouts) positive.
const (
	TxTopup      = "topup"
	TxInvestment = "investment"
	TxPayout     = "payout"
)

type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Type        string    `gorm:"column:type;type:enum('topup','investment','payout');not null" json:"type"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	OrderID     string    `gorm:"type:varchar(191);not null;uniqueIndex" json:"order_id"`
	Description string    `gorm:"type:text" json:"description"`
	ProjectID   *uint     `gorm:"index" json:"project_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
