package models

type Setting struct {
	ID             int     `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"size:100" json:"name"`
	Company        string  `gorm:"size:100" json:"company"`
	Logo           string  `gorm:"size:255" json:"logo"`
	MinTopup       float64 `gorm:"type:decimal(15,2);default:10000" json:"min_topup"`
	Maintenance    bool    `gorm:"default:false" json:"maintenance"`
	ClosedRegister bool    `gorm:"default:false" json:"closed_register"`
}

func (Setting) TableName() string {
	return "settings"
}
