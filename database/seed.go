package database

import (
	"errors"
	"log"

	"investmate/models"

	"gorm.io/gorm"
)

// Seed bootstraps the demo dataset: application settings, the demo admin and
// investor accounts, and the three showcase projects. Idempotent: existing
// rows are left untouched.
func Seed(db *gorm.DB) error {
	var setting models.Setting
	if err := db.First(&setting).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.Setting{
			Name:     "InvestMate",
			Company:  "PT InvestMate Indonesia",
			MinTopup: 10000,
		}
		if err := db.Create(&setting).Error; err != nil {
			return err
		}
	}

	users := []models.User{
		{Name: "Admin User", Email: "admin@investmate.com", Password: "admin123", Role: models.RoleAdmin, Balance: 1000000},
		{Name: "John Doe", Email: "john@example.com", Password: "password123", Role: models.RoleUser, Balance: 150000},
	}
	for i := range users {
		var existing models.User
		err := db.Where("email = ?", users[i].Email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := users[i].HashPassword(); err != nil {
			return err
		}
		if err := db.Create(&users[i]).Error; err != nil {
			return err
		}
		log.Printf("[seed] created user %s", users[i].Email)
	}

	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	projects := []models.Project{
		{
			Name:          "Green Energy Solar Farm",
			Description:   "Investasi dalam farm tenaga surya dengan teknologi terdepan untuk menghasilkan energi bersih dan berkelanjutan.",
			APY:           12.5,
			Tenor:         12,
			TenorType:     models.TenorMonths,
			MinInvestment: 1000000,
			MaxInvestment: 50000000,
			TargetAmount:  500000000,
			CurrentAmount: 350000000,
			Status:        models.ProjectOpen,
			Category:      "Renewable Energy",
			Image:         "https://images.pexels.com/photos/9875428/pexels-photo-9875428.jpeg",
		},
		{
			Name:          "Tech Startup Series A",
			Description:   "Investasi dalam startup teknologi fintech yang sedang berkembang pesat dengan proyeksi pertumbuhan tinggi.",
			APY:           18.0,
			Tenor:         18,
			TenorType:     models.TenorMonths,
			MinInvestment: 5000000,
			MaxInvestment: 100000000,
			TargetAmount:  1000000000,
			CurrentAmount: 750000000,
			Status:        models.ProjectOpen,
			Category:      "Technology",
			Image:         "https://images.pexels.com/photos/3183150/pexels-photo-3183150.jpeg",
		},
		{
			Name:          "Real Estate Development",
			Description:   "Proyek pengembangan apartemen premium di kawasan strategis dengan tingkat okupansi tinggi.",
			APY:           15.2,
			Tenor:         24,
			TenorType:     models.TenorMonths,
			MinInvestment: 10000000,
			MaxInvestment: 200000000,
			TargetAmount:  2000000000,
			CurrentAmount: 1200000000,
			Status:        models.ProjectActive,
			Category:      "Real Estate",
			Image:         "https://images.pexels.com/photos/323780/pexels-photo-323780.jpeg",
		},
	}
	for i := range projects {
		if err := db.Create(&projects[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("[seed] created %d demo projects", len(projects))
	return nil
}
