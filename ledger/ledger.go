// Package ledger implements the investment bookkeeping: placement validation,
// the all-or-nothing invest commit, wallet top-ups and payout processing.
// All state lives behind the *gorm.DB handle passed to New; the package keeps
// no globals.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"investmate/models"
	"investmate/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Ledger struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{DB: db}
}

// TenorMonths converts a tenor to months. Day tenors count 30 days per month;
// the same rule feeds both the return formula and payout dates.
func TenorMonths(tenor int, tenorType string) float64 {
	if tenorType == models.TenorDays {
		return float64(tenor) / 30.0
	}
	return float64(tenor)
}

// ExpectedReturn is the projected profit for a principal held to payout:
// amount × apy/100 × tenorMonths/12.
func ExpectedReturn(amount, apy float64, tenor int, tenorType string) float64 {
	return amount * (apy / 100) * (TenorMonths(tenor, tenorType) / 12)
}

// PayoutDate is the instant the principal and return become due.
func PayoutDate(from time.Time, tenor int, tenorType string) time.Time {
	days := tenor
	if tenorType == models.TenorMonths {
		days = tenor * 30
	}
	return from.Add(time.Duration(days) * 24 * time.Hour)
}

// validatePlacement runs every placement check against a consistent snapshot
// of project and balance. It must be called with both rows locked.
func validatePlacement(p *models.Project, balance, amount float64) error {
	if p.Status != models.ProjectOpen {
		return ErrProjectNotOpen
	}
	if amount < p.MinInvestment || amount > p.MaxInvestment {
		return ErrAmountOutOfBounds
	}
	if p.CurrentAmount+amount > p.TargetAmount {
		return ErrQuotaExceeded
	}
	if amount > balance {
		return ErrInsufficientBalance
	}
	return nil
}

// Place runs one investment placement as a single transaction: validate under
// row locks, then create the investment, bump the project funding, debit the
// wallet and append the ledger entry. Any failed check rolls everything back.
func (l *Ledger) Place(userID, projectID uint, amount float64) (*models.Investment, error) {
	var inv models.Investment
	err := l.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&project, projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}

		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := validatePlacement(&project, user.Balance, amount); err != nil {
			return err
		}

		now := time.Now()
		inv = models.Investment{
			UserID:         userID,
			ProjectID:      project.ID,
			Amount:         amount,
			ExpectedReturn: utils.RoundFloat(ExpectedReturn(amount, project.APY, project.Tenor, project.TenorType), 2),
			PayoutDate:     PayoutDate(now, project.Tenor, project.TenorType),
			OrderID:        utils.GenerateOrderID(userID),
			Status:         models.InvestmentActive,
			CreatedAt:      now,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}

		newCurrent := utils.RoundFloat(project.CurrentAmount+amount, 2)
		updates := map[string]interface{}{"current_amount": newCurrent}
		if newCurrent >= project.TargetAmount {
			updates["status"] = models.ProjectFunded
		}
		if err := tx.Model(&project).Updates(updates).Error; err != nil {
			return err
		}

		newBalance := utils.RoundFloat(user.Balance-amount, 2)
		if err := tx.Model(&user).Update("balance", newBalance).Error; err != nil {
			return err
		}

		projectID := project.ID
		trx := models.Transaction{
			UserID:      userID,
			Type:        models.TxInvestment,
			Amount:      -amount,
			OrderID:     inv.OrderID,
			Description: fmt.Sprintf("Investasi dalam %s", project.Name),
			ProjectID:   &projectID,
		}
		return tx.Create(&trx).Error
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// TopUp credits the wallet and appends the matching topup entry. The minimum
// top-up amount is the caller's responsibility (see the topup handler).
func (l *Ledger) TopUp(userID uint, amount float64) (*models.Transaction, error) {
	var trx models.Transaction
	err := l.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		newBalance := utils.RoundFloat(user.Balance+amount, 2)
		if err := tx.Model(&user).Update("balance", newBalance).Error; err != nil {
			return err
		}

		trx = models.Transaction{
			UserID:      userID,
			Type:        models.TxTopup,
			Amount:      amount,
			OrderID:     utils.GenerateOrderID(userID),
			Description: "Top up saldo",
		}
		return tx.Create(&trx).Error
	})
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

// InvestmentsFor returns the user's investments, newest first, with projects
// preloaded for display.
func (l *Ledger) InvestmentsFor(userID uint) ([]models.Investment, error) {
	var investments []models.Investment
	err := l.DB.Preload("Project").Where("user_id = ?", userID).Order("id DESC").Find(&investments).Error
	return investments, err
}

// ProcessDuePayouts completes every active investment whose payout date has
// passed: principal plus expected return is credited back and a payout entry
// appended. Each investment commits independently so one bad row cannot block
// the sweep. Returns the number of investments paid out.
func (l *Ledger) ProcessDuePayouts(now time.Time) (int, error) {
	var due []models.Investment
	if err := l.DB.Where("status = ? AND payout_date <= ?", models.InvestmentActive, now).
		Order("payout_date ASC").Find(&due).Error; err != nil {
		return 0, err
	}

	processed := 0
	for i := range due {
		inv := due[i]
		err := l.DB.Transaction(func(tx *gorm.DB) error {
			var locked models.Investment
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, inv.ID).Error; err != nil {
				return err
			}
			// Re-check under the lock; another sweep may have won.
			if locked.Status != models.InvestmentActive {
				return nil
			}

			var user models.User
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, locked.UserID).Error; err != nil {
				return err
			}

			payout := utils.RoundFloat(locked.Amount+locked.ExpectedReturn, 2)
			newBalance := utils.RoundFloat(user.Balance+payout, 2)
			if err := tx.Model(&user).Update("balance", newBalance).Error; err != nil {
				return err
			}

			if err := tx.Model(&locked).Update("status", models.InvestmentCompleted).Error; err != nil {
				return err
			}

			var project models.Project
			description := "Pencairan investasi"
			if err := tx.First(&project, locked.ProjectID).Error; err == nil {
				description = fmt.Sprintf("Pencairan investasi %s", project.Name)
			}

			projectID := locked.ProjectID
			trx := models.Transaction{
				UserID:      locked.UserID,
				Type:        models.TxPayout,
				Amount:      payout,
				OrderID:     utils.GenerateOrderID(locked.UserID),
				Description: description,
				ProjectID:   &projectID,
			}
			return tx.Create(&trx).Error
		})
		if err != nil {
			return processed, err
		}
		processed++
	}
	return processed, nil
}
