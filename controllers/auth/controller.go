// Package auth implements registration, login and session lifecycle for the
// identity store. Passwords are bcrypt-hashed; sessions are a short-lived JWT
// access token plus a DB-backed refresh token.
package auth

import (
	"os"
	"time"

	"investmate/models"
	"investmate/utils"

	"gorm.io/gorm"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type Controller struct {
	DB *gorm.DB
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

func accessTokenExpiry(role string) time.Duration {
	if role == models.RoleAdmin {
		return 6 * time.Hour
	}
	if os.Getenv("ENV") == "development" {
		return 24 * time.Hour
	}
	return 15 * time.Minute
}

// issueTokens creates an access token and a stored refresh token for the user.
func (c *Controller) issueTokens(user *models.User) (access, refresh string, expiresAt time.Time, err error) {
	expiry := accessTokenExpiry(user.Role)
	access, err = utils.GenerateAccessToken(user.ID, user.Role, expiry)
	if err != nil {
		return "", "", time.Time{}, err
	}

	rt, err := models.NewRefreshToken(user.ID, refreshTokenTTL)
	if err != nil {
		return "", "", time.Time{}, err
	}
	if err = c.DB.Create(rt).Error; err != nil {
		return "", "", time.Time{}, err
	}

	return access, rt.ID, time.Now().Add(expiry), nil
}

// maintenanceActive reports whether the maintenance gate is up.
func (c *Controller) maintenanceActive() (bool, string) {
	var setting models.Setting
	if err := c.DB.Model(&models.Setting{}).Select("maintenance, name").Take(&setting).Error; err == nil && setting.Maintenance {
		return true, setting.Name
	}
	return false, ""
}

func userPayload(user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"role":    user.Role,
		"balance": user.Balance,
	}
}
