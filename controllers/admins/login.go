// Package admins holds the admin-only catalog management endpoints.
package admins

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"investmate/ledger"
	"investmate/middleware"
	"investmate/models"
	"investmate/utils"

	"gorm.io/gorm"
)

type Controller struct {
	DB     *gorm.DB
	Ledger *ledger.Ledger
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{DB: db, Ledger: ledger.New(db)}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,pwdmin"`
}

// POST /v1/admin/login
// Same credential check as the user login, restricted to the admin role.
func (c *Controller) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := c.DB.Where("email = ? AND role = ?", email, models.RoleAdmin).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Email atau password salah"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	if locked, retry := middleware.IsAccountLocked(user.ID); locked {
		utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{
			Success: false,
			Message: "Terlalu banyak percobaan login. Coba lagi nanti.",
			Data:    map[string]interface{}{"retry_after_seconds": int(retry.Seconds())},
		})
		return
	}
	if !user.ValidatePassword(req.Password) {
		middleware.RecordFailedLogin(user.ID)
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Email atau password salah"})
		return
	}
	middleware.ResetFailedLogin(user.ID)

	access, err := utils.GenerateAccessToken(user.ID, models.RoleAdmin, 6*time.Hour)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal login"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Login berhasil",
		Data: map[string]interface{}{
			"access_token":  access,
			"access_expire": time.Now().Add(6 * time.Hour).UTC().Format(time.RFC3339),
			"user": map[string]interface{}{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		},
	})
}
