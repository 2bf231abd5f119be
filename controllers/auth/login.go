package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"investmate/middleware"
	"investmate/models"
	"investmate/utils"

	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,pwdmin"`
}

// POST /v1/login
func (c *Controller) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	if active, name := c.maintenanceActive(); active {
		utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{
			Success: false,
			Message: "Aplikasi sedang dalam pemeliharaan. Silakan coba lagi nanti.",
			Data:    map[string]interface{}{"maintenance": true, "application": name},
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := c.DB.Where("email = ?", email).First(&user).Error; err != nil {
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

	access, refresh, expiresAt, err := c.issueTokens(&user)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal login"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Login berhasil! Mengalihkan ke dashboard...",
		Data: map[string]interface{}{
			"access_token":  access,
			"access_expire": expiresAt.UTC().Format(time.RFC3339),
			"refresh_token": refresh,
			"user":          userPayload(&user),
		},
	})
}
