package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"investmate/middleware"
	"investmate/models"
	"investmate/utils"

	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,nameok"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,pwdmin"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// POST /v1/register
// New accounts start with role user and zero balance.
func (c *Controller) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var setting models.Setting
	if err := c.DB.Model(&models.Setting{}).Select("closed_register, name").Take(&setting).Error; err == nil && setting.ClosedRegister {
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{
			Success: false,
			Message: "Pendaftaran sedang ditutup. Silakan coba lagi nanti.",
			Data:    map[string]interface{}{"closed_register": true, "application": setting.Name},
		})
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

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := c.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Email sudah terdaftar"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[register] DB error checking email: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: req.Password,
		Role:     models.RoleUser,
		Balance:  0,
	}
	if err := user.HashPassword(); err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	if err := c.DB.Create(&user).Error; err != nil {
		log.Printf("[register] DB error creating user: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal mendaftar, coba lagi"})
		return
	}

	access, refresh, expiresAt, err := c.issueTokens(&user)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal membuat sesi"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Pendaftaran berhasil!",
		Data: map[string]interface{}{
			"access_token":  access,
			"access_expire": expiresAt.UTC().Format(time.RFC3339),
			"refresh_token": refresh,
			"user":          userPayload(&user),
		},
	})
}
