package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"investmate/models"
	"investmate/utils"
)

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// POST /v1/refresh
// Exchanges a valid refresh token for a new access token and a rotated
// refresh token; the old refresh token is revoked.
func (c *Controller) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}
	if req.RefreshToken == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "refresh_token is required"})
		return
	}

	var rt models.RefreshToken
	if err := c.DB.Where("id = ?", req.RefreshToken).First(&rt).Error; err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid refresh token"})
		return
	}
	if rt.Revoked || time.Now().After(rt.ExpiresAt) {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid refresh token"})
		return
	}

	var user models.User
	if err := c.DB.First(&user, rt.UserID).Error; err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid refresh token"})
		return
	}

	// rotate: revoke old token, then issue a fresh pair
	if err := c.DB.Model(&rt).Update("revoked", true).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	access, refresh, expiresAt, err := c.issueTokens(&user)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"access_token":  access,
			"access_expire": expiresAt.UTC().Format(time.RFC3339),
			"refresh_token": refresh,
		},
	})
}
