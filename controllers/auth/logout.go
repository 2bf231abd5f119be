package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"investmate/models"
	"investmate/utils"
)

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// POST /v1/logout
// Revokes the refresh token and blacklists the access-token jti when present.
func (c *Controller) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var req LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}
	if req.RefreshToken == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "refresh_token is required"})
		return
	}

	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
		if claims, err := utils.ValidateAccessToken(tokenStr); err == nil {
			if jti, ok := claims["jti"].(string); ok && jti != "" {
				if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
					if ttl := time.Until(exp.Time); ttl > 0 {
						_ = utils.RevokeJTI(jti, ttl)
					}
				}
			}
		}
		// parse failures are ignored; refresh-token revocation still proceeds
	}

	// Not-found is still reported as success to avoid token enumeration.
	_ = c.DB.Model(&models.RefreshToken{}).Where("id = ?", req.RefreshToken).Update("revoked", true).Error
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Logged out"})
}
