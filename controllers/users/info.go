package users

import (
	"net/http"

	"investmate/models"
	"investmate/utils"
)

// GET /v1/users/info
// Wallet header data: identity, balance and portfolio totals.
func (c *Controller) InfoHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var user models.User
	if err := c.DB.First(&user, uid).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	var totalInvested float64
	c.DB.Model(&models.Investment{}).
		Where("user_id = ? AND status = ?", uid, models.InvestmentActive).
		Select("COALESCE(SUM(amount),0)").Scan(&totalInvested)

	var activeCount int64
	c.DB.Model(&models.Investment{}).
		Where("user_id = ? AND status = ?", uid, models.InvestmentActive).
		Count(&activeCount)

	var expectedReturns float64
	c.DB.Model(&models.Investment{}).
		Where("user_id = ? AND status = ?", uid, models.InvestmentActive).
		Select("COALESCE(SUM(expected_return),0)").Scan(&expectedReturns)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"user": map[string]interface{}{
				"id":      user.ID,
				"name":    user.Name,
				"email":   user.Email,
				"role":    user.Role,
				"balance": user.Balance,
			},
			"portfolio": map[string]interface{}{
				"total_invested":     totalInvested,
				"active_investments": activeCount,
				"expected_returns":   expectedReturns,
			},
		},
	})
}
