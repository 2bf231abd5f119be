package users

import (
	"net/http"

	"investmate/middleware"
	"investmate/models"
	"investmate/utils"
)

type TopUpRequest struct {
	Amount float64 `json:"amount"`
}

// POST /v1/users/topup
// Credits the wallet. The minimum amount lives in settings (default 10,000)
// and is enforced here, not in the ledger.
func (c *Controller) TopUpHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req TopUpRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	minTopup := 10000.0
	var setting models.Setting
	if err := c.DB.Model(&models.Setting{}).Select("min_topup").Take(&setting).Error; err == nil && setting.MinTopup > 0 {
		minTopup = setting.MinTopup
	}

	if req.Amount < minTopup {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Jumlah top up di bawah minimum",
			Data:    map[string]interface{}{"min_topup": minTopup},
		})
		return
	}

	trx, err := c.Ledger.TopUp(uid, req.Amount)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Top up gagal, coba lagi"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Top up berhasil",
		Data:    trx,
	})
}
