package users

import (
	"net/http"
	"os"
	"time"

	"investmate/utils"
)

// POST /v1/cron/payouts
// Completes investments whose payout date has passed. Protected by the
// X-CRON-KEY header, meant to be hit by a scheduler once a day.
func (c *Controller) ProcessPayoutsHandler(w http.ResponseWriter, r *http.Request) {
	cronKey := os.Getenv("CRON_KEY")
	if cronKey == "" || r.Header.Get("X-CRON-KEY") != cronKey {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	processed, err := c.Ledger.ProcessDuePayouts(time.Now())
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Pencairan sebagian gagal",
			Data:    map[string]interface{}{"processed": processed},
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    map[string]interface{}{"processed": processed},
	})
}
