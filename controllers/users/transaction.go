package users

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"investmate/models"
	"investmate/utils"

	"github.com/gorilla/mux"
)

// GET /v1/users/transactions?type=&page=&limit=
// Ledger entries for the authenticated user, newest first.
func (c *Controller) TransactionHistoryHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	txType := strings.TrimSpace(r.URL.Query().Get("type"))
	if pathType := mux.Vars(r)["type"]; pathType != "" {
		txType = pathType
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 10
	}

	countQuery := c.DB.Model(&models.Transaction{}).Where("user_id = ?", uid)
	if txType != "" {
		countQuery = countQuery.Where("type = ?", txType)
	}
	var totalRows int64
	if err := countQuery.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	totalPages := int(math.Ceil(float64(totalRows) / float64(limit)))
	offset := (page - 1) * limit

	var transactions []models.Transaction
	query := c.DB.Where("user_id = ?", uid)
	if txType != "" {
		query = query.Where("type = ?", txType)
	}
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&transactions).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	type transactionDTO struct {
		ID          uint    `json:"id"`
		Type        string  `json:"type"`
		Amount      float64 `json:"amount"`
		OrderID     string  `json:"order_id"`
		Description string  `json:"description"`
		ProjectID   *uint   `json:"project_id,omitempty"`
		CreatedAt   string  `json:"created_at"`
	}

	items := make([]transactionDTO, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, transactionDTO{
			ID:          t.ID,
			Type:        t.Type,
			Amount:      t.Amount,
			OrderID:     t.OrderID,
			Description: t.Description,
			ProjectID:   t.ProjectID,
			CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		})
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"data": items,
			"pagination": map[string]interface{}{
				"page":        page,
				"limit":       limit,
				"total_rows":  totalRows,
				"total_pages": totalPages,
			},
		},
	})
}
