package admins

import (
	"net/http"
	"strconv"
	"time"

	"investmate/models"
	"investmate/utils"
)

type investmentRow struct {
	models.Investment
	UserName    string
	UserEmail   string
	ProjectName string
}

type investmentDTO struct {
	ID             uint    `json:"id"`
	UserID         uint    `json:"user_id"`
	UserName       string  `json:"user_name"`
	UserEmail      string  `json:"user_email"`
	ProjectID      uint    `json:"project_id"`
	ProjectName    string  `json:"project_name"`
	Amount         float64 `json:"amount"`
	ExpectedReturn float64 `json:"expected_return"`
	PayoutDate     string  `json:"payout_date"`
	OrderID        string  `json:"order_id"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

// GET /v1/admin/investments
// Supports project_id, status and order-id search filters plus pagination.
func (c *Controller) ListInvestmentsHandler(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	projectID := r.URL.Query().Get("project_id")
	status := r.URL.Query().Get("status")
	search := r.URL.Query().Get("search")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := c.DB.Model(&models.Investment{}).
		Joins("JOIN users ON investments.user_id = users.id").
		Joins("JOIN projects ON investments.project_id = projects.id")

	if projectID != "" {
		query = query.Where("investments.project_id = ?", projectID)
	}
	if status != "" {
		query = query.Where("investments.status = ?", status)
	}
	if search != "" {
		query = query.Where("investments.order_id LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Gagal mengambil data investasi",
		})
		return
	}

	var rows []investmentRow
	err := query.
		Select("investments.*, users.name as user_name, users.email as user_email, projects.name as project_name").
		Order("investments.created_at DESC, investments.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Gagal mengambil data investasi",
		})
		return
	}

	items := make([]investmentDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, investmentDTO{
			ID:             row.ID,
			UserID:         row.UserID,
			UserName:       row.UserName,
			UserEmail:      row.UserEmail,
			ProjectID:      row.ProjectID,
			ProjectName:    row.ProjectName,
			Amount:         row.Amount,
			ExpectedReturn: row.ExpectedReturn,
			PayoutDate:     row.PayoutDate.Format(time.RFC3339),
			OrderID:        row.OrderID,
			Status:         row.Status,
			CreatedAt:      row.CreatedAt.Format(time.RFC3339),
		})
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Berhasil",
		Data: map[string]interface{}{
			"investments": items,
			"pagination": map[string]interface{}{
				"page":       page,
				"limit":      limit,
				"total":      total,
				"total_page": (total + int64(limit) - 1) / int64(limit),
			},
		},
	})
}

type dashboardStats struct {
	TotalUsers        int64   `json:"total_users"`
	TotalProjects     int64   `json:"total_projects"`
	OpenProjects      int64   `json:"open_projects"`
	TotalInvestments  int64   `json:"total_investments"`
	ActiveInvestments int64   `json:"active_investments"`
	TotalInvested     float64 `json:"total_invested"`
	TotalBalance      float64 `json:"total_balance"`
}

// GET /v1/admin/dashboard
func (c *Controller) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	var stats dashboardStats

	c.DB.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&stats.TotalUsers)
	c.DB.Model(&models.Project{}).Count(&stats.TotalProjects)
	c.DB.Model(&models.Project{}).Where("status = ?", models.ProjectOpen).Count(&stats.OpenProjects)
	c.DB.Model(&models.Investment{}).Count(&stats.TotalInvestments)
	c.DB.Model(&models.Investment{}).Where("status = ?", models.InvestmentActive).Count(&stats.ActiveInvestments)

	type sumResult struct {
		Total float64
	}
	var invested sumResult
	c.DB.Model(&models.Investment{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&invested)
	stats.TotalInvested = invested.Total

	var balance sumResult
	c.DB.Model(&models.User{}).
		Select("COALESCE(SUM(balance), 0) as total").
		Where("role = ?", models.RoleUser).
		Scan(&balance)
	stats.TotalBalance = balance.Total

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Berhasil",
		Data:    stats,
	})
}
