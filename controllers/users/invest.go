// Package users holds the authenticated wallet and portfolio endpoints.
package users

import (
	"errors"
	"net/http"
	"strconv"

	"investmate/ledger"
	"investmate/middleware"
	"investmate/models"
	"investmate/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Controller struct {
	DB     *gorm.DB
	Ledger *ledger.Ledger
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{DB: db, Ledger: ledger.New(db)}
}

type CreateInvestmentRequest struct {
	ProjectID uint    `json:"project_id"`
	Amount    float64 `json:"amount"`
}

// POST /v1/users/investments
// Places an investment. Validation and commit are a single transaction in the
// ledger; any failure leaves every row untouched.
func (c *Controller) CreateInvestmentHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req CreateInvestmentRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.ProjectID == 0 || req.Amount <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Proyek dan jumlah investasi wajib diisi"})
		return
	}

	inv, err := c.Ledger.Place(uid, req.ProjectID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrProjectNotFound):
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: err.Error()})
		case errors.Is(err, ledger.ErrProjectNotOpen),
			errors.Is(err, ledger.ErrAmountOutOfBounds),
			errors.Is(err, ledger.ErrQuotaExceeded),
			errors.Is(err, ledger.ErrInsufficientBalance):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: err.Error()})
		default:
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Terjadi kesalahan, coba lagi"})
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Investasi berhasil dibuat",
		Data:    inv,
	})
}

// GET /v1/users/investments
func (c *Controller) ListInvestmentsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	investments, err := c.Ledger.InvestmentsFor(uid)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal mengambil investasi"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"investments": investments,
		},
	})
}

// GET /v1/users/investments/{id}
func (c *Controller) GetInvestmentHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	id64, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id64 == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "ID tidak valid"})
		return
	}

	var inv models.Investment
	if err := c.DB.Preload("Project").Where("id = ? AND user_id = ?", uint(id64), uid).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Investasi tidak ditemukan"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal mengambil investasi"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: inv})
}
