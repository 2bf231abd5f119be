package admins

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"

	"investmate/middleware"
	"investmate/models"
	"investmate/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// GET /v1/admin/projects
// Admin view includes drafts.
func (c *Controller) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	var projects []models.Project
	if err := c.DB.Order("id ASC").Find(&projects).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal mengambil data proyek"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"projects": projects,
		},
	})
}

type ProjectRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	APY           float64 `json:"apy"`
	Tenor         int     `json:"tenor"`
	TenorType     string  `json:"tenor_type"`
	MinInvestment float64 `json:"min_investment"`
	MaxInvestment float64 `json:"max_investment"`
	TargetAmount  float64 `json:"target_amount"`
	Status        string  `json:"status"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
}

func validStatus(s string) bool {
	switch s {
	case models.ProjectDraft, models.ProjectOpen, models.ProjectFunded, models.ProjectActive, models.ProjectCompleted:
		return true
	}
	return false
}

// POST /v1/admin/projects
// New projects always start with zero funding.
func (c *Controller) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Nama proyek wajib diisi"})
		return
	}
	if req.APY <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "APY harus lebih dari 0"})
		return
	}
	if req.Tenor <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Tenor harus lebih dari 0"})
		return
	}
	if req.TenorType != models.TenorDays && req.TenorType != models.TenorMonths {
		req.TenorType = models.TenorMonths
	}
	if req.MinInvestment <= 0 || req.MaxInvestment < req.MinInvestment {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Batas investasi tidak valid"})
		return
	}
	if req.TargetAmount <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Target pendanaan harus lebih dari 0"})
		return
	}
	if !validStatus(req.Status) {
		req.Status = models.ProjectDraft
	}

	project := models.Project{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		APY:           req.APY,
		Tenor:         req.Tenor,
		TenorType:     req.TenorType,
		MinInvestment: req.MinInvestment,
		MaxInvestment: req.MaxInvestment,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: 0,
		Status:        req.Status,
		Category:      req.Category,
		Image:         req.Image,
	}
	if err := c.DB.Create(&project).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal membuat proyek"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Proyek berhasil dibuat",
		Data:    project,
	})
}

type ProjectUpdateRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	APY           *float64 `json:"apy"`
	Tenor         *int     `json:"tenor"`
	TenorType     *string  `json:"tenor_type"`
	MinInvestment *float64 `json:"min_investment"`
	MaxInvestment *float64 `json:"max_investment"`
	TargetAmount  *float64 `json:"target_amount"`
	Status        *string  `json:"status"`
	Category      *string  `json:"category"`
	Image         *string  `json:"image"`
}

// PUT /v1/admin/projects/{id}
// Merges the provided fields. Funding progress is ledger-owned and cannot be
// edited here; target/status edits are deliberately unchecked against the
// current amount (admin responsibility).
func (c *Controller) UpdateProjectHandler(w http.ResponseWriter, r *http.Request) {
	id64, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id64 == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "ID tidak valid"})
		return
	}

	var req ProjectUpdateRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var project models.Project
	if err := c.DB.First(&project, uint(id64)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Proyek tidak ditemukan"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Terjadi kesalahan"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.APY != nil {
		updates["apy"] = *req.APY
	}
	if req.Tenor != nil {
		updates["tenor"] = *req.Tenor
	}
	if req.TenorType != nil && (*req.TenorType == models.TenorDays || *req.TenorType == models.TenorMonths) {
		updates["tenor_type"] = *req.TenorType
	}
	if req.MinInvestment != nil {
		updates["min_investment"] = *req.MinInvestment
	}
	if req.MaxInvestment != nil {
		updates["max_investment"] = *req.MaxInvestment
	}
	if req.TargetAmount != nil {
		updates["target_amount"] = *req.TargetAmount
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Status tidak valid"})
			return
		}
		updates["status"] = *req.Status
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	if len(updates) == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Tidak ada perubahan"})
		return
	}

	if err := c.DB.Model(&project).Updates(updates).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal memperbarui proyek"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Proyek berhasil diperbarui",
		Data:    project,
	})
}

// DELETE /v1/admin/projects/{id}
// Refused while investments still reference the project, so the ledger never
// holds dangling project ids.
func (c *Controller) DeleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	id64, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id64 == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "ID tidak valid"})
		return
	}

	var project models.Project
	if err := c.DB.First(&project, uint(id64)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Proyek tidak ditemukan"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Terjadi kesalahan"})
		return
	}

	var dependents int64
	if err := c.DB.Model(&models.Investment{}).Where("project_id = ?", project.ID).Count(&dependents).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Terjadi kesalahan"})
		return
	}
	if dependents > 0 {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{
			Success: false,
			Message: "Proyek tidak dapat dihapus karena masih memiliki investasi",
			Data:    map[string]interface{}{"investments": dependents},
		})
		return
	}

	if err := c.DB.Delete(&project).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal menghapus proyek"})
		return
	}

	// Best effort: drop the stored image object along with the row.
	if base := os.Getenv("R2_PUBLIC_BASE_URL"); base != "" && strings.HasPrefix(project.Image, base+"/") {
		objectName := strings.TrimPrefix(project.Image, base+"/")
		if err := utils.DeleteProjectImage(r.Context(), objectName); err != nil {
			log.Printf("[projects] image cleanup failed for %s: %v", objectName, err)
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Proyek berhasil dihapus"})
}

const maxImageBytes = 5 << 20 // 5 MiB

// POST /v1/admin/projects/{id}/image
// Multipart upload; the stored public URL is written back to the project.
func (c *Controller) UploadProjectImageHandler(w http.ResponseWriter, r *http.Request) {
	id64, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id64 == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "ID tidak valid"})
		return
	}

	var project models.Project
	if err := c.DB.First(&project, uint(id64)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Proyek tidak ditemukan"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Terjadi kesalahan"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "File terlalu besar atau form tidak valid"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "File gambar wajib diunggah"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(path.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Format gambar tidak didukung"})
		return
	}

	objectName := fmt.Sprintf("projects/%d/%s%s", project.ID, utils.GenerateOrderID(uint(id64)), ext)
	url, err := utils.UploadProjectImage(r.Context(), objectName, file)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal mengunggah gambar"})
		return
	}

	if err := c.DB.Model(&project).Update("image", url).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal menyimpan gambar"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Gambar berhasil diunggah",
		Data:    map[string]interface{}{"image": url},
	})
}
