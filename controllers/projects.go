package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"investmate/models"
	"investmate/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type ProjectController struct {
	DB *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

// GET /v1/projects
// Returns every non-draft project in insertion order. Category/APY/tenor
// filtering and sorting stay client-side.
func (c *ProjectController) ListHandler(w http.ResponseWriter, r *http.Request) {
	var projects []models.Project
	if err := c.DB.Where("status <> ?", models.ProjectDraft).Order("id ASC").Find(&projects).Error; err != nil {
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

// GET /v1/projects/{id}
func (c *ProjectController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id64, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id64 == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "ID tidak valid"})
		return
	}

	var project models.Project
	if err := c.DB.Where("status <> ?", models.ProjectDraft).First(&project, uint(id64)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Proyek tidak ditemukan"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Terjadi kesalahan"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    project,
	})
}
