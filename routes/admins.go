package routes

import (
	"net/http"
	"time"

	"investmate/controllers/admins"
	"investmate/middleware"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func AdminRoutes(api *mux.Router, db *gorm.DB) {
	// Rate limiter admin login: 5 attempts per IP per menit
	adminLoginLimiter := middleware.NewIPRateLimiter(5, time.Minute)

	adminController := admins.NewController(db)

	// Public admin routes
	api.Handle("/admin/login", adminLoginLimiter.Middleware(http.HandlerFunc(adminController.LoginHandler))).Methods(http.MethodPost)

	// Protected admin routes
	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.AdminAuthMiddleware)

	// Dashboard stats
	adminRouter.Handle("/dashboard", http.HandlerFunc(adminController.DashboardHandler)).Methods(http.MethodGet)

	// Project management
	adminRouter.Handle("/projects", http.HandlerFunc(adminController.ListProjectsHandler)).Methods(http.MethodGet)
	adminRouter.Handle("/projects", http.HandlerFunc(adminController.CreateProjectHandler)).Methods(http.MethodPost)
	adminRouter.Handle("/projects/{id:[0-9]+}", http.HandlerFunc(adminController.UpdateProjectHandler)).Methods(http.MethodPut)
	adminRouter.Handle("/projects/{id:[0-9]+}", http.HandlerFunc(adminController.DeleteProjectHandler)).Methods(http.MethodDelete)
	adminRouter.Handle("/projects/{id:[0-9]+}/image", http.HandlerFunc(adminController.UploadProjectImageHandler)).Methods(http.MethodPost)

	// Investment overview
	adminRouter.Handle("/investments", http.HandlerFunc(adminController.ListInvestmentsHandler)).Methods(http.MethodGet)
}
