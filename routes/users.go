package routes

import (
	"net/http"
	"time"

	"investmate/controllers"
	"investmate/controllers/auth"
	"investmate/controllers/users"
	"investmate/middleware"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// UsersRoutes mendaftarkan semua route publik dan route user ke subrouter yang diberikan.
func UsersRoutes(api *mux.Router, db *gorm.DB) {
	// Rate limiter login/register: 60 per IP per 5 menit
	loginLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	// Rate limiter session: 120 read / 60 write per user, window 60 detik
	userLimiter := middleware.NewUserRateLimiter(120, 60, 60)
	// Rate limiter cron: 1000 per jam
	cronLimiter := middleware.NewIPRateLimiter(1000, time.Hour)

	authController := auth.NewController(db)
	userController := users.NewController(db)
	projectController := controllers.NewProjectController(db)

	// Register & Login
	api.Handle("/register", loginLimiter.Middleware(http.HandlerFunc(authController.RegisterHandler))).Methods(http.MethodPost)
	api.Handle("/login", loginLimiter.Middleware(http.HandlerFunc(authController.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/refresh", loginLimiter.Middleware(http.HandlerFunc(authController.RefreshHandler))).Methods(http.MethodPost)
	api.Handle("/logout", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(authController.LogoutHandler)))).Methods(http.MethodPost)

	// Public: project catalog
	api.Handle("/projects", http.HandlerFunc(projectController.ListHandler)).Methods(http.MethodGet)
	api.Handle("/projects/{id:[0-9]+}", http.HandlerFunc(projectController.GetHandler)).Methods(http.MethodGet)

	// User info (read)
	api.Handle("/users/info", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(userController.InfoHandler)))).Methods(http.MethodGet)

	// Investment endpoints
	api.Handle("/users/investments", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(userController.CreateInvestmentHandler)))).Methods(http.MethodPost)
	api.Handle("/users/investments", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(userController.ListInvestmentsHandler)))).Methods(http.MethodGet)
	api.Handle("/users/investments/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(userController.GetInvestmentHandler)))).Methods(http.MethodGet)

	// Wallet
	api.Handle("/users/topup", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(userController.TopUpHandler)))).Methods(http.MethodPost)
	api.Handle("/users/transactions", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(userController.TransactionHistoryHandler)))).Methods(http.MethodGet)
	api.Handle("/users/transactions/{type}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(userController.TransactionHistoryHandler)))).Methods(http.MethodGet)

	// Cron endpoint for due payouts (protected via X-CRON-KEY header)
	api.Handle("/cron/payouts", cronLimiter.Middleware(http.HandlerFunc(userController.ProcessPayoutsHandler))).Methods(http.MethodPost)
}
