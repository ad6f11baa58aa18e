package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sebuszqo/BudgetTracker/internal/auth"
	"github.com/sebuszqo/BudgetTracker/internal/finance/interfaces"
	"github.com/sebuszqo/BudgetTracker/internal/log"
	"github.com/sebuszqo/BudgetTracker/internal/metrics"
	"github.com/sebuszqo/BudgetTracker/internal/user"
)

// respondJSON encodes before writing the status so an unencodable payload becomes a 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("could not encode response", log.FieldError, err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(map[string]interface{}{
			"status":  "error",
			"message": "Internal server error",
			"code":    status,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func respondError(w http.ResponseWriter, status int, message string, errors ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errors) > 0 && len(errors[0]) > 0 {
		payload["errors"] = errors[0]
	}
	respondJSON(w, status, payload)
}

type healthChecker interface {
	Health(ctx context.Context) map[string]string
}

type Server struct {
	router             *http.ServeMux
	authHandler        *auth.Handler
	authService        auth.Service
	userHandler        *user.Handler
	transactionHandler *interfaces.TransactionHandler
	categoryHandler    *interfaces.CategoryHandler
	budgetHandler      *interfaces.BudgetHandler
	dashboardHandler   *interfaces.DashboardHandler
	exportHandler      *interfaces.ExportHandler
	health             healthChecker
	metrics            *metrics.Metrics
	logger             *log.Logger
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Path not found")
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.health.Health(r.Context())
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, stats)
}

func (s *Server) RegisterRoutes() {
	protected := s.authService.JWTAccessTokenMiddleware()

	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	publicRoutes.Handle("GET /api/health", http.HandlerFunc(s.handleHealth))
	publicRoutes.Handle("GET /api/metrics", s.metrics.Handler())
	publicRoutes.Handle("/api/", http.HandlerFunc(notFoundHandler))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()
	protectedRoutes.Handle("POST /api/protected/logout", protected(http.HandlerFunc(s.authHandler.HandleLogout)))
	protectedRoutes.Handle("GET /api/protected/profile", protected(http.HandlerFunc(s.userHandler.HandleGetUserProfile)))

	protectedRoutes.Handle("GET /api/protected/dashboard", protected(http.HandlerFunc(s.dashboardHandler.GetDashboard)))

	protectedRoutes.Handle("GET /api/protected/transactions", protected(http.HandlerFunc(s.transactionHandler.GetTransactions)))
	protectedRoutes.Handle("POST /api/protected/transactions", protected(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	protectedRoutes.Handle("DELETE /api/protected/transactions/{transactionID}", protected(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	protectedRoutes.Handle("GET /api/protected/categories", protected(http.HandlerFunc(s.categoryHandler.GetCategories)))
	protectedRoutes.Handle("POST /api/protected/categories", protected(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("DELETE /api/protected/categories/{categoryID}", protected(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	protectedRoutes.Handle("GET /api/protected/budgets", protected(http.HandlerFunc(s.budgetHandler.GetBudgets)))
	protectedRoutes.Handle("PUT /api/protected/budgets", protected(http.HandlerFunc(s.budgetHandler.SetBudget)))
	protectedRoutes.Handle("GET /api/protected/budgets/months", protected(http.HandlerFunc(s.budgetHandler.GetMonthChoices)))

	protectedRoutes.Handle("GET /api/protected/export", protected(http.HandlerFunc(s.exportHandler.ExportTransactions)))
	protectedRoutes.Handle("/api/protected/", http.HandlerFunc(notFoundHandler))

	// Refresh token routes
	refreshTokenRoutes := http.NewServeMux()
	refreshTokenRoutes.Handle("PUT /api/refresh/token", s.authService.JWTRefreshTokenMiddleware()(http.HandlerFunc(s.authHandler.RefreshAccessToken)))
	refreshTokenRoutes.Handle("/api/refresh/", http.HandlerFunc(notFoundHandler))

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/api/refresh/", refreshTokenRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

// Handler returns the router wrapped in request logging and metrics.
func (s *Server) Handler() http.Handler {
	return log.Middleware(s.logger)(s.metrics.Middleware(s.router))
}
