package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/nexpay/nexpay-backend/internal/api/handlers"
	"github.com/nexpay/nexpay-backend/internal/config"
	"github.com/nexpay/nexpay-backend/internal/metrics"
	"github.com/nexpay/nexpay-backend/internal/middleware"
	"github.com/nexpay/nexpay-backend/internal/models"
	"github.com/nexpay/nexpay-backend/internal/services"
)

func NewRouter(cfg config.Config, us *services.UserService, ls *services.LedgerService, ss *services.StatsService, am *middleware.AuthMiddleware) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	authH := handlers.NewAuthHandler(us)
	userH := handlers.NewUserHandler(us)
	transferH := handlers.NewTransferHandler(ls)
	statsH := handlers.NewStatsHandler(ss)

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", authH.Signup)
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(am.Auth)

			r.Get("/me", authH.Me)
			r.Get("/users", userH.List)
			r.Post("/transfers", transferH.Create)
			r.Get("/transactions", transferH.List)

			r.Route("/admin/stats", func(r chi.Router) {
				r.Use(middleware.RequireRole(string(models.RoleAdmin)))
				r.Get("/", statsH.Overview)
				r.Get("/daily", statsH.Daily)
				r.Get("/settlement", statsH.Settlement)
				r.Get("/users", statsH.UserRatio)
			})
		})
	})

	return r
}
