package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	mW "github.com/ledgerbook/backend/internal/middleware"
	"github.com/ledgerbook/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// RouterConfig wires the services into the HTTP surface.
type RouterConfig struct {
	Auth           *services.AuthService
	Customers      *services.CustomerService
	Ledger         *services.LedgerService
	Logger         *zap.Logger
	RequestTimeout time.Duration
	AllowedOrigins []string
	// Ping reports store health on /health. Optional.
	Ping func(ctx context.Context) error
}

func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"https://*", "http://*"}
	}

	authHandler := NewAuthHandler(cfg.Auth, logger)
	customerHandler := NewCustomerHandler(cfg.Customers, logger)
	ledgerHandler := NewLedgerHandler(cfg.Ledger, logger)

	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.StripSlashes)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if cfg.Ping != nil {
			if err := cfg.Ping(r.Context()); err != nil {
				logger.Warn("health check failed", zap.Error(err))
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints (no auth required)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/token/refresh", authHandler.Refresh)
		r.Post("/auth/logout", authHandler.Logout)

		// Protected endpoints (auth required)
		r.Group(func(r chi.Router) {
			r.Use(mW.Auth(cfg.Auth, logger.Named("auth")))

			r.Get("/customers", customerHandler.List)
			r.Post("/customers", customerHandler.Create)
			r.Get("/customers/search", customerHandler.Search)
			r.Get("/customers/{id}", customerHandler.Get)
			r.Put("/customers/{id}", customerHandler.Update)
			r.Delete("/customers/{id}", customerHandler.Delete)
			r.Get("/customers/{id}/summary", customerHandler.Summary)

			r.Get("/ledger-entries", ledgerHandler.List)
			r.Post("/ledger-entries", ledgerHandler.Create)
			r.Get("/ledger-entries/by_customer", ledgerHandler.ByCustomer)
			r.Get("/ledger-entries/filter_by_date", ledgerHandler.FilterByDate)
			r.Get("/ledger-entries/filter_by_type", ledgerHandler.FilterByType)
			r.Get("/ledger-entries/statistics", ledgerHandler.Statistics)
			r.Get("/ledger-entries/{id}", ledgerHandler.Get)
			r.Put("/ledger-entries/{id}", ledgerHandler.Update)
			r.Delete("/ledger-entries/{id}", ledgerHandler.Delete)
		})
	})

	return r
}
