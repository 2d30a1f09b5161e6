package server

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"paycalc/internal/domain/presets"
	"paycalc/internal/platform/config"
	"paycalc/internal/platform/metrics"
	"paycalc/internal/platform/policyfile"
	"paycalc/internal/transport/http/api"
	authhandler "paycalc/internal/transport/http/handlers/auth"
	payrollhandler "paycalc/internal/transport/http/handlers/payroll"
	presetshandler "paycalc/internal/transport/http/handlers/presets"
	"paycalc/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	policy, err := policyfile.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		log.Fatalf("policy load failed: %v", err)
	}

	store := presets.NewStore()
	if cfg.PresetsFile != "" {
		seed, err := policyfile.LoadPresets(cfg.PresetsFile)
		if err != nil {
			log.Fatalf("presets load failed: %v", err)
		}
		store.Seed(seed)
	}

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	// Metrics wraps the rate limiter so 429 responses are counted too.
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(cfg)
		r.Post("/auth/token", authHandler.HandleIssueToken)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(cfg.JWTSecret))

			payrollhandler.NewHandler(policy).RegisterRoutes(r)
			presetshandler.NewHandler(store).RegisterRoutes(r)
		})
	})

	log.Printf("paycalc server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
