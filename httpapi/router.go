// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gainanist/bygone-bot/engine/metrics"
)

// EngineInterface is the slice of Engine the ops surface depends on.
// Keeping it minimal lets tests supply a stub instead of a real tick
// loop.
type EngineInterface interface {
	ActiveGames() int
	Metrics() *metrics.Metrics
}

// RouterConfig carries NewRouter's dependencies.
type RouterConfig struct {
	// Engine is the running core (required).
	Engine EngineInterface

	// RateLimiter is an optional pre-built limiter. If nil, one is built
	// from RateLimitConfig (or DefaultRateLimitConfig if that's nil too).
	RateLimiter *IPRateLimiter

	// RateLimitConfig configures the limiter NewRouter builds when
	// RateLimiter is nil.
	RateLimitConfig *RateLimitConfig

	// CORSOrigins overrides the allowed CORS origins. Defaults to "*"
	// since this surface serves metrics and health, not credentialed
	// state.
	CORSOrigins []string

	// DisableLogging skips the request logger middleware, useful for
	// benchmarks and quiet test output.
	DisableLogging bool
}

// NewRouter builds the ops HTTP router. It is pure: no goroutines beyond
// the rate limiter's cleanup loop, no listeners opened.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	rateLimiter := cfg.RateLimiter
	if rateLimiter == nil {
		rlCfg := DefaultRateLimitConfig()
		if cfg.RateLimitConfig != nil {
			rlCfg = *cfg.RateLimitConfig
		}
		rateLimiter = NewIPRateLimiter(rlCfg)
	}
	r.Use(rateLimiter.Middleware)

	origins := cfg.CORSOrigins
	if origins == nil {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET"},
	}))

	r.Get("/healthz", handleHealthz(cfg.Engine))
	r.Handle("/metrics", promhttp.HandlerFor(cfg.Engine.Metrics().Registry(), promhttp.HandlerOpts{}))

	return r
}

type healthzResponse struct {
	Status      string `json:"status"`
	ActiveGames int    `json:"active_games"`
}

func handleHealthz(e EngineInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthzResponse{Status: "ok", ActiveGames: e.ActiveGames()})
	}
}
