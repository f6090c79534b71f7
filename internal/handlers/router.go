package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ordersvc/order-total/internal/middleware"
)

// NewRouter assembles the service's route table:
//
//	OPTIONS /compute  preflight, CORS headers only
//	GET     /         usage instructions
//	POST    /compute  order total computation
//	GET     /health   liveness probe
//	GET     /metrics  prometheus metrics
//
// Anything else is a bare 404 with an empty body.
func NewRouter(orderHandler *OrderHandler, healthHandler *HealthHandler, log *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// OptionsPassthrough lets preflights reach the OPTIONS /compute
	// route, whose handler stamps the fixed CORS header set; without it
	// the middleware would answer with echoed, request-dependent headers.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:     []string{"api", "Keep-Alive", "User-Agent", "Content-Type"},
		AllowCredentials:   false,
		MaxAge:             300,
		OptionsPassthrough: true,
	}))

	r.Get("/", Instructions)
	r.Post("/compute", orderHandler.Compute)
	r.Options("/compute", orderHandler.Preflight)

	r.Get("/health", healthHandler.ServeHTTP)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// chi's defaults write a text 404 body and answer unrouted methods
	// with 405; the wire contract is a bare 404 for both.
	notFound := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}
