// Package chi mounts the validation service on a chi router.
package chi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	x402http "github.com/rawgroundbeef/x402check/http"
)

// Routes returns a chi router serving the validation endpoints with
// request IDs, panic recovery, and request logging wired in.
func Routes(h *x402http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(x402http.RequestLogger(h.Logger()))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.HandleHealth)
	r.Get("/validate", h.HandleValidate)
	r.Post("/validate", h.HandleValidate)
	return r
}
