// Package http exposes the validator as a small HTTP service. Clients
// POST a document or point the service at a URL and get the full
// validation result back as JSON.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/rawgroundbeef/x402check"
	"github.com/rawgroundbeef/x402check/fetch"
)

// DefaultMaxBodySize caps accepted request bodies.
const DefaultMaxBodySize int64 = 1 << 20

// Config holds the configuration for the validation service.
type Config struct {
	// Registry overrides the network registry used for validation.
	// DefaultRegistry when nil.
	Registry *x402check.Registry

	// Fetcher retrieves remote documents for GET /validate requests.
	// A default fetch.Client is built when nil.
	Fetcher *fetch.Client

	// MaxBodySize caps the accepted request body in bytes.
	// DefaultMaxBodySize when zero.
	MaxBodySize int64

	// Logger receives request logs. slog.Default() when nil.
	Logger *slog.Logger
}

// Handler serves validation requests. It implements http.Handler with
// three routes:
//
//	POST /validate       validate the request body, ?strict=1 to
//	                     promote warnings
//	GET  /validate?url=  fetch a remote document, then validate it
//	GET  /healthz        liveness probe
//
// Validation findings always ride inside a 200 response; non-2xx
// statuses mean the request itself could not be served.
type Handler struct {
	registry *x402check.Registry
	fetcher  *fetch.Client
	maxBody  int64
	logger   *slog.Logger
	mux      *http.ServeMux
}

// NewHandler builds the service handler. A nil config uses defaults
// throughout.
func NewHandler(config *Config) (*Handler, error) {
	if config == nil {
		config = &Config{}
	}

	h := &Handler{
		registry: config.Registry,
		fetcher:  config.Fetcher,
		maxBody:  config.MaxBodySize,
		logger:   config.Logger,
	}
	if h.registry == nil {
		h.registry = x402check.DefaultRegistry()
	}
	if h.maxBody <= 0 {
		h.maxBody = DefaultMaxBodySize
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	if h.fetcher == nil {
		fetcher, err := fetch.NewClient(fetch.WithLogger(h.logger))
		if err != nil {
			return nil, err
		}
		h.fetcher = fetcher
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/validate", h.HandleValidate)
	mux.HandleFunc("/healthz", h.HandleHealth)
	h.mux = mux
	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// MaxBodySize reports the configured request body cap in bytes.
func (h *Handler) MaxBodySize() int64 {
	return h.maxBody
}

// Logger reports the handler's logger, for adapters that want their
// request logs in the same place.
func (h *Handler) Logger() *slog.Logger {
	return h.logger
}

// HandleValidate serves POST body validations and GET by-URL
// validations. It is exported so router frameworks can mount it on
// their own terms.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.validateBody(w, r)
	case http.MethodGet:
		h.validateRemote(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "use POST with a document body or GET with a url parameter")
	}
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Validate runs one document through the validator with the handler's
// registry.
func (h *Handler) Validate(document []byte, strict bool) x402check.ValidationResult {
	return x402check.Validate(document, h.options(strict)...)
}

// ValidateURL fetches a remote document and validates it.
func (h *Handler) ValidateURL(ctx context.Context, rawURL string, strict bool) (x402check.ValidationResult, error) {
	return h.fetcher.FetchAndValidate(ctx, rawURL, h.options(strict)...)
}

func (h *Handler) validateBody(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "document exceeds the accepted size")
			return
		}
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	result := h.Validate(body, strictRequested(r))
	h.logResult(r.Context(), "body", result)
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) validateRemote(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		writeError(w, http.StatusBadRequest, "url parameter is required")
		return
	}

	result, err := h.ValidateURL(r.Context(), rawURL, strictRequested(r))
	if err != nil {
		if errors.Is(err, fetch.ErrInvalidURL) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.WarnContext(r.Context(), "fetch failed", "url", rawURL, "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.logResult(r.Context(), rawURL, result)
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) options(strict bool) []x402check.Option {
	opts := []x402check.Option{x402check.WithRegistry(h.registry)}
	if strict {
		opts = append(opts, x402check.WithStrict())
	}
	return opts
}

func (h *Handler) logResult(ctx context.Context, source string, result x402check.ValidationResult) {
	h.logger.InfoContext(ctx, "validated document",
		"source", source,
		"format", result.Format,
		"valid", result.Valid,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings))
}

// strictRequested reads the strict query flag.
func strictRequested(r *http.Request) bool {
	switch r.URL.Query().Get("strict") {
	case "1", "true", "yes":
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError reports a transport-level problem. Validation findings
// never take this path.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
