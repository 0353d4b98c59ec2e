package http

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// RequestLogger returns a middleware that logs one line per request
// with method, path, status and duration.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{w: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			logger.InfoContext(r.Context(), "request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"bytes", recorder.bytes,
				"duration", time.Since(start))
		})
	}
}

// statusRecorder wraps the ResponseWriter to note what was written.
type statusRecorder struct {
	w             http.ResponseWriter
	status        int
	bytes         int
	headerWritten bool
}

func (rec *statusRecorder) Header() http.Header {
	return rec.w.Header()
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.headerWritten = true
	n, err := rec.w.Write(b)
	rec.bytes += n
	return n, err
}

func (rec *statusRecorder) WriteHeader(statusCode int) {
	if rec.headerWritten {
		return
	}
	rec.headerWritten = true
	rec.status = statusCode
	rec.w.WriteHeader(statusCode)
}

// Flush implements http.Flusher to support streaming responses.
func (rec *statusRecorder) Flush() {
	if flusher, ok := rec.w.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack implements http.Hijacker to support connection hijacking.
func (rec *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rec.w.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, errors.New("hijacking not supported")
}

// Push implements http.Pusher to support HTTP/2 server push.
func (rec *statusRecorder) Push(target string, opts *http.PushOptions) error {
	if pusher, ok := rec.w.(http.Pusher); ok {
		return pusher.Push(target, opts)
	}
	return http.ErrNotSupported
}
