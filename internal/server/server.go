package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"github.com/rs/zerolog"

	"github.com/terrabrand/Prompt101/internal/config"
)

// New returns the host handler: a health probe and the PWA shell that serves
// every other path. Routes must be registered with app.Route beforehand so
// the shell can prerender them.
func New(cfg config.Config, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealth(cfg))
	mux.Handle("/", Shell(cfg))
	return RequestLog(log, mux)
}

// Shell is the go-app handler serving the page, the manifest, the service
// worker and app.wasm from ./web.
func Shell(cfg config.Config) *app.Handler {
	b := cfg.Branding
	return &app.Handler{
		Name:        b.AppName,
		ShortName:   b.ShortName,
		Title:       b.AppName,
		Description: b.Description,
		ThemeColor:  b.ThemeColor,
		Version:     b.Version,
		Styles:      []string{"/web/app.css"},
	}
}

func handleHealth(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"name":    cfg.Branding.AppName,
			"version": cfg.Branding.Version,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// RequestLog logs one line per request, at warn for 4xx and error for 5xx.
func RequestLog(log zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}
		event.
			Int("status", status).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("latency", time.Since(start)).
			Int("size", rec.size).
			Msg("request")
	})
}
