package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/svenplb/aegis-core/internal/config"
	"github.com/svenplb/aegis-core/internal/loader"
	"github.com/svenplb/aegis-core/internal/pattern"
	"github.com/svenplb/aegis-core/internal/redactor"
	"github.com/svenplb/aegis-core/internal/restorer"
	"github.com/svenplb/aegis-core/internal/scanner"
	"github.com/svenplb/aegis-core/internal/verify"
)

const version = "0.1.0"

// maxRequestBody is the maximum allowed request body size (1 MB).
const maxRequestBody int64 = 1 << 20

// engine bundles the immutable pattern set and allowlist a running server
// scans every request against. Both fields are read-only after startup,
// so engine is safe for concurrent use without its own lock.
type engine struct {
	set       *pattern.Set
	registry  *verify.Registry
	location  string
	allowlist []regexpMatcher
}

// regexpMatcher is the minimal matcher interface the allowlist needs;
// *regexp.Regexp satisfies it.
type regexpMatcher interface {
	MatchString(string) bool
}

func (e *engine) scan(text string) []scanner.Match {
	matches := scanner.Scan(e.set, text, scanner.Options{Location: e.location, Registry: e.registry})
	if len(e.allowlist) == 0 {
		return matches
	}
	kept := make([]scanner.Match, 0, len(matches))
	for _, m := range matches {
		allowed := false
		for _, re := range e.allowlist {
			if re.MatchString(m.Text) {
				allowed = true
				break
			}
		}
		if !allowed {
			kept = append(kept, m)
		}
	}
	return kept
}

// scanRequest is the JSON shape for /api/scan and /api/redact.
type scanRequest struct {
	Text string `json:"text"`
}

// scanResponse is the JSON shape returned by /api/scan.
type scanResponse struct {
	Matches        []scanner.Match `json:"matches"`
	ProcessingTime int64           `json:"processing_time_ms"`
}

// restoreRequest is the JSON shape for /api/restore.
type restoreRequest struct {
	Text     string            `json:"text"`
	Mappings []redactor.Mapping `json:"mappings"`
}

// restoreResponse is the JSON shape returned by /api/restore.
type restoreResponse struct {
	Text string `json:"text"`
}

// healthResponse is the JSON shape returned by /health.
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// errorResponse is the JSON shape for error replies.
type errorResponse struct {
	Error string `json:"error"`
}

// corsMiddleware wraps a handler to add CORS headers and handle OPTIONS preflight.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON marshals v to JSON and writes it to w with the appropriate Content-Type.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// newMux creates the HTTP mux with all routes registered.
// Exported for use in tests.
func newMux(e *engine) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", handleUI)
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/api/scan", handleScan(e))
	mux.HandleFunc("/api/redact", handleRedact(e))
	mux.HandleFunc("/api/restore", handleRestore())

	return mux
}

// handleHealth returns the health check response.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: version,
	})
}

// handleScan returns a handler that scans text for matches.
func handleScan(e *engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

		var req scanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.Text == "" {
			writeError(w, http.StatusBadRequest, "text field is required")
			return
		}

		start := time.Now()
		matches := e.scan(req.Text)
		elapsed := time.Since(start).Milliseconds()

		writeJSON(w, http.StatusOK, scanResponse{
			Matches:        matches,
			ProcessingTime: elapsed,
		})
	}
}

// handleRedact returns a handler that scans and redacts text.
func handleRedact(e *engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

		var req scanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.Text == "" {
			writeError(w, http.StatusBadRequest, "text field is required")
			return
		}

		matches := e.scan(req.Text)
		result := redactor.Redact(req.Text, matches)

		writeJSON(w, http.StatusOK, result)
	}
}

// handleRestore returns a handler that restores redacted tokens.
func handleRestore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

		var req restoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.Text == "" {
			writeError(w, http.StatusBadRequest, "text field is required")
			return
		}

		restored := restorer.Restore(req.Text, req.Mappings)

		writeJSON(w, http.StatusOK, restoreResponse{Text: restored})
	}
}

func main() {
	portFlag := flag.Int("port", 0, "server port (default 9090, overrides AEGIS_SERVER_PORT)")
	configFlag := flag.String("config", "", "path to config.yaml (optional)")
	flag.Parse()

	// Determine port: flag > env > default.
	port := 9090
	if envPort := os.Getenv("AEGIS_SERVER_PORT"); envPort != "" {
		if p, err := strconv.Atoi(envPort); err == nil {
			port = p
		}
	}
	if *portFlag != 0 {
		port = *portFlag
	}

	var cfg *config.Config
	if *configFlag != "" {
		var err error
		cfg, err = config.Load(*configFlag)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	allowlistRe, err := cfg.CompileAllowlist()
	if err != nil {
		log.Fatalf("invalid allowlist: %v", err)
	}
	allowlist := make([]regexpMatcher, len(allowlistRe))
	for i, re := range allowlistRe {
		allowlist[i] = re
	}

	packs, err := config.BuiltinPatternPacks()
	if err != nil {
		log.Fatalf("failed to locate built-in pattern packs: %v", err)
	}
	packs = append(packs, cfg.Scanner.PatternPacks...)

	registry := verify.Default()
	set, err := loader.LoadPatterns(packs, loader.Options{Registry: registry})
	if err != nil {
		log.Fatalf("failed to load patterns: %v", err)
	}

	e := &engine{set: set, registry: registry, location: cfg.Scanner.Location, allowlist: allowlist}

	mux := newMux(e)
	handler := corsMiddleware(mux)

	addr := fmt.Sprintf(":%d", port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("aegis-server %s starting on port %d", version, port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
	log.Println("server stopped")
}
