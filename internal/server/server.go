// Package server provides the HTTP REST API for the candidate analyzer.
package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/Nitish-kumar7/web-scraping/internal/analysis"
	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// AnalysisRunner runs candidate analyses.
type AnalysisRunner interface {
	Run(ctx context.Context, req analysis.Request) (*types.AnalysisReport, error)
}

// GitHubFetcher aggregates a GitHub user's profile statistics.
type GitHubFetcher interface {
	FetchProfile(ctx context.Context, username string) (*types.GitHubProfile, error)
}

// ResumeParser extracts structured data from resume text.
type ResumeParser interface {
	ParseText(ctx context.Context, text string) (*types.ResumeData, error)
}

// AnalysisStore reads persisted analysis reports.
type AnalysisStore interface {
	GetAnalysis(ctx context.Context, id uuid.UUID) (*types.AnalysisReport, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	analyzer   AnalysisRunner
	github     GitHubFetcher
	resume     ResumeParser
	store      AnalysisStore
	apiKey     string
}

// Config holds server configuration
type Config struct {
	Port   int
	APIKey string
}

// New creates a new server instance. The store may be nil when the server
// runs without a database; stored-report endpoints then return 404.
func New(cfg Config, analyzer AnalysisRunner, github GitHubFetcher, resume ResumeParser, store AnalysisStore) *Server {
	s := &Server{
		analyzer: analyzer,
		github:   github,
		resume:   resume,
		store:    store,
		apiKey:   cfg.APIKey,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Analyses hit several slow upstreams
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler builds the routed handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /analyze", s.withAPIKey(s.handleAnalyze))
	mux.HandleFunc("GET /github/{username}", s.withAPIKey(s.handleGitHubProfile))
	mux.HandleFunc("POST /resume/parse", s.withAPIKey(s.handleResumeParse))
	mux.HandleFunc("GET /analyses/{id}", s.withAPIKey(s.handleGetAnalysis))

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withAPIKey rejects requests whose X-API-Key header does not match the
// configured key. The comparison is constant-time.
func (s *Server) withAPIKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey == "" {
			s.errorResponse(w, http.StatusServiceUnavailable, "API key not configured")
			return
		}
		provided := r.Header.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(s.apiKey)) != 1 {
			s.errorResponse(w, http.StatusForbidden, "Invalid API key")
			return
		}
		next(w, r)
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
