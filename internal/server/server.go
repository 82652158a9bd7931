// Package server provides the HTTP REST API over the résumé normalization engine.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/cv-tracker/internal/cvjson"
	"github.com/jonathan/cv-tracker/internal/db"
	"github.com/jonathan/cv-tracker/internal/parsing"
	"github.com/jonathan/cv-tracker/internal/resume"
	"github.com/jonathan/cv-tracker/internal/server/ratelimit"
	"github.com/jonathan/cv-tracker/internal/types"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// Store is the persistence the handlers need. *db.DB implements it.
type Store interface {
	SaveCVRecord(ctx context.Context, rec *db.CVRecord) error
	GetCVRecord(ctx context.Context, id uuid.UUID) (*db.CVRecord, error)
	DeleteCVRecord(ctx context.Context, id uuid.UUID) error
	SaveProfile(ctx context.Context, p *types.Profile) error
	GetProfile(ctx context.Context, id uuid.UUID) (*types.Profile, error)
	GetJobDescription(ctx context.Context, id uuid.UUID) (*types.JobDescription, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	parser     *resume.Parser
	fallback   cvjson.BucketStrategy
	limiter    *ratelimit.Limiter
	logger     *slog.Logger
}

// Config holds server configuration
type Config struct {
	Port    int
	Parsing parsing.Options
	// Strategy splits skills for json records without recorded bucket sizes.
	// Nil uses cvjson.SixtyForty.
	Strategy  cvjson.BucketStrategy
	RateLimit ratelimit.Config
}

// New creates a new server instance. A nil store disables the routes that
// load or save records; they answer 503.
func New(cfg Config, store Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		store:    store,
		parser:   resume.NewParser(cfg.Parsing),
		fallback: cfg.Strategy,
		limiter:  ratelimit.NewLimiter(cfg.RateLimit),
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /v1/cv/detect", s.handleDetect)
	mux.HandleFunc("POST /v1/cv/parse", s.handleParse)
	mux.HandleFunc("POST /v1/cv/serialize", s.handleSerialize)
	mux.HandleFunc("GET /v1/cv/{id}", s.handleGetCV)
	mux.HandleFunc("PUT /v1/cv/{id}", s.handlePutCV)
	mux.HandleFunc("DELETE /v1/cv/{id}", s.handleDeleteCV)

	mux.HandleFunc("GET /v1/profiles/{id}", s.handleGetProfile)
	mux.HandleFunc("POST /v1/profiles/{id}/merge", s.handleMergeProfile)
	mux.HandleFunc("POST /v1/profiles/{id}/certifications/detect", s.handleDetectCertifications)

	mux.HandleFunc("GET /v1/jobs/{id}", s.handleGetJob)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the root handler with all middleware applied
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging logs one record per request
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}

// withRateLimit rejects clients over their per-route budget with 429
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := s.limiter.Allow(clientID(r), r.Method, r.URL.Path)
		if d.Limited() {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		}
		if !d.Allowed {
			retry := int(d.RetryAfter.Seconds() + 0.999)
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			s.logger.Warn("rate limit exceeded", "client", clientID(r), "path", r.URL.Path)
			s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
				"error":       "rate_limit_exceeded",
				"retry_after": retry,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID is the request's remote IP
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
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
		s.logger.Error("encoding JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to a status. Internal errors are logged and not echoed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		s.errorResponse(w, status, "internal error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// decodeJSON decodes the request body into v. An empty body is accepted
// when allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// pathID parses the {id} path value as a uuid
func pathID(r *http.Request) (uuid.UUID, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	return id, nil
}

// requireStore answers 503 and returns false when persistence is disabled
func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return false
	}
	return true
}

// strategyFor picks the bucket split for a json-origin document, reusing its
// recorded bucket sizes when present
func (s *Server) strategyFor(doc *resume.Document) cvjson.BucketStrategy {
	if doc.Buckets != nil {
		return cvjson.BoundaryStrategy{Boundary: *doc.Buckets, Fallback: s.fallback}
	}
	return s.fallback
}
