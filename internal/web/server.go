// Package web provides the HTTP interface to the expression evaluator: a
// JSON calculate endpoint, a health probe, and a static browser form.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"io/fs"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/evermoor/infix"
	"github.com/evermoor/infix/internal/config"
	"github.com/evermoor/infix/internal/logger"
	"github.com/julienschmidt/httprouter"
)

//go:embed static/*
var staticFiles embed.FS

// Server serves the calculator HTTP API.
type Server struct {
	cfg    config.Config
	log    *logger.Logger
	router *httprouter.Router
	server *http.Server
	opts   []infix.Option
}

// NewServer creates a server for the given configuration.
func NewServer(cfg config.Config, log *logger.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		log:    log,
		router: httprouter.New(),
	}
	if cfg.Lenient {
		s.opts = append(s.opts, infix.Lenient())
	}
	s.setupRoutes()
	return s
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server until it fails or Stop is called.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	s.log.Info("listening on %s", s.cfg.Addr)
	return s.server.ListenAndServe()
}

// Stop shuts the server down, waiting briefly for in-flight requests.
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	s.router.POST("/api/v1/calculate", s.handleCalculate)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/", s.handleIndex)
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	s.router.ServeFiles("/static/*filepath", http.FS(static))
	s.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method "+r.Method+" not allowed")
	})
}

type calculateRequest struct {
	Expression *string `json:"expression"`
}

// handleCalculate evaluates the expression in a JSON request body.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.cfg.MaxExprLen)+1024)
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Expression == nil {
		writeError(w, http.StatusBadRequest, "missing expression field")
		return
	}
	expr := *req.Expression
	if len(expr) > s.cfg.MaxExprLen {
		writeError(w, http.StatusBadRequest, "expression longer than "+strconv.Itoa(s.cfg.MaxExprLen)+" bytes")
		return
	}
	result, err := infix.Evaluate(expr, s.opts...)
	if err != nil {
		s.log.Debug("evaluate %q: %v", expr, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.log.Debug("evaluate %q = %g", expr, result)
	writeResult(w, result)
}

// handleHealth returns liveness status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleIndex serves the browser form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	data, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "index page not available", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func writeResult(w http.ResponseWriter, v float64) {
	w.Header().Set("Content-Type", "application/json")
	if math.IsInf(v, 0) || math.IsNaN(v) {
		// JSON has no encoding for non-finite numbers, so they travel as
		// their string forms rather than being rejected.
		json.NewEncoder(w).Encode(map[string]string{"result": strconv.FormatFloat(v, 'g', -1, 64)})
		return
	}
	json.NewEncoder(w).Encode(map[string]float64{"result": v})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
