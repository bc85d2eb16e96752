package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"

	"action-agent/internal/application/port/input"
	"action-agent/internal/application/service"
	"action-agent/internal/domain/entity"
	"action-agent/internal/usecase/orchestrator"
)

const Version = "1.0.0"

// Executors holds one executor per configured interpreter. Generative is nil
// when no LLM credentials are configured.
type Executors struct {
	Pattern    input.InstructionExecutor
	Generative input.InstructionExecutor
}

// Server exposes the execution pipeline over HTTP.
type Server struct {
	executors   Executors
	registry    *service.ProviderRegistry
	credentials map[string]map[string]string
}

func NewServer(executors Executors, registry *service.ProviderRegistry, credentials map[string]map[string]string) *Server {
	return &Server{
		executors:   executors,
		registry:    registry,
		credentials: credentials,
	}
}

func (s *Server) Router() http.Handler {
	logger := httplog.NewLogger("action-agent", httplog.Options{
		JSON:    true,
		Concise: true,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Post("/execute", s.executeInstruction)
	r.Get("/providers", s.listProviders)
	r.Get("/health", s.health)

	return r
}

type executeRequest struct {
	Instruction    string   `json:"instruction"`
	Providers      []string `json:"providers,omitempty"`
	UseMockLLM     *bool    `json:"use_mock_llm,omitempty"`
	TimeoutSeconds int      `json:"timeout_seconds,omitempty"`
}

func (s *Server) executeInstruction(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	useMock := true
	if req.UseMockLLM != nil {
		useMock = *req.UseMockLLM
	}

	exec := s.executors.Pattern
	if !useMock {
		if s.executors.Generative == nil {
			writeError(w, http.StatusBadRequest,
				"generative interpreter is not configured; set OPENROUTER_API_KEY or use use_mock_llm=true")
			return
		}
		exec = s.executors.Generative
	}

	resp, err := exec.Execute(r.Context(), input.ExecuteRequest{
		Instruction: req.Instruction,
		Providers:   req.Providers,
		Credentials: s.credentials,
		Timeout:     time.Duration(req.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		if isBadRequest(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "execution failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listProviders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]entity.Descriptor{
		"providers": s.registry.Descriptors(),
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

func isBadRequest(err error) bool {
	return errors.Is(err, orchestrator.ErrEmptyInstruction) ||
		errors.Is(err, orchestrator.ErrUnknownProvider) ||
		errors.Is(err, orchestrator.ErrNoProviders)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
