package server

import (
	"encoding/json"
	"net/http"
	"time"

	"sqlcheck/pkg/logging"
	"sqlcheck/pkg/validate"
)

// Server exposes the validator over a small JSON API:
//
//	GET  /             health check
//	POST /api/validate validate the query in the request body
type Server struct {
	addr string
	mux  *http.ServeMux
}

// New creates a Server that will listen on addr.
func New(addr string) *Server {
	s := &Server{
		addr: addr,
		mux:  http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handleHealth)
	s.mux.HandleFunc("/api/validate", s.handleValidate)
	return s
}

// Handler returns the server's handler chain, including CORS and request
// logging. Exposed separately so tests can drive it with httptest.
func (s *Server) Handler() http.Handler {
	return withCORS(withLogging(s.mux))
}

// ListenAndServe blocks serving the API on the configured address.
func (s *Server) ListenAndServe() error {
	logging.Info("validator API listening", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

type validateRequest struct {
	// Pointer so a missing field is distinguishable from an empty query.
	Query *string `json:"query"`
}

type validateResponse struct {
	Valid        bool   `json:"valid"`
	Message      string `json:"message,omitempty"`
	ErrorType    string `json:"error_type,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "running",
		Message: "SQL validator API is operational.",
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == nil {
		writeJSON(w, http.StatusBadRequest, validateResponse{
			Valid:        false,
			ErrorMessage: "missing 'query' field in request body",
		})
		return
	}

	outcome := validate.Validate(*req.Query)
	if outcome.Valid {
		writeJSON(w, http.StatusOK, validateResponse{
			Valid:   true,
			Message: outcome.Message,
		})
		return
	}

	writeJSON(w, http.StatusOK, validateResponse{
		Valid:        false,
		ErrorType:    outcome.Category.String(),
		ErrorMessage: outcome.Message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error("failed to encode response", "error", err)
	}
}

// withCORS allows cross-origin calls so a browser frontend can reach the
// API directly, and answers preflight requests.
func withCORS(next http.Handler) http.Handler {
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

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.Debug("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}
