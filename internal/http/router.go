package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/live-scoreboard/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) *nethttp.ServeMux {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /ready", handler.Ready)
	mux.HandleFunc("POST /matches", handler.StartMatch)
	mux.HandleFunc("GET /matches", handler.Summary)
	mux.HandleFunc("GET /matches/{id}", handler.MatchByID)
	mux.HandleFunc("DELETE /matches/{id}", handler.FinishMatch)
	mux.HandleFunc("PUT /matches/{id}/score", handler.UpdateScore)
	return mux
}
