package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/live-scoreboard/internal/domain/matches"
	"github.com/preston-bernstein/live-scoreboard/internal/logging"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Scoreboard is the match service the handlers drive.
type Scoreboard interface {
	StartNewMatch(homeTeam, awayTeam string) (matches.Match, error)
	GetSummary() []matches.Match
	Match(id matches.ID) (matches.Match, error)
	UpdateScore(id matches.ID, homeScore, awayScore int) error
	FinishMatch(id matches.ID) error
}

// StartMatchRequest is the body of POST /matches.
type StartMatchRequest struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
}

// UpdateScoreRequest is the body of PUT /matches/{id}/score. Both scores
// are required.
type UpdateScoreRequest struct {
	HomeScore *int `json:"homeScore"`
	AwayScore *int `json:"awayScore"`
}

// Handler wires HTTP routes to the scoreboard.
type Handler struct {
	board  Scoreboard
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(board Scoreboard, logger *slog.Logger) *Handler {
	return &Handler{board: board, logger: logger}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The scoreboard has no warm-up, so
// it is ready as soon as it is serving.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.board == nil {
		writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// StartMatch handles POST /matches.
func (h *Handler) StartMatch(w http.ResponseWriter, r *http.Request) {
	var req StartMatchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	m, err := h.board.StartNewMatch(req.HomeTeam, req.AwayTeam)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	w.Header().Set("Location", "/matches/"+m.ID.String())
	writeJSON(w, http.StatusCreated, m, h.logger)
}

// Summary handles GET /matches.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary := h.board.GetSummary()
	logging.Debug(loggerFromContext(r, h.logger), "served summary", logging.FieldCount, len(summary))
	writeJSON(w, http.StatusOK, matches.NewSummaryResponse(summary), h.logger)
}

// MatchByID handles GET /matches/{id}.
func (h *Handler) MatchByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	m, err := h.board.Match(id)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, m, h.logger)
}

// UpdateScore handles PUT /matches/{id}/score.
func (h *Handler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	var req UpdateScoreRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if req.HomeScore == nil {
		writeDomainError(w, r, matches.InvalidArgument(matches.FieldHomeScore, "homeScore is required"), h.logger)
		return
	}
	if req.AwayScore == nil {
		writeDomainError(w, r, matches.InvalidArgument(matches.FieldAwayScore, "awayScore is required"), h.logger)
		return
	}

	if err := h.board.UpdateScore(id, *req.HomeScore, *req.AwayScore); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FinishMatch handles DELETE /matches/{id}.
func (h *Handler) FinishMatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	if err := h.board.FinishMatch(id); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (matches.ID, error) {
	return matches.ParseID(r.PathValue("id"))
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
