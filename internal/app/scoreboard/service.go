// Package scoreboard implements the live scoreboard: starting, updating
// and finishing matches, and producing the ranked summary.
package scoreboard

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/live-scoreboard/internal/domain/matches"
	"github.com/preston-bernstein/live-scoreboard/internal/domain/rules"
	"github.com/preston-bernstein/live-scoreboard/internal/logging"
	"github.com/preston-bernstein/live-scoreboard/internal/metrics"
	"github.com/preston-bernstein/live-scoreboard/internal/timeutil"
)

// Repository defines the contract for storing active match records.
// Absence is reported through the boolean results, never as an error.
type Repository interface {
	Add(rec matches.Record)
	Get(id matches.ID) (matches.Record, bool)
	CheckForConflict(homeTeam, awayTeam string) (matches.Record, bool)
	OrderedByScoreThenRecency() []matches.Record
	UpdateScore(id matches.ID, homeScore, awayScore int) bool
	Remove(id matches.ID) bool
}

// Option customises a Scoreboard.
type Option func(*Scoreboard)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scoreboard) { s.logger = logger }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(s *Scoreboard) { s.metrics = rec }
}

// WithClock sets the clock stamping match start times.
func WithClock(clock timeutil.Clock) Option {
	return func(s *Scoreboard) { s.now = timeutil.OrSystem(clock) }
}

// WithIDGenerator sets the source of new match ids.
func WithIDGenerator(gen func() matches.ID) Option {
	return func(s *Scoreboard) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// Scoreboard coordinates match operations using a Repository. All
// operations are serialised so that conflict detection and insertion
// happen atomically.
type Scoreboard struct {
	mu      sync.Mutex
	repo    Repository
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     timeutil.Clock
	newID   func() matches.ID
}

// New constructs a Scoreboard backed by repo.
func New(repo Repository, opts ...Option) *Scoreboard {
	s := &Scoreboard{
		repo:  repo,
		now:   timeutil.SystemClock,
		newID: matches.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartNewMatch begins a 0-0 match between homeTeam and awayTeam.
func (s *Scoreboard) StartNewMatch(homeTeam, awayTeam string) (matches.Match, error) {
	if err := rules.TeamNameMustContainCharacters(homeTeam, matches.FieldHomeTeam); err != nil {
		return matches.Match{}, s.reject(metrics.OpStart, err)
	}
	if err := rules.TeamNameMustContainCharacters(awayTeam, matches.FieldAwayTeam); err != nil {
		return matches.Match{}, s.reject(metrics.OpStart, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := rules.TeamsCannotBePlayingAnotherMatch(s.repo, homeTeam, awayTeam); err != nil {
		return matches.Match{}, s.reject(metrics.OpStart, err)
	}

	rec := matches.NewRecord(s.newID(), homeTeam, awayTeam, s.now())
	s.repo.Add(rec)

	s.metrics.RecordMatchStarted()
	logging.Info(s.logger, "match started",
		logging.FieldMatchID, rec.ID.String(),
		logging.FieldHomeTeam, homeTeam,
		logging.FieldAwayTeam, awayTeam,
		logging.FieldStartedAt, timeutil.FormatTimestamp(rec.StartedAt),
	)
	return rec.ToMatch(), nil
}

// GetSummary returns all active matches, highest total score first; equal
// totals list the most recently started match first.
func (s *Scoreboard) GetSummary() []matches.Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := matches.ToMatches(s.repo.OrderedByScoreThenRecency())
	logging.Debug(s.logger, "summary built", logging.FieldCount, len(summary))
	return summary
}

// Match returns the active match with the given id.
func (s *Scoreboard) Match(id matches.ID) (matches.Match, error) {
	if err := rules.MatchIDCannotBeEmpty(id); err != nil {
		return matches.Match{}, s.reject(metrics.OpGet, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.repo.Get(id)
	if !ok {
		return matches.Match{}, s.reject(metrics.OpGet, matches.NotFound(id))
	}
	return rec.ToMatch(), nil
}

// UpdateScore overwrites both scores of an active match.
func (s *Scoreboard) UpdateScore(id matches.ID, homeScore, awayScore int) error {
	if err := rules.MatchIDCannotBeEmpty(id); err != nil {
		return s.reject(metrics.OpUpdate, err)
	}
	if err := rules.ScoreCannotBeNegative(homeScore, awayScore); err != nil {
		return s.reject(metrics.OpUpdate, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.repo.UpdateScore(id, homeScore, awayScore) {
		return s.reject(metrics.OpUpdate, matches.NotFound(id))
	}

	s.metrics.RecordScoreUpdate()
	logging.Info(s.logger, "score updated",
		logging.FieldMatchID, id.String(),
		logging.FieldHomeScore, homeScore,
		logging.FieldAwayScore, awayScore,
	)
	return nil
}

// FinishMatch removes an active match from the scoreboard.
func (s *Scoreboard) FinishMatch(id matches.ID) error {
	if err := rules.MatchIDCannotBeEmpty(id); err != nil {
		return s.reject(metrics.OpFinish, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.repo.Remove(id) {
		return s.reject(metrics.OpFinish, matches.NotFound(id))
	}

	s.metrics.RecordMatchFinished()
	logging.Info(s.logger, "match finished", logging.FieldMatchID, id.String())
	return nil
}

func (s *Scoreboard) reject(operation string, err error) error {
	kind := KindName(err)
	s.metrics.RecordRejection(operation, kind)

	args := []any{"operation", operation, "kind", kind}
	if e, ok := matches.AsError(err); ok && e.Field != "" {
		args = append(args, logging.FieldField, e.Field)
	}
	logging.Debug(s.logger, "operation rejected", append(args, "error", err)...)
	return err
}

// KindName maps an error to the label used in logs and metrics.
func KindName(err error) string {
	switch kind := matches.KindOf(err); {
	case errors.Is(kind, matches.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(kind, matches.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(kind, matches.ErrNotFound):
		return "not_found"
	default:
		return "unknown"
	}
}
