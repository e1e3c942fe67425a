package testutil

import (
	"testing"
	"time"

	"github.com/preston-bernstein/live-scoreboard/internal/app/scoreboard"
	"github.com/preston-bernstein/live-scoreboard/internal/domain/matches"
	"github.com/preston-bernstein/live-scoreboard/internal/store"
)

// BoardStart is the first timestamp handed out by NewScoreboard's clock.
var BoardStart = time.Date(2024, 6, 14, 19, 0, 0, 0, time.UTC)

// NewScoreboard builds a scoreboard over a fresh memory store whose clock
// advances one second per started match.
func NewScoreboard(opts ...scoreboard.Option) (*scoreboard.Scoreboard, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	opts = append([]scoreboard.Option{scoreboard.WithClock(StepClock(BoardStart, time.Second))}, opts...)
	return scoreboard.New(ms, opts...), ms
}

// StartFixtures starts and scores every fixture in order, returning the
// started matches.
func StartFixtures(t *testing.T, sb *scoreboard.Scoreboard, fixtures []Fixture) []matches.Match {
	t.Helper()
	started := make([]matches.Match, 0, len(fixtures))
	for _, f := range fixtures {
		m, err := sb.StartNewMatch(f.Home, f.Away)
		if err != nil {
			t.Fatalf("start %s-%s: %v", f.Home, f.Away, err)
		}
		if err := sb.UpdateScore(m.ID, f.HomeScore, f.AwayScore); err != nil {
			t.Fatalf("update %s-%s: %v", f.Home, f.Away, err)
		}
		m.HomeScore, m.AwayScore = f.HomeScore, f.AwayScore
		started = append(started, m)
	}
	return started
}

// Labels renders matches as "Home-Away" for order assertions.
func Labels(ms []matches.Match) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.HomeTeam+"-"+m.AwayTeam)
	}
	return out
}
