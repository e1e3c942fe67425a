package matches

import (
	"fmt"
	"time"
)

// Match is the read-only view of an active match exposed to callers.
type Match struct {
	ID        ID     `json:"id"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
}

// TotalScore is the sum of both scores.
func (m Match) TotalScore() int {
	return m.HomeScore + m.AwayScore
}

func (m Match) String() string {
	return fmt.Sprintf("%s %d - %s %d (id %s)", m.HomeTeam, m.HomeScore, m.AwayTeam, m.AwayScore, m.ID)
}

// Record is the stored form of an active match.
type Record struct {
	ID        ID
	HomeTeam  string
	AwayTeam  string
	HomeScore int
	AwayScore int
	StartedAt time.Time
	// Seq is assigned by the repository on insert and orders records that
	// share a StartedAt.
	Seq uint64
}

// NewRecord builds a 0-0 record for a freshly started match.
func NewRecord(id ID, homeTeam, awayTeam string, startedAt time.Time) Record {
	return Record{
		ID:        id,
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		StartedAt: startedAt,
	}
}

// TotalScore is the sum of both scores.
func (r Record) TotalScore() int {
	return r.HomeScore + r.AwayScore
}

// ToMatch projects a record into its external view.
func (r Record) ToMatch() Match {
	return Match{
		ID:        r.ID,
		HomeTeam:  r.HomeTeam,
		AwayTeam:  r.AwayTeam,
		HomeScore: r.HomeScore,
		AwayScore: r.AwayScore,
	}
}

// ToMatches projects records preserving order.
func ToMatches(records []Record) []Match {
	out := make([]Match, 0, len(records))
	for _, r := range records {
		out = append(out, r.ToMatch())
	}
	return out
}

// SummaryResponse is the payload returned by GET /matches.
type SummaryResponse struct {
	Matches []Match `json:"matches"`
}

// NewSummaryResponse builds a SummaryResponse payload.
func NewSummaryResponse(matches []Match) SummaryResponse {
	if matches == nil {
		matches = []Match{}
	}
	return SummaryResponse{Matches: matches}
}
