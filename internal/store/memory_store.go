package store

import (
	"cmp"
	"slices"
	"sync"

	"golang.org/x/text/cases"

	"github.com/preston-bernstein/live-scoreboard/internal/domain/matches"
)

// MemoryStore keeps active match records in memory, keyed by id.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[matches.ID]matches.Record
	nextSeq uint64
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[matches.ID]matches.Record),
	}
}

// Add stores a record and stamps its insertion sequence. A record with an
// id already present replaces the old one.
func (s *MemoryStore) Add(rec matches.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	rec.Seq = s.nextSeq
	s.records[rec.ID] = rec
}

// Get retrieves a record by id.
func (s *MemoryStore) Get(id matches.ID) (matches.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	return rec, ok
}

// Len reports the number of active records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// CheckForConflict returns the earliest inserted record whose home or away
// team equals either name under Unicode case folding.
func (s *MemoryStore) CheckForConflict(homeTeam, awayTeam string) (matches.Record, bool) {
	home, away := fold(homeTeam), fold(awayTeam)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.inInsertionOrder() {
		recHome, recAway := fold(rec.HomeTeam), fold(rec.AwayTeam)
		if recHome == home || recHome == away || recAway == home || recAway == away {
			return rec, true
		}
	}
	return matches.Record{}, false
}

// OrderedByScoreThenRecency returns copies of all records, highest total
// first, most recently started first on equal totals.
func (s *MemoryStore) OrderedByScoreThenRecency() []matches.Record {
	s.mu.RLock()
	result := make([]matches.Record, 0, len(s.records))
	for _, rec := range s.records {
		result = append(result, rec)
	}
	s.mu.RUnlock()

	slices.SortFunc(result, func(a, b matches.Record) int {
		if c := cmp.Compare(b.TotalScore(), a.TotalScore()); c != 0 {
			return c
		}
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.Seq, a.Seq)
	})
	return result
}

// UpdateScore overwrites both scores of the record with the given id.
func (s *MemoryStore) UpdateScore(id matches.ID, homeScore, awayScore int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return false
	}
	rec.HomeScore = homeScore
	rec.AwayScore = awayScore
	s.records[id] = rec
	return true
}

// Remove deletes the record with the given id.
func (s *MemoryStore) Remove(id matches.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	return true
}

// inInsertionOrder must be called with s.mu held.
func (s *MemoryStore) inInsertionOrder() []matches.Record {
	result := make([]matches.Record, 0, len(s.records))
	for _, rec := range s.records {
		result = append(result, rec)
	}
	slices.SortFunc(result, func(a, b matches.Record) int {
		return cmp.Compare(a.Seq, b.Seq)
	})
	return result
}

// folder is stateless and safe for concurrent use.
var folder = cases.Fold()

func fold(s string) string {
	return folder.String(s)
}
