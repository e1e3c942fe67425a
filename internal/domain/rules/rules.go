// Package rules holds the guards the scoreboard applies before touching
// its repository. Each guard returns a *matches.Error of a distinct kind.
package rules

import (
	"strings"
	"unicode"

	"github.com/preston-bernstein/live-scoreboard/internal/domain/matches"
)

// ConflictMessage prefixes the error returned when a team is already playing.
const ConflictMessage = "cannot start a new match - one of the teams is already playing: "

// ConflictFinder is the read-only lookup the conflict rule needs.
type ConflictFinder interface {
	CheckForConflict(homeTeam, awayTeam string) (matches.Record, bool)
}

// TeamNameMustContainCharacters rejects empty and whitespace-only names.
func TeamNameMustContainCharacters(teamName, field string) error {
	if strings.IndexFunc(teamName, func(r rune) bool { return !unicode.IsSpace(r) }) < 0 {
		return matches.InvalidArgument(field, "team name must not be blank: "+field)
	}
	return nil
}

// TeamsCannotBePlayingAnotherMatch rejects a pairing when either team is
// part of an active match.
func TeamsCannotBePlayingAnotherMatch(finder ConflictFinder, homeTeam, awayTeam string) error {
	conflict, ok := finder.CheckForConflict(homeTeam, awayTeam)
	if !ok {
		return nil
	}
	return matches.InvalidArgument("", ConflictMessage+conflict.ToMatch().String())
}

// MatchIDCannotBeEmpty rejects the absent id.
func MatchIDCannotBeEmpty(id matches.ID) error {
	if id.IsZero() {
		return matches.InvalidArgument(matches.FieldMatchID, "match id must not be empty: "+matches.FieldMatchID)
	}
	return nil
}

// ScoreCannotBeNegative checks the home score first, then the away score.
func ScoreCannotBeNegative(homeScore, awayScore int) error {
	if homeScore < 0 {
		return matches.OutOfRange(matches.FieldHomeScore)
	}
	if awayScore < 0 {
		return matches.OutOfRange(matches.FieldAwayScore)
	}
	return nil
}
