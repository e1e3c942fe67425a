package matches

import (
	"errors"
	"fmt"
)

// Field names reported by validation errors.
const (
	FieldHomeTeam  = "homeTeam"
	FieldAwayTeam  = "awayTeam"
	FieldMatchID   = "matchId"
	FieldHomeScore = "homeScore"
	FieldAwayScore = "awayScore"
)

// NotFoundPrefix starts every not-found message.
const NotFoundPrefix = "Match not found. ID: "

// Error kinds. Use errors.Is against these to classify a scoreboard error.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
	ErrNotFound        = errors.New("not found")
)

// Error carries the kind of a scoreboard failure and the offending field.
type Error struct {
	Kind    error
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// InvalidArgument reports a bad caller-supplied value.
func InvalidArgument(field, message string) *Error {
	return &Error{Kind: ErrInvalidArgument, Field: field, Message: message}
}

// OutOfRange reports a numeric value outside its permitted range.
func OutOfRange(field string) *Error {
	return &Error{Kind: ErrOutOfRange, Field: field}
}

// NotFound reports an id with no active match.
func NotFound(id ID) *Error {
	return &Error{Kind: ErrNotFound, Field: FieldMatchID, Message: NotFoundPrefix + id.String()}
}

// AsError attempts to unwrap err into an *Error.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind sentinel of err, or nil when err is not a
// scoreboard error.
func KindOf(err error) error {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ErrInvalidArgument
	case errors.Is(err, ErrOutOfRange):
		return ErrOutOfRange
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	default:
		return nil
	}
}
