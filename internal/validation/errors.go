package validation

import (
	"fmt"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
)

// Error describes why a request body was rejected. Field is a JSON pointer
// into the body and is empty when the problem is with the document itself.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap lets callers match the error with errors.Is(err, players.ErrInvalidInput).
func (e *Error) Unwrap() error {
	return players.ErrInvalidInput
}
