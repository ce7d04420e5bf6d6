package players

import "errors"

var (
	// ErrNotFound means no record matched the identifier or squad number.
	ErrNotFound = errors.New("player not found")
	// ErrConflict means the squad number is already taken by another record.
	ErrConflict = errors.New("squad number already assigned")
	// ErrIDsExhausted means the largest identifier is already in use.
	ErrIDsExhausted = errors.New("player id space exhausted")
	// ErrInvalidInput means the request body is malformed or incomplete.
	ErrInvalidInput = errors.New("invalid player payload")
)
