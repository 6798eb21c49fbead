package nn

import "errors"

// Failure kinds reported by Build and Forward. Call sites wrap these with
// context via fmt.Errorf and %w, so callers match them with errors.Is.
var (
	ErrInvalidShape      = errors.New("invalid network shape")
	ErrInvalidInputIDs   = errors.New("invalid input ids")
	ErrInputSizeMismatch = errors.New("input size mismatch")
)
