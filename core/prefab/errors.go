package prefab

import (
	"errors"
	"fmt"
)

// ErrStructural is returned for malformed documents: missing trailing newline,
// missing marker lines, unparseable integer fields or unknown owners.
var ErrStructural = errors.New("structural parse error")

// ParseError describes a malformed block.
type ParseError struct {
	// Block is the zero based index of the block, -1 when the error is not tied to one.
	Block int
	// Reason is a short description of what is wrong.
	Reason string
}

func (e *ParseError) Error() string {
	if e.Block < 0 {
		return fmt.Sprintf("%s: %s", ErrStructural, e.Reason)
	}
	return fmt.Sprintf("%s: block %d: %s", ErrStructural, e.Block, e.Reason)
}

// Unwrap makes errors.Is(err, ErrStructural) hold for every ParseError.
func (e *ParseError) Unwrap() error {
	return ErrStructural
}

func parseErrorf(block int, format string, args ...any) error {
	return &ParseError{Block: block, Reason: fmt.Sprintf(format, args...)}
}
