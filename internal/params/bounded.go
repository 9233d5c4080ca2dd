package params

import (
	"errors"
	"fmt"
)

// String length limits, exclusive: a value is valid only if it is
// strictly shorter than its limit. These match the visualizer's fixed
// buffer sizes, so anything longer would be rejected there as well.
const (
	ColormapLimit = 50
	VarLimit      = 5
	ExprLimit     = 100
)

// ErrTooLong reports a string field over its length limit. Load drops
// the offending field or entry silently; the editor refuses input past
// the limit so Save never produces one.
var ErrTooLong = errors.New("value too long")

// CheckLen validates s against an exclusive byte-length limit.
func CheckLen(s string, limit int) error {
	if len(s) >= limit {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLong, len(s), limit)
	}
	return nil
}
