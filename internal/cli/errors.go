package cli

import (
	"errors"
	"fmt"
	"math"
)

// errInvalidFlag is returned for flag values a command cannot use as given.
var errInvalidFlag = errors.New("cli: invalid flag value")

// intFlag converts a float flag for int element kinds. Fractional, non-finite
// and out-of-range values are rejected rather than truncated.
func intFlag(name string, x float64) (int64, error) {
	if x != math.Trunc(x) || x < math.MinInt64 || x >= -math.MinInt64 {
		return 0, fmt.Errorf("--%s %v is not an integer (element: int): %w", name, x, errInvalidFlag)
	}
	return int64(x), nil
}
