package pixfilter

import (
	"errors"
	"fmt"
	"math"
)

// Filter errors. Returned errors wrap one of these sentinels; test with
// errors.Is.
var (
	// ErrInvalidDimensions is returned when a buffer has non-positive width
	// or height, or its pixel slice length is not width*height*4.
	ErrInvalidDimensions = errors.New("pixfilter: invalid dimensions")

	// ErrInvalidParameter is returned when a filter parameter is outside the
	// filter's accepted domain.
	ErrInvalidParameter = errors.New("pixfilter: invalid parameter")
)

// paramError wraps ErrInvalidParameter with the parameter name and value.
func paramError(name string, v float64, reason string) error {
	return fmt.Errorf("%w: %s=%v: %s", ErrInvalidParameter, name, v, reason)
}

// checkFinite rejects NaN and infinite parameter values.
func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return paramError(name, v, "must be finite")
	}
	return nil
}
