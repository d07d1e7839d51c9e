package oracle

import (
	"fmt"
	"time"
)

// InvalidRangeError reports malformed bounds passed to a time sampler.
type InvalidRangeError struct {
	Lo time.Time
	Hi time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid time range: lower bound %s is after upper bound %s",
		e.Lo.Format(time.RFC3339), e.Hi.Format(time.RFC3339))
}

// ExhaustionError reports that the unique value space for a kind ran out
// before the requested number of values could be produced.
type ExhaustionError struct {
	Kind     string
	Attempts int
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("unique value space exhausted for %q after %d attempts", e.Kind, e.Attempts)
}
