package movement

import (
	"fmt"
	"regexp"
)

// Letters separated by single spaces, at least two words. The 10-30 length
// window is checked separately because Go's regexp has no lookahead.
var conceptPattern = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)+$`)

// ValidateConcept validates the free-text concept of a transfer: 10 to 30
// characters, letters and single interior spaces only, at least two words.
func ValidateConcept(raw string) (string, error) {
	if len(raw) < 10 || len(raw) > 30 {
		return "", fmt.Errorf("%w: length %d outside [10, 30]", ErrInvalidConcept, len(raw))
	}
	if !conceptPattern.MatchString(raw) {
		return "", fmt.Errorf("%w: %q", ErrInvalidConcept, raw)
	}
	return raw, nil
}
