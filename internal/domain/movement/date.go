package movement

import (
	"fmt"
	"regexp"
	"time"
)

const dateLayout = "02/01/2006"

var datePattern = regexp.MustCompile(`^([0-2][0-9]|3[01])/(0[0-9]|1[0-2])/[0-9]{4}$`)

// Value dates are only accepted inside this year window.
const (
	minDateYear = 2025
	maxDateYear = 2050
)

// ValidateTransferDate validates a transfer value date: literal DD/MM/YYYY,
// a real calendar date, not before the current UTC date, and with a year in
// [2025, 2050]. Returns the date in its literal form.
func ValidateTransferDate(raw string) (string, error) {
	return validateTransferDateAt(raw, time.Now().UTC())
}

func validateTransferDateAt(raw string, now time.Time) (string, error) {
	if !datePattern.MatchString(raw) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return "", fmt.Errorf("%w: %s is before today", ErrInvalidDate, raw)
	}

	if date.Year() < minDateYear || date.Year() > maxDateYear {
		return "", fmt.Errorf("%w: year %d outside [%d, %d]", ErrInvalidDate, date.Year(), minDateYear, maxDateYear)
	}

	return raw, nil
}
