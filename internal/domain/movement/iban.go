package movement

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Spanish IBAN: country code followed by 2 check digits and 20 BBAN digits.
var ibanPattern = regexp.MustCompile(`^ES\d{22}$`)

var mod97 = big.NewInt(97)

// ValidateIBAN normalizes and validates a Spanish IBAN. Normalization strips
// spaces and upper-cases; the check digits are verified with the ISO 13616
// procedure: move the first four characters to the end, substitute letters
// with A=10..Z=35, and the resulting numeral reduced modulo 97 must equal 1.
// Returns the normalized IBAN.
func ValidateIBAN(raw string) (string, error) {
	iban := strings.ToUpper(strings.ReplaceAll(raw, " ", ""))
	if !ibanPattern.MatchString(iban) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	rearranged := iban[4:] + iban[:4]
	var numeral strings.Builder
	for _, c := range rearranged {
		if c >= 'A' && c <= 'Z' {
			fmt.Fprintf(&numeral, "%d", c-'A'+10)
		} else {
			numeral.WriteRune(c)
		}
	}

	n, ok := new(big.Int).SetString(numeral.String(), 10)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	if new(big.Int).Mod(n, mod97).Int64() != 1 {
		return "", fmt.Errorf("%w: %s", ErrInvalidChecksum, iban)
	}

	return iban, nil
}
