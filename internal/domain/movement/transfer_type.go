package movement

import (
	"fmt"
	"strings"
)

// TransferType defines the closed set of transfer modalities
type TransferType string

const (
	TransferTypeOrdinary  TransferType = "ORDINARY"
	TransferTypeImmediate TransferType = "IMMEDIATE"
	TransferTypeUrgent    TransferType = "URGENT"
)

// ParseTransferType matches the raw value, case-insensitively, against the
// transfer type enumeration and returns the canonical upper-case form.
func ParseTransferType(raw string) (TransferType, error) {
	switch t := TransferType(strings.ToUpper(raw)); t {
	case TransferTypeOrdinary, TransferTypeImmediate, TransferTypeUrgent:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidType, raw)
	}
}
