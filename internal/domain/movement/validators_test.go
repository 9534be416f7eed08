package movement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConcept(t *testing.T) {
	tests := []struct {
		name    string
		concept string
		wantErr bool
	}{
		{"valid three words", "valid concept here", false},
		{"valid two words", "rent payment", false},
		{"exactly ten chars", "pay my dog", false},
		{"exactly thirty chars", "abcdefghij abcdefghij abcdefgh", false},
		{"nine chars", "pay a dog", true},
		{"thirty one chars", "abcdefghij abcdefghij abcdefghi", true},
		{"single word fifteen chars", "internationaliz", true},
		{"digits", "payment 4 rent", true},
		{"double interior space", "payment  for rent", true},
		{"leading space", " payment for rent", true},
		{"trailing space", "payment for rent ", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateConcept(tt.concept)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConcept)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.concept, got)
			}
		})
	}
}

func TestParseTransferType(t *testing.T) {
	tests := []struct {
		raw     string
		want    TransferType
		wantErr bool
	}{
		{"ORDINARY", TransferTypeOrdinary, false},
		{"IMMEDIATE", TransferTypeImmediate, false},
		{"URGENT", TransferTypeUrgent, false},
		{"ordinary", TransferTypeOrdinary, false},
		{"Urgent", TransferTypeUrgent, false},
		{"INMEDIATE", "", true},
		{"EXPRESS", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTransferType(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidType)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValidateTransferDate(t *testing.T) {
	now := time.Date(2030, time.June, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"today", "15/06/2030", false},
		{"tomorrow", "16/06/2030", false},
		{"yesterday", "14/06/2030", true},
		{"last day of window", "31/12/2050", false},
		{"past window", "01/01/2051", true},
		{"not a calendar date", "31/04/2031", true},
		{"day zero", "00/06/2031", true},
		{"wrong layout", "2031-06-15", true},
		{"missing leading zeros", "1/6/2031", true},
		{"garbage", "soon", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateTransferDateAt(tt.date, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.date, got)
			}
		})
	}
}

func TestValidateTransferDate_WindowLowerBound(t *testing.T) {
	// A future date below the 2025 window is rejected even though it is
	// after "today".
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, err := validateTransferDateAt("01/06/2024", now)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestValidateTransferAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"10.00", "10.00", false},
		{"10", "10.00", false},
		{"10000.00", "10000.00", false},
		{"440.5", "440.50", false},
		{"9.99", "", true},
		{"10000.01", "", true},
		{"12.345", "", true},
		{"-20.00", "", true},
		{"ten euros", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ValidateTransferAmount(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
			} else {
				require.NoError(t, err)
				assert.True(t, decimal.RequireFromString(tt.want).Equal(got))
			}
		})
	}
}

func TestValidateDepositAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"valid", "EUR 3000.00", "3000.00", false},
		{"valid small", "EUR 0001.50", "1.50", false},
		{"zero", "EUR 0000.00", "", true},
		{"no currency", "3000.00", "", true},
		{"wrong currency", "USD 3000.00", "", true},
		{"three integer digits", "EUR 300.00", "", true},
		{"five integer digits", "EUR 30000.00", "", true},
		{"one decimal digit", "EUR 3000.0", "", true},
		{"no space", "EUR3000.00", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateDepositAmount(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDepositAmount)
			} else {
				require.NoError(t, err)
				assert.True(t, decimal.RequireFromString(tt.want).Equal(got))
			}
		})
	}
}
