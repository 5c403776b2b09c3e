package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStripeInterval(t *testing.T) {
	tests := []struct {
		name          string
		interval      string
		wantInterval  string
		wantIntervals int64
	}{
		{"day", "day", "day", 1},
		{"week", "week", "week", 1},
		{"month", "month", "month", 1},
		{"semester maps to six months", "semester", "month", 6},
		{"year", "year", "year", 1},
		{"unknown falls back to month", "quarter", "month", 1},
		{"empty falls back to month", "", "month", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, count := stripeInterval(tt.interval)
			assert.Equal(t, tt.wantInterval, interval)
			assert.Equal(t, tt.wantIntervals, count)
		})
	}
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   int64
	}{
		{"whole euros", "29", 2900},
		{"with cents", "29.99", 2999},
		{"zero", "0", 0},
		{"sub-cent rounds", "9.999", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, minorUnits(amount))
		})
	}
}
