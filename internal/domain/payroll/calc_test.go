package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyHours(t *testing.T) {
	assert.Equal(t, "2.00", HourlyHours(7200, 0).StringFixed(2))
	assert.Equal(t, "4.00", HourlyHours(0, 14400).StringFixed(2))
	assert.Equal(t, "6.00", HourlyHours(7200, 14400).StringFixed(2))
	assert.Equal(t, "0.25", HourlyHours(900, 0).StringFixed(2))
}

func TestHourlyPay(t *testing.T) {
	gross, net := HourlyPay(decimal.NewFromInt(2), decimal.NewFromInt(100))
	assert.Equal(t, "200.00", gross.StringFixed(2))
	assert.True(t, net.Equal(gross))

	gross, _ = HourlyPay(HourlyHours(5000, 0), decimal.NewFromFloat(12.5))
	// 5000s = 1.3888...h at 12.50 -> 17.36 after rounding.
	assert.Equal(t, "17.36", gross.StringFixed(2))
}

func TestParsePeriod(t *testing.T) {
	start, end, err := ParsePeriod("2026-05")
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", start.Format("2006-01-02"))
	assert.Equal(t, "2026-05-31", end.Format("2006-01-02"))

	_, _, err = ParsePeriod("May 2026")
	require.ErrorIs(t, err, ErrInvalidPeriodKey)
}
