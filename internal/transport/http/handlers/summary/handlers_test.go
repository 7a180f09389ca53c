package summaryhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		wantErr  bool
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "plain dates",
			from:     "2026-05-01",
			to:       "2026-05-31",
			wantFrom: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339 timestamps",
			from:     "2026-05-01T00:00:00Z",
			to:       "2026-05-02T00:00:00Z",
			wantFrom: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "missing from",
			from:    "",
			to:      "2026-05-31",
			wantErr: true,
		},
		{
			name:    "missing to",
			from:    "2026-05-01",
			to:      "",
			wantErr: true,
		},
		{
			name:    "garbage",
			from:    "not-a-date",
			to:      "2026-05-31",
			wantErr: true,
		},
		{
			name:    "inverted range",
			from:    "2026-05-31",
			to:      "2026-05-01",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			from, to, err := parseRange(tc.from, tc.to)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, from.Equal(tc.wantFrom), "from: got %v", from)
			assert.True(t, to.Equal(tc.wantTo), "to: got %v", to)
		})
	}
}
