package logfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateOffset(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		target   string
		earliest string
		latest   string
		expected int64
	}{
		{
			name:     "Midyear target interpolates proportionally",
			size:     365000,
			target:   "2024-07-01",
			earliest: "2024-01-01",
			latest:   "2024-12-31",
			expected: 182000, // day 182 of a 365-day span
		},
		{
			name:     "Target at lower boundary",
			size:     365000,
			target:   "2024-01-01",
			earliest: "2024-01-01",
			latest:   "2024-12-31",
			expected: 0,
		},
		{
			name:     "Target at upper boundary",
			size:     365000,
			target:   "2024-12-31",
			earliest: "2024-01-01",
			latest:   "2024-12-31",
			expected: 365000,
		},
		{
			name:     "Degenerate single-day range",
			size:     365000,
			target:   "2024-07-01",
			earliest: "2024-07-01",
			latest:   "2024-07-01",
			expected: 0,
		},
		{
			name:     "Target before range clamps to zero",
			size:     365000,
			target:   "2023-06-01",
			earliest: "2024-01-01",
			latest:   "2024-12-31",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bounds{Earliest: day(t, tt.earliest), Latest: day(t, tt.latest)}
			assert.Equal(t, tt.expected, EstimateOffset(tt.size, day(t, tt.target), b))
		})
	}
}
