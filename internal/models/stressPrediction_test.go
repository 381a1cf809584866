package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStressLevel(t *testing.T) {
	tests := []struct {
		name        string
		label       string
		expected    StressLevel
		expectError bool
	}{
		{
			name:     "low stress literal",
			label:    "Низкий уровень стресса",
			expected: StressLevelLow,
		},
		{
			name:     "medium stress literal",
			label:    "Средний уровень стресса",
			expected: StressLevelMedium,
		},
		{
			name:     "high stress literal",
			label:    "Высокий уровень стресса",
			expected: StressLevelHigh,
		},
		{
			name:        "unknown label",
			label:       "Unknown",
			expectError: true,
		},
		{
			name:        "empty label",
			label:       "",
			expectError: true,
		},
		{
			name:        "english label is not part of the set",
			label:       "High stress level",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseStressLevel(tt.label)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.label, level.Label())
		})
	}
}

func TestStressLevels_ClosedSetOfThree(t *testing.T) {
	levels := StressLevels()

	assert.Len(t, levels, 3)
	for _, level := range levels {
		assert.True(t, level.Valid())
	}
}

func TestWorkerFeaturesRequest_InfoTime(t *testing.T) {
	request := WorkerFeaturesRequest{InfoDate: "2024-03-01 08:30:00"}

	parsed, err := request.InfoTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC), parsed)

	_, err = WorkerFeaturesRequest{InfoDate: "01.03.2024"}.InfoTime()
	assert.Error(t, err)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "workers", Worker{}.TableName())
	assert.Equal(t, "workers_info", WorkerInfo{}.TableName())
	assert.Equal(t, "stress_predictions", StressPrediction{}.TableName())
}
