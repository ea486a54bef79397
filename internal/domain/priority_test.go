package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name      string
		code      int
		expected  Priority
		expectErr bool
	}{
		{"low", 1, PriorityLow, false},
		{"medium", 2, PriorityMedium, false},
		{"high", 3, PriorityHigh, false},
		{"zero", 0, 0, true},
		{"above range", 4, 0, true},
		{"negative", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePriority(tt.code)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
			assert.Equal(t, tt.code, p.Code())
		})
	}
}

func TestPriorityFromChoice(t *testing.T) {
	assert.Equal(t, PriorityLow, PriorityFromChoice(1))
	assert.Equal(t, PriorityMedium, PriorityFromChoice(2))
	assert.Equal(t, PriorityHigh, PriorityFromChoice(3))
	assert.Equal(t, PriorityLow, PriorityFromChoice(0))
	assert.Equal(t, PriorityLow, PriorityFromChoice(9))
}

func TestPriority_String(t *testing.T) {
	assert.Equal(t, "Low", PriorityLow.String())
	assert.Equal(t, "Medium", PriorityMedium.String())
	assert.Equal(t, "High", PriorityHigh.String())
	assert.Equal(t, "Priority(7)", Priority(7).String())
}

func TestPriorities(t *testing.T) {
	for i, p := range Priorities {
		assert.True(t, p.IsValid())
		assert.Equal(t, i+1, p.Code())
	}
	assert.False(t, Priority(0).IsValid())
}
