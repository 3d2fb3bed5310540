package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{390, 30},
		{-30, 330},
		{-720, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeDegrees(tt.in), 1e-9, "in=%v", tt.in)
	}
}

func TestClampAndRound(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 1, 10))
	assert.Equal(t, 10, Clamp(11, 1, 10))
	assert.Equal(t, 0.5, Clamp(0.5, 0.1, 1.0))
	assert.Equal(t, 0.7, RoundTo(0.7000000000000001, 1))
	assert.Equal(t, 3, Abs(-3))
}
