package qssmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinRootQuadratic(t *testing.T) {
	// x^2 - 1 = 0 -> roots -1, +1; smallest nonnegative root is 1.
	assert.InDelta(t, 1.0, MinRootQuadratic(1, 0, -1), 1e-9)

	// Linear: 2x - 4 = 0 -> x=2
	assert.InDelta(t, 2.0, MinRootQuadratic(0, 2, -4), 1e-9)

	// No admissible root: x^2 + 1 = 0
	assert.Equal(t, Infinity, MinRootQuadratic(1, 0, 1))

	// Constant zero: always "now"
	assert.Equal(t, 0.0, MinRootQuadratic(0, 0, 0))
}

func TestMinRootQuadraticLowerUpperPrecisionLoss(t *testing.T) {
	// c <= 0 means precision loss at the lower boundary: event is "now".
	assert.Equal(t, 0.0, MinRootQuadraticLower(-1, -1, 0))
	// c >= 0 means precision loss at the upper boundary.
	assert.Equal(t, 0.0, MinRootQuadraticUpper(1, 1, 0))
}

func TestMinRootQuadraticBoth(t *testing.T) {
	// Symmetric band around a straight line with negative slope: a=0,b=-1.
	r := MinRootQuadraticBoth(0, -1, 1, -1)
	assert.InDelta(t, 1.0, r, 1e-9)
}

func TestPeakMagQuadratic(t *testing.T) {
	assert.InDelta(t, math.Abs(-1.0), PeakMagQuadratic(1, 0, -1), 1e-9)
	assert.Equal(t, 5.0, PeakMagQuadratic(0, 0, 5))
	assert.Equal(t, Infinity, PeakMagQuadratic(0, 1, 5))
}
