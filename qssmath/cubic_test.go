package qssmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinPositiveRootCubic(t *testing.T) {
	// x^3 - 1 = 0 has one real root at x=1.
	assert.InDelta(t, 1.0, MinPositiveRootCubic(1, 0, 0, -1), 1e-6)

	// Degenerate to quadratic when a==0.
	assert.InDelta(t, 2.0, MinPositiveRootCubic(0, 0, 2, -4), 1e-9)
}

func TestMinRootCubicUpperLowerDegeneracy(t *testing.T) {
	// a==0 degenerates to the quadratic upper/lower solvers.
	assert.InDelta(t, MinRootQuadraticUpper(1, 1, -1), MinRootCubicUpper(0, 1, 1, -1), 1e-9)
	assert.InDelta(t, MinRootQuadraticLower(-1, -1, 1), MinRootCubicLower(0, -1, -1, 1), 1e-9)
}

func TestSignsAndClip(t *testing.T) {
	assert.Equal(t, -1.0, Sign(-3.0))
	assert.Equal(t, 1.0, Sign(0.0))
	assert.Equal(t, 0.0, Signum(0.0))
	assert.Equal(t, -1.0, Signum(-0.5))
	assert.Equal(t, 1.0, Signum(0.5))
	assert.Equal(t, 2.0, Clip(5.0, -1.0, 2.0))
	assert.Equal(t, -1.0, Clip(-5.0, -1.0, 2.0))
	assert.Equal(t, 0.5, Clip(0.5, -1.0, 2.0))
}
