package variable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolyEval(t *testing.T) {
	p := Poly{T: 1.0, C: [4]float64{2.0, 3.0, 0.5, 0.1}}
	// at t=1 (dt=0): value 2.0
	assert.InDelta(t, 2.0, p.Eval(1.0), 1e-12)
	// at dt=2: 2 + 3*2 + 0.5*4 + 0.1*8 = 2+6+2+0.8 = 10.8
	assert.InDelta(t, 10.8, p.Eval(3.0), 1e-9)
}

func TestPolyDerivatives(t *testing.T) {
	p := Poly{T: 0.0, C: [4]float64{0, 1.0, 2.0, 3.0}} // x=t+2t^2+3t^3
	// x' = 1 + 4t + 9t^2; at t=1 -> 1+4+9=14
	assert.InDelta(t, 14.0, p.Eval1(1.0), 1e-9)
	// x'' = 4 + 18t; at t=1 -> 22
	assert.InDelta(t, 22.0, p.Eval2(1.0), 1e-9)
	// x''' = 18 (constant)
	assert.InDelta(t, 18.0, p.Eval3(1.0), 1e-9)
}

func TestKindOrderAndPredicates(t *testing.T) {
	assert.Equal(t, 1, KindQSS1.Order())
	assert.Equal(t, 2, KindQSS2.Order())
	assert.Equal(t, 3, KindQSS3.Order())
	assert.True(t, KindLIQSS1.IsLIQSS())
	assert.False(t, KindQSS1.IsLIQSS())
	assert.True(t, KindDiscreteBoolean.IsDiscrete())
}

func TestCrossingClassification(t *testing.T) {
	assert.Equal(t, DnPN, classifyCrossing(1, -1))
	assert.Equal(t, UpNP, classifyCrossing(-1, 1))
	assert.Equal(t, Flat, classifyCrossing(0, 0))
	assert.True(t, Dn.Steady())
	assert.True(t, Up.Steady())
	assert.False(t, DnPN.Steady())
}
