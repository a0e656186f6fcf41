package variable

import "github.com/quantizedstate/qss/squeue"

// clampStep clamps dt to [DtMin, DtMax], applying the deactivation
// relaxation of spec §3/§4.2.4: an infinite dt is replaced by DtInfRlx,
// which doubles on every consecutive deactivation (capped at half of
// Infinity) and resets to DtInf the moment a finite dt is computed again.
func (v *Variable) clampStep(dt squeue.Time) squeue.Time {
	if dt == squeue.Infinity {
		dt = v.nextRelaxedStep()
	} else {
		v.DtInfRlx = v.DtInf
	}
	if dt < v.DtMin {
		dt = v.DtMin
	}
	if v.DtMax > 0 && dt > v.DtMax {
		dt = v.DtMax
	}
	return dt
}

func (v *Variable) nextRelaxedStep() squeue.Time {
	d := v.DtInfRlx
	if d <= 0 || d == squeue.Infinity {
		d = v.DtInf
	}
	if d <= 0 || d == squeue.Infinity {
		d = squeue.Infinity / 2
	}
	v.DtInfRlx = d * 2
	if v.DtInfRlx > squeue.Infinity/2 {
		v.DtInfRlx = squeue.Infinity / 2
	}
	return d
}

// inflectionClamp applies the optional inflection-point clamp of spec
// §4.2.4: if sign(x1) != sign(x2), tE cannot pass the trajectory's
// inflection point tX - x1/(2*x2).
func inflectionClamp(tE, tX, x1, x2 float64) float64 {
	if x2 == 0 {
		return tE
	}
	s1, s2 := sign(x1), sign(x2)
	if s1 == 0 || s2 == 0 || s1 == s2 {
		return tE
	}
	infl := tX - x1/(2*x2)
	if infl < tE {
		return infl
	}
	return tE
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
