package squeue

import "github.com/quantizedstate/qss/qssmath"

// Time is a real simulation instant. qssmath.Infinity denotes "never".
type Time = float64

// Infinity is the distinguished unbounded time value (spec §3).
const Infinity = qssmath.Infinity

// SuperdenseTime is the pair (T, I): real time plus an integer index that
// strictly orders events sharing the same real time (spec §3, §4.1).
type SuperdenseTime struct {
	T Time
	I int64
}

// Before reports whether st precedes other in lexicographic (T, I) order.
func (st SuperdenseTime) Before(other SuperdenseTime) bool {
	if st.T != other.T {
		return st.T < other.T
	}
	return st.I < other.I
}

// Equal reports exact (T, I) equality.
func (st SuperdenseTime) Equal(other SuperdenseTime) bool {
	return st.T == other.T && st.I == other.I
}
