package variable

// Kind is the closed set of variable kinds the spec's data model names
// (spec §3 "Variable kinds"). Dispatch on Kind happens through Impl, never
// a type switch over a sealed interface hierarchy — the vtable-like
// translation called for in the spec's Design Notes (§9).
type Kind int

const (
	KindQSS1 Kind = iota
	KindQSS2
	KindQSS3
	KindLIQSS1
	KindLIQSS2
	KindInput
	KindDiscreteReal
	KindDiscreteInteger
	KindDiscreteBoolean
	KindZeroCrossing
)

func (k Kind) String() string {
	switch k {
	case KindQSS1:
		return "QSS1"
	case KindQSS2:
		return "QSS2"
	case KindQSS3:
		return "QSS3"
	case KindLIQSS1:
		return "LIQSS1"
	case KindLIQSS2:
		return "LIQSS2"
	case KindInput:
		return "Input"
	case KindDiscreteReal:
		return "DiscreteReal"
	case KindDiscreteInteger:
		return "DiscreteInteger"
	case KindDiscreteBoolean:
		return "DiscreteBoolean"
	case KindZeroCrossing:
		return "ZeroCrossing"
	default:
		return "Unknown"
	}
}

// Order returns the QSS method order (1, 2, or 3) for continuous kinds,
// and 0 for kinds with no polynomial order of their own (discrete/input
// variables report the order of their own representation separately via
// Impl.Order).
func (k Kind) Order() int {
	switch k {
	case KindQSS1, KindLIQSS1:
		return 1
	case KindQSS2, KindLIQSS2:
		return 2
	case KindQSS3:
		return 3
	default:
		return 0
	}
}

// IsLIQSS reports whether k is one of the hysteretic self-observer kinds.
func (k Kind) IsLIQSS() bool { return k == KindLIQSS1 || k == KindLIQSS2 }

// IsDiscrete reports whether k is piecewise-constant, updated only by
// handler events.
func (k Kind) IsDiscrete() bool {
	return k == KindDiscreteReal || k == KindDiscreteInteger || k == KindDiscreteBoolean
}
