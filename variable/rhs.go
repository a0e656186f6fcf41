package variable

import "github.com/quantizedstate/qss/rhs"

// Function and LIQSSProbe are re-exported aliases of the rhs package's
// contracts, so model authors can write variable.Function without an
// extra import when they are already depending on this package.
type (
	Function   = rhs.Function
	LIQSSProbe = rhs.LIQSSProbe
	Branches   = rhs.Branches
)
