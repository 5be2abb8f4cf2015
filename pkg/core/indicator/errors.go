package indicator

import "errors"

// Domain errors. These are the only failure mode of the calculators:
// each one marks a mathematically undefined input, raised synchronously.
// There are no transient errors because there is no I/O.
//
// Direct calculator calls surface these to the caller. AnalyzeComplete
// treats them as "insufficient data for this indicator" and skips the
// indicator instead of propagating. That asymmetry is contractual.
var (
	ErrZeroRevenue                   = errors.New("revenue is zero")
	ErrZeroUnitCost                  = errors.New("unit cost is zero")
	ErrZeroAverageInventory          = errors.New("average inventory is zero")
	ErrNonPositiveContributionMargin = errors.New("contribution margin is zero or negative")
)
