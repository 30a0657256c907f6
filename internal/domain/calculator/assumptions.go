package calculator

import "github.com/shopspring/decimal"

// Model assumptions. These drive every number the calculator shows and were
// set by sales, not measured; keep them named and overridable so they can be
// recalibrated without touching the formulas.
var (
	// DefaultTimeReductionFactor is the asserted fraction of document-search
	// time the product eliminates. It dominates the output: at 0.60 the
	// calculator produces ROI figures in the thousands of percent for
	// ordinary inputs. Overridable via calculator.time_reduction_factor.
	DefaultTimeReductionFactor = decimal.NewFromFloat(0.60)

	// WorkdaysPerWeek and WeeksPerMonth convert daily search time into a
	// monthly baseline.
	WorkdaysPerWeek = decimal.NewFromInt(5)
	WeeksPerMonth   = decimal.NewFromFloat(4.33)

	// MinPaybackMonths is the smallest payback period the site displays. A
	// computed period below one month is floored, never hidden.
	MinPaybackMonths = decimal.NewFromInt(1)
)
