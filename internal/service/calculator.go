// Package service provides the business logic of the DocSense marketing-site
// backend.
package service

import (
	"context"

	"github.com/docsense/docsense/internal/domain/calculator"
	"github.com/docsense/docsense/internal/domain/plan"
	"github.com/shopspring/decimal"
)

// CalculatorService computes the savings business case shown by the ROI
// calculator on the marketing site.
type CalculatorService interface {
	// Compute derives the full business case for a validated input. Pure:
	// no I/O, no clock, no state — identical input yields identical output.
	Compute(ctx context.Context, input calculator.Input) (*calculator.Result, error)
}

type calculatorService struct {
	ServiceParams

	// timeReduction is the configured TIME_REDUCTION_FACTOR.
	timeReduction decimal.Decimal
}

// NewCalculatorService creates a new calculator service. The time-reduction
// factor comes from configuration, falling back to the documented default.
func NewCalculatorService(params ServiceParams) CalculatorService {
	factor := calculator.DefaultTimeReductionFactor
	if params.Config != nil && params.Config.Calculator.TimeReductionFactor > 0 {
		factor = decimal.NewFromFloat(params.Config.Calculator.TimeReductionFactor)
	}
	return &calculatorService{
		ServiceParams: params,
		timeReduction: factor,
	}
}

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Compute implements the savings model:
//
//	baseline  = daily search hours * workdays/week * weeks/month
//	saved     = baseline * time-reduction factor * employees
//	savings   = saved hours * hourly rate
//
// Full precision is carried through the chain; each output field is rounded
// exactly once, and the net figures are derived from the already-rounded
// outputs so the published identities (net yearly = yearly - 12 * cost, ROI =
// net yearly / yearly cost) hold exactly on the integers clients see.
func (s *calculatorService) Compute(ctx context.Context, input calculator.Input) (*calculator.Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	baseline := input.DailySearchHours.
		Mul(calculator.WorkdaysPerWeek).
		Mul(calculator.WeeksPerMonth)
	savedPerEmployee := baseline.Mul(s.timeReduction)
	totalHoursSaved := savedPerEmployee.Mul(decimal.NewFromInt(int64(input.EmployeeCount)))

	monthlySavings := totalHoursSaved.Mul(decimal.NewFromInt(int64(input.HourlyRateCHF)))
	yearlySavings := monthlySavings.Mul(twelve)

	tier := plan.SelectTier(input.EmployeeCount, input.DocumentVolume)
	monthlyCost := tier.MonthlyPriceCHF
	yearlyCost := monthlyCost * 12

	monthlySavingsCHF := int(monthlySavings.Round(0).IntPart())
	yearlySavingsCHF := int(yearlySavings.Round(0).IntPart())
	netMonthlyCHF := monthlySavingsCHF - monthlyCost
	netYearlyCHF := yearlySavingsCHF - yearlyCost

	roiPercent := 0
	if yearlyCost > 0 {
		roiPercent = int(decimal.NewFromInt(int64(netYearlyCHF)).
			Div(decimal.NewFromInt(int64(yearlyCost))).
			Mul(hundred).
			Round(0).
			IntPart())
	}

	// Payback is undefined when there is nothing to pay the subscription
	// back from; nil makes that explicit instead of clamping to a month.
	var payback *decimal.Decimal
	if monthlySavings.IsPositive() {
		p := decimal.NewFromInt(int64(monthlyCost)).Div(monthlySavings)
		if p.LessThan(calculator.MinPaybackMonths) {
			p = calculator.MinPaybackMonths
		}
		p = p.Round(1)
		payback = &p
	}

	result := &calculator.Result{
		HoursSavedPerMonth:         int(totalHoursSaved.Round(0).IntPart()),
		MonthlySavingsCHF:          monthlySavingsCHF,
		YearlySavingsCHF:           yearlySavingsCHF,
		SubscriptionTier:           tier.Tier,
		MonthlySubscriptionCostCHF: monthlyCost,
		NetMonthlySavingsCHF:       netMonthlyCHF,
		NetYearlySavingsCHF:        netYearlyCHF,
		ROIPercent:                 roiPercent,
		PaybackMonths:              payback,
	}

	s.Logger.Debugw("computed savings",
		"employee_count", input.EmployeeCount,
		"document_volume", input.DocumentVolume,
		"tier", result.SubscriptionTier,
		"net_yearly_savings_chf", result.NetYearlySavingsCHF,
	)
	return result, nil
}
