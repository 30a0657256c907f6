/*
Package calculator holds the domain model for the savings calculator shown on
the marketing site. Visitors describe their business (headcount, search time,
hourly cost, document volume) and get back the projected savings, the matching
subscription tier and the payback period.

The numbers behind the model are sales assumptions, not calibrated research;
every constant that drives them is named and overridable so the assumptions
stay visible and testable.
*/
package calculator

import (
	"fmt"

	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/docsense/docsense/internal/types"
	"github.com/shopspring/decimal"
)

// Input bounds. Values outside these ranges are rejected, never clamped: a
// silently adjusted input would produce a business case the visitor did not
// ask for.
const (
	MinEmployeeCount = 5
	MaxEmployeeCount = 2000

	MinHourlyRateCHF = 20
	MaxHourlyRateCHF = 300

	MinDocumentVolume = 100
	MaxDocumentVolume = 100000
)

// Daily search-hour bounds, in hours per employee per day.
var (
	MinDailySearchHours = decimal.NewFromFloat(0.5)
	MaxDailySearchHours = decimal.NewFromFloat(4.0)
)

// Input describes a visitor's business. Immutable per calculation.
type Input struct {
	// EmployeeCount is the number of employees who search documents.
	EmployeeCount int `json:"employee_count"`

	// DailySearchHours is the time each employee spends searching documents
	// per day, in hours.
	DailySearchHours decimal.Decimal `json:"daily_search_hours"`

	// HourlyRateCHF is the fully loaded hourly cost of an employee, in CHF.
	HourlyRateCHF int `json:"hourly_rate_chf"`

	// DocumentVolume is the number of documents the business manages.
	DocumentVolume int `json:"document_volume"`
}

// Validate checks every field against its documented range. All violations
// are collected and reported together so the caller can surface them in one
// response.
func (i Input) Validate() error {
	violations := map[string]any{}

	if i.EmployeeCount < MinEmployeeCount || i.EmployeeCount > MaxEmployeeCount {
		violations["employee_count"] = fmt.Sprintf(
			"must be between %d and %d, got %d", MinEmployeeCount, MaxEmployeeCount, i.EmployeeCount)
	}
	if i.DailySearchHours.LessThan(MinDailySearchHours) || i.DailySearchHours.GreaterThan(MaxDailySearchHours) {
		violations["daily_search_hours"] = fmt.Sprintf(
			"must be between %s and %s, got %s", MinDailySearchHours, MaxDailySearchHours, i.DailySearchHours)
	}
	if i.HourlyRateCHF < MinHourlyRateCHF || i.HourlyRateCHF > MaxHourlyRateCHF {
		violations["hourly_rate_chf"] = fmt.Sprintf(
			"must be between %d and %d, got %d", MinHourlyRateCHF, MaxHourlyRateCHF, i.HourlyRateCHF)
	}
	if i.DocumentVolume < MinDocumentVolume || i.DocumentVolume > MaxDocumentVolume {
		violations["document_volume"] = fmt.Sprintf(
			"must be between %d and %d, got %d", MinDocumentVolume, MaxDocumentVolume, i.DocumentVolume)
	}

	if len(violations) > 0 {
		return ierr.NewError("calculator input out of range").
			WithHint("One or more calculator inputs are outside their allowed range").
			WithReportableDetails(violations).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Result is the derived business case. It is a pure function of Input and the
// calculator assumptions; nothing here is persisted.
type Result struct {
	// HoursSavedPerMonth is the total hours saved across all employees,
	// rounded for display.
	HoursSavedPerMonth int `json:"hours_saved_per_month"`

	// MonthlySavingsCHF and YearlySavingsCHF are the gross savings before
	// subscription cost.
	MonthlySavingsCHF int `json:"monthly_savings_chf"`
	YearlySavingsCHF  int `json:"yearly_savings_chf"`

	// SubscriptionTier is the pricing bracket matching the business size.
	SubscriptionTier types.SubscriptionTier `json:"subscription_tier"`

	// MonthlySubscriptionCostCHF is the selected tier's price.
	MonthlySubscriptionCostCHF int `json:"monthly_subscription_cost_chf"`

	// Net savings after subscription cost. May be negative.
	NetMonthlySavingsCHF int `json:"net_monthly_savings_chf"`
	NetYearlySavingsCHF  int `json:"net_yearly_savings_chf"`

	// ROIPercent is net yearly savings over yearly subscription cost, as a
	// rounded percentage. Zero when the yearly cost is zero.
	ROIPercent int `json:"roi_percent"`

	// PaybackMonths is the months until cumulative savings cover the
	// subscription, floored at 1.0. Nil when monthly savings are not
	// positive: payback is then undefined, not "one month".
	PaybackMonths *decimal.Decimal `json:"payback_months,omitempty"`
}
