package dto

import (
	"github.com/docsense/docsense/internal/domain/calculator"
	"github.com/docsense/docsense/internal/i18n"
	"github.com/docsense/docsense/internal/types"
	"github.com/shopspring/decimal"
)

// CalculateSavingsRequest is the payload of POST /v1/calculator/savings.
// Range checks live on the domain model; the tags only catch missing fields.
type CalculateSavingsRequest struct {
	// EmployeeCount is the number of employees who search documents.
	EmployeeCount int `json:"employee_count" validate:"required"`

	// DailySearchHours is the search time per employee per day, in hours.
	DailySearchHours decimal.Decimal `json:"daily_search_hours" validate:"required"`

	// HourlyRateCHF is the fully loaded hourly cost of an employee.
	HourlyRateCHF int `json:"hourly_rate_chf" validate:"required"`

	// DocumentVolume is the number of documents the business manages.
	DocumentVolume int `json:"document_volume" validate:"required"`

	// Locale selects the language of the display strings. Optional;
	// defaults to the site's primary language.
	Locale string `json:"locale,omitempty"`

	// IncludeDisplay requests preformatted display strings alongside the
	// raw numbers.
	IncludeDisplay bool `json:"include_display,omitempty"`
}

// ToInput converts the request to the domain input.
func (r *CalculateSavingsRequest) ToInput() calculator.Input {
	return calculator.Input{
		EmployeeCount:    r.EmployeeCount,
		DailySearchHours: r.DailySearchHours,
		HourlyRateCHF:    r.HourlyRateCHF,
		DocumentVolume:   r.DocumentVolume,
	}
}

// SavingsDisplay carries the localized, preformatted strings the site renders
// directly.
type SavingsDisplay struct {
	HoursSavedPerMonth      string `json:"hours_saved_per_month"`
	MonthlySavings          string `json:"monthly_savings"`
	YearlySavings           string `json:"yearly_savings"`
	NetMonthlySavings       string `json:"net_monthly_savings"`
	NetYearlySavings        string `json:"net_yearly_savings"`
	MonthlySubscriptionCost string `json:"monthly_subscription_cost"`
	ROI                     string `json:"roi"`
	PaybackPeriod           string `json:"payback_period"`
}

// CalculateSavingsResponse is the response of POST /v1/calculator/savings.
type CalculateSavingsResponse struct {
	calculator.Result
	Display *SavingsDisplay `json:"display,omitempty"`
}

// NewCalculateSavingsResponse builds the response, attaching display strings
// when requested.
func NewCalculateSavingsResponse(result *calculator.Result, locale types.Locale, includeDisplay bool) *CalculateSavingsResponse {
	resp := &CalculateSavingsResponse{Result: *result}
	if !includeDisplay {
		return resp
	}

	var paybackMonths *float64
	if result.PaybackMonths != nil {
		f, _ := result.PaybackMonths.Float64()
		paybackMonths = &f
	}

	resp.Display = &SavingsDisplay{
		HoursSavedPerMonth:      i18n.FormatHours(locale, result.HoursSavedPerMonth),
		MonthlySavings:          i18n.FormatCHF(locale, result.MonthlySavingsCHF),
		YearlySavings:           i18n.FormatCHF(locale, result.YearlySavingsCHF),
		NetMonthlySavings:       i18n.FormatCHF(locale, result.NetMonthlySavingsCHF),
		NetYearlySavings:        i18n.FormatCHF(locale, result.NetYearlySavingsCHF),
		MonthlySubscriptionCost: i18n.FormatCHF(locale, result.MonthlySubscriptionCostCHF),
		ROI:                     i18n.FormatPercent(locale, result.ROIPercent),
		PaybackPeriod:           i18n.FormatMonths(locale, paybackMonths),
	}
	return resp
}
