package calculator

import (
	"encoding/json"
	"testing"

	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputValidate(t *testing.T) {
	valid := Input{
		EmployeeCount:    25,
		DailySearchHours: decimal.NewFromFloat(1.5),
		HourlyRateCHF:    95,
		DocumentVolume:   5000,
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"employees below minimum", func(i *Input) { i.EmployeeCount = 4 }, "employee_count"},
		{"employees above maximum", func(i *Input) { i.EmployeeCount = 2001 }, "employee_count"},
		{"zero employees", func(i *Input) { i.EmployeeCount = 0 }, "employee_count"},
		{"search hours below minimum", func(i *Input) { i.DailySearchHours = decimal.NewFromFloat(0.4) }, "daily_search_hours"},
		{"search hours above maximum", func(i *Input) { i.DailySearchHours = decimal.NewFromFloat(4.1) }, "daily_search_hours"},
		{"rate below minimum", func(i *Input) { i.HourlyRateCHF = 19 }, "hourly_rate_chf"},
		{"rate above maximum", func(i *Input) { i.HourlyRateCHF = 301 }, "hourly_rate_chf"},
		{"documents below minimum", func(i *Input) { i.DocumentVolume = 99 }, "document_volume"},
		{"documents above maximum", func(i *Input) { i.DocumentVolume = 100001 }, "document_volume"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)

			err := input.Validate()
			require.Error(t, err)
			assert.True(t, ierr.IsValidation(err))

			ie, ok := ierr.AsInternalError(err)
			require.True(t, ok)
			assert.Contains(t, ie.ReportableDetails, tc.field)
		})
	}
}

func TestInputValidateBoundariesInclusive(t *testing.T) {
	low := Input{
		EmployeeCount:    MinEmployeeCount,
		DailySearchHours: MinDailySearchHours,
		HourlyRateCHF:    MinHourlyRateCHF,
		DocumentVolume:   MinDocumentVolume,
	}
	assert.NoError(t, low.Validate())

	high := Input{
		EmployeeCount:    MaxEmployeeCount,
		DailySearchHours: MaxDailySearchHours,
		HourlyRateCHF:    MaxHourlyRateCHF,
		DocumentVolume:   MaxDocumentVolume,
	}
	assert.NoError(t, high.Validate())
}

// An undefined payback must disappear from the JSON entirely rather than
// show up as a misleading number.
func TestResultUndefinedPaybackOmitted(t *testing.T) {
	result := Result{MonthlySavingsCHF: 0}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "payback_months")

	one := decimal.NewFromInt(1)
	result.PaybackMonths = &one
	data, err = json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"payback_months":"1"`)
}
