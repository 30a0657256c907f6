package service

import (
	"testing"

	"github.com/docsense/docsense/internal/domain/calculator"
	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/docsense/docsense/internal/testutil"
	"github.com/docsense/docsense/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CalculatorServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CalculatorService
	params  ServiceParams
}

func TestCalculatorService(t *testing.T) {
	suite.Run(t, new(CalculatorServiceSuite))
}

func (s *CalculatorServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.params = ServiceParams{
		Logger:   s.GetLogger(),
		Config:   s.GetConfig(),
		Cache:    s.GetCache(),
		LeadRepo: s.GetLeadStore(),
	}
	s.service = NewCalculatorService(s.params)
}

func validInput() calculator.Input {
	return calculator.Input{
		EmployeeCount:    25,
		DailySearchHours: decimal.NewFromFloat(1.5),
		HourlyRateCHF:    95,
		DocumentVolume:   5000,
	}
}

func (s *CalculatorServiceSuite) TestComputeReferenceScenario() {
	// 25 employees x 1.5h/day: baseline 32.475 h/month, 60% eliminated,
	// 487.125 h saved across the team, at CHF 95/h.
	result, err := s.service.Compute(s.GetContext(), validInput())
	s.NoError(err)
	s.NotNil(result)

	s.Equal(487, result.HoursSavedPerMonth)
	s.Equal(46277, result.MonthlySavingsCHF)
	s.Equal(555323, result.YearlySavingsCHF)
	s.Equal(types.SubscriptionTierProfessional, result.SubscriptionTier)
	s.Equal(599, result.MonthlySubscriptionCostCHF)
	s.Equal(45678, result.NetMonthlySavingsCHF)
	s.Equal(548135, result.NetYearlySavingsCHF)
	s.Equal(7626, result.ROIPercent)

	s.Require().NotNil(result.PaybackMonths)
	s.True(result.PaybackMonths.Equal(decimal.NewFromInt(1)),
		"payback under a month must floor to 1.0, got %s", result.PaybackMonths)
}

func (s *CalculatorServiceSuite) TestComputeIsDeterministic() {
	first, err := s.service.Compute(s.GetContext(), validInput())
	s.NoError(err)
	second, err := s.service.Compute(s.GetContext(), validInput())
	s.NoError(err)
	s.Equal(first, second)
}

func (s *CalculatorServiceSuite) TestComputeInvariants() {
	inputs := []calculator.Input{
		{EmployeeCount: 5, DailySearchHours: decimal.NewFromFloat(0.5), HourlyRateCHF: 20, DocumentVolume: 100},
		{EmployeeCount: 10, DailySearchHours: decimal.NewFromFloat(1.0), HourlyRateCHF: 50, DocumentVolume: 5000},
		{EmployeeCount: 25, DailySearchHours: decimal.NewFromFloat(1.5), HourlyRateCHF: 95, DocumentVolume: 5000},
		{EmployeeCount: 200, DailySearchHours: decimal.NewFromFloat(2.5), HourlyRateCHF: 150, DocumentVolume: 80000},
		{EmployeeCount: 2000, DailySearchHours: decimal.NewFromFloat(4.0), HourlyRateCHF: 300, DocumentVolume: 100000},
	}

	for _, input := range inputs {
		result, err := s.service.Compute(s.GetContext(), input)
		s.NoError(err)

		yearlyCost := result.MonthlySubscriptionCostCHF * 12
		s.Equal(result.YearlySavingsCHF-yearlyCost, result.NetYearlySavingsCHF,
			"net yearly identity for %+v", input)
		s.Equal(result.MonthlySavingsCHF-result.MonthlySubscriptionCostCHF, result.NetMonthlySavingsCHF,
			"net monthly identity for %+v", input)

		expectedROI := int(decimal.NewFromInt(int64(result.NetYearlySavingsCHF)).
			Div(decimal.NewFromInt(int64(yearlyCost))).
			Mul(decimal.NewFromInt(100)).
			Round(0).
			IntPart())
		s.Equal(expectedROI, result.ROIPercent, "roi identity for %+v", input)

		s.Require().NotNil(result.PaybackMonths, "positive savings must have a payback for %+v", input)
		s.True(result.PaybackMonths.GreaterThanOrEqual(decimal.NewFromInt(1)),
			"payback below display floor for %+v", input)
	}
}

func (s *CalculatorServiceSuite) TestComputeTierBoundaries() {
	base := validInput()

	cases := []struct {
		name      string
		employees int
		documents int
		tier      types.SubscriptionTier
		price     int
	}{
		{"starter at both boundaries", 10, 5000, types.SubscriptionTierStarter, 299},
		{"professional just over employee boundary", 11, 5000, types.SubscriptionTierProfessional, 599},
		{"professional just over document boundary", 10, 5001, types.SubscriptionTierProfessional, 599},
		{"professional at both boundaries", 50, 25000, types.SubscriptionTierProfessional, 599},
		{"enterprise over employee boundary", 51, 25000, types.SubscriptionTierEnterprise, 999},
		{"enterprise over document boundary", 50, 25001, types.SubscriptionTierEnterprise, 999},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			input := base
			input.EmployeeCount = tc.employees
			input.DocumentVolume = tc.documents

			result, err := s.service.Compute(s.GetContext(), input)
			s.NoError(err)
			s.Equal(tc.tier, result.SubscriptionTier)
			s.Equal(tc.price, result.MonthlySubscriptionCostCHF)
		})
	}
}

func (s *CalculatorServiceSuite) TestComputeRejectsOutOfRangeInput() {
	input := validInput()
	input.EmployeeCount = 0

	result, err := s.service.Compute(s.GetContext(), input)
	s.Nil(result)
	s.Error(err)
	s.True(ierr.IsValidation(err))

	ie, ok := ierr.AsInternalError(err)
	s.Require().True(ok)
	s.Contains(ie.ReportableDetails, "employee_count")
}

func (s *CalculatorServiceSuite) TestComputeReportsAllInvalidFields() {
	input := calculator.Input{
		EmployeeCount:    3,
		DailySearchHours: decimal.NewFromFloat(8.0),
		HourlyRateCHF:    10,
		DocumentVolume:   50,
	}

	_, err := s.service.Compute(s.GetContext(), input)
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))

	ie, ok := ierr.AsInternalError(err)
	s.Require().True(ok)
	s.Contains(ie.ReportableDetails, "employee_count")
	s.Contains(ie.ReportableDetails, "daily_search_hours")
	s.Contains(ie.ReportableDetails, "hourly_rate_chf")
	s.Contains(ie.ReportableDetails, "document_volume")
}

func (s *CalculatorServiceSuite) TestTimeReductionFactorOverride() {
	cfg := s.GetConfig()
	cfg.Calculator.TimeReductionFactor = 0.30
	service := NewCalculatorService(ServiceParams{Logger: s.GetLogger(), Config: cfg})

	result, err := service.Compute(s.GetContext(), validInput())
	s.NoError(err)

	// half the default factor, half the hours: 487.125 / 2 = 243.5625
	s.Equal(244, result.HoursSavedPerMonth)
}
