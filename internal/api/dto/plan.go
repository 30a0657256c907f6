package dto

import (
	"github.com/docsense/docsense/internal/domain/plan"
	"github.com/docsense/docsense/internal/i18n"
	"github.com/docsense/docsense/internal/types"
)

// PlanResponse is one pricing card on the pricing page.
type PlanResponse struct {
	ID                  string                 `json:"id"`
	Tier                types.SubscriptionTier `json:"tier"`
	MonthlyPriceCHF     int                    `json:"monthly_price_chf"`
	MonthlyPriceDisplay string                 `json:"monthly_price_display"`
	Name                string                 `json:"name"`
	Description         string                 `json:"description"`
	Features            []string               `json:"features"`
	Highlighted         bool                   `json:"highlighted"`

	// MaxEmployees/MaxDocuments are omitted for the unlimited tier.
	MaxEmployees *int `json:"max_employees,omitempty"`
	MaxDocuments *int `json:"max_documents,omitempty"`
}

// ListPlansResponse is the response of GET /v1/plans.
type ListPlansResponse struct {
	Items []PlanResponse `json:"items"`
	Total int            `json:"total"`
}

// NewPlanResponse localizes a catalog entry for a response.
func NewPlanResponse(p plan.Plan, locale types.Locale) PlanResponse {
	resp := PlanResponse{
		ID:                  p.ID,
		Tier:                p.Tier,
		MonthlyPriceCHF:     p.MonthlyPriceCHF,
		MonthlyPriceDisplay: i18n.FormatCHF(locale, p.MonthlyPriceCHF) + " " + i18n.T(locale, i18n.MsgPerMonth),
		Name:                p.Name[locale],
		Description:         p.Description[locale],
		Features:            p.Features[locale],
		Highlighted:         p.Highlighted,
	}
	if p.MaxEmployees != plan.Unlimited {
		maxEmployees := p.MaxEmployees
		resp.MaxEmployees = &maxEmployees
	}
	if p.MaxDocuments != plan.Unlimited {
		maxDocuments := p.MaxDocuments
		resp.MaxDocuments = &maxDocuments
	}
	return resp
}
