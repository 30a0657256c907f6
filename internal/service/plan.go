package service

import (
	"context"

	"github.com/docsense/docsense/internal/api/dto"
	"github.com/docsense/docsense/internal/cache"
	"github.com/docsense/docsense/internal/domain/plan"
	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/docsense/docsense/internal/types"
	"github.com/samber/lo"
)

// PlanService serves the pricing catalog to the pricing page.
type PlanService interface {
	ListPlans(ctx context.Context, locale types.Locale) (*dto.ListPlansResponse, error)
	GetPlanByTier(ctx context.Context, tier types.SubscriptionTier, locale types.Locale) (*dto.PlanResponse, error)
}

type planService struct {
	ServiceParams
}

// NewPlanService creates a new plan service
func NewPlanService(params ServiceParams) PlanService {
	return &planService{ServiceParams: params}
}

func planCacheKey(locale types.Locale) string {
	return "plans:" + locale.String()
}

func (s *planService) ListPlans(ctx context.Context, locale types.Locale) (*dto.ListPlansResponse, error) {
	if !locale.IsValid() {
		locale = types.LocaleDefault
	}

	if s.Cache != nil && s.Config.Cache.Enabled {
		if value, ok := s.Cache.Get(ctx, planCacheKey(locale)); ok {
			if resp, ok := cache.UnmarshalCacheValue[dto.ListPlansResponse](value); ok {
				return resp, nil
			}
		}
	}

	items := lo.Map(plan.Catalog, func(p plan.Plan, _ int) dto.PlanResponse {
		return dto.NewPlanResponse(p, locale)
	})
	resp := &dto.ListPlansResponse{Items: items, Total: len(items)}

	if s.Cache != nil && s.Config.Cache.Enabled {
		s.Cache.Set(ctx, planCacheKey(locale), resp, cache.ExpiryPlanCatalog)
	}
	return resp, nil
}

func (s *planService) GetPlanByTier(ctx context.Context, tier types.SubscriptionTier, locale types.Locale) (*dto.PlanResponse, error) {
	if !tier.IsValid() {
		return nil, ierr.NewError("unknown subscription tier").
			WithHint("Tier must be one of starter, professional, enterprise").
			WithReportableDetails(map[string]any{"tier": tier}).
			Mark(ierr.ErrValidation)
	}
	if !locale.IsValid() {
		locale = types.LocaleDefault
	}

	p, ok := plan.ByTier(tier)
	if !ok {
		return nil, ierr.NewError("plan not found for tier").
			WithHint("No plan is published for this tier").
			WithReportableDetails(map[string]any{"tier": tier}).
			Mark(ierr.ErrNotFound)
	}

	resp := dto.NewPlanResponse(p, locale)
	return &resp, nil
}
