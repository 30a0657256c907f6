package service

import (
	"context"

	"github.com/docsense/docsense/internal/api/dto"
	"github.com/docsense/docsense/internal/domain/lead"
	"github.com/docsense/docsense/internal/validator"
)

// LeadService captures demo and contact requests from the site.
type LeadService interface {
	CreateLead(ctx context.Context, req *dto.CreateLeadRequest) (*dto.LeadResponse, error)
	GetLead(ctx context.Context, id string) (*lead.Lead, error)
	ListLeads(ctx context.Context) ([]*lead.Lead, error)
}

type leadService struct {
	ServiceParams
	calculator CalculatorService
}

// NewLeadService creates a new lead service. The calculator is needed to
// recompute snapshot results attached to a lead.
func NewLeadService(params ServiceParams, calculator CalculatorService) LeadService {
	return &leadService{ServiceParams: params, calculator: calculator}
}

func (s *leadService) CreateLead(ctx context.Context, req *dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	l := req.ToLead()

	// Recompute the snapshot rather than trusting client-side numbers, so
	// sales always sees figures consistent with the current assumptions.
	if req.Calculator != nil {
		result, err := s.calculator.Compute(ctx, req.Calculator.ToInput())
		if err != nil {
			return nil, err
		}
		l.CalculatorSnapshot = result
		l.Source = lead.SourceCalculator
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}

	if err := s.LeadRepo.Create(ctx, l); err != nil {
		return nil, err
	}

	s.Logger.Infow("lead captured",
		"lead_id", l.ID,
		"source", l.Source,
		"company", l.Company,
	)

	if s.Email != nil {
		s.Email.NotifyNewLead(ctx, l)
	}

	return dto.NewLeadResponse(l), nil
}

func (s *leadService) GetLead(ctx context.Context, id string) (*lead.Lead, error) {
	return s.LeadRepo.Get(ctx, id)
}

func (s *leadService) ListLeads(ctx context.Context) ([]*lead.Lead, error) {
	return s.LeadRepo.List(ctx)
}
