package testutil

import (
	"context"
	"sync"

	"github.com/docsense/docsense/internal/domain/lead"
	ierr "github.com/docsense/docsense/internal/errors"
)

// InMemoryLeadStore implements lead.Repository for tests.
type InMemoryLeadStore struct {
	mu    sync.RWMutex
	leads map[string]*lead.Lead
	order []string
}

// NewInMemoryLeadStore creates a new in-memory lead store
func NewInMemoryLeadStore() *InMemoryLeadStore {
	return &InMemoryLeadStore{
		leads: make(map[string]*lead.Lead),
	}
}

func copyLead(l *lead.Lead) *lead.Lead {
	if l == nil {
		return nil
	}
	copied := *l
	if l.CalculatorSnapshot != nil {
		snapshot := *l.CalculatorSnapshot
		copied.CalculatorSnapshot = &snapshot
	}
	return &copied
}

func (s *InMemoryLeadStore) Create(ctx context.Context, l *lead.Lead) error {
	if l == nil {
		return ierr.NewError("lead cannot be nil").
			WithHint("Lead cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.leads[l.ID]; ok {
		return ierr.NewError("lead already exists").
			WithHint("A lead with this ID already exists").
			WithReportableDetails(map[string]any{"id": l.ID}).
			Mark(ierr.ErrAlreadyExists)
	}

	s.leads[l.ID] = copyLead(l)
	s.order = append(s.order, l.ID)
	return nil
}

func (s *InMemoryLeadStore) Get(ctx context.Context, id string) (*lead.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.leads[id]
	if !ok {
		return nil, ierr.NewError("lead not found").
			WithHint("Lead not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyLead(l), nil
}

func (s *InMemoryLeadStore) List(ctx context.Context) ([]*lead.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	leads := make([]*lead.Lead, 0, len(s.order))
	for _, id := range s.order {
		leads = append(leads, copyLead(s.leads[id]))
	}
	return leads, nil
}

func (s *InMemoryLeadStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}
