package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fete/internal/domain"
	"github.com/alexanderramin/fete/internal/intelligence"
	"github.com/alexanderramin/fete/internal/repository"
	"github.com/google/uuid"
)

type eventService struct {
	store   repository.EventStore
	planner intelligence.PlannerService
}

// NewEventService creates an EventService backed by the given store and
// planner.
func NewEventService(store repository.EventStore, planner intelligence.PlannerService) EventService {
	return &eventService{store: store, planner: planner}
}

func (s *eventService) Create(ctx context.Context, draft *domain.EventDraft) (*domain.Event, error) {
	now := time.Now().UTC()
	event := &domain.Event{
		EventDraft: *draft,
		ID:         uuid.New().String(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.Put(ctx, event); err != nil {
		return nil, fmt.Errorf("saving event: %w", err)
	}
	return event, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.store.Get(ctx, id)
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.store.List(ctx)
}

func (s *eventService) Update(ctx context.Context, id string, draft *domain.EventDraft) (*domain.Event, error) {
	event, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	event.EventDraft = *draft
	event.UpdatedAt = time.Now().UTC()

	if err := s.store.Put(ctx, event); err != nil {
		return nil, fmt.Errorf("saving event: %w", err)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *eventService) Generate(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	plan, err := s.planner.GeneratePlan(ctx, &event.EventDraft)
	if err != nil {
		// The event stays saved as-is; the caller prompts the user to
		// regenerate later.
		return nil, err
	}

	flattened := plan.Flatten()
	event.Plan = plan
	event.PlanText = &flattened
	event.UpdatedAt = time.Now().UTC()

	if err := s.store.Put(ctx, event); err != nil {
		return nil, fmt.Errorf("saving generated plan: %w", err)
	}
	return event, nil
}

func (s *eventService) Enhance(ctx context.Context, id string, request string) (string, error) {
	event, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}

	planText := event.CurrentPlanText()
	if planText == "" {
		return "", fmt.Errorf("event %s has no plan to enhance; generate one first", event.DisplayID())
	}

	return s.planner.Enhance(ctx, planText, request)
}
