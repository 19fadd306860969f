package service

import (
	"context"

	"github.com/alexanderramin/fete/internal/domain"
)

// EventService owns the event lifecycle: creation, edits, plan generation and
// regeneration, enhancement, and deletion.
type EventService interface {
	// Create persists a new event without a plan. Plan generation is a
	// separate step so a generation failure never blocks saving the event.
	Create(ctx context.Context, draft *domain.EventDraft) (*domain.Event, error)

	Get(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)

	// Update replaces the event's draft fields and bumps its update
	// timestamp. The existing plan is kept.
	Update(ctx context.Context, id string, draft *domain.EventDraft) (*domain.Event, error)

	Delete(ctx context.Context, id string) error

	// Generate builds and stores a plan for the event. It also serves
	// regeneration: any existing plan is replaced. On failure the stored
	// event is left untouched.
	Generate(ctx context.Context, id string) (*domain.Event, error)

	// Enhance returns a free-text revision of the event's current plan.
	// It is an error when the event has no plan yet.
	Enhance(ctx context.Context, id string, request string) (string, error)
}
