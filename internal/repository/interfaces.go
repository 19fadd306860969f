package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/fete/internal/domain"
)

// ErrEventNotFound is returned when no event with the requested ID exists.
var ErrEventNotFound = errors.New("event not found")

// EventStore persists the full event collection under a single namespace key.
// Implementations must round-trip an Event including a nil plan and the
// creation/update timestamps.
type EventStore interface {
	List(ctx context.Context) ([]*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)

	// Put inserts the event or replaces the stored event with the same ID.
	Put(ctx context.Context, e *domain.Event) error

	Delete(ctx context.Context, id string) error
}
