package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fete/internal/domain"
)

// eventsNamespace is the single key under which the whole event list lives.
const eventsNamespace = "events"

// SQLiteEventStore implements EventStore on a SQLite-backed key-value table.
// The entire event list is serialized as one JSON document; every mutation
// reloads the list, applies the change, and rewrites the row.
type SQLiteEventStore struct {
	db *sql.DB
}

// NewSQLiteEventStore creates a new SQLiteEventStore.
func NewSQLiteEventStore(db *sql.DB) *SQLiteEventStore {
	return &SQLiteEventStore{db: db}
}

func (s *SQLiteEventStore) List(ctx context.Context) ([]*domain.Event, error) {
	return s.load(ctx)
}

func (s *SQLiteEventStore) Get(ctx context.Context, id string) (*domain.Event, error) {
	events, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, ErrEventNotFound
}

func (s *SQLiteEventStore) Put(ctx context.Context, e *domain.Event) error {
	events, err := s.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range events {
		if existing.ID == e.ID {
			events[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		events = append(events, e)
	}

	return s.persist(ctx, events)
}

func (s *SQLiteEventStore) Delete(ctx context.Context, id string) error {
	events, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]*domain.Event, 0, len(events))
	found := false
	for _, e := range events {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrEventNotFound
	}

	return s.persist(ctx, kept)
}

func (s *SQLiteEventStore) load(ctx context.Context) ([]*domain.Event, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_records WHERE namespace = ?`, eventsNamespace).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []*domain.Event{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading event records: %w", err)
	}

	var events []*domain.Event
	if err := json.Unmarshal([]byte(value), &events); err != nil {
		return nil, fmt.Errorf("decoding event records: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *SQLiteEventStore) persist(ctx context.Context, events []*domain.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encoding event records: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv_records (namespace, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		eventsNamespace, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("persisting event records: %w", err)
	}
	return nil
}
