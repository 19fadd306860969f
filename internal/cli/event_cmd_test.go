package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/fete/internal/domain"
	"github.com/alexanderramin/fete/internal/repository"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEventService struct {
	events []*domain.Event
}

func (s *stubEventService) Create(_ context.Context, draft *domain.EventDraft) (*domain.Event, error) {
	e := &domain.Event{EventDraft: *draft, ID: "created"}
	s.events = append(s.events, e)
	return e, nil
}

func (s *stubEventService) Get(_ context.Context, id string) (*domain.Event, error) {
	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, repository.ErrEventNotFound
}

func (s *stubEventService) List(context.Context) ([]*domain.Event, error) {
	return s.events, nil
}

func (s *stubEventService) Update(_ context.Context, id string, draft *domain.EventDraft) (*domain.Event, error) {
	e, err := s.Get(context.Background(), id)
	if err != nil {
		return nil, err
	}
	e.EventDraft = *draft
	return e, nil
}

func (s *stubEventService) Delete(context.Context, string) error { return nil }

func (s *stubEventService) Generate(_ context.Context, id string) (*domain.Event, error) {
	return s.Get(context.Background(), id)
}

func (s *stubEventService) Enhance(context.Context, string, string) (string, error) {
	return "", nil
}

func eventWithID(id string) *domain.Event {
	return &domain.Event{ID: id}
}

func TestResolveEventID_ExactMatch(t *testing.T) {
	app := &App{Events: &stubEventService{events: []*domain.Event{
		eventWithID("a1b2c3d4-1111-4111-8111-111111111111"),
	}}}

	id, err := resolveEventID(context.Background(), app, "a1b2c3d4-1111-4111-8111-111111111111")

	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4-1111-4111-8111-111111111111", id)
}

func TestResolveEventID_PrefixMatch(t *testing.T) {
	app := &App{Events: &stubEventService{events: []*domain.Event{
		eventWithID("a1b2c3d4-1111-4111-8111-111111111111"),
		eventWithID("b5b2c3d4-2222-4222-8222-222222222222"),
	}}}

	id, err := resolveEventID(context.Background(), app, "a1b2")

	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4-1111-4111-8111-111111111111", id)
}

func TestResolveEventID_AmbiguousPrefix(t *testing.T) {
	app := &App{Events: &stubEventService{events: []*domain.Event{
		eventWithID("a1b2c3d4-1111-4111-8111-111111111111"),
		eventWithID("a1b29999-2222-4222-8222-222222222222"),
	}}}

	_, err := resolveEventID(context.Background(), app, "a1b2")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestResolveEventID_NotFound(t *testing.T) {
	app := &App{Events: &stubEventService{}}

	_, err := resolveEventID(context.Background(), app, "zzzz")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "event not found")
}

func TestResolveEventID_EmptyInput(t *testing.T) {
	app := &App{Events: &stubEventService{}}

	_, err := resolveEventID(context.Background(), app, "")

	require.Error(t, err)
}

func TestParseDates(t *testing.T) {
	dates, err := parseDates([]string{"2026-06-30", "2026-07-01"})

	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), dates[0])

	_, err = parseDates([]string{"30/06/2026"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestParseActivities(t *testing.T) {
	activities := parseActivities([]string{"Karaoke: open mic", "Quiz"})

	require.Len(t, activities, 2)
	assert.Equal(t, domain.Activity{Name: "Karaoke", Description: "open mic"}, activities[0])
	assert.Equal(t, domain.Activity{Name: "Quiz"}, activities[1])
}

func TestDraftFlags_ApplyOnlyChangedFlags(t *testing.T) {
	var flags draftFlags
	cmd := &cobra.Command{}
	flags.register(cmd)

	require.NoError(t, cmd.ParseFlags([]string{
		"--title", "Rooftop Party",
		"--attendees", "8",
		"--date", "2026-06-30",
	}))

	draft := &domain.EventDraft{
		Title:    "Garden Party",
		Location: "Community Hall",
	}
	require.NoError(t, flags.apply(cmd, draft))

	assert.Equal(t, "Rooftop Party", draft.Title)
	require.NotNil(t, draft.Attendees)
	assert.Equal(t, 8, *draft.Attendees)
	require.Len(t, draft.Dates, 1)
	// Untouched flags leave existing draft values alone.
	assert.Equal(t, "Community Hall", draft.Location)
}
