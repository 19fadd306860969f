package intelligence

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/fete/internal/domain"
	"github.com/alexanderramin/fete/internal/llm"
)

// PlannerService turns event drafts into structured plans and handles the
// lighter enhancement and suggestion flows.
type PlannerService interface {
	// GeneratePlan builds the schema-constrained prompt for the draft, calls
	// the completion endpoint, and recovers a StructuredPlan from the raw
	// response. A malformed response is never an error: the recovery cascade
	// absorbs it, terminating in the fallback plan at worst. Errors are
	// configuration, transport, or empty-response failures only.
	GeneratePlan(ctx context.Context, draft *domain.EventDraft) (*domain.StructuredPlan, error)

	// Enhance asks for a free-text revision of an existing flattened plan.
	// The raw response is returned unmodified; an empty response is an error.
	Enhance(ctx context.Context, planText, request string) (string, error)

	// SuggestActivities asks for activity name ideas for an event type. It
	// degrades to an empty list on any failure and never returns an error.
	SuggestActivities(ctx context.Context, eventType string, attendees *int, location string) ([]string, error)

	// LastPrompt returns the user-input block of the most recently built plan
	// prompt, for developer inspection. Empty until the first build.
	LastPrompt() string
}

type plannerService struct {
	client llm.CompletionClient
	trace  *PromptTrace
}

// NewPlannerService creates a PlannerService backed by a completion client.
func NewPlannerService(client llm.CompletionClient) PlannerService {
	return &plannerService{
		client: client,
		trace:  &PromptTrace{},
	}
}

func (s *plannerService) GeneratePlan(ctx context.Context, draft *domain.EventDraft) (*domain.StructuredPlan, error) {
	payload := BuildPlanPrompt(draft, s.trace)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:     llm.TaskPlanGenerate,
		Messages: payload.Messages,
	})
	if err != nil {
		return nil, fmt.Errorf("plan generation failed: %w", err)
	}

	plan, _ := NormalizePlan(resp.Text)
	return plan, nil
}

func (s *plannerService) Enhance(ctx context.Context, planText, request string) (string, error) {
	prompt := buildEnhancePrompt(planText, request)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:     llm.TaskEnhance,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("plan enhancement failed: %w", err)
	}
	// The client already rejects empty completions; this covers
	// whitespace-only text from other implementations.
	if strings.TrimSpace(resp.Text) == "" {
		return "", fmt.Errorf("plan enhancement failed: %w", llm.ErrEmptyResponse)
	}

	return resp.Text, nil
}

func (s *plannerService) SuggestActivities(ctx context.Context, eventType string, attendees *int, location string) ([]string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:     llm.TaskSuggest,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: buildSuggestPrompt(eventType, attendees, location)}},
	})
	if err != nil {
		return []string{}, nil
	}
	return splitSuggestionLines(resp.Text), nil
}

func (s *plannerService) LastPrompt() string {
	return s.trace.Last()
}

var bulletPrefixRe = regexp.MustCompile(`^(?:[-*\x{2022}]|\d+[.)])\s*`)

// splitSuggestionLines splits a suggestion response into trimmed, non-empty
// lines, stripping the bullet or number prefixes models tend to add even when
// asked for bare names.
func splitSuggestionLines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = bulletPrefixRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
