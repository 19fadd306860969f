package intelligence

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/alexanderramin/fete/internal/domain"
)

// FallbackOverview is the overview of the plan returned when no recovery
// strategy can produce a structured plan from the response.
const FallbackOverview = "Unable to parse AI response. Please regenerate the plan."

const (
	fallbackLogisticsNote  = "The AI response could not be parsed into a structured plan."
	fallbackRecommendation = "Regenerate the plan to request a fresh response."
)

// RecoveryReport describes how a raw response was turned into a plan:
// which strategy produced the result and what the intermediate steps saw.
// It is diagnostic only; callers must not branch on it.
type RecoveryReport struct {
	Strategy string // "direct", "sanitized", or "fallback"
	Notes    []string
}

var (
	fencedBlockRe   = regexp.MustCompile("(?s)```(?:json|JSON)?[ \t]*\n?(.+?)```")
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	blankLinesRe    = regexp.MustCompile(`\n[ \t]*\n+`)
)

// quoteNormalizer maps typographic quotation marks to plain ASCII.
var quoteNormalizer = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
)

// NormalizePlan maps a raw completion response to a StructuredPlan. It never
// fails: a decode error at any stage selects the next recovery strategy, and
// when every strategy is exhausted the fixed fallback plan is returned.
//
// Strategy order: direct parse; fenced-block extraction; boundary extraction
// (first "{" to last "}"); character sanitation; second parse; fallback.
func NormalizePlan(raw string) (*domain.StructuredPlan, RecoveryReport) {
	var report RecoveryReport

	if plan, ok := parsePlan(raw); ok {
		report.Strategy = "direct"
		return plan, report
	}
	report.Notes = append(report.Notes, "direct parse failed")

	working := raw
	if inner, ok := extractFencedBlock(working); ok {
		working = inner
		report.Notes = append(report.Notes, "extracted fenced block")
	}
	if span, ok := extractObjectSpan(working); ok {
		working = span
		report.Notes = append(report.Notes, "extracted object span")
	}
	working = sanitizeJSONText(working)
	if residual := residualSuspects(working); residual != "" {
		report.Notes = append(report.Notes, "residual characters after sanitation: "+residual)
	}

	if plan, ok := parsePlan(working); ok {
		report.Strategy = "sanitized"
		return plan, report
	}
	report.Notes = append(report.Notes, "sanitized parse failed")

	report.Strategy = "fallback"
	return fallbackPlan(), report
}

// parsePlan attempts a strict decode of the whole text as a plan object.
// The trimmed text must begin with "{": json.Unmarshal happily decodes "null"
// and scalars into a struct, which would turn a non-object response into an
// empty plan.
func parsePlan(text string) (*domain.StructuredPlan, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}
	var plan domain.StructuredPlan
	if err := json.Unmarshal([]byte(trimmed), &plan); err != nil {
		return nil, false
	}
	return &plan, true
}

// extractFencedBlock returns the inner content of the first triple-backtick
// code block, tolerating an optional json language tag.
func extractFencedBlock(s string) (string, bool) {
	m := fencedBlockRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// extractObjectSpan truncates the text to the span from the first "{" to the
// last "}", discarding any surrounding prose.
func extractObjectSpan(s string) (string, bool) {
	first := strings.IndexByte(s, '{')
	last := strings.LastIndexByte(s, '}')
	if first == -1 || last == -1 || last < first {
		return "", false
	}
	return s[first : last+1], true
}

// sanitizeJSONText applies the character-level repairs: strips backticks,
// removes trailing commas before a closing brace or bracket, collapses blank
// lines, trims, and normalizes typographic quotes to ASCII.
func sanitizeJSONText(s string) string {
	s = strings.ReplaceAll(s, "`", "")
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = blankLinesRe.ReplaceAllString(s, "\n")
	s = quoteNormalizer.Replace(s)
	return strings.TrimSpace(s)
}

// residualSuspects reports typographic characters that survive sanitation.
// Models occasionally emit ellipses, dashes, or non-breaking spaces that the
// quote normalizer does not touch; they are harmless inside string values but
// worth flagging in diagnostics.
func residualSuspects(s string) string {
	suspects := map[rune]bool{
		'…': true, // ellipsis
		'–': true, // en dash
		'—': true, // em dash
		' ': true, // non-breaking space
	}
	var found []rune
	seen := map[rune]bool{}
	for _, r := range s {
		if suspects[r] && !seen[r] {
			seen[r] = true
			found = append(found, r)
		}
	}
	return string(found)
}

func fallbackPlan() *domain.StructuredPlan {
	return &domain.StructuredPlan{
		Overview:        FallbackOverview,
		Timeline:        []domain.TimelineEntry{},
		Schedule:        []domain.ScheduleEntry{},
		Logistics:       []string{fallbackLogisticsNote},
		Materials:       []string{},
		Recommendations: []string{fallbackRecommendation},
		Tips:            []string{},
	}
}
