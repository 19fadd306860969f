package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogObserver_Success(t *testing.T) {
	var buf strings.Builder
	obs := NewLogObserver(&buf)

	obs.OnCallComplete(CallEvent{Task: TaskPlanGenerate, Model: "test-model", LatencyMs: 42, Success: true})

	line := buf.String()
	assert.Contains(t, line, "completion_call task=plan_generate model=test-model latency_ms=42 status=ok")
}

func TestLogObserver_Failure(t *testing.T) {
	var buf strings.Builder
	obs := NewLogObserver(&buf)

	obs.OnCallComplete(CallEvent{Task: TaskSuggest, Model: "test-model", Success: false, ErrorCode: "TIMEOUT"})

	assert.Contains(t, buf.String(), "status=err:TIMEOUT")
}
