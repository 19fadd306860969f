package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of completion task being performed.
type TaskType string

const (
	TaskPlanGenerate TaskType = "plan_generate"
	TaskSuggest      TaskType = "suggest"
	TaskEnhance      TaskType = "enhance"
)

// TaskConfig holds per-task generation parameters. A zero Temperature or TopP
// is passed through as-is; the endpoint applies its own default.
type TaskConfig struct {
	Temperature float32
	TopP        float32
	MaxTokens   int
}

// Config holds all configuration for the completion subsystem.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	TimeoutMs int
	LogCalls  bool
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The API key has no
// default; without one the first call fails with ErrMissingAPIKey.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://api.openai.com/v1",
		Model:     "gpt-4o-mini",
		TimeoutMs: 60000,
		Tasks: map[TaskType]TaskConfig{
			TaskPlanGenerate: {Temperature: 0.7, TopP: 0.9, MaxTokens: 800},
			TaskSuggest:      {Temperature: 0.8, MaxTokens: 300},
			TaskEnhance:      {Temperature: 0.7, MaxTokens: 800},
		},
	}
}

// LoadConfig reads completion configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FETE_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("FETE_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FETE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("FETE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("FETE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyTaskMaxTokensEnv(&cfg, TaskPlanGenerate, "FETE_LLM_PLAN_MAX_TOKENS")
	applyTaskMaxTokensEnv(&cfg, TaskSuggest, "FETE_LLM_SUGGEST_MAX_TOKENS")
	applyTaskMaxTokensEnv(&cfg, TaskEnhance, "FETE_LLM_ENHANCE_MAX_TOKENS")

	return cfg
}

func applyTaskMaxTokensEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.MaxTokens = n
	cfg.Tasks[task] = tc
}
