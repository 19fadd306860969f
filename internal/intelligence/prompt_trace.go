package intelligence

// PromptTrace retains the most recently built user-input prompt block for
// developer inspection. Single slot: every recording overwrites the previous
// one, regardless of whether the subsequent completion call succeeded. It is
// not safe for concurrent writers; callers issue at most one completion call
// at a time, so no synchronization is applied.
type PromptTrace struct {
	last string
}

// Record overwrites the slot with the given prompt text.
func (t *PromptTrace) Record(prompt string) {
	t.last = prompt
}

// Last returns the most recently recorded prompt text, or "" when no prompt
// has been built yet.
func (t *PromptTrace) Last() string {
	return t.last
}
