package llm

import (
	"context"
	"encoding/json"
	"strings"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of the ordered conversation sent to the completion backend.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completion is the provider-neutral result of a chat completion call.
type Completion struct {
	ID      string
	Model   string
	Choices []Choice
}

// Choice holds one candidate reply. Content keeps the raw JSON value so
// callers can tell a text reply from structured (non-text) content.
type Choice struct {
	Index        int
	Role         string
	Content      json.RawMessage
	FinishReason string
}

// FirstText returns the first choice's message text. ok is false when there is
// no choice or its content is not a JSON string.
func (c *Completion) FirstText() (text string, ok bool) {
	if c == nil || len(c.Choices) == 0 {
		return "", false
	}
	raw := c.Choices[0].Content
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || !strings.HasPrefix(trimmed, `"`) {
		return "", false
	}
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", false
	}
	return text, true
}

// TextChoice builds a choice whose content is the given plain text.
func TextChoice(text string) Choice {
	raw, _ := json.Marshal(text)
	return Choice{Role: RoleAssistant, Content: raw}
}

// Completer invokes an external text-completion service.
type Completer interface {
	// Complete sends the ordered messages and returns the provider response.
	Complete(ctx context.Context, messages []Message) (*Completion, error)
	// Name identifies the provider in logs.
	Name() string
}
