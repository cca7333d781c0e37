package llm

import (
	"testing"

	volcModel "github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"
	"github.com/volcengine/volcengine-go-sdk/volcengine"
)

func TestBuildVolcengineMessages(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Content: "system instruction"},
		{Role: RoleUser, Content: "user prompt"},
	}

	out := buildVolcengineMessages(messages)
	if len(out) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(out))
	}
	for i, msg := range out {
		if msg.Role != messages[i].Role {
			t.Errorf("message %d: expected role %q, got %q", i, messages[i].Role, msg.Role)
		}
		if msg.Content == nil || msg.Content.StringValue == nil || *msg.Content.StringValue != messages[i].Content {
			t.Errorf("message %d: unexpected content %#v", i, msg.Content)
		}
	}
}

func TestCompletionFromVolcengine(t *testing.T) {
	t.Run("string content", func(t *testing.T) {
		resp := volcModel.ChatCompletionResponse{
			ID:    "resp-1",
			Model: "doubao",
			Choices: []*volcModel.ChatCompletionChoice{
				{Message: volcModel.ChatCompletionMessage{
					Role:    RoleAssistant,
					Content: &volcModel.ChatCompletionMessageContent{StringValue: volcengine.String("Hello")},
				}},
			},
		}
		completion := completionFromVolcengine(resp)
		text, ok := completion.FirstText()
		if !ok || text != "Hello" {
			t.Fatalf("expected Hello, got (%q, %v)", text, ok)
		}
		if completion.ID != "resp-1" {
			t.Errorf("expected id resp-1, got %q", completion.ID)
		}
	})

	t.Run("missing content", func(t *testing.T) {
		resp := volcModel.ChatCompletionResponse{
			Choices: []*volcModel.ChatCompletionChoice{
				{Message: volcModel.ChatCompletionMessage{Role: RoleAssistant}},
			},
		}
		if _, ok := completionFromVolcengine(resp).FirstText(); ok {
			t.Fatal("expected missing content to be non-text")
		}
	})

	t.Run("no choices", func(t *testing.T) {
		if _, ok := completionFromVolcengine(volcModel.ChatCompletionResponse{}).FirstText(); ok {
			t.Fatal("expected no text without choices")
		}
	})
}
