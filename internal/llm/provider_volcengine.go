package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/volcengine/volcengine-go-sdk/service/arkruntime"
	volcModel "github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"
	"github.com/volcengine/volcengine-go-sdk/volcengine"
)

//文档:https://www.volcengine.com/docs/82379/1494384

const defaultVolcengineModel = "doubao-seed-1-6-250615"

// Volcengine calls the Ark runtime chat completion API.
type Volcengine struct {
	client *arkruntime.Client
	model  string
}

func NewVolcengine(apiKey, model string) (*Volcengine, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("volcengine api key is not configured")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = defaultVolcengineModel
	}
	return &Volcengine{
		client: arkruntime.NewClientWithApiKey(apiKey),
		model:  model,
	}, nil
}

func (v *Volcengine) Name() string {
	return "volcengine"
}

func (v *Volcengine) Complete(ctx context.Context, messages []Message) (*Completion, error) {
	if len(messages) == 0 {
		return nil, errors.New("no messages to send")
	}
	logger := providerLogger(ctx, v.Name(), v.model)
	logger.WithField("prompt_preview", logSnippet(lastUserPrompt(messages))).Info("llm_complete_start")

	resp, err := v.client.CreateChatCompletion(ctx, volcModel.CreateChatCompletionRequest{
		Model:    v.model,
		Messages: buildVolcengineMessages(messages),
	})
	if err != nil {
		logger.WithError(err).Error("llm_complete_request_failed")
		return nil, err
	}

	completion := completionFromVolcengine(resp)
	logger.WithField("choice_count", len(completion.Choices)).Info("llm_complete_done")
	return completion, nil
}

func buildVolcengineMessages(messages []Message) []*volcModel.ChatCompletionMessage {
	out := make([]*volcModel.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		out = append(out, &volcModel.ChatCompletionMessage{
			Role: msg.Role,
			Content: &volcModel.ChatCompletionMessageContent{
				StringValue: volcengine.String(msg.Content),
			},
		})
	}
	return out
}

// completionFromVolcengine keeps string content as a JSON string and
// multi-part content as a JSON array so FirstText can tell them apart.
func completionFromVolcengine(resp volcModel.ChatCompletionResponse) *Completion {
	completion := &Completion{ID: resp.ID, Model: resp.Model}
	for idx, choice := range resp.Choices {
		if choice == nil {
			continue
		}
		item := Choice{Index: idx, Role: choice.Message.Role, FinishReason: string(choice.FinishReason)}
		if content := choice.Message.Content; content != nil {
			switch {
			case content.StringValue != nil:
				item.Content, _ = json.Marshal(*content.StringValue)
			case content.ListValue != nil:
				item.Content, _ = json.Marshal(content.ListValue)
			}
		}
		completion.Choices = append(completion.Choices, item)
	}
	return completion
}

var _ Completer = (*Volcengine)(nil)
