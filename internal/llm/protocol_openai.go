package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const (
	defaultOpenAIModel = "gpt-4o-mini"
	chatCompletionPath = "/chat/completions"
)

// OpenAICompatible talks to any endpoint implementing the OpenAI chat completions protocol.
type OpenAICompatible struct {
	client  *openai.Client
	baseURL string
	model   string
}

// NewOpenAICompatible creates a client; blank baseURL/model fall back to OpenAI defaults.
// baseURL is the API root (e.g. https://api.openai.com/v1); a full chat completions URL is accepted too.
func NewOpenAICompatible(apiKey, baseURL, model string, timeout time.Duration) (*OpenAICompatible, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is not configured")
	}

	openAIConfig := openai.DefaultConfig(apiKey)
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	baseURL = strings.TrimSuffix(baseURL, chatCompletionPath)
	if baseURL != "" {
		openAIConfig.BaseURL = baseURL
	}
	openAIConfig.HTTPClient = &http.Client{Timeout: timeout}

	model = strings.TrimSpace(model)
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAICompatible{
		client:  openai.NewClientWithConfig(openAIConfig),
		baseURL: openAIConfig.BaseURL,
		model:   model,
	}, nil
}

func (o *OpenAICompatible) Name() string {
	return "openai"
}

func (o *OpenAICompatible) Complete(ctx context.Context, messages []Message) (*Completion, error) {
	if len(messages) == 0 {
		return nil, errors.New("no messages to send")
	}
	logger := providerLogger(ctx, o.Name(), o.model)
	logger.WithFields(logrus.Fields{
		"message_count":  len(messages),
		"prompt_preview": logSnippet(lastUserPrompt(messages)),
	}).Info("llm_complete_start")

	reqMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		reqMessages = append(reqMessages, openai.ChatCompletionMessage{Role: msg.Role, Content: msg.Content})
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: reqMessages,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			logger.WithFields(logrus.Fields{
				"status": apiErr.HTTPStatusCode,
				"body":   logSnippet(apiErr.Message),
			}).Error("llm_complete_http_error")
		} else {
			logger.WithError(err).Error("llm_complete_request_failed")
		}
		return nil, err
	}

	completion := completionFromOpenAI(resp)
	logger.WithField("choice_count", len(completion.Choices)).Info("llm_complete_done")
	return completion, nil
}

// completionFromOpenAI 多段内容或空内容视为非文本
func completionFromOpenAI(resp openai.ChatCompletionResponse) *Completion {
	completion := &Completion{ID: resp.ID, Model: resp.Model}
	for _, choice := range resp.Choices {
		var content json.RawMessage
		if len(choice.Message.MultiContent) == 0 && choice.Message.Content != "" {
			content, _ = json.Marshal(choice.Message.Content)
		}
		completion.Choices = append(completion.Choices, Choice{
			Index:        choice.Index,
			Role:         choice.Message.Role,
			Content:      content,
			FinishReason: string(choice.FinishReason),
		})
	}
	return completion
}

var _ Completer = (*OpenAICompatible)(nil)
