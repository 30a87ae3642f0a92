package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type OpenAI struct {
	model  string
	client openai.Client
}

func NewOpenAI(apiKey, model string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("openai: api key is empty")
	}
	if model == "" {
		model = string(openai.ChatModelGPT4oMini)
	}
	return &OpenAI{
		model:  model,
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(defaultMaxTokens),
		Temperature: openai.Float(defaultTemperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("openai: empty response from model")
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAI) Name() string { return "openai" }
