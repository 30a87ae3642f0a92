package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

type Gemini struct {
	model  string
	client *genai.Client
}

func NewGemini(apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is empty")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Gemini{model: model, client: client}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		MaxOutputTokens: defaultMaxTokens,
		Temperature:     genai.Ptr[float32](defaultTemperature),
	})
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini: empty response from model")
	}
	return text, nil
}

func (g *Gemini) Name() string { return "gemini" }
