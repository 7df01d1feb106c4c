package google

import (
	"context"
	"errors"
	"strings"

	"github.com/atharvakapadnis/agentic-tasks/generator"
	"github.com/google/generative-ai-go/genai"
	genaiopt "google.golang.org/api/option"
)

type googleGenerator struct {
	options generator.Options
	client  *genai.Client
}

func (g *googleGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.options.Model)

	if len(g.options.SystemPrompt) > 0 {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(g.options.SystemPrompt)},
		}
	}

	if g.options.Temperature > 0 {
		model.SetTemperature(float32(g.options.Temperature))
	}

	if g.options.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(g.options.MaxTokens))
	}

	rsp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(rsp.Candidates) == 0 || rsp.Candidates[0].Content == nil || len(rsp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Google")
	}

	var b strings.Builder
	for _, part := range rsp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	return b.String(), nil
}

func NewGenerator(opts ...generator.Option) (generator.Generator, error) {
	options := generator.NewOptions(opts...)

	g := &googleGenerator{
		options: options,
	}

	client, err := genai.NewClient(
		options.Context,
		genaiopt.WithAPIKey(options.ApiKey),
	)
	if err != nil {
		return nil, err
	}

	g.client = client

	return g, nil
}
