package anthropic

import (
	"context"
	"errors"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/atharvakapadnis/agentic-tasks/generator"
)

type anthropicGenerator struct {
	options generator.Options
	client  *anthropic.Client
}

func (g *anthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	maxTokens := int64(g.options.MaxTokens)
	if maxTokens == 0 {
		maxTokens = 1024
	}

	req := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.options.Model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	if len(g.options.SystemPrompt) > 0 {
		req.System = []anthropic.TextBlockParam{
			{Text: g.options.SystemPrompt},
		}
	}

	if g.options.Temperature > 0 {
		req.Temperature = anthropic.Float(g.options.Temperature)
	}

	rsp, err := g.client.Messages.New(ctx, req)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, content := range rsp.Content {
		if text, ok := content.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}

	result := b.String()
	if len(result) == 0 {
		return "", errors.New("no response from Anthropic")
	}

	return result, nil
}

func NewGenerator(opts ...generator.Option) generator.Generator {
	options := generator.NewOptions(opts...)

	g := &anthropicGenerator{
		options: options,
	}

	client := anthropic.NewClient(
		anthropicopt.WithAPIKey(options.ApiKey),
	)

	g.client = &client

	return g
}
