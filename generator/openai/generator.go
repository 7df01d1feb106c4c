package openai

import (
	"context"
	"errors"

	"github.com/atharvakapadnis/agentic-tasks/generator"
	"github.com/sashabaranov/go-openai"
)

type openAIGenerator struct {
	options generator.Options
	client  *openai.Client
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []openai.ChatCompletionMessage{}

	if len(g.options.SystemPrompt) > 0 {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: g.options.SystemPrompt,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	req := openai.ChatCompletionRequest{
		Model:       g.options.Model,
		Messages:    messages,
		Temperature: float32(g.options.Temperature),
	}

	if g.options.MaxTokens > 0 {
		req.MaxTokens = g.options.MaxTokens
	}

	rsp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}

	if len(rsp.Choices) == 0 || len(rsp.Choices[0].Message.Content) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	return rsp.Choices[0].Message.Content, nil
}

func NewGenerator(opts ...generator.Option) generator.Generator {
	options := generator.NewOptions(opts...)

	g := &openAIGenerator{
		options: options,
	}

	client := openai.NewClient(options.ApiKey)

	g.client = client

	return g
}
