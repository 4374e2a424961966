package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const polishSystemPrompt = `You are a broadcast script editor. You receive one short piece of anchor narration and rewrite it as natural spoken prose for text-to-speech.

Rules:
1. Keep every fact: names, numbers, dates, titles
2. Remove template artifacts (trailing ellipses, repeated phrases)
3. Keep it to at most three sentences
4. Match the anchor's focus: facts stay literal, implications stay forward-looking, context stays backward-looking
5. Output the rewritten narration only, plain text, no quotes and no commentary`

type AnthropicPolisher struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicPolisher(apiKey string) *AnthropicPolisher {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicPolisher{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicPolisher) Polish(input PolishInput) (string, error) {
	userPrompt := fmt.Sprintf("Anchor: %s\nFocus: %s\nViewpoint: %s\nNarration: %s",
		input.AnchorName, input.Focus, input.Perspective, input.Text)

	resp, err := c.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 512,
		System: []anthropic.TextBlockParam{
			{Text: polishSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}

	polished := cleanTextResponse(resp.Content[0].Text)
	if polished == "" {
		return "", fmt.Errorf("empty polish result")
	}

	return polished, nil
}

// cleanTextResponse strips code fences and surrounding quotes some model
// responses wrap plain text in.
func cleanTextResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)
	content = strings.Trim(content, `"`)
	return strings.TrimSpace(content)
}
