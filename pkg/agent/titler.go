package agent

import (
	"context"
	"fmt"
	"strings"

	"teaching-assistant-be/internal/constant"
	"teaching-assistant-be/pkg/llm"
)

const maxTitleLength = 60

type LLMTitler struct {
	provider llm.LLMProvider
}

var _ Titler = &LLMTitler{}

func NewLLMTitler(provider llm.LLMProvider) *LLMTitler {
	return &LLMTitler{provider: provider}
}

func (t *LLMTitler) TitleFor(ctx context.Context, message string) (string, error) {
	title, err := t.provider.Generate(ctx,
		constant.TitleGeneratorPrompt+message,
		llm.WithTemperature(0.4),
		llm.WithMaxTokens(30),
	)
	if err != nil {
		return "", fmt.Errorf("title generation failed: %w", err)
	}

	title = strings.Trim(strings.TrimSpace(title), `"'`)
	title = strings.ReplaceAll(title, "\n", " ")
	if title == "" {
		return "", fmt.Errorf("title generator returned an empty result")
	}
	if len(title) > maxTitleLength {
		title = strings.TrimSpace(title[:maxTitleLength])
	}
	return title, nil
}
