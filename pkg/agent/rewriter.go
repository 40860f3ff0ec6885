package agent

import (
	"context"
	"fmt"
	"strings"

	"teaching-assistant-be/internal/constant"
	"teaching-assistant-be/pkg/llm"
)

type LLMRewriter struct {
	provider llm.LLMProvider
}

var _ QueryRewriter = &LLMRewriter{}

func NewLLMRewriter(provider llm.LLMProvider) *LLMRewriter {
	return &LLMRewriter{provider: provider}
}

func (r *LLMRewriter) Rewrite(ctx context.Context, question string) (string, error) {
	rewritten, err := r.provider.Generate(ctx,
		constant.QueryRewriterPrompt+question,
		llm.WithTemperature(0.2),
	)
	if err != nil {
		return "", fmt.Errorf("query rewrite failed: %w", err)
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		return "", fmt.Errorf("query rewriter returned an empty result")
	}
	return rewritten, nil
}
