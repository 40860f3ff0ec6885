package agent

import (
	"context"
	"fmt"

	"teaching-assistant-be/internal/constant"
	"teaching-assistant-be/pkg/llm"
)

type LLMResponder struct {
	provider llm.LLMProvider
}

var _ Responder = &LLMResponder{}

func NewLLMResponder(provider llm.LLMProvider) *LLMResponder {
	return &LLMResponder{provider: provider}
}

func (r *LLMResponder) Respond(ctx context.Context, prompt string) (string, error) {
	response, err := r.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: constant.RagResponderSystemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("response generation failed: %w", err)
	}
	return response, nil
}
