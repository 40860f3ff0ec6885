package agent

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"teaching-assistant-be/pkg/llm"
)

type stubProvider struct {
	response   string
	err        error
	lastPrompt string
	lastChat   []llm.Message
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.lastChat = history
	return s.response, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.lastPrompt = prompt
	return s.response, s.err
}

func TestRewriterTrimsResult(t *testing.T) {
	p := &stubProvider{response: "  expanded question  \n"}
	r := NewLLMRewriter(p)

	got, err := r.Rewrite(context.Background(), "short q")
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if got != "expanded question" {
		t.Errorf("got %q", got)
	}
	if !strings.HasSuffix(p.lastPrompt, "short q") {
		t.Error("question must be appended to the rewriter prompt")
	}
}

func TestRewriterEmptyResultIsError(t *testing.T) {
	r := NewLLMRewriter(&stubProvider{response: "   "})

	if _, err := r.Rewrite(context.Background(), "q"); err == nil {
		t.Fatal("expected error on empty rewrite")
	}
}

func TestRewriterProviderError(t *testing.T) {
	r := NewLLMRewriter(&stubProvider{err: fmt.Errorf("rate limited")})

	if _, err := r.Rewrite(context.Background(), "q"); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestResponderSendsSystemPrompt(t *testing.T) {
	p := &stubProvider{response: "an answer"}
	r := NewLLMResponder(p)

	got, err := r.Respond(context.Background(), "the prompt")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if got != "an answer" {
		t.Errorf("got %q", got)
	}
	if len(p.lastChat) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(p.lastChat))
	}
	if p.lastChat[0].Role != "system" {
		t.Errorf("first message role = %q, want system", p.lastChat[0].Role)
	}
	if p.lastChat[1].Content != "the prompt" {
		t.Errorf("user message content = %q", p.lastChat[1].Content)
	}
}

func TestTitlerCleansOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			name:     "strips quotes",
			response: `"Physics Basics"`,
			want:     "Physics Basics",
		},
		{
			name:     "flattens newlines",
			response: "Physics\nBasics",
			want:     "Physics Basics",
		},
		{
			name:     "caps overly long titles",
			response: strings.Repeat("Very Long Title ", 10),
			want:     strings.TrimSpace(strings.Repeat("Very Long Title ", 10)[:60]),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			titler := NewLLMTitler(&stubProvider{response: tt.response})
			got, err := titler.TitleFor(context.Background(), "first message")
			if err != nil {
				t.Fatalf("TitleFor: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitlerEmptyResultIsError(t *testing.T) {
	titler := NewLLMTitler(&stubProvider{response: `""`})

	if _, err := titler.TitleFor(context.Background(), "m"); err == nil {
		t.Fatal("expected error on empty title")
	}
}
