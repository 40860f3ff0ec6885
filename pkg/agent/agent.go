// Package agent wraps the LLM provider behind the three narrow roles the
// turn pipeline needs: query rewriting, grounded response generation,
// and session title generation.
package agent

import "context"

type QueryRewriter interface {
	Rewrite(ctx context.Context, question string) (string, error)
}

type Responder interface {
	Respond(ctx context.Context, prompt string) (string, error)
}

type Titler interface {
	TitleFor(ctx context.Context, message string) (string, error)
}
