// Package prompt assembles the final generation prompt from retrieved
// context and the (original, rewritten) query pair.
package prompt

import (
	"fmt"
	"strings"

	"teaching-assistant-be/internal/constant"
	"teaching-assistant-be/internal/entity"
)

// Builder accumulates context sections over the course of a turn and
// renders them into a single prompt string.
type Builder struct {
	sections    []string
	sourceLinks []string
}

func NewBuilder() *Builder {
	return &Builder{}
}

// AddDocumentContext appends retrieved document chunks as one context
// section. Empty chunk sets are ignored.
func (b *Builder) AddDocumentContext(chunks []entity.DocumentChunk) {
	if len(chunks) == 0 {
		return
	}
	parts := make([]string, len(chunks))
	for i, c := range chunks {
		parts[i] = c.Content
	}
	b.sections = append(b.sections, strings.Join(parts, "\n\n"))
}

// AddWebContext appends web search results, labelled so the model can
// tell them apart from session documents. When document context already
// exists the results arrive as supplemental material; otherwise they are
// the sole grounding.
func (b *Builder) AddWebContext(results string, links []string) {
	if strings.TrimSpace(results) == "" {
		return
	}
	if len(b.sections) > 0 {
		b.sections = append(b.sections, constant.WebSearchSeparator+"\n"+results)
	} else {
		b.sections = append(b.sections, constant.WebSearchSeedLabel+"\n"+results)
	}
	b.sourceLinks = append(b.sourceLinks, links...)
}

// HasContext reports whether any grounding material was collected.
func (b *Builder) HasContext() bool {
	return len(b.sections) > 0
}

// Build renders the prompt. With context the layout is:
//
//	Context: <sections>
//
//	Original Question: <q>
//	Rewritten Question: <rq>
//
//	[Source Links:
//	- <link>]
//
//	Please provide a comprehensive answer based on the available information.
//
// Without context only the question pair is emitted, so the model
// answers from its own knowledge.
func (b *Builder) Build(originalQuery, rewrittenQuery string) string {
	if !b.HasContext() {
		return fmt.Sprintf("Original Question: %s\nRewritten Question: %s", originalQuery, rewrittenQuery)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Context: %s\n\nOriginal Question: %s\nRewritten Question: %s\n\n",
		strings.Join(b.sections, "\n\n"), originalQuery, rewrittenQuery)

	if len(b.sourceLinks) > 0 {
		sb.WriteString("Source Links:\n")
		for _, link := range b.sourceLinks {
			sb.WriteString("- " + link + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Please provide a comprehensive answer based on the available information.")
	return sb.String()
}
