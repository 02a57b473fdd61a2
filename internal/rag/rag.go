// Package rag assembles grounded prompts from a fused/reranked result set
// and calls an LLM Provider for a generated answer. Generative-answer
// quality is out of scope here; this package only wires prompt assembly,
// the provider call, and returning the source documents as citations.
package rag

import (
	"context"
	"fmt"
	"strings"
)

// Source is one document offered to the LLM as grounding context.
type Source struct {
	ID          int
	Title       string
	Description string
}

// Answer is a generated response plus the sources it was grounded on.
type Answer struct {
	Text    string
	Sources []Source
}

func assembleDocs(sources []Source) string {
	var b strings.Builder
	for i, s := range sources {
		fmt.Fprintf(&b, "[%d] %s: %s\n", i+1, s.Title, s.Description)
	}
	return b.String()
}

const ragTemplate = `Answer the question or provide information based on the provided documents. This should be tailored to a movie-catalog search user.

Query: %s

Documents:
%s

Provide a comprehensive answer that addresses the query:`

const summaryTemplate = `Provide information useful to this query by synthesizing information from multiple search results. The goal is to give a comprehensive view of the options, information-dense and concise, covering genre and plot for each movie.

Query: %s

Search Results:
%s

Provide a comprehensive 3-4 sentence answer that combines information from multiple sources:`

const citationTemplate = `Answer the question or provide information based on the provided documents.

If not enough information is available to give a good answer, say so but give as good of an answer as you can while citing the sources you have.

Query: %s

Documents:
%s

Instructions:
- Provide a comprehensive answer that addresses the query
- Cite sources using [1], [2], etc. when referencing information
- If sources disagree, mention the different viewpoints
- If the answer isn't in the documents, say "I don't have enough information"
- Be direct and informative

Answer:`

const questionTemplate = `Answer the user's question based on the provided movies.

Question: %s

Documents:
%s

Instructions:
- Answer directly and concisely
- Be casual and conversational
- Talk like a normal person in a chat conversation

Answer:`

// Generator assembles prompts against a fixed set of sources and calls an
// LLM Provider for each of the supported answer styles.
type Generator struct {
	provider Provider
}

// Provider is the subset of llm.Provider that rag depends on, declared
// locally so that rag does not import internal/llm.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds a Generator against the given LLM Provider.
func New(provider Provider) *Generator {
	return &Generator{provider: provider}
}

func (g *Generator) run(ctx context.Context, template, query string, sources []Source) (Answer, error) {
	prompt := fmt.Sprintf(template, query, assembleDocs(sources))
	text, err := g.provider.Generate(ctx, prompt)
	if err != nil {
		return Answer{}, fmt.Errorf("rag: generate failed: %w", err)
	}
	return Answer{Text: strings.TrimSpace(text), Sources: sources}, nil
}

// Answer runs the general RAG template: a direct, comprehensive answer
// grounded on sources.
func (g *Generator) Answer(ctx context.Context, query string, sources []Source) (Answer, error) {
	return g.run(ctx, ragTemplate, query, sources)
}

// Summarize runs the multi-source summarization template.
func (g *Generator) Summarize(ctx context.Context, query string, sources []Source) (Answer, error) {
	return g.run(ctx, summaryTemplate, query, sources)
}

// Cite runs the citation template, instructing the model to reference
// sources by [n] index into the returned Sources slice.
func (g *Generator) Cite(ctx context.Context, query string, sources []Source) (Answer, error) {
	return g.run(ctx, citationTemplate, query, sources)
}

// Question runs the casual question-and-answer template.
func (g *Generator) Question(ctx context.Context, question string, sources []Source) (Answer, error) {
	return g.run(ctx, questionTemplate, question, sources)
}
