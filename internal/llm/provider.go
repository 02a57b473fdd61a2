// Package llm defines the LLM Provider capability interface consumed by
// the LLM-individual and LLM-batch rerank strategies and by RAG prompt
// assembly, plus an Anthropic-backed implementation and an in-memory fake.
package llm

import "context"

// Provider generates text from a prompt. Core code treats the returned
// string as the literal model output; JSON parsing (e.g. an ordered id
// array for LLM-batch rerank) is the caller's responsibility.
type Provider interface {
	// Generate returns the model's response to prompt, or an error if the
	// call failed or the provider returned no text.
	Generate(ctx context.Context, prompt string) (string, error)
}
