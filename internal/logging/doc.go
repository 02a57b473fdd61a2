// Package logging provides structured, rotated file logging for the
// retrieval engine via the returned *slog.Logger. Build, search, and
// rerank operations do not log start/finish lines; the LLM-individual
// reranker logs per-document failures.
package logging
