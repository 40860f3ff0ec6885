package apperror

import "errors"

var (
	// ErrSessionNotFound is surfaced for read-only lookups of a missing
	// session id. The chat turn never returns this: it bootstraps a
	// fresh session instead.
	ErrSessionNotFound = errors.New("session not found")

	// ErrProcessingFailed wraps the fatal pipeline failures: query
	// rewriting, response generation, ingestion that produced no
	// indexable content, or a missing vector backend.
	ErrProcessingFailed = errors.New("processing failed")
)
