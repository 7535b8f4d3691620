package api

import (
	"fmt"

	"github.com/morikuni/failure/v2"
)

// ErrorCode defines error types for document store operations
type ErrorCode string

const (
	// ErrDocumentNotFound represents lookups of an id that is not in the store
	ErrDocumentNotFound ErrorCode = "DocumentNotFound"

	// ErrDuplicateDocument represents a seed that names the same id twice
	ErrDuplicateDocument ErrorCode = "DuplicateDocument"

	// ErrInvalidSeed represents a seed file that cannot be read or decoded
	ErrInvalidSeed ErrorCode = "InvalidSeed"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// NotFoundMessage returns the caller-visible message for an unknown document id.
func NotFoundMessage(docID string) string {
	return fmt.Sprintf("Doc with id %s not found.", docID)
}

func newNotFound(docID string) error {
	return failure.New(ErrDocumentNotFound,
		failure.Message(NotFoundMessage(docID)),
		failure.Context{
			"doc_id": docID,
		},
	)
}

// UserMessage extracts the message meant for callers from err.
// Errors without a failure message fall back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := failure.MessageOf(err); msg != "" {
		return msg.String()
	}
	return err.Error()
}
