package reconcile

import (
	"errors"
	"io/fs"
	"os"

	"prefab-reconciler/core/prefab"
)

var (
	// ErrHeaderMismatch is returned when the two documents have different headers.
	ErrHeaderMismatch = errors.New("header mismatch")
	// ErrUnmatchedDescriptor is returned when an original block has no counterpart left
	// in the modified document.
	ErrUnmatchedDescriptor = errors.New("unmatched descriptor")
	// ErrDuplicateTargetID is returned when a mapping would collapse two modified
	// entities onto one original id, or reuse a modified id.
	ErrDuplicateTargetID = errors.New("duplicate target id")
)

// ErrorCode classifies reconcile failures for logs, run history and API responses.
type ErrorCode string

const (
	CodeNone           ErrorCode = ""
	CodeStructural     ErrorCode = "structural"
	CodeHeaderMismatch ErrorCode = "header_mismatch"
	CodeUnmatched      ErrorCode = "unmatched"
	CodeDuplicateID    ErrorCode = "duplicate_id"
	CodeIO             ErrorCode = "io"
	CodeUnknown        ErrorCode = "unknown"
)

// Code returns the classification of err.
func Code(err error) ErrorCode {
	if err == nil {
		return CodeNone
	}
	switch {
	case errors.Is(err, prefab.ErrStructural):
		return CodeStructural
	case errors.Is(err, ErrHeaderMismatch):
		return CodeHeaderMismatch
	case errors.Is(err, ErrUnmatchedDescriptor):
		return CodeUnmatched
	case errors.Is(err, ErrDuplicateTargetID):
		return CodeDuplicateID
	}
	var perr *fs.PathError
	var lerr *os.LinkError
	if errors.As(err, &perr) || errors.As(err, &lerr) {
		return CodeIO
	}
	return CodeUnknown
}

// IsDomainError reports whether err comes from the documents themselves rather
// than from I/O or the environment.
func IsDomainError(err error) bool {
	switch Code(err) {
	case CodeStructural, CodeHeaderMismatch, CodeUnmatched, CodeDuplicateID:
		return true
	default:
		return false
	}
}
