package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTraversal     = errors.New("traversal error")
	ErrFilter        = errors.New("filter error")
	ErrProbeOpen     = errors.New("probe open error")
	ErrMimeMismatch  = errors.New("mime mismatch")
	ErrRootNotFound  = errors.New("scan root not found")
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrProbeOpen
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Recoverable reports whether err only affects a single file. Such failures
// are logged and skipped; anything else ends the run.
func Recoverable(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrRootNotFound), errors.Is(err, ErrConfiguration):
		return false
	case errors.Is(err, ErrTraversal), errors.Is(err, ErrFilter),
		errors.Is(err, ErrProbeOpen), errors.Is(err, ErrMimeMismatch):
		return true
	default:
		return false
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "scan failure"
	}
	return strings.Join(parts, ": ")
}
