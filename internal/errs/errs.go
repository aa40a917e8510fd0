// Package errs defines the error markers shared by the hashing, modification,
// codec, and configuration layers.
//
// Errors are tagged with one of the exported sentinels through Wrap and
// classified for display with Kind. Nothing in the module retries; callers
// bubble the wrapped error to the command that reports it.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownModification = errors.New("unknown modification")
	ErrUnknownAlgorithm    = errors.New("unknown hash algorithm")
	ErrImage               = errors.New("image error")
	ErrConfig              = errors.New("config error")
	ErrConfigExists        = errors.New("config already exists")
)

// Wrap builds an error that names the operation and the offending input while
// tagging it with marker. Both marker and err remain reachable through
// errors.Is.
func Wrap(marker error, operation, subject string, err error) error {
	detail := buildDetail(operation, subject)
	if marker == nil {
		marker = ErrImage
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns a short label for the marker carried by err, or "error" when
// err carries none of the known markers.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnknownModification):
		return "unknown_modification"
	case errors.Is(err, ErrUnknownAlgorithm):
		return "unknown_algorithm"
	case errors.Is(err, ErrImage):
		return "image"
	case errors.Is(err, ErrConfigExists):
		return "config_exists"
	case errors.Is(err, ErrConfig):
		return "config"
	default:
		return "error"
	}
}

func buildDetail(operation, subject string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if subject = strings.TrimSpace(subject); subject != "" {
		parts = append(parts, subject)
	}
	if len(parts) == 0 {
		return "failure"
	}
	return strings.Join(parts, ": ")
}
