package batch

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers classifying run failures. Wrapped errors carry one of
// these so main can choose an exit path without string matching.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrExternalTool  = errors.New("external tool error")
)

// Wrap tags an error with a marker and operation context.
func Wrap(marker error, operation, message string, err error) error {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	detail := strings.Join(parts, ": ")
	if detail == "" {
		detail = "run failure"
	}
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}
