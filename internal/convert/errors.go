package convert

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classifying run failures. All are fatal for the run
// except ErrNoAudioStream, which is job-level: split mode skips the
// affected title set and continues.
var (
	ErrExternalTool  = errors.New("external tool error")
	ErrInput         = errors.New("input error")
	ErrNoAudioStream = errors.New("no audio stream")
	ErrSubprocess    = errors.New("subprocess error")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "conversion failure"
	}
	return strings.Join(parts, ": ")
}
