// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Source operations
	OpResolveSource Op = "resolve audio source"
	OpDownloadAudio Op = "download audio"
	OpSaveAudio     Op = "save downloaded audio"

	// Transform operations
	OpTransformAudio Op = "transform audio"
	OpProbeDuration  Op = "measure audio duration"

	// Playback operations
	OpLoadAudio     Op = "load audio"
	OpStartPlayback Op = "start playback"

	// History operations
	OpHistoryOpen   Op = "open play history"
	OpHistoryRecord Op = "record play history"
	OpHistoryList   Op = "list play history"

	// Initialization
	OpLoadConfig Op = "load configuration"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
