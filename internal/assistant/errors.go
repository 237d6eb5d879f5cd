package assistant

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingAPIKey  = errors.New("gemini api key is not configured")
	ErrModelNotFound  = errors.New("gemini model not found")
	ErrQuotaExceeded  = errors.New("gemini quota exceeded")
	ErrNetwork        = errors.New("network error reaching gemini")
	ErrEmptyResponse  = errors.New("empty response from model")
	ErrInvalidAction  = errors.New("invalid action")
	ErrPromptRequired = errors.New("prompt is required")
	ErrTextRequired   = errors.New("text is required")
	ErrNoteRequired   = errors.New("note title and content are required")
	ErrTodosRequired  = errors.New("todos array is required")
)

// remediation maps provider failures to the message shown to the user.
var remediation = map[error]string{
	ErrMissingAPIKey: "Gemini API key is not configured. Please add GEMINI_API_KEY to the environment.",
	ErrModelNotFound: "Gemini API model not found. This might be due to an API version mismatch; check the client version or your API key.",
	ErrQuotaExceeded: "Gemini API quota exceeded or rate limited. Please try again later or check your usage limits.",
	ErrNetwork:       "Network error connecting to the Gemini API. Please check your connection.",
}

// Remediation returns the user-facing message for a classified provider
// error, or the error's own text when no mapping applies.
func Remediation(err error) string {
	for sentinel, msg := range remediation {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return err.Error()
}

// classify inspects a provider failure and wraps it in the matching sentinel
// so callers can branch with errors.Is. Matching is substring-based because
// the upstream client surfaces transport errors as flat strings.
func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key"):
		return fmt.Errorf("%w: %v", ErrMissingAPIKey, err)
	case strings.Contains(msg, "404") || strings.Contains(msg, "models/"):
		return fmt.Errorf("%w: %v", ErrModelNotFound, err)
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota"):
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	case strings.Contains(msg, "network") || strings.Contains(msg, "connect"):
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	default:
		return err
	}
}
