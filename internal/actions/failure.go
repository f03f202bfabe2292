package actions

// FallbackFailureMessage is reported when a failure carries no usable text.
const FallbackFailureMessage = "An unexpected error occurred"

// FailureMessage converts the value a run failed with into the message
// reported to the platform. Errors report their own text; anything else,
// including a recovered non-error panic value, reports the fallback.
func FailureMessage(v any) string {
	err, ok := v.(error)
	if !ok || err == nil {
		return FallbackFailureMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackFailureMessage
}
