package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// The provider adapters fold every SDK-specific failure into the four
// error types below. The retry decorator keys its policy off them, and
// the tutor surfaces them to the user as a single degraded-chat line.

// ErrRateLimit reports provider throttling. RetryAfter is zero when the
// provider did not say how long to back off.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider throttled the request, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("provider throttled the request: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports model output that is not the JSON the
// request's schema demanded. Content carries the rejected payload for
// the event log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("model output rejected: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable reports an unreachable or failing provider:
// 5xx responses, transport errors, and anything else without a more
// specific classification.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "provider unavailable"
	}
	return fmt.Sprintf("provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a reply truncated at the request's token
// budget. Retrying the same request cannot help.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "reply truncated at the max token budget"
}

// classifyStatus maps a provider HTTP status onto the shared taxonomy.
// Only 429 gets its own type; everything else a provider reports as an
// API error counts as unavailable.
func classifyStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
