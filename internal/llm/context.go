package llm

import "context"

// Purpose labels for the event log. `drill llm stats` groups usage by
// these, so every caller of a Provider should tag its context.
const (
	PurposeTutorChat = "tutor-chat"
	PurposeUnknown   = "unknown"
)

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose tags ctx with a purpose label for request logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom reads the purpose label off ctx, PurposeUnknown when the
// caller never tagged it.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey).(string); ok && p != "" {
		return p
	}
	return PurposeUnknown
}
