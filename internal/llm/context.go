package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with what the request is for, such as
// "lesson-feedback". The logging decorator picks the label up so log
// lines can be traced back to the seeding step that issued them.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label back out, or "unknown" when the
// caller never tagged the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
