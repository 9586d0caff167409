package auth

import "context"

type ctxKey int

const memberIDKey ctxKey = iota

// WithMemberID stores the authenticated member id on the context. Only the
// auth middleware writes it; everything downstream just trusts it.
func WithMemberID(ctx context.Context, memberID string) context.Context {
	return context.WithValue(ctx, memberIDKey, memberID)
}

// MemberID returns the authenticated member id, or false when the request was
// not authenticated.
func MemberID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(memberIDKey).(string)
	return id, ok && id != ""
}
