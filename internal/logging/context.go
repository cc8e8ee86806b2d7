package logging

import "context"

type ctxKey string

const sessionIDKey ctxKey = "session_id"

// ContextWithSessionID attaches a storage session id to ctx.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFrom returns the session id stored in ctx, if any.
func SessionIDFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}

// withSession prepends the session id attribute when ctx carries one.
func withSession(ctx context.Context, args []any) []any {
	if id, ok := SessionIDFrom(ctx); ok {
		return append([]any{string(sessionIDKey), id}, args...)
	}
	return args
}
