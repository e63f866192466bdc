package middleware

import "context"

// userIDKey is the key under which the authenticated account id is stored in
// the request context. The identity travels in the context explicitly, never
// as process-global state, so the core stays testable without a transport.
const userIDKey = contextKey("userID")

// ContextWithUserID returns a child context carrying the authenticated
// account id. Exposed for handler tests.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated account id.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
