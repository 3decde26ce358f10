package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated identity id set by AuthnMiddleware.
const CtxKeyUserID ctxKey = "user_id"

// UserID returns the authenticated identity id, or "" when the request is
// anonymous.
func UserID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
