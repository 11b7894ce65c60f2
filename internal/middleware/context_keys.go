package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for values stored in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	// callerIDKey holds the authenticated calling service (the JWT subject).
	callerIDKey = contextKey("callerID")
)

// GetCallerIDFromContext retrieves the authenticated caller ID from the request context.
// It returns the caller ID and a boolean indicating if it was found.
func GetCallerIDFromContext(c *gin.Context) (string, bool) {
	return CallerIDFromCtx(c.Request.Context())
}

// CallerIDFromCtx retrieves the authenticated caller ID from a standard context.
func CallerIDFromCtx(ctx context.Context) (string, bool) {
	callerID, ok := ctx.Value(callerIDKey).(string)
	if !ok || callerID == "" {
		return "", false
	}
	return callerID, true
}
