package middlewares

import (
	"github.com/gin-gonic/gin"
)

func SecureHeaders(ctx *gin.Context) {
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Header("X-Frame-Options", "DENY")
	ctx.Header("Referrer-Policy", "strict-origin-when-cross-origin")
	ctx.Next()
}

// CurrentUser copies the caller-supplied user identity into the request
// context. Identity is always passed explicitly per request; nothing in
// the service reads it from ambient state.
func CurrentUser(ctx *gin.Context) {
	if uid := ctx.GetHeader("X-User-Id"); uid != "" {
		ctx.Set("uid", uid)
	}
	ctx.Next()
}
