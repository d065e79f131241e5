package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/response"
)

const (
	// UserIDHeader carries the caller's user id, set by the fronting gateway.
	UserIDHeader = "X-User-ID"

	maxUserIDLength = 128
)

// Auth resolves the user scope from UserIDHeader and stores it in the
// request context. Requests without a usable id are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" || len(userID) > maxUserIDLength {
			response.Unauthorized(c)
			return
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
