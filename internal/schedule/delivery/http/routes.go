package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nikitalobanov12/dayflow-sub002/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Planning calls an LLM and is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sched := rg.Group("/schedule", mw.Auth())
	{
		sched.POST("/plan", mw.RateLimit(), h.Plan)
		sched.POST("/validate", h.Validate)
	}
}
