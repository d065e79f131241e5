package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nikitalobanov12/dayflow-sub002/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rec := rg.Group("/recurring", mw.Auth())
	{
		rec.GET("/tasks/:task_id/instances", h.CompletionMap)
		rec.GET("/tasks/:task_id/instances/:date", h.Status)
		rec.PUT("/tasks/:task_id/instances/:date", h.Complete)
		rec.DELETE("/tasks/:task_id/instances/:date", h.Uncomplete)
		rec.POST("/cleanup", h.Cleanup)
		rec.POST("/migrate", h.Migrate)
	}
}
