package http

import (
	"github.com/gin-gonic/gin"
)

// processPlanReq binds and validates the plan request body.
func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "schedule.delivery.http.processPlanReq: %v", err)
		return req, errWrongBody
	}
	return req, req.validate()
}

// processValidateReq binds and validates the validate request body.
func (h *handler) processValidateReq(c *gin.Context) (validateReq, error) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "schedule.delivery.http.processValidateReq: %v", err)
		return req, errWrongBody
	}
	return req, req.validate()
}
