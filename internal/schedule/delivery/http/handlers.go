package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/response"
)

// Plan godoc
// @Summary     Plan tasks into working hours
// @Description Asks the planner model to place open tasks, moves placements that are already in the past to the next working-hours start and merges them into the tasks.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "User ID"
// @Param       body      body   planReq true "Tasks and preferences"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Planner failure"
// @Failure     503 {object} response.Resp "Planner not configured"
// @Router      /api/v1/schedule/plan [POST]
func (h *handler) Plan(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Plan(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Plan: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// Validate godoc
// @Summary     Correct past placements
// @Description Moves placements at or before the current time to the next working-hours start. Future placements are returned unchanged.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "User ID"
// @Param       body      body   validateReq true "Placements and preferences"
// @Success     200 {object} validateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/schedule/validate [POST]
func (h *handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processValidateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Validate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Validate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newValidateResp(output))
}
