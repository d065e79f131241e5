package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/response"
)

// Complete godoc
// @Summary     Mark an instance completed
// @Description Records the dated instance of a recurring task as completed. Repeating the call refreshes the completion time.
// @Tags        Recurring
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       task_id   path   int    true "Recurring task ID"
// @Param       date      path   string true "YYYY-MM-DD, today, tomorrow or yesterday"
// @Success     200 {object} instanceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Ledger unavailable"
// @Router      /api/v1/recurring/tasks/{task_id}/instances/{date} [PUT]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processInstanceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !h.uc.MarkCompleted(ctx, sc, req.TaskID, req.Date) {
		response.Error(c, errLedgerWrite)
		return
	}

	response.OK(c, h.newInstanceResp(req, true))
}

// Uncomplete godoc
// @Summary     Mark an instance incomplete
// @Description Removes the completion record. Succeeds when there was none.
// @Tags        Recurring
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       task_id   path   int    true "Recurring task ID"
// @Param       date      path   string true "YYYY-MM-DD, today, tomorrow or yesterday"
// @Success     200 {object} instanceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Ledger unavailable"
// @Router      /api/v1/recurring/tasks/{task_id}/instances/{date} [DELETE]
func (h *handler) Uncomplete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processInstanceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !h.uc.MarkIncomplete(ctx, sc, req.TaskID, req.Date) {
		response.Error(c, errLedgerWrite)
		return
	}

	response.OK(c, h.newInstanceResp(req, false))
}

// Status godoc
// @Summary     Get instance completion
// @Tags        Recurring
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       task_id   path   int    true "Recurring task ID"
// @Param       date      path   string true "YYYY-MM-DD, today, tomorrow or yesterday"
// @Success     200 {object} instanceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/recurring/tasks/{task_id}/instances/{date} [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processInstanceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newInstanceResp(req, h.uc.IsCompleted(ctx, sc, req.TaskID, req.Date)))
}

// CompletionMap godoc
// @Summary     List completed instances of a task
// @Tags        Recurring
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       task_id   path   int    true "Recurring task ID"
// @Success     200 {object} completionMapResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/recurring/tasks/{task_id}/instances [GET]
func (h *handler) CompletionMap(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newCompletionMapResp(req.TaskID, h.uc.GetCompletionMap(ctx, sc, req.TaskID)))
}

// Cleanup godoc
// @Summary     Remove old instances
// @Description Deletes the caller's instances dated more than retention_days days ago. Defaults to the configured retention.
// @Tags        Recurring
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true  "User ID"
// @Param       body      body   cleanupReq false "Retention override"
// @Success     200 {object} cleanupResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/recurring/cleanup [POST]
func (h *handler) Cleanup(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processCleanupReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cleanupResp{
		RetentionDays: req.RetentionDays,
		Removed:       h.uc.CleanupOldInstances(ctx, sc, req.RetentionDays),
		Backend:       h.uc.Backend(),
	})
}

// Migrate godoc
// @Summary     Migrate cached instances to the durable store
// @Description Copies the caller's cached records into the durable store and clears the cache on success. On failure the cache is kept.
// @Tags        Recurring
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Success     200 {object} migrateResp
// @Failure     409 {object} response.Resp "Durable ledger not active"
// @Failure     503 {object} response.Resp "Migration failed"
// @Router      /api/v1/recurring/migrate [POST]
func (h *handler) Migrate(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	output, err := h.uc.Migrate(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Migrate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMigrateResp(output))
}
