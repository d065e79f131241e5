package http

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
)

func (h *handler) processTaskReq(c *gin.Context) (taskReq, error) {
	id, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
	if err != nil || id <= 0 {
		return taskReq{}, errInvalidTaskID
	}
	return taskReq{TaskID: id}, nil
}

// processInstanceReq reads task_id and resolves the date path param, which
// may be a calendar date or a relative word, in the service timezone.
func (h *handler) processInstanceReq(c *gin.Context) (instanceReq, error) {
	task, err := h.processTaskReq(c)
	if err != nil {
		return instanceReq{}, err
	}

	day, err := h.parser.ParseDate(c.Param("date"), h.now())
	if err != nil {
		return instanceReq{}, errInvalidDate
	}
	return instanceReq{TaskID: task.TaskID, Date: day.Format(datemath.DateLayout)}, nil
}

// processCleanupReq binds the optional cleanup body. An empty body uses the
// configured retention.
func (h *handler) processCleanupReq(c *gin.Context) (cleanupReq, error) {
	var req cleanupReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Warnf(c.Request.Context(), "recurring.delivery.http.processCleanupReq: %v", err)
		return req, errWrongBody
	}
	if req.RetentionDays == 0 {
		req.RetentionDays = h.uc.RetentionDays()
	}
	return req, nil
}
