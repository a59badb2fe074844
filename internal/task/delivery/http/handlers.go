package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks, oldest first, optionally filtered by status.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       status query string false "all | pending | completed"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Task"
// @Success     200 {object} singleResp
// @Failure     400 {object} response.Resp "TITLE_REQUIRED"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSingleResp(t))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} singleResp
// @Failure     404 {object} response.Resp "TASK_NOT_FOUND"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSingleResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Replaces title and description. An omitted or empty description clears it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Task"
// @Success     200 {object} singleResp
// @Failure     400 {object} response.Resp "TITLE_REQUIRED"
// @Failure     404 {object} response.Resp "TASK_NOT_FOUND"
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSingleResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} successResp
// @Failure     404 {object} response.Resp "TASK_NOT_FOUND"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, successResp{Success: true})
}

// Toggle godoc
// @Summary     Toggle completion
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} singleResp
// @Failure     404 {object} response.Resp "TASK_NOT_FOUND"
// @Router      /api/tasks/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Toggle(ctx, sc, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSingleResp(t))
}

// Complete godoc
// @Summary     Mark a task completed
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} singleResp
// @Failure     404 {object} response.Resp "TASK_NOT_FOUND"
// @Router      /api/tasks/{id}/complete [PATCH]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Complete(ctx, sc, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSingleResp(t))
}
