package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Stores the message, lets the assistant answer (possibly running a task tool) and returns both messages.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body sendReq true "Message; omit session_id to start a new session"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "MESSAGE_REQUIRED"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "SESSION_NOT_FOUND"
// @Failure     429 {object} response.Resp "RATE_LIMITED"
// @Router      /api/chat [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Send(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendResp(out))
}

// ListSessions godoc
// @Summary     List chat sessions
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} sessionsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/chat/sessions [GET]
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sessions, err := h.uc.ListSessions(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionsResp(sessions))
}

// ListMessages godoc
// @Summary     List messages of a session
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       id    path  string true  "Session ID"
// @Param       limit query int    false "Newest N messages (default 100, max 500)"
// @Success     200 {object} messagesResp
// @Failure     400 {object} response.Resp "INVALID_LIMIT"
// @Failure     404 {object} response.Resp "SESSION_NOT_FOUND"
// @Router      /api/chat/sessions/{id}/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListMessagesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	msgs, err := h.uc.ListMessages(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMessagesResp(msgs))
}
