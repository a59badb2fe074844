package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/internal/model"
	pkgErrors "task-assistant/pkg/errors"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processSendReq(c *gin.Context) (model.Scope, sendReq, error) {
	var req sendReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, errWrongBody
	}
	return sc, req, nil
}

func (h *handler) processListMessagesReq(c *gin.Context) (model.Scope, listMessagesReq, error) {
	var req listMessagesReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, errInvalidLimit
	}
	req.SessionID = c.Param("id")
	return sc, req, nil
}
