package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-assistant/internal/auth"
	"task-assistant/internal/middleware"
	"task-assistant/pkg/response"
)

// SignUp godoc
// @Summary     Register with email and password
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signUpReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "INVALID_EMAIL, PASSWORD_TOO_SHORT, PASSWORD_TOO_LONG"
// @Failure     409 {object} response.Resp "USER_ALREADY_EXISTS"
// @Router      /api/auth/sign-up/email [POST]
func (h *handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignUpReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SignUp(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, out.Token, out.Session.ExpiresAt)
	response.OK(c, h.newAuthResp(out))
}

// SignIn godoc
// @Summary     Sign in with email and password
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signInReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     401 {object} response.Resp "INVALID_EMAIL_OR_PASSWORD"
// @Router      /api/auth/sign-in/email [POST]
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignInReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SignIn(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, out.Token, out.Session.ExpiresAt)
	response.OK(c, h.newAuthResp(out))
}

// SignOut godoc
// @Summary     Sign out
// @Description Ends the current session. Calling it without a live session still succeeds.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} successResp
// @Router      /api/auth/sign-out [POST]
func (h *handler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()

	token := middleware.TokenFromRequest(c, h.cookie.CookieName)
	if err := h.uc.SignOut(ctx, token); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	h.clearSessionCookie(c)
	response.OK(c, successResp{Success: true})
}

// GetSession godoc
// @Summary     Current session
// @Description Returns the signed-in user and session, or null data when there is none.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} getSessionResp
// @Router      /api/auth/get-session [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.GetSession(ctx, middleware.TokenFromRequest(c, h.cookie.CookieName))
	if errors.Is(err, auth.ErrSessionNotFound) {
		response.OK(c, nil)
		return
	}
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGetSessionResp(out))
}
